// Package errorx carries the error-kind taxonomy the handlers map onto
// HTTP status codes. Services wrap every failure with a kind at the point
// where they know what went wrong; nothing above them re-inspects causes.
package errorx

import "errors"

type Kind int

const (
	// Other is the zero kind; anything unwrapped surfaces as a server error.
	Other Kind = iota
	// Invalid marks malformed client input. Reserved, no handler emits it yet.
	Invalid
	// NotExist marks missing resources and empty required result sets.
	NotExist
	// Validation marks rejected payloads and failed mutations.
	Validation
	// Service marks dependency and storage failures.
	Service
)

type Error struct {
	err  error
	kind Kind
}

func Wrap(err error, kind Kind) error {
	if err == nil {
		return nil
	}
	return &Error{err: err, kind: kind}
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Kind() Kind { return e.kind }

// KindOf reports the kind of the outermost *Error in err's chain,
// Other when err carries no kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return Other
}
