package errorx_test

import (
	"errors"
	"fmt"
	"testing"

	"trivia/internal/pkg/errorx"

	"github.com/stretchr/testify/assert"
)

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errorx.Wrap(nil, errorx.NotExist))
}

func TestKindOf(t *testing.T) {
	err := errorx.Wrap(errors.New("boom"), errorx.Validation)
	assert.Equal(t, errorx.Validation, errorx.KindOf(err))
	assert.Equal(t, "boom", err.Error())
}

func TestKindOfTraversesChain(t *testing.T) {
	inner := errorx.Wrap(errors.New("gone"), errorx.NotExist)
	outer := fmt.Errorf("lookup: %w", inner)
	assert.Equal(t, errorx.NotExist, errorx.KindOf(outer))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, errorx.Other, errorx.KindOf(errors.New("boom")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := errorx.Wrap(cause, errorx.Service)
	assert.ErrorIs(t, err, cause)
}
