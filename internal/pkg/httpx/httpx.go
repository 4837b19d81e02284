// Package httpx writes the response envelopes. The wire contract is fixed:
// successes are {success, result} or {success, result, total,
// current_category}, failures are {success, error, message} with the HTTP
// status mirroring the error field. Only the four statuses below ever leave
// the server.
package httpx

import (
	"errors"
	"net/http"

	"trivia/internal/pkg/errorx"

	"github.com/labstack/echo/v4"
)

var messages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Resource Not Found",
	http.StatusUnprocessableEntity: "Unable to process request",
	http.StatusInternalServerError: "Internal Server Error",
}

type restError struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

type restValue struct {
	Success bool `json:"success"`
	Result  any  `json:"result"`
}

type restPage struct {
	Success         bool `json:"success"`
	Result          any  `json:"result"`
	Total           int  `json:"total"`
	CurrentCategory *int `json:"current_category"`
}

func statusOf(err error) int {
	switch errorx.KindOf(err) {
	case errorx.Invalid:
		return http.StatusBadRequest
	case errorx.NotExist:
		return http.StatusNotFound
	case errorx.Validation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// RestAbort terminates the request with either the success envelope around
// data or the error envelope matching err's kind.
func RestAbort(c echo.Context, data any, err error) error {
	if err != nil {
		return Abort(c, err)
	}
	return c.JSON(http.StatusOK, restValue{Success: true, Result: data})
}

// RestList is RestAbort for the collection endpoints, which also carry the
// full-store count and the current category (null outside category scopes).
func RestList(c echo.Context, items any, total int, currentCategory *int, err error) error {
	if err != nil {
		return Abort(c, err)
	}
	return c.JSON(http.StatusOK, restPage{
		Success:         true,
		Result:          items,
		Total:           total,
		CurrentCategory: currentCategory,
	})
}

func Abort(c echo.Context, err error) error {
	status := statusOf(err)
	return c.JSON(status, restError{Success: false, Error: status, Message: messages[status]})
}

// ErrorHandler translates anything echo raises on its own (unknown routes,
// recovered panics) into the fixed envelope. Statuses outside the contract
// collapse to 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if _, ok := messages[he.Code]; ok {
			status = he.Code
		}
	}

	//nolint:errcheck
	c.JSON(status, restError{Success: false, Error: status, Message: messages[status]})
}
