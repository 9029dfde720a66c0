package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"tubeplan/pkg/scoring"
)

const (
	CodeValidation    = "validation_failed"
	CodeNotConfigured = "not_configured"
	CodeNotFound      = "not_found"
	CodeInternal      = "internal"
)

// ErrNotConfigured is returned by any workflow that needs a channel profile when none exists.
var ErrNotConfigured = errors.New("channel not configured: run `tubeplan channel set` or POST /channel")

// ErrValidation marks malformed or out-of-range input.
var ErrValidation = errors.New("validation failed")

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// From classifies err into an *Error with an HTTP status.
func From(err error) *Error {
	var ae *Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ae):
		return ae
	case errors.Is(err, ErrValidation),
		errors.Is(err, scoring.ErrRatingOutOfRange),
		errors.Is(err, scoring.ErrInvalidWeight):
		return New(http.StatusBadRequest, CodeValidation, err)
	case errors.Is(err, ErrNotConfigured):
		return New(http.StatusPreconditionFailed, CodeNotConfigured, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return New(http.StatusNotFound, CodeNotFound, err)
	default:
		return New(http.StatusInternalServerError, CodeInternal, err)
	}
}

// Write renders err as {"error": {"code", "message"}}.
func Write(c echo.Context, err error) error {
	ae := From(err)
	return c.JSON(ae.Status, echo.Map{
		"error": echo.Map{
			"code":    ae.Code,
			"message": ae.Error(),
		},
	})
}
