package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInFlight is returned when the same action is already running for a session.
var ErrInFlight = errors.New("request already in progress")

// ValidationError is a local input failure. No remote request was made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

var errNoActiveBrand = newValidationError("brand_id", "select a brand first")

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateStruct runs tag validation and reports the first failing field.
func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		switch fe.Tag() {
		case "required":
			return newValidationError(fe.Field(), "is required")
		case "min":
			return newValidationError(fe.Field(), "needs at least "+fe.Param()+" item")
		default:
			return newValidationError(fe.Field(), "is invalid")
		}
	}
	return newValidationError("", err.Error())
}

// ActionError is a remote failure reduced to the message the viewer sees.
// The underlying error stays reachable through Unwrap.
type ActionError struct {
	Message string
	Err     error
}

func (e *ActionError) Error() string {
	return e.Message + ": " + e.Err.Error()
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

func failed(message string, err error) error {
	return &ActionError{Message: message, Err: err}
}
