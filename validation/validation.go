// Package validation turns raw request bodies into normalized payloads and
// request-rejection errors with stable, human-readable messages.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error describes a request rejected before any mutation took place.
type Error struct {
	Status int // HTTP status the handler should respond with
	Msg    string
}

func (e *Error) Error() string {
	return e.Msg
}

// BadRequest builds a 400 validation error.
func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Msg: msg}
}

// Conflict builds a 409 duplicate-value error.
func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Msg: msg}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their json name, not the Go identifier
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode reads a JSON request body into dst. Unknown fields are rejected and
// type mismatches are reported per field. An empty body decodes to the zero
// payload so that Struct can report the first missing field instead.
func Decode(body io.Reader, dst any) *Error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return BadRequest(fmt.Sprintf("%q must be a %s", typeErr.Field, jsonTypeName(typeErr.Type)))
	}

	// encoding/json exposes unknown fields only through the error text
	if msg := err.Error(); strings.HasPrefix(msg, "json: unknown field ") {
		name := strings.Trim(strings.TrimPrefix(msg, "json: unknown field "), "\"")
		return BadRequest(fmt.Sprintf("%q is not allowed", name))
	}

	return BadRequest("Invalid request body")
}

// Struct runs the declarative schema over a decoded payload and reports the
// first failing field only.
func Struct(payload any) *Error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fieldErr := verrs[0]
		switch fieldErr.Tag() {
		case "required":
			return BadRequest(fmt.Sprintf("%q is required", fieldErr.Field()))
		default:
			return BadRequest(fmt.Sprintf("%q is invalid", fieldErr.Field()))
		}
	}

	return BadRequest("Invalid request body")
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	default:
		return "number"
	}
}
