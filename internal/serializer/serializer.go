// Package serializer converts between the wire format and the persisted
// record shape. Outbound serialization is handled by the json tags on
// types.Student; this package owns the inbound direction: decoding a
// request body and validating it before it is allowed to become a record.
//
// Validation failures are reported as FieldErrors, a per-field map of
// messages that is written to the client verbatim:
//
//	{ "name": ["This field is required."] }
//
// Body-level failures (empty body, malformed JSON) are ordinary errors,
// since they cannot be attributed to a single field.
package serializer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/meera-joshi/student-registry/internal/types"
)

// ErrEmptyBody is returned by BindStudent when the request body contains
// no bytes at all.
var ErrEmptyBody = errors.New("request body is empty")

// FieldErrors maps a wire-format field name to the list of validation
// messages for that field.
type FieldErrors map[string][]string

// validate is shared across requests; a Validate instance caches struct
// metadata and is safe for concurrent use.
var validate = newValidator()

// newValidator builds a Validate that reports fields by their json tag
// name rather than the Go struct field name, so error keys match what
// the client actually sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// BindStudent decodes a JSON request body into a Student and validates
// it. Exactly one of the three outcomes is populated:
//
//   - a bound Student ready to persist (FieldErrors nil, error nil)
//   - FieldErrors describing per-field failures (error nil)
//   - an error for body-level failures: ErrEmptyBody or a decode error
//
// A client-supplied "id" is discarded; identifiers are store-generated.
func BindStudent(body io.Reader) (types.Student, FieldErrors, error) {
	var student types.Student

	err := json.NewDecoder(body).Decode(&student)
	if errors.Is(err, io.EOF) {
		return types.Student{}, nil, ErrEmptyBody
	}

	// A type mismatch on a known field is a field-level failure, not a
	// malformed body: report it under the offending field's name.
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return types.Student{}, FieldErrors{typeErr.Field: {typeMessage(typeErr)}}, nil
	}

	if err != nil {
		return types.Student{}, nil, fmt.Errorf("decode request body: %w", err)
	}

	student.ID = 0

	if err := validate.Struct(student); err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			return types.Student{}, fieldErrors(validateErrs), nil
		}
		return types.Student{}, nil, fmt.Errorf("validate student: %w", err)
	}

	return student, nil, nil
}

// fieldErrors converts validator failures into the wire-format error map.
func fieldErrors(errs validator.ValidationErrors) FieldErrors {
	out := make(FieldErrors, len(errs))
	for _, e := range errs {
		out[e.Field()] = append(out[e.Field()], message(e))
	}
	return out
}

// message renders a single validation failure as a client-facing
// sentence. The exact wording is part of the API contract.
func message(e validator.FieldError) string {
	switch e.ActualTag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", e.Param())
	default:
		return "This field is invalid."
	}
}

// typeMessage renders a JSON type mismatch for the expected Go type.
func typeMessage(e *json.UnmarshalTypeError) string {
	switch e.Type.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "A valid integer is required."
	case reflect.String:
		return "Not a valid string."
	default:
		return fmt.Sprintf("Invalid value, expected %s.", e.Type.Kind())
	}
}
