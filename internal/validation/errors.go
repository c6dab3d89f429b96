package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is matched by every *Error.
var ErrValidation = errors.New("validation failed")

// Locations of a violated field.
const (
	LocationBody  = "body"
	LocationQuery = "query"
	LocationPath  = "path"
	LocationForm  = "form"
)

// Constraint names that are not validator tags.
const (
	ConstraintType = "type"
	ConstraintJSON = "json"
)

// FieldError describes one violated constraint.
type FieldError struct {
	Location   string `json:"location"`
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

// Error lists every constraint an input violated. It is never returned empty.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.path()+": "+f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error { return ErrValidation }

// Has reports whether field violated constraint.
func (e *Error) Has(field, constraint string) bool {
	for _, f := range e.Fields {
		if f.Field == field && f.Constraint == constraint {
			return true
		}
	}
	return false
}

func (f FieldError) path() string {
	if f.Field == "" {
		return f.Location
	}
	return f.Location + "." + f.Field
}

// Errors accumulates field errors.
type Errors []FieldError

// Add appends a violation.
func (es *Errors) Add(location, field, constraint, message string) {
	*es = append(*es, FieldError{Location: location, Field: field, Constraint: constraint, Message: message})
}

// Has reports whether field already has a violation recorded.
func (es Errors) Has(field string) bool {
	for _, f := range es {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Err returns nil when nothing was recorded and an *Error otherwise.
func (es Errors) Err() error {
	if len(es) == 0 {
		return nil
	}
	return &Error{Fields: es}
}

// FromValidator converts validator.ValidationErrors into field errors at location.
// Fields already present in skip are left out so a field never reports both a type
// error and a constraint error.
func FromValidator(err error, location string, skip Errors) Errors {
	var out Errors
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		out.Add(location, "", "invalid", err.Error())
		return out
	}
	for _, fe := range ves {
		if skip.Has(fe.Field()) {
			continue
		}
		out.Add(location, fe.Field(), fe.Tag(), message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "email":
		return "must be a valid email address"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed on the '%s=%s' rule", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
