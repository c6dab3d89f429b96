package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// DecodeJSON fills the struct pointed to by dst from a JSON object. Each known field is
// decoded on its own so that every type mismatch is reported instead of only the first.
// Unknown keys are ignored and absent keys leave the field untouched. null is only
// accepted for pointer fields, and never inside a list.
func DecodeJSON(raw []byte, dst any) Errors {
	var errs Errors

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		errs.Add(LocationBody, "", "required", "request body is required")
		return errs
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(raw, &object); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			errs.Add(LocationBody, "", ConstraintType, "request body must be a JSON object")
		} else {
			errs.Add(LocationBody, "", ConstraintJSON, "malformed JSON: "+err.Error())
		}
		return errs
	}
	if object == nil {
		errs.Add(LocationBody, "", ConstraintType, "request body must be a JSON object")
		return errs
	}

	rv := reflect.ValueOf(dst).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name := fieldName(sf)
		if name == "" || !sf.IsExported() {
			continue
		}
		value, ok := object[name]
		if !ok {
			continue
		}
		// encoding/json treats null as "leave unchanged"; only pointers may be null.
		if isNull(value) && sf.Type.Kind() != reflect.Pointer {
			errs.Add(LocationBody, name, ConstraintType, "must be "+describe(sf.Type))
			continue
		}
		if err := json.Unmarshal(value, rv.Field(i).Addr().Interface()); err != nil || hasNullElement(value, sf.Type) {
			errs.Add(LocationBody, name, ConstraintType, "must be "+describe(sf.Type))
		}
	}
	return errs
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// hasNullElement reports whether a JSON list decoded into a slice of non-pointer
// elements contained a null.
func hasNullElement(raw json.RawMessage, t reflect.Type) bool {
	if t.Kind() != reflect.Slice || t.Elem().Kind() == reflect.Pointer {
		return false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return false
	}
	for _, e := range elems {
		if isNull(e) {
			return true
		}
	}
	return false
}

// describe names a Go type the way a JSON client thinks about it.
func describe(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "a list of " + strings.TrimPrefix(strings.TrimPrefix(describe(t.Elem()), "a "), "an ") + "s"
	default:
		return "an object"
	}
}

// ParseInt reads an integer parameter. An empty raw value yields def.
func ParseInt(location, name, raw string, def int) (int, *FieldError) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &FieldError{
			Location:   location,
			Field:      name,
			Constraint: ConstraintType,
			Message:    fmt.Sprintf("must be an integer, got %q", raw),
		}
	}
	return n, nil
}
