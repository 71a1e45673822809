package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldErrors map[string]string

// FromBindError converts a gin bind/validation error into a field->message
// map. dst is the bound struct pointer (for reading json tags).
func FromBindError(err error, dst any) FieldErrors {
	out := FieldErrors{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			key := fieldKey(dst, fe.StructField())
			out[key] = messageForTag(fe.Tag(), fe.Param())
		}
		return out
	}

	// other bind failures (type mismatch, bad JSON)
	out["_"] = "Request body is invalid."
	return out
}

func fieldKey(dst any, structField string) string {
	t := reflect.TypeOf(dst)
	if t == nil {
		return strings.ToLower(structField)
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return strings.ToLower(structField)
	}
	if f, ok := t.FieldByName(structField); ok {
		if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
			return strings.Split(tag, ",")[0]
		}
		if tag := f.Tag.Get("form"); tag != "" && tag != "-" {
			return strings.Split(tag, ",")[0]
		}
	}
	return strings.ToLower(structField)
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Must be at least %s.", param)
	case "max":
		return fmt.Sprintf("Must be at most %s.", param)
	case "gt":
		return fmt.Sprintf("Must be greater than %s.", param)
	case "email":
		return "Must be a valid email address."
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", param)
	default:
		return "Invalid value."
	}
}
