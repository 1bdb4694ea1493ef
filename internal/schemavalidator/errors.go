package schemavalidator

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field  string
	Value  any
	ErrStr string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.ErrStr
	}
	return e.Field + ": " + e.ErrStr
}

type ValidationErrors []ValidationError

func (ves ValidationErrors) Error() string {
	s := make([]string, 0, len(ves))
	for _, e := range ves {
		s = append(s, e.Error())
	}
	return strings.Join(s, "; ")
}

func InQuotes(s any) string {
	return fmt.Sprintf("%q", fmt.Sprint(s))
}

func ErrMissingRequiredAttribute(attr string) ValidationError {
	return ValidationError{
		Field:  attr,
		ErrStr: "missing required attribute",
	}
}

func ErrValidationFailed(attr string, value any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "validation failed",
	}
}

func ErrInvalidImage(attr string, value any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "invalid container image " + InQuotes(value),
	}
}

func ErrInvalidFogType(attr string, value any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "unknown fog type " + InQuotes(value),
	}
}

func ErrSchema(attr, desc string) ValidationError {
	return ValidationError{
		Field:  attr,
		ErrStr: desc,
	}
}
