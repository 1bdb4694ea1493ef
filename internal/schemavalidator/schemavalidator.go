// Package schemavalidator validates request payloads, both struct-level with
// go-playground/validator and document-level with JSON schema.
package schemavalidator

import (
	"reflect"
	"strings"
	"sync"

	"github.com/distribution/reference"
	"github.com/go-playground/validator/v10"
	"github.com/mugiliam/fogcontroller/internal/types"
)

var (
	v    *validator.Validate
	once sync.Once
)

// V returns the shared validator with the custom validations registered.
func V() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = v.RegisterValidation("imageRef", imageRefValidator)
		_ = v.RegisterValidation("fogType", fogTypeValidator)
		_ = v.RegisterValidation("notBlank", notBlankValidator)
	})
	return v
}

func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// imageRefValidator accepts docker image references such as "iofog/sensor:1.0"
// or "registry.example.com:5000/team/app@sha256:...".
func imageRefValidator(fl validator.FieldLevel) bool {
	return ValidImageRef(fl.Field().String())
}

func ValidImageRef(s string) bool {
	if s == "" {
		return false
	}
	_, err := reference.ParseNormalizedNamed(s)
	return err == nil
}

func fogTypeValidator(fl validator.FieldLevel) bool {
	return types.FogTypeId(fl.Field().Int()).IsValid()
}

func notBlankValidator(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Struct validates s and converts failures to ValidationErrors named by
// their JSON paths. It returns nil when s is valid.
func Struct(s any) ValidationErrors {
	err := V().Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{ErrValidationFailed("", err.Error())}
	}
	var ves ValidationErrors
	for _, e := range ve {
		field := jsonPath(e.Namespace())
		switch e.Tag() {
		case "required", "required_without":
			ves = append(ves, ErrMissingRequiredAttribute(field))
		case "imageRef":
			ves = append(ves, ErrInvalidImage(field, e.Value()))
		case "fogType":
			ves = append(ves, ErrInvalidFogType(field, e.Value()))
		case "notBlank":
			ves = append(ves, ErrMissingRequiredAttribute(field))
		default:
			ves = append(ves, ErrValidationFailed(field, e.Value()))
		}
	}
	return ves
}

// jsonPath drops the root struct name from a validator namespace.
func jsonPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
