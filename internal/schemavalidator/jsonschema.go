package schemavalidator

import (
	"github.com/xeipuuv/gojsonschema"
)

// Schema is a compiled JSON schema.
type Schema struct {
	s *gojsonschema.Schema
}

// MustCompile compiles a JSON schema document and panics if it is invalid.
func MustCompile(schema string) *Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(err)
	}
	return &Schema{s: s}
}

// Validate checks a JSON document against the schema. It returns nil when
// the document conforms.
func (s *Schema) Validate(doc []byte) ValidationErrors {
	result, err := s.s.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return ValidationErrors{ErrSchema("", "malformed JSON: "+err.Error())}
	}
	if result.Valid() {
		return nil
	}
	var ves ValidationErrors
	for _, e := range result.Errors() {
		field := e.Field()
		if field == "(root)" {
			field = ""
		}
		ves = append(ves, ErrSchema(field, e.Description()))
	}
	return ves
}
