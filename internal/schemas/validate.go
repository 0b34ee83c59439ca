// Package schemas checks persisted JSON documents against JSON Schemas.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema is a compiled JSON Schema.
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

// FieldError is one violation, located by its dotted field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every violation found in a document.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return fmt.Sprintf("%s: %d violation(s): %s", e.Schema, len(e.Errors), strings.Join(parts, "; "))
}

// LoadError is a schema or document that could not be read as JSON.
type LoadError struct {
	Schema  string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Schema, e.Message, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Compile parses content. name labels errors.
func Compile(name string, content []byte) (*Schema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(content))
	if err != nil {
		return nil, &LoadError{Schema: name, Message: "invalid schema", Cause: err}
	}
	return &Schema{name: name, schema: s}, nil
}

// MustCompile is Compile for schemas embedded in the binary.
func MustCompile(name string, content []byte) *Schema {
	s, err := Compile(name, content)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks document against s. It returns a *ValidationError when
// the document is well-formed JSON that breaks the schema.
func (s *Schema) Validate(document []byte) error {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return &LoadError{Schema: s.name, Message: "unreadable document", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Schema: s.name}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}
