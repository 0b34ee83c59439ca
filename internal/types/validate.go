//nolint:revive // types is a standard Go package name pattern
package types

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared struct validator. Field names in errors use json tag names.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate validates v against its struct tags.
func Validate(v any) error {
	return Validator().Struct(v)
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimFunc(a, unicode.IsSpace), strings.TrimFunc(b, unicode.IsSpace))
}
