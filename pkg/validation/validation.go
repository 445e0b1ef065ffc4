package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/docstream/docstream-api/pkg/nullable"
)

// New returns a validator that reports fields by their JSON names.
// It also understands notblank and nullable.String fields.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if s, ok := field.Interface().(nullable.String); ok {
			return s.Validatable()
		}
		return nil
	}, nullable.String{})
	return v
}
