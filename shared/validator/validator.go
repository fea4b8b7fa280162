// Package validator wraps go-playground/validator for request payloads. Field
// names in messages and error maps follow the json tags.
package validator

import (
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// digitsValidation accepts a non-empty string of ASCII digits.
func digitsValidation(field val.FieldLevel) bool {
	value := field.Field().String()
	if value == "" {
		return false
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func jsonTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	if err := validate.RegisterValidation("digits", digitsValidation); err != nil {
		panic(err)
	}
}

// ValidateFields validates data and returns the per-field messages, or nil
// when the struct is valid.
func ValidateFields[T any](data *T) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	fields := FieldErrors(err)
	if fields == nil {
		fields = map[string]string{"_": message(err)}
	}

	return fields
}
