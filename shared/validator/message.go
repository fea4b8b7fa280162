package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must not be greater than {param} characters",
		"min":      "{field} must be at least {param} characters",
		"email":    "{field} must be a valid email address",
		"digits":   "{field} must contain digits only",
		"datetime": "{field} must be a valid date",
	}
)

func fieldMessage(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", strings.ReplaceAll(valErr.Field(), "_", " "))
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			if _, ok := messages[valErr.Tag()]; ok {
				return fieldMessage(valErr)
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}

// FieldErrors maps each failing field (by its json name) to its first message.
// Errors that are not validation errors yield nil.
func FieldErrors(err error) map[string]string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return nil
	}

	fields := make(map[string]string, len(valErrors))

	for _, valErr := range valErrors {
		if _, exists := fields[valErr.Field()]; exists {
			continue
		}

		fields[valErr.Field()] = fieldMessage(valErr)
	}

	return fields
}
