package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"gt":       "{field} must be greater than {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"min":      "{field} must be greater than or equal to {param}",
	"max":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"email":    "{field} must be a valid email address",
	"uuid":     "{field} must be a valid UUID",
	"date":     "{field} must be a date in YYYY-MM-DD format",
	"slot":     "{field} must be a time in HH:MM format",
}

// message renders the first field error that has a template. Errors without one keep
// the validator's own text. field names values validated outside a struct.
func message(err error, field string) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fieldErr := range fieldErrors {
		template, ok := messages[fieldErr.Tag()]
		if !ok {
			continue
		}

		name := fieldErr.Field()
		if name == "" {
			name = field
		}

		return strings.NewReplacer("{field}", name, "{param}", fieldErr.Param()).Replace(template)
	}

	return fieldErrors.Error()
}
