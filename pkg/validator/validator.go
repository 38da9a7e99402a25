package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds a validator that reports field names as they appear
// in the JSON payload, so error maps match what the client actually sent.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors flattens validator errors into a field→message map.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	messages := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return messages
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			messages[field] = field + " is required"
		case "email":
			messages[field] = field + " must be a valid email address"
		case "min":
			messages[field] = field + " must be at least " + e.Param() + " characters"
		case "max":
			messages[field] = field + " must be at most " + e.Param() + " characters"
		case "gte":
			messages[field] = field + " must be greater than or equal to " + e.Param()
		case "lte":
			messages[field] = field + " must be less than or equal to " + e.Param()
		case "oneof":
			messages[field] = field + " must be one of: " + e.Param()
		default:
			messages[field] = field + " is invalid"
		}
	}

	return messages
}
