package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks struct fields against their validate tags and returns a
// field → failed-rule map, or nil when the value is valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		fields[err.Field()] = err.Tag()
	}
	return fields
}

// Details extracts a field → message map from a binding error, or nil when
// the error is not a validation failure.
func Details(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string)
	for _, fieldError := range validationErrors {
		fields[fieldError.Field()] = message(fieldError)
	}
	return fields
}

func message(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "is too short"
	default:
		return "is invalid"
	}
}
