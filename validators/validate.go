package validators

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CheckStruct runs struct-tag validation and flattens the result into a
// field -> message map suitable for ValidationErrorResponse.
func CheckStruct(s interface{}) map[string]string {
	errors := make(map[string]string)

	err := validate.Struct(s)
	if err == nil {
		return errors
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errors[field] = fmt.Sprintf("%s is required!", e.Field())
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s characters long!", e.Field(), e.Param())
		case "max":
			errors[field] = fmt.Sprintf("%s must be at most %s characters long!", e.Field(), e.Param())
		case "gte":
			errors[field] = fmt.Sprintf("%s must be %s or greater!", e.Field(), e.Param())
		case "lte":
			errors[field] = fmt.Sprintf("%s must be %s or less!", e.Field(), e.Param())
		case "oneof":
			errors[field] = fmt.Sprintf("%s must be one of: %s!", e.Field(), e.Param())
		case "email":
			errors[field] = fmt.Sprintf("%s must be a valid email address!", e.Field())
		default:
			errors[field] = fmt.Sprintf("%s is invalid!", e.Field())
		}
	}

	return errors
}
