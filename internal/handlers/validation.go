package handlers

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator builds a validator that reports field errors under their JSON
// names, matching the keys clients submit.
func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return validate
}

// validationMessages flattens validator errors into a field -> message map.
func validationMessages(err error) map[string]string {
	messages := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		messages["body"] = err.Error()
		return messages
	}
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages[e.Field()] = fmt.Sprintf("The %s field is required", e.Field())
		case "email":
			messages[e.Field()] = fmt.Sprintf("The %s field must be a valid email address", e.Field())
		case "gt":
			messages[e.Field()] = fmt.Sprintf("The %s field must be greater than %s", e.Field(), e.Param())
		case "gte":
			messages[e.Field()] = fmt.Sprintf("The %s field must be at least %s", e.Field(), e.Param())
		case "min":
			messages[e.Field()] = fmt.Sprintf("The %s field must not be empty", e.Field())
		case "oneof":
			messages[e.Field()] = fmt.Sprintf("The %s field must be one of: %s", e.Field(), e.Param())
		default:
			messages[e.Field()] = fmt.Sprintf("The %s field failed on the '%s' rule", e.Field(), e.Tag())
		}
	}
	return messages
}
