package validator

import (
	stdErrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// FieldMessages converts a validation error into a field -> message map
// suitable for inline form errors. Non-validation errors yield a single
// "base" entry.
func FieldMessages(err error) map[string]string {
	if err == nil {
		return nil
	}

	messages := make(map[string]string)

	var verrs validator.ValidationErrors
	if !stdErrors.As(err, &verrs) {
		messages["base"] = err.Error()
		return messages
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			messages[field] = "não pode ficar em branco"
		case "oneof":
			messages[field] = fmt.Sprintf("deve ser um de: %s", fe.Param())
		case "min":
			messages[field] = fmt.Sprintf("deve ter no mínimo %s caracteres", fe.Param())
		case "max":
			messages[field] = fmt.Sprintf("deve ter no máximo %s caracteres", fe.Param())
		default:
			messages[field] = fmt.Sprintf("é inválido (%s)", fe.Tag())
		}
	}

	return messages
}
