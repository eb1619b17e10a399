package utils

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Validate performs validation on a struct.
func Validate(s interface{}) error {
	validate := validator.New()
	return validate.Struct(s)
}

// ValidationErrorMessages turns validation errors into per-field messages.
func ValidationErrorMessages(err error) []string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		messages := make([]string, 0, len(errs))
		for _, e := range errs {
			messages = append(messages, fmt.Sprintf("field '%s' failed on the '%s' rule", e.Field(), e.Tag()))
		}
		return messages
	}
	return []string{err.Error()}
}

// BindAndValidate binds the request body to a struct and validates it.
// If validation fails, it sends a BadRequest response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		ErrorWithDetails(c, 400, "Invalid request payload", ValidationErrorMessages(err))
		return false
	}
	if err := Validate(obj); err != nil {
		ErrorWithDetails(c, 400, "Validation failed", ValidationErrorMessages(err))
		return false
	}
	return true
}
