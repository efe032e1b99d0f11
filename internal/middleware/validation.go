package middleware

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/ucsbapi/internal/app/models/dto"
	"github.com/yigit/ucsbapi/internal/pkg/apperrors"
)

func init() {
	// report request parameter names instead of Go field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(parameterName)
	}
}

func parameterName(field reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// BindingError converts a gin binding failure into a validation error. Validator
// failures are listed per parameter in the "fields" detail.
func BindingError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperrors.NewValidationError(err.Error())
	}

	fields := make([]dto.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, dto.FieldError{
			Field:   fe.Field(),
			Message: formatValidationError(fe),
		})
	}

	return (&apperrors.CustomError{
		Err:     apperrors.ErrValidationFailed,
		Message: fields[0].Message,
	}).WithDetails(map[string]interface{}{"fields": fields})
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "url":
		return e.Field() + " must be a valid URL"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
