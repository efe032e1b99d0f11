package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/ucsbapi/internal/app/models/dto"
	"github.com/yigit/ucsbapi/internal/pkg/apperrors"
	"github.com/yigit/ucsbapi/internal/pkg/logger"
)

// HandleAPIError writes the error response for err and aborts the request
func HandleAPIError(c *gin.Context, err error) {
	status, response := translateError(err)

	if status >= http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestId", c.GetString(RequestIDKey)).
			Msg("Request failed")
	}

	c.AbortWithStatusJSON(status, response)
}

func translateError(err error) (int, *dto.ErrorResponse) {
	var notFound *apperrors.EntityNotFoundError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, dto.NewErrorResponse(dto.ErrorTypeEntityNotFound, notFound.Error())
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorResponse(dto.ErrorTypeEntityNotFound, messageOf(err, "Resource not found"))
	case errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrTokenNotFound),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusForbidden, dto.NewErrorResponse(dto.ErrorTypeAccessDenied, messageOf(err, "Access is denied"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		response := dto.NewErrorResponse(dto.ErrorTypeValidation, messageOf(err, "Validation failed"))
		if details := detailsOf(err); details != nil {
			response = response.WithDetails(details)
		}
		return http.StatusBadRequest, response
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict, dto.NewErrorResponse(dto.ErrorTypeConflict, messageOf(err, "Resource already exists"))
	default:
		return http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorTypeInternal, "Internal server error")
	}
}

// messageOf returns the caller-facing message carried by a CustomError
func messageOf(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}

func detailsOf(err error) map[string]interface{} {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && len(custom.Details) > 0 {
		return custom.Details
	}
	return nil
}
