package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/traittune/sharing/internal/api/shared/errors"
	"github.com/traittune/sharing/internal/domain"
	"github.com/traittune/sharing/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondForbidden responds with a forbidden error
func respondForbidden(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusForbidden, apierrors.NewForbiddenError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondInternalError responds with an internal server error and logs the cause
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.ErrorCtx(c.Request.Context(), err, fields...)
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// respondError maps an error from the executor to a response
func respondError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError
	var invalidLinkErr *domain.InvalidLinkError

	switch {
	case errors.As(err, &apiErr):
		c.JSON(statusForCode(apiErr.Code), apiErr)
	case errors.As(err, &validationErr):
		respondValidationError(c, validationErr.Error())
	case errors.As(err, &notFoundErr):
		respondNotFound(c, message, notFoundErr.Error())
	case errors.As(err, &invalidLinkErr):
		c.JSON(http.StatusBadRequest, apierrors.NewInvalidLinkError(invalidLinkErr.Reason))
	default:
		respondInternalError(c, err, message, zap.String("path", c.Request.URL.Path))
	}
}

func statusForCode(code apierrors.ErrorCode) int {
	switch code {
	case apierrors.ErrCodeBadRequest, apierrors.ErrCodeInvalidLink:
		return http.StatusBadRequest
	case apierrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	case apierrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apierrors.ErrCodeForbidden:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
