package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	domainerr "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// NewValidator creates the request validator shared by all handlers
func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// statusCode maps a domain error onto its HTTP status
func statusCode(err error) int {
	switch {
	case domainerr.IsInsufficientCreditsError(err):
		return http.StatusForbidden
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsUserLockedError(err), errors.Is(err, domainerr.ErrConstraintViolation):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage returns the client facing message of a domain error.
// Server errors are generic except transform failures, which carry the model's message.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domainerr.ErrTransformFailed):
		var transformErr *domainerr.TransformError
		if errors.As(err, &transformErr) && transformErr.Err != nil {
			return "Image processing failed: " + transformErr.Err.Error()
		}
		return "Image processing failed"
	case domainerr.IsRefundFailedError(err):
		return "Request failed and the credit refund is pending"
	case errors.Is(err, domainerr.ErrStorageFailed), errors.Is(err, domainerr.ErrIntegrityMismatch):
		return "Image storage failed"
	case statusCode(err) == http.StatusInternalServerError:
		return "Internal server error"
	default:
		return err.Error()
	}
}

// respondError logs a failed request and writes the error body
func respondError(c *gin.Context, logger coreport.Logger, message string, err error) {
	status := statusCode(err)
	fields := domainerr.LogFields(err)
	fields["path"] = c.FullPath()
	fields["status"] = status
	fields["request_id"] = middleware.GetRequestID(c)

	if status >= http.StatusInternalServerError {
		logger.Error(message, fields)
	} else {
		logger.Warn(message, fields)
	}

	c.JSON(status, dto.ErrorResponse{
		Code:      domainerr.ErrorCode(err),
		Message:   errorMessage(err),
		RequestID: middleware.GetRequestID(c),
	})
}

// respondInvalid writes a 400 for a request that failed binding or validation
func respondInvalid(c *gin.Context, logger coreport.Logger, err error) {
	logger.Warn("Invalid request", map[string]any{
		"path":       c.FullPath(),
		"error":      err.Error(),
		"request_id": middleware.GetRequestID(c),
	})
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:      domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message:   "Invalid request: " + validationMessage(err),
		RequestID: middleware.GetRequestID(c),
	})
}

// validationMessage flattens validator errors into one readable line
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
