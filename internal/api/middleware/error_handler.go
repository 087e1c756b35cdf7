// Package middleware provides HTTP middleware for the heatwatch API.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"heatwatch.io/heatwatch/internal/domain"
	apperrors "heatwatch.io/heatwatch/internal/pkg/errors"
	"heatwatch.io/heatwatch/internal/pkg/logger"
)

// ErrorHandler is a Gin middleware that provides centralized error handling.
// It captures errors added via c.Error() and returns a consistent JSON response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		// Structured application errors carry their own status.
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			logger.Warn("Request error",
				zap.String("code", appErr.Code),
				zap.String("message", appErr.Message),
				zap.Int("status", appErr.HTTPStatus),
				zap.Error(appErr.Err),
			)
			c.JSON(appErr.HTTPStatus, gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			})
			return
		}

		// Pipeline errors surface at the ingestion endpoint: invalid
		// input is the caller's fault, anything else is unavailability.
		var pipeErr *apperrors.PipelineError
		if errors.As(err, &pipeErr) {
			status := http.StatusServiceUnavailable
			code := apperrors.CodeStorageUnavailable
			if pipeErr.Reason == domain.ReasonInvalidEvent {
				status = http.StatusBadRequest
				code = apperrors.CodeInvalidEvent
			}
			logger.Warn("Request pipeline error",
				zap.String("reason", pipeErr.Reason),
				zap.Int("status", status),
				zap.Error(pipeErr.Err),
			)
			c.JSON(status, gin.H{
				"code":    code,
				"message": pipeErr.Error(),
			})
			return
		}

		logger.Error("Unhandled request error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "INTERNAL_ERROR",
			"message": "An internal error occurred",
		})
	}
}
