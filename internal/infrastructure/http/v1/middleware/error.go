package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/core/apperror"
	"github.com/Maaaaaik/Odoo-Bridge-Unificado/pkg/logger"
)

// ErrorHandler middleware transforms errors into responses. Error bodies are
// plain text: callers distinguish failure classes by status code, not body
// shape. Internal causes are logged, never exposed.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// Get last error
		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		if appErr, ok := apperror.AsAppError(err); ok {
			if appErr.Err != nil {
				logger.Error(c.Request.Context(), "request error",
					"code", appErr.Code,
					"cause", appErr.Err,
				)
			}
			c.String(appErr.HTTPStatus, appErr.Message)
			return
		}

		// Unknown error - log and return generic message
		logger.Error(c.Request.Context(), "unhandled error",
			"error", err,
		)
		c.String(http.StatusInternalServerError, "internal server error")
	}
}
