// Package middleware provides HTTP middleware components.
package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/core/apperror"
	appctx "github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/core/context"
	"github.com/Maaaaaik/Odoo-Bridge-Unificado/pkg/logger"
)

// Recovery middleware recovers from panics and returns 500 error.
// Logs stack trace but never exposes internal details to client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					"error", err,
					"request_id", appctx.GetRequestID(c.Request.Context()),
					"stack", string(debug.Stack()),
				)

				_ = c.Error(apperror.NewInternal(fmt.Errorf("panic: %v", err)))

				// ErrorHandler sits further down the chain and has already
				// been unwound by the panic, so the response is written here.
				if !c.Writer.Written() {
					c.String(http.StatusInternalServerError, "internal server error")
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
