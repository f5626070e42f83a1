package middleware

import (
	"net/http"

	"facebook-auth/internal/logger"

	"github.com/gin-gonic/gin"
)

// Gin bridges an error-returning chain Handler into a Gin route
// handler. Errors that survive the chain are the host's problem:
// they are logged and answered with a plain 500, never rendered
// by the chain itself.
func Gin(h Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c.Writer, c.Request)
		if err == nil {
			return
		}

		logger.Error("unhandled request error", map[string]any{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"error":  err.Error(),
		})

		if !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "internal error",
			})
			return
		}
		c.Abort()
	}
}
