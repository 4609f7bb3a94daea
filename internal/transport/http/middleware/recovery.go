package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "photo-gallery-api/internal/transport/http/response"
)

// SimpleRecovery turns a panic into the standard error envelope. The
// admin engine uses ginzap's recovery instead, which also logs the stack.
func SimpleRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				if !c.Writer.Written() {
					c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeServerError, "internal error"))
				} else {
					c.Abort()
				}
			}
		}()
		c.Next()
	}
}
