package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a handler panic into a 500 with the INTERNAL code. The panic
// value is also stored under ErrorKey so RequestLogger reports it.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			msg := fmt.Sprintf("panic: %v", rec)
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.String("request_id", c.GetString(RequestIDKey)),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.String("error", msg),
				logger.String("stack", string(debug.Stack())),
			)

			c.Set(ErrorKey, msg)
			abort(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
		}()

		c.Next()
	}
}

func abort(c *ginext.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, ginext.H{"error": msg, "code": code})
}
