package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/kart-io/mongogate/pkg/errors"
	"github.com/kart-io/mongogate/pkg/response"
)

// Recovery returns a gin middleware that converts panics into a generic
// internal error response. Panic details are logged, never returned.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorw("panic recovered",
					"error", r,
					"path", c.Request.URL.Path,
					"request_id", RequestIDFromContext(c),
					"stack", string(debug.Stack()),
				)
				resp := response.Err(errors.ErrInternal).WithRequestID(RequestIDFromContext(c))
				defer response.Release(resp)
				c.AbortWithStatusJSON(resp.HTTPStatus(), resp)
			}
		}()
		c.Next()
	}
}
