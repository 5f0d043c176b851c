// Package httputils bridges the response envelope onto gin.
package httputils

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/logger"

	"github.com/kart-io/mongogate/pkg/errors"
	"github.com/kart-io/mongogate/pkg/middleware"
	"github.com/kart-io/mongogate/pkg/response"
)

// WriteResponse writes data or an error as the unified envelope. Raw
// errors are folded into the stable taxonomy before serialization; the
// original cause is logged server-side only.
func WriteResponse(c *gin.Context, data interface{}, err error) {
	if err != nil {
		WriteError(c, err)
		return
	}
	write(c, response.Success(data))
}

// WriteCreated writes a creation response (HTTP 201).
func WriteCreated(c *gin.Context, data interface{}) {
	write(c, response.Created(data))
}

// WritePage writes a paginated response.
func WritePage(c *gin.Context, list interface{}, total int64, page, pageSize int) {
	write(c, response.Page(list, total, page, pageSize))
}

// WriteError writes an error response.
func WriteError(c *gin.Context, err error) {
	e := errors.FromError(err)
	if cause := e.Unwrap(); cause != nil {
		logger.Errorw("请求处理失败", "code", e.Code, "error", cause,
			"path", c.FullPath(), "request_id", middleware.RequestIDFromContext(c))
	}
	write(c, response.Err(e))
}

func write(c *gin.Context, r *response.Response) {
	defer response.Release(r)
	r.WithRequestID(middleware.RequestIDFromContext(c))
	c.JSON(r.HTTPStatus(), r)
}
