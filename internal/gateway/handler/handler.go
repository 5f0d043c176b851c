// Package handler implements the HTTP handlers of the gateway.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/mongogate/internal/model"
	"github.com/kart-io/mongogate/internal/pkg/httputils"
	"github.com/kart-io/mongogate/pkg/auth"
	"github.com/kart-io/mongogate/pkg/errors"
)

// identity extracts the verified caller from the request context. Handlers
// behind the auth middleware call this first; a missing identity aborts
// the request with Unauthenticated.
func identity(c *gin.Context) (*model.Identity, bool) {
	id := model.IdentityFromClaims(auth.ClaimsFromContext(c.Request.Context()))
	if id == nil {
		httputils.WriteError(c, errors.ErrUnauthorized)
		return nil, false
	}
	return id, true
}

// bindJSON binds the request body and folds binding failures into the
// invalid-parameter error. Connection strings from the body are never
// echoed back in error messages.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		httputils.WriteError(c, errors.ErrInvalidParam.WithCause(err))
		return false
	}
	return true
}
