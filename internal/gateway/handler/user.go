package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/mongogate/internal/gateway/biz"
	"github.com/kart-io/mongogate/internal/pkg/httputils"
)

// UserHandler serves account queries.
type UserHandler struct {
	b biz.UserBiz
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(b biz.UserBiz) *UserHandler {
	return &UserHandler{b: b}
}

// Me handles GET /auth/me.
func (h *UserHandler) Me(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	profile, err := h.b.Get(c.Request.Context(), id.UserID)
	httputils.WriteResponse(c, profile, err)
}
