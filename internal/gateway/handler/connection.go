package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/mongogate/internal/gateway/biz"
	"github.com/kart-io/mongogate/internal/model"
	"github.com/kart-io/mongogate/internal/pkg/httputils"
)

// ConnectionHandler serves the saved-connection registry.
type ConnectionHandler struct {
	b biz.ConnectionBiz
}

// NewConnectionHandler creates a ConnectionHandler.
func NewConnectionHandler(b biz.ConnectionBiz) *ConnectionHandler {
	return &ConnectionHandler{b: b}
}

// Save handles POST /v1/connections.
func (h *ConnectionHandler) Save(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var req model.SaveConnectionRequest
	if !bindJSON(c, &req) {
		return
	}

	conn, err := h.b.Register(c.Request.Context(), id.UserID, &req)
	if err != nil {
		httputils.WriteError(c, err)
		return
	}
	httputils.WriteCreated(c, conn)
}

// List handles GET /v1/connections.
func (h *ConnectionHandler) List(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	conns, err := h.b.List(c.Request.Context(), id.UserID)
	httputils.WriteResponse(c, conns, err)
}

// Remove handles DELETE /v1/connections. The target is named in the body
// because connection strings do not survive as path parameters.
func (h *ConnectionHandler) Remove(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var req model.RemoveConnectionRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.b.Remove(c.Request.Context(), id.UserID, req.ConnectionString); err != nil {
		httputils.WriteError(c, err)
		return
	}
	httputils.WriteResponse(c, gin.H{"deleted": true}, nil)
}
