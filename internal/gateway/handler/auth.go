package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/mongogate/internal/gateway/biz"
	"github.com/kart-io/mongogate/internal/model"
	"github.com/kart-io/mongogate/internal/pkg/httputils"
	"github.com/kart-io/mongogate/pkg/auth"
	"github.com/kart-io/mongogate/pkg/errors"
)

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	b biz.AuthBiz
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(b biz.AuthBiz) *AuthHandler {
	return &AuthHandler{b: b}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.b.Register(c.Request.Context(), &req)
	if err != nil {
		httputils.WriteError(c, err)
		return
	}
	httputils.WriteCreated(c, profile)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.b.Login(c.Request.Context(), &req)
	if err != nil {
		httputils.WriteError(c, err)
		return
	}
	httputils.WriteResponse(c, resp, nil)
}

// Logout handles POST /auth/logout. The token to revoke is the one that
// authenticated this request.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := auth.TokenFromContext(c.Request.Context())
	if token == "" {
		httputils.WriteError(c, errors.ErrUnauthorized)
		return
	}
	if err := h.b.Logout(c.Request.Context(), token); err != nil {
		httputils.WriteError(c, err)
		return
	}
	httputils.WriteResponse(c, gin.H{"message": "logged out"}, nil)
}
