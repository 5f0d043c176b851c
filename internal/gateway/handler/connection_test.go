package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/mongogate/internal/gateway/biz"
	"github.com/kart-io/mongogate/internal/model"
	"github.com/kart-io/mongogate/pkg/auth"
	"github.com/kart-io/mongogate/pkg/errors"
	"github.com/kart-io/mongogate/pkg/middleware"
)

type fakeConnectionBiz struct {
	registerErr error
	removeErr   error
	conns       []*model.SavedConnection
	lastOwner   string
}

var _ biz.ConnectionBiz = (*fakeConnectionBiz)(nil)

func (f *fakeConnectionBiz) Register(_ context.Context, ownerID string, req *model.SaveConnectionRequest) (*model.SavedConnection, error) {
	f.lastOwner = ownerID
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &model.SavedConnection{
		OwnerID:          ownerID,
		Label:            req.Label,
		ConnectionString: strings.TrimSpace(req.ConnectionString),
	}, nil
}

func (f *fakeConnectionBiz) List(_ context.Context, ownerID string) ([]*model.SavedConnection, error) {
	f.lastOwner = ownerID
	return f.conns, nil
}

func (f *fakeConnectionBiz) Remove(_ context.Context, ownerID, _ string) error {
	f.lastOwner = ownerID
	return f.removeErr
}

type fakeAuthn struct{ claims *auth.Claims }

func (f *fakeAuthn) Sign(context.Context, string, ...auth.SignOption) (auth.Token, error) {
	return nil, nil
}
func (f *fakeAuthn) Verify(context.Context, string) (*auth.Claims, error) {
	if f.claims == nil {
		return nil, errors.ErrInvalidToken
	}
	return f.claims, nil
}
func (f *fakeAuthn) Revoke(context.Context, string) error { return nil }

func newConnectionRouter(b biz.ConnectionBiz, authn auth.Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	RegisterValidations()

	engine := gin.New()
	h := NewConnectionHandler(b)
	group := engine.Group("/v1", middleware.Auth(authn))
	group.POST("/connections", h.Save)
	group.GET("/connections", h.List)
	group.DELETE("/connections", h.Remove)
	return engine
}

func doRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestConnectionHandler_Save(t *testing.T) {
	fb := &fakeConnectionBiz{}
	engine := newConnectionRouter(fb, &fakeAuthn{claims: &auth.Claims{Subject: "user-123"}})

	// 保存成功返回 201
	w := doRequest(engine, http.MethodPost, "/v1/connections",
		`{"connection_string":"mongodb://localhost:27017","label":"local"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "user-123", fb.lastOwner)
	assert.Contains(t, w.Body.String(), "mongodb://localhost:27017")

	// 缺少连接串返回 400
	w = doRequest(engine, http.MethodPost, "/v1/connections", `{"label":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 连接串不校验形状，任意非空值返回 201
	w = doRequest(engine, http.MethodPost, "/v1/connections",
		`{"connection_string":"some-opaque-endpoint"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestConnectionHandler_Save_Conflict(t *testing.T) {
	fb := &fakeConnectionBiz{registerErr: errors.ErrConnectionExists}
	engine := newConnectionRouter(fb, &fakeAuthn{claims: &auth.Claims{Subject: "user-123"}})

	w := doRequest(engine, http.MethodPost, "/v1/connections",
		`{"connection_string":"mongodb://localhost:27017"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Connection already saved")
	// 错误响应不回显连接串
	assert.NotContains(t, w.Body.String(), "localhost:27017")
}

func TestConnectionHandler_Unauthenticated(t *testing.T) {
	fb := &fakeConnectionBiz{}
	engine := newConnectionRouter(fb, &fakeAuthn{})

	w := doRequest(engine, http.MethodGet, "/v1/connections", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, fb.lastOwner)
}

func TestConnectionHandler_Remove(t *testing.T) {
	fb := &fakeConnectionBiz{}
	engine := newConnectionRouter(fb, &fakeAuthn{claims: &auth.Claims{Subject: "user-123"}})

	w := doRequest(engine, http.MethodDelete, "/v1/connections",
		`{"connection_string":"mongodb://localhost:27017"}`)
	require.Equal(t, http.StatusOK, w.Code)

	fb.removeErr = errors.ErrConnectionNotFound
	w = doRequest(engine, http.MethodDelete, "/v1/connections",
		`{"connection_string":"mongodb://localhost:27017"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
