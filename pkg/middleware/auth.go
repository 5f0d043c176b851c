// Package middleware provides the gin middleware stack for MongoGate.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kart-io/mongogate/pkg/auth"
	"github.com/kart-io/mongogate/pkg/errors"
	"github.com/kart-io/mongogate/pkg/response"
)

// Auth returns a gin middleware that verifies a Bearer token and injects
// the resulting claims into the request context.
//
// Downstream handlers read the identity via auth.ClaimsFromContext on
// c.Request.Context(); they never see the raw token.
func Auth(authn auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			abortWithError(c, errors.ErrUnauthorized.WithMessage("missing bearer token"))
			return
		}

		claims, err := authn.Verify(c.Request.Context(), token)
		if err != nil {
			abortWithError(c, errors.FromError(err))
			return
		}

		ctx := auth.InjectAuth(c.Request.Context(), claims, token)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// extractBearerToken pulls the token from the Authorization header.
func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortWithError(c *gin.Context, e *errors.Errno) {
	resp := response.Err(e).WithRequestID(RequestIDFromContext(c))
	defer response.Release(resp)
	c.AbortWithStatusJSON(resp.HTTPStatus(), resp)
}
