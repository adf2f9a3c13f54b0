package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"freight-service/internal/apierror"
	"freight-service/internal/auth"
	"freight-service/internal/model"
)

const (
	principalContextKey = "principal"
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer"
)

// TokenParser verifies a bearer token.
type TokenParser interface {
	Parse(raw string) (*auth.Claims, error)
}

// Auth requires a valid bearer token. A malformed or forged token is a bad
// request; only an expired one is answered with 401.
func Auth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawHeader := c.GetHeader(authorizationHeader)
		if rawHeader == "" {
			apierror.Abort(c, http.StatusBadRequest, "authorization header missing")
			return
		}

		parts := strings.SplitN(rawHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], bearerPrefix) || strings.TrimSpace(parts[1]) == "" {
			apierror.Abort(c, http.StatusBadRequest, "invalid authorization header")
			return
		}

		claims, err := parser.Parse(strings.TrimSpace(parts[1]))
		switch {
		case errors.Is(err, auth.ErrTokenExpired):
			apierror.Abort(c, http.StatusUnauthorized, "token expired")
			return
		case err != nil:
			apierror.Abort(c, http.StatusBadRequest, "invalid token")
			return
		}

		c.Set(principalContextKey, model.Principal{UserID: claims.UserID})
		c.Next()
	}
}

func MustPrincipal(c *gin.Context) (model.Principal, bool) {
	value, exists := c.Get(principalContextKey)
	if !exists {
		return model.Principal{}, false
	}

	principal, ok := value.(model.Principal)
	if !ok {
		return model.Principal{}, false
	}

	return principal, true
}

// ManagerChecker decides whether the caller may use manager-only routes.
type ManagerChecker interface {
	RequireManager(ctx context.Context, principal model.Principal) error
}

// RequireManager runs after Auth. onError renders whatever the checker
// returned, so a missing user and a wrong role keep their own statuses.
func RequireManager(checker ManagerChecker, onError func(*gin.Context, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		if !ok {
			apierror.Abort(c, http.StatusUnauthorized, "missing principal")
			return
		}
		if err := checker.RequireManager(c.Request.Context(), principal); err != nil {
			onError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
