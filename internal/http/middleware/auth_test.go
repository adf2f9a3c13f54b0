package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-service/internal/apierror"
	"freight-service/internal/auth"
	"freight-service/internal/model"
)

const testSecret = "test-secret"

func protectedRouter(parser TokenParser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", Auth(parser), func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, principal.UserID.String())
	})
	return r
}

func call(r http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthRejectsBadHeaders(t *testing.T) {
	r := protectedRouter(auth.NewParser(testSecret))
	forged, err := auth.NewIssuer("other-secret", time.Hour).Issue(uuid.New())
	require.NoError(t, err)

	cases := map[string]string{
		"missing":    "",
		"not bearer": "Basic abc",
		"no token":   "Bearer ",
		"garbage":    "Bearer not.a.token",
		"forged":     "Bearer " + forged,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			rec := call(r, header)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body apierror.Envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "/private", body.Path)
		})
	}
}

func TestAuthExpiredTokenIsUnauthorized(t *testing.T) {
	r := protectedRouter(auth.NewParser(testSecret))
	expired, err := auth.NewIssuer(testSecret, -time.Minute).Issue(uuid.New())
	require.NoError(t, err)

	rec := call(r, "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthSetsPrincipal(t *testing.T) {
	r := protectedRouter(auth.NewParser(testSecret))
	userID := uuid.New()
	token, err := auth.NewIssuer(testSecret, time.Hour).Issue(userID)
	require.NoError(t, err)

	rec := call(r, "bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())
}

type checkerFunc func(model.Principal) error

func (f checkerFunc) RequireManager(_ context.Context, p model.Principal) error {
	return f(p)
}

func TestRequireManager(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := uuid.New()
	checker := checkerFunc(func(p model.Principal) error {
		if p.UserID != manager {
			return assert.AnError
		}
		return nil
	})
	onError := func(c *gin.Context, err error) {
		apierror.Abort(c, http.StatusForbidden, err.Error())
	}

	issuer := auth.NewIssuer(testSecret, time.Hour)
	r := gin.New()
	r.GET("/private", Auth(auth.NewParser(testSecret)), RequireManager(checker, onError), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	token, err := issuer.Issue(manager)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, call(r, "Bearer "+token).Code)

	token, err = issuer.Issue(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, call(r, "Bearer "+token).Code)
}
