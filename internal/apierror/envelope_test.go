package apierror

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/banks/x", nil)

	Abort(c, http.StatusConflict, "bank name already exists")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusConflict, body.Status)
	assert.Equal(t, "Conflict", body.Error)
	assert.Equal(t, "/api/v1/banks/x", body.Path)
	assert.Equal(t, "bank name already exists", body.Message)
	_, err := time.Parse(time.RFC3339, body.Timestamp)
	assert.NoError(t, err)
}
