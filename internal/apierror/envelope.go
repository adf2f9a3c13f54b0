package apierror

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope is the body of every error response.
type Envelope struct {
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Path      string `json:"path"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func New(status int, path, message string) Envelope {
	return Envelope{
		Status:    status,
		Error:     http.StatusText(status),
		Path:      path,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Abort writes the envelope and stops the handler chain.
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, New(status, c.Request.URL.Path, message))
}
