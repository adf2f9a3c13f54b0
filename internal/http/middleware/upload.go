package middleware

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"

	"freight-service/internal/apierror"
)

const stagedContextKey = "stagedFiles"

// Uploads stages multipart documents on local disk for the services to push
// to the image store. Staged files are removed once the handler returns.
type Uploads struct {
	dir      string
	maxBytes int64
	log      zerolog.Logger
}

func NewUploads(dir string, maxBytes int64, log zerolog.Logger) (*Uploads, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Uploads{dir: dir, maxBytes: maxBytes, log: log}, nil
}

// Stage accepts at most one PDF per named field. Requests that are not
// multipart pass through with nothing staged.
func (u *Uploads) Stage(fields ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		allowed[f] = struct{}{}
	}
	// room for every file plus the text fields
	bodyLimit := u.maxBytes*int64(len(fields)) + 1<<20

	return func(c *gin.Context) {
		if !isMultipart(c.Request) {
			c.Next()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, bodyLimit)
		if err := c.Request.ParseMultipartForm(bodyLimit); err != nil {
			apierror.Abort(c, http.StatusBadRequest, "unsupported set of files")
			return
		}
		defer func() {
			_ = c.Request.MultipartForm.RemoveAll()
		}()

		staged := map[string]string{}
		defer u.cleanup(staged)

		for field, headers := range c.Request.MultipartForm.File {
			if _, ok := allowed[field]; !ok || len(headers) != 1 {
				apierror.Abort(c, http.StatusBadRequest, fmt.Sprintf("accepts up to %d files named %s", len(fields), strings.Join(fields, ", ")))
				return
			}
			if headers[0].Size > u.maxBytes {
				apierror.Abort(c, http.StatusBadRequest, fmt.Sprintf("%s exceeds %d bytes", field, u.maxBytes))
				return
			}
			if !declaresPDF(headers[0]) {
				apierror.Abort(c, http.StatusUnsupportedMediaType, field+" must be a pdf file")
				return
			}

			local, err := u.save(headers[0])
			if err != nil {
				u.log.Error().Err(err).Str("field", field).Msg("failed to stage upload")
				apierror.Abort(c, http.StatusInternalServerError, "failed to store upload")
				return
			}
			staged[field] = local

			if !isPDF(local) {
				apierror.Abort(c, http.StatusUnsupportedMediaType, field+" must be a pdf file")
				return
			}
		}

		c.Set(stagedContextKey, staged)
		c.Next()
	}
}

// Staged returns the field to local path map set by Stage.
func Staged(c *gin.Context) map[string]string {
	if v, ok := c.Get(stagedContextKey); ok {
		if staged, ok := v.(map[string]string); ok {
			return staged
		}
	}
	return map[string]string{}
}

func (u *Uploads) save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	local := filepath.Join(u.dir, uuid.NewString()+".pdf")
	dst, err := os.Create(local)
	if err != nil {
		return "", err
	}
	if _, err := dst.ReadFrom(src); err != nil {
		_ = dst.Close()
		_ = os.Remove(local)
		return "", err
	}
	return local, dst.Close()
}

func (u *Uploads) cleanup(staged map[string]string) {
	for field, local := range staged {
		if err := os.Remove(local); err != nil && !os.IsNotExist(err) {
			u.log.Warn().Err(err).Str("field", field).Str("path", local).Msg("failed to remove staged upload")
		}
	}
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

func declaresPDF(fh *multipart.FileHeader) bool {
	if strings.ToLower(filepath.Ext(fh.Filename)) != ".pdf" {
		return false
	}
	return strings.Contains(fh.Header.Get("Content-Type"), "pdf")
}

// isPDF checks that the staged file parses as a PDF document, not only that
// it was named like one.
func isPDF(local string) (ok bool) {
	defer func() {
		// the parser panics on some malformed input
		if recover() != nil {
			ok = false
		}
	}()

	f, err := os.Open(local)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}
	r, err := pdf.NewReader(f, info.Size())
	return err == nil && r.NumPage() > 0
}
