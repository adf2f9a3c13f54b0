package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"freight-service/internal/apierror"
	"freight-service/internal/auth"
	"freight-service/internal/http/middleware"
	"freight-service/internal/metrics"
	"freight-service/internal/model"
	"freight-service/internal/repository"
	"freight-service/internal/service"
	"freight-service/internal/validation"
)

const testSecret = "handler-test-secret"

// transports is an in-memory TransportStore. drivers marks transports that
// still have a driver.
type transports struct {
	rows    map[uuid.UUID]model.Transport
	drivers map[uuid.UUID]bool
}

func (s *transports) Create(_ context.Context, t *model.Transport) error {
	s.rows[t.ID] = *t
	return nil
}

func (s *transports) GetByID(_ context.Context, id uuid.UUID) (*model.Transport, error) {
	t, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (s *transports) List(context.Context) ([]model.Transport, error) {
	out := []model.Transport{}
	for _, t := range s.rows {
		out = append(out, t)
	}
	return out, nil
}

func (s *transports) Update(_ context.Context, t *model.Transport) error {
	s.rows[t.ID] = *t
	return nil
}

func (s *transports) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.rows, id)
	return nil
}

func (s *transports) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := s.rows[id]
	return ok, nil
}

func (s *transports) HasDependents(_ context.Context, id uuid.UUID) (bool, error) {
	return s.drivers[id], nil
}

func (s *transports) Taken(_ context.Context, except uuid.UUID, keys ...repository.Key) (bool, error) {
	for id, t := range s.rows {
		if id != except && keys[0].Column == "ruc" && t.Ruc == keys[0].Value {
			return true, nil
		}
	}
	return false, nil
}

func (s *transports) ListCompressed(context.Context) ([]model.TransportCompressed, error) {
	return []model.TransportCompressed{}, nil
}

func (s *transports) Dropdown(context.Context) ([]model.DropDownRow, error) {
	return []model.DropDownRow{}, nil
}

// users serves the two accounts the tests sign in with.
type users struct {
	byID  map[uuid.UUID]model.User
	roles map[uuid.UUID]model.Role
}

func (s *users) Create(context.Context, *model.User) error { return nil }
func (s *users) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}
func (s *users) List(context.Context) ([]model.User, error)              { return nil, nil }
func (s *users) Update(context.Context, *model.User) error               { return nil }
func (s *users) Delete(context.Context, uuid.UUID) error                 { return nil }
func (s *users) ExistsByID(context.Context, uuid.UUID) (bool, error)     { return true, nil }
func (s *users) HasDependents(context.Context, uuid.UUID) (bool, error)  { return false, nil }
func (s *users) UpdatePassword(context.Context, uuid.UUID, string) error { return nil }
func (s *users) RoleExists(context.Context, uuid.UUID) (bool, error)     { return true, nil }
func (s *users) Taken(context.Context, uuid.UUID, ...repository.Key) (bool, error) {
	return false, nil
}
func (s *users) ReplacePassword(context.Context, uuid.UUID, func(string) (string, error)) error {
	return nil
}

func (s *users) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *users) GetWithRole(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	role := s.roles[u.RoleID]
	u.Role = &role
	return u, nil
}

func (s *users) ListViews(context.Context) ([]model.UserView, error) {
	return []model.UserView{}, nil
}

func (s *users) GetView(_ context.Context, id uuid.UUID) (*model.UserView, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.UserView{ID: u.ID.String(), Name: u.Name, Email: u.Email}, nil
}

type fixture struct {
	router     *gin.Engine
	services   Services
	uploads    *middleware.Uploads
	auth       gin.HandlerFunc
	transports *transports
	manager    string
	clerk      string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := auth.HashPassword("Clave#2024")
	require.NoError(t, err)
	managerRole := model.Role{ID: uuid.New(), Name: "Gerente General"}
	clerkRole := model.Role{ID: uuid.New(), Name: "Asistente"}
	managerID, clerkID := uuid.New(), uuid.New()
	userStore := &users{
		byID: map[uuid.UUID]model.User{
			managerID: {ID: managerID, Name: "Rosa", Email: "rosa@freight.pe", Password: hash, RoleID: managerRole.ID},
			clerkID:   {ID: clerkID, Name: "Luis", Email: "luis@freight.pe", Password: hash, RoleID: clerkRole.ID},
		},
		roles: map[uuid.UUID]model.Role{managerRole.ID: managerRole, clerkRole.ID: clerkRole},
	}
	transportStore := &transports{rows: map[uuid.UUID]model.Transport{}, drivers: map[uuid.UUID]bool{}}

	issuer := auth.NewIssuer(testSecret, time.Hour)
	uploads, err := middleware.NewUploads(t.TempDir(), 1_000_000, zerolog.Nop())
	require.NoError(t, err)

	services := Services{
		Users:      service.NewUserService(userStore, issuer, zerolog.Nop()),
		Transports: service.NewTransportService(transportStore, nil),
	}
	authMiddleware := middleware.Auth(auth.NewParser(testSecret))
	handler := NewHandler(services, uploads, zerolog.Nop())
	router := NewRouter(handler, authMiddleware, metrics.New(), zerolog.Nop(), "test")

	managerToken, err := issuer.Issue(managerID)
	require.NoError(t, err)
	clerkToken, err := issuer.Issue(clerkID)
	require.NoError(t, err)

	return &fixture{
		router:     router,
		services:   services,
		uploads:    uploads,
		auth:       authMiddleware,
		transports: transportStore,
		manager:    managerToken,
		clerk:      clerkToken,
	}
}

func (f *fixture) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func envelope(t *testing.T, rec *httptest.ResponseRecorder) apierror.Envelope {
	t.Helper()
	var body apierror.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestTransportScenario(t *testing.T) {
	f := newFixture(t)
	id := uuid.NewString()
	transport := map[string]string{
		"id":        id,
		"ruc":       "20123456789",
		"name":      "Transportes Lima",
		"address":   "Av. Arequipa 123",
		"telephone": "01-234-5678",
	}

	rec := f.do(http.MethodPost, "/api/v1/transports", f.clerk, transport)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/v1/transports/expanded/"+id, f.clerk, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got model.Transport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "20123456789", got.Ruc)
	assert.Equal(t, "Transportes Lima", got.Name)

	again := map[string]string{}
	for k, v := range transport {
		again[k] = v
	}
	again["id"] = uuid.NewString()
	rec = f.do(http.MethodPost, "/api/v1/transports", f.clerk, again)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "/api/v1/transports", envelope(t, rec).Path)

	f.transports.drivers[uuid.MustParse(id)] = true
	rec = f.do(http.MethodDelete, "/api/v1/transports/"+id, f.clerk, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	f.transports.drivers[uuid.MustParse(id)] = false
	rec = f.do(http.MethodDelete, "/api/v1/transports/"+id, f.clerk, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/transports/expanded/"+id, f.clerk, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTransportValidation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/transports", f.clerk, map[string]string{"id": uuid.NewString(), "ruc": "123"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/transports/expanded/not-a-uuid", f.clerk, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transports", strings.NewReader("{"))
	req.Header.Set("Authorization", "Bearer "+f.clerk)
	out := httptest.NewRecorder()
	f.router.ServeHTTP(out, req)
	assert.Equal(t, http.StatusBadRequest, out.Code)
}

func TestSigninAndManagerRoutes(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/auth", "", map[string]string{"email": "rosa@freight.pe", "password": "wrong"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/auth", "", map[string]string{"email": "nobody@freight.pe", "password": "Clave#2024"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/auth", "", map[string]string{"email": "rosa@freight.pe", "password": "Clave#2024"})
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/users", body.Token, nil).Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/v1/users", f.clerk, nil).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/users/current", f.clerk, nil).Code)
}

func TestRouterFallbacks(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/nowhere", f.clerk, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "/api/v1/nowhere", envelope(t, rec).Path)

	rec = f.do(http.MethodGet, "/api/v1/transports/compressed", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "freight_http_requests_total")
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&service.Error{Kind: service.ErrInvalidInput}, http.StatusBadRequest},
		{validation.FieldErrors{"id": "uuidv4"}, http.StatusBadRequest},
		{validation.ErrNoFilter, http.StatusBadRequest},
		{&service.Error{Kind: service.ErrUnauthorized}, http.StatusUnauthorized},
		{&service.Error{Kind: service.ErrPermissionDenied}, http.StatusForbidden},
		{&service.Error{Kind: service.ErrNotFound}, http.StatusNotFound},
		{&service.Error{Kind: service.ErrConflict}, http.StatusConflict},
		{&service.Error{Kind: service.ErrDateRange}, http.StatusUnprocessableEntity},
		{validation.ErrDateRange, http.StatusUnprocessableEntity},
		{&service.Error{Kind: service.ErrMissingFile}, http.StatusUnprocessableEntity},
		{&service.Failure{Title: "list banks", Err: errors.New("db down")}, http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", errors.New("plain")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusOf(tc.err), tc.err.Error())
	}
}
