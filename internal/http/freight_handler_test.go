package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-service/internal/model"
	"freight-service/internal/repository"
	"freight-service/internal/service"
)

// freights records reconciliation calls; the other reads are never reached here.
type freights struct {
	assigned [][]uuid.UUID
	targets  []*uuid.UUID
}

func (s *freights) Create(context.Context, *model.Freight) error               { return nil }
func (s *freights) GetByID(context.Context, uuid.UUID) (*model.Freight, error) { return nil, nil }
func (s *freights) List(context.Context) ([]model.Freight, error)              { return nil, nil }
func (s *freights) Update(context.Context, *model.Freight) error               { return nil }
func (s *freights) Delete(context.Context, uuid.UUID) error                    { return nil }
func (s *freights) ExistsByID(context.Context, uuid.UUID) (bool, error)        { return true, nil }
func (s *freights) HasDependents(context.Context, uuid.UUID) (bool, error)     { return false, nil }
func (s *freights) CreateNumbered(context.Context, *model.Freight) error       { return nil }
func (s *freights) Taken(context.Context, uuid.UUID, ...repository.Key) (bool, error) {
	return false, nil
}
func (s *freights) GetByFormattedID(context.Context, string) (*model.Freight, error) {
	return nil, nil
}
func (s *freights) ListCompressed(context.Context, repository.FreightFilter, int) ([]model.FreightCompressed, int64, error) {
	return nil, 0, nil
}
func (s *freights) ListNotLiquidated(context.Context, repository.NotLiquidatedFilter) ([]model.FreightCompressed, error) {
	return nil, nil
}
func (s *freights) ListByExpenseSettlement(context.Context, uuid.UUID) ([]model.FreightCompressed, error) {
	return nil, nil
}

func (s *freights) AssignExpenseSettlement(_ context.Context, ids []uuid.UUID, settlementID *uuid.UUID) (int64, error) {
	s.assigned = append(s.assigned, ids)
	s.targets = append(s.targets, settlementID)
	return int64(len(ids)), nil
}

func reconcileRouter(t *testing.T, repo *freights) (*gin.Engine, string) {
	t.Helper()
	f := newFixture(t)
	handler := NewHandler(Services{
		Users:    f.services.Users,
		Freights: service.NewFreightService(repo, nil, 10, zerolog.Nop()),
	}, f.uploads, zerolog.Nop())
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.Register(router.Group(apiPrefix), f.auth)
	return router, f.clerk
}

func patch(router *gin.Engine, token, query, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/freights?"+query, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestReconcileWithoutSettlementKeyIsRejected(t *testing.T) {
	repo := &freights{}
	router, token := reconcileRouter(t, repo)

	rec := patch(router, token, "freightId="+uuid.NewString(), `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.assigned)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Message, "expenseSettlementId")
}

func TestReconcileAttachesAndDetaches(t *testing.T) {
	repo := &freights{}
	router, token := reconcileRouter(t, repo)
	first, second := uuid.New(), uuid.New()
	settlement := uuid.New()
	query := "freightId=" + first.String() + "&freightId=" + second.String()

	rec := patch(router, token, query, `{"expenseSettlementId":"`+settlement.String()+`"}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = patch(router, token, query, `{"expenseSettlementId":null}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	require.Len(t, repo.assigned, 2)
	assert.Equal(t, []uuid.UUID{first, second}, repo.assigned[0])
	require.NotNil(t, repo.targets[0])
	assert.Equal(t, settlement, *repo.targets[0])
	assert.Nil(t, repo.targets[1])

	rec = patch(router, token, query, `{"expenseSettlementId":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, repo.assigned, 2)
}
