package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"freight-service/internal/dto"
	"freight-service/internal/model"
	"freight-service/internal/pagination"
	"freight-service/internal/repository"
	"freight-service/internal/validation"
)

type FreightStore interface {
	store[model.Freight]
	CreateNumbered(ctx context.Context, f *model.Freight) error
	GetByFormattedID(ctx context.Context, formattedID string) (*model.Freight, error)
	ListCompressed(ctx context.Context, filter repository.FreightFilter, limit int) ([]model.FreightCompressed, int64, error)
	ListNotLiquidated(ctx context.Context, filter repository.NotLiquidatedFilter) ([]model.FreightCompressed, error)
	ListByExpenseSettlement(ctx context.Context, settlementID uuid.UUID) ([]model.FreightCompressed, error)
	AssignExpenseSettlement(ctx context.Context, freightIDs []uuid.UUID, settlementID *uuid.UUID) (int64, error)
}

// DepositLedger reads the outputs booked against freights.
type DepositLedger interface {
	ListByFreight(ctx context.Context, freightID uuid.UUID) ([]model.OutputRow, error)
	SumByFreights(ctx context.Context, freightIDs []uuid.UUID) (decimal.Decimal, error)
}

type FreightService struct {
	entity[model.Freight]
	repo    FreightStore
	outputs DepositLedger
	limit   int
	log     zerolog.Logger
}

func NewFreightService(repo FreightStore, outputs DepositLedger, limitPerPage int, log zerolog.Logger) *FreightService {
	return &FreightService{
		entity:  newEntity[model.Freight](repo, "freight", nil, ""),
		repo:    repo,
		outputs: outputs,
		limit:   limitPerPage,
		log:     log,
	}
}

// Search runs the paginated multi-filter freight listing.
func (s *FreightService) Search(ctx context.Context, q dto.FreightQuery) (pagination.Page[model.FreightCompressed], error) {
	filter, err := q.ToFilter()
	if err != nil {
		return pagination.Page[model.FreightCompressed]{}, invalid(err)
	}
	rows, total, err := s.repo.ListCompressed(ctx, filter, s.limit)
	if err != nil {
		return pagination.Page[model.FreightCompressed]{}, failure("search freights", q, err)
	}
	return pagination.New(rows, total, s.limit, filter.Page), nil
}

func (s *FreightService) NotLiquidated(ctx context.Context, q dto.NotLiquidatedQuery) ([]model.FreightCompressed, error) {
	filter, err := q.ToFilter()
	if err != nil {
		return nil, invalid(err)
	}
	rows, err := s.repo.ListNotLiquidated(ctx, filter)
	if err != nil {
		return nil, failure("list not liquidated freights", q, err)
	}
	return rows, nil
}

func (s *FreightService) ByExpenseSettlement(ctx context.Context, settlementID uuid.UUID) ([]model.FreightCompressed, error) {
	rows, err := s.repo.ListByExpenseSettlement(ctx, settlementID)
	if err != nil {
		return nil, failure("list settled freights", settlementID, err)
	}
	return rows, nil
}

func (s *FreightService) Get(ctx context.Context, id uuid.UUID) (*model.Freight, error) {
	return s.get(ctx, id)
}

// GetByFormattedID looks a freight up by its human code, e.g. F000123.
func (s *FreightService) GetByFormattedID(ctx context.Context, formattedID string) (*model.Freight, error) {
	if !validation.Var(formattedID, "formattedid") {
		return nil, badInput("formattedId must look like F000123")
	}
	f, err := s.repo.GetByFormattedID(ctx, formattedID)
	if err != nil {
		return nil, storeErr(err, "freight", "get freight", formattedID)
	}
	return f, nil
}

// Outputs lists the deposits made against a freight and their total.
func (s *FreightService) Outputs(ctx context.Context, freightID uuid.UUID) (model.FreightOutputs, error) {
	rows, err := s.outputs.ListByFreight(ctx, freightID)
	if err != nil {
		return model.FreightOutputs{}, failure("list freight outputs", freightID, err)
	}
	sum, err := s.outputs.SumByFreights(ctx, []uuid.UUID{freightID})
	if err != nil {
		return model.FreightOutputs{}, failure("sum freight outputs", freightID, err)
	}
	return model.FreightOutputs{Rows: rows, AllDeposits: sum}, nil
}

// Create stores the freight and returns the formatted id drawn for it.
func (s *FreightService) Create(ctx context.Context, req dto.FreightRequest) (string, error) {
	if err := validated(&req); err != nil {
		return "", err
	}
	var f model.Freight
	req.ApplyTo(&f)
	if err := s.insert(ctx, f.ID, &f, s.repo.CreateNumbered); err != nil {
		return "", err
	}
	return f.FormattedID, nil
}

func (s *FreightService) Update(ctx context.Context, id uuid.UUID, req dto.FreightRequest) error {
	req.ID = id.String()
	if err := validated(&req); err != nil {
		return err
	}
	f, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	req.ApplyTo(f)
	return s.update(ctx, id, f)
}

// Reconcile attaches the freights to an expense settlement, or releases
// them when no settlement is given.
func (s *FreightService) Reconcile(ctx context.Context, req dto.ReconcileRequest) error {
	if err := validated(&req); err != nil {
		return err
	}
	n, err := s.repo.AssignExpenseSettlement(ctx, req.IDs(), req.SettlementID())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound("expense settlement")
	}
	if err != nil {
		return failure("reconcile freights", req, err)
	}
	s.log.Info().
		Int64("freights", n).
		Bool("attached", req.SettlementID() != nil).
		Msg("freights reconciled")
	return nil
}

func (s *FreightService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

type TransportedProductStore interface {
	store[model.TransportedProduct]
	ListByFreight(ctx context.Context, freightID uuid.UUID) ([]model.TransportedProductRow, error)
}

type TransportedProductService struct {
	entity[model.TransportedProduct]
	repo TransportedProductStore
}

func NewTransportedProductService(repo TransportedProductStore) *TransportedProductService {
	return &TransportedProductService{
		entity: newEntity[model.TransportedProduct](repo, "transported product", nil, ""),
		repo:   repo,
	}
}

func (s *TransportedProductService) ByFreight(ctx context.Context, freightID uuid.UUID) ([]model.TransportedProductRow, error) {
	rows, err := s.repo.ListByFreight(ctx, freightID)
	if err != nil {
		return nil, failure("list transported products", freightID, err)
	}
	return rows, nil
}

func (s *TransportedProductService) Get(ctx context.Context, id uuid.UUID) (*model.TransportedProduct, error) {
	return s.get(ctx, id)
}

func (s *TransportedProductService) Create(ctx context.Context, req dto.TransportedProductRequest) error {
	if err := validated(&req); err != nil {
		return err
	}
	p := req.ToModel()
	return s.create(ctx, p.ID, &p)
}

func (s *TransportedProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}
