package service

import (
	"bytes"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight-service/internal/dto"
	"freight-service/internal/model"
	"freight-service/internal/report"
	"freight-service/internal/repository"
)

type ExpenseSettlementStore interface {
	store[model.ExpenseSettlement]
	CreateNumbered(ctx context.Context, e *model.ExpenseSettlement) error
	Report(ctx context.Context, filter repository.ExpenseSettlementFilter) ([]model.ExpenseSettlementReportRow, error)
}

type ExpenseSettlementService struct {
	entity[model.ExpenseSettlement]
	repo ExpenseSettlementStore
}

func NewExpenseSettlementService(repo ExpenseSettlementStore) *ExpenseSettlementService {
	return &ExpenseSettlementService{
		entity: newEntity[model.ExpenseSettlement](repo, "expense settlement", nil, ""),
		repo:   repo,
	}
}

// Report lists the freights started in the range with their settlement figures.
func (s *ExpenseSettlementService) Report(ctx context.Context, q dto.ExpenseSettlementQuery) ([]model.ExpenseSettlementReportRow, error) {
	filter, err := q.ToFilter()
	if err != nil {
		return nil, invalid(err)
	}
	rows, err := s.repo.Report(ctx, filter)
	if err != nil {
		return nil, failure("expense settlement report", q, err)
	}
	return rows, nil
}

// Export renders the same report as a spreadsheet.
func (s *ExpenseSettlementService) Export(ctx context.Context, q dto.ExpenseSettlementQuery) (*bytes.Buffer, error) {
	rows, err := s.Report(ctx, q)
	if err != nil {
		return nil, err
	}
	buf, err := report.ExpenseSettlements(rows)
	if err != nil {
		return nil, failure("export expense settlements", q, err)
	}
	return buf, nil
}

func (s *ExpenseSettlementService) Get(ctx context.Context, id uuid.UUID) (*model.ExpenseSettlement, error) {
	return s.get(ctx, id)
}

func (s *ExpenseSettlementService) Create(ctx context.Context, req dto.ExpenseSettlementRequest) (string, error) {
	if err := validated(&req); err != nil {
		return "", err
	}
	var e model.ExpenseSettlement
	req.ApplyTo(&e)
	if err := s.insert(ctx, e.ID, &e, s.repo.CreateNumbered); err != nil {
		return "", err
	}
	return e.FormattedID, nil
}

func (s *ExpenseSettlementService) Update(ctx context.Context, id uuid.UUID, req dto.ExpenseSettlementRequest) error {
	req.ID = id.String()
	if err := validated(&req); err != nil {
		return err
	}
	e, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	req.ApplyTo(e)
	return s.update(ctx, id, e)
}

func (s *ExpenseSettlementService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

type SaleSettlementStore interface {
	store[model.SaleSettlement]
	CreateNumbered(ctx context.Context, s *model.SaleSettlement) error
	ListByDate(ctx context.Context, filter repository.DateRangeFilter) ([]model.SaleSettlementRow, error)
	GetRow(ctx context.Context, id uuid.UUID) (*model.SaleSettlementRow, error)
}

type SaleSettlementDetailStore interface {
	CreateBatch(ctx context.Context, settlementID uuid.UUID, details []model.SaleSettlementDetail) error
	ListBySettlement(ctx context.Context, settlementID uuid.UUID) ([]model.SaleSettlementDetailRow, error)
	DeleteBySettlement(ctx context.Context, settlementID uuid.UUID) (int64, error)
}

type SaleSettlementService struct {
	entity[model.SaleSettlement]
	repo    SaleSettlementStore
	details SaleSettlementDetailStore
}

func NewSaleSettlementService(repo SaleSettlementStore, details SaleSettlementDetailStore) *SaleSettlementService {
	return &SaleSettlementService{
		entity:  newEntity[model.SaleSettlement](repo, "sale settlement", nil, ""),
		repo:    repo,
		details: details,
	}
}

func (s *SaleSettlementService) List(ctx context.Context, q dto.DateRangeQuery) ([]model.SaleSettlementRow, error) {
	filter, err := q.ToFilter()
	if err != nil {
		return nil, invalid(err)
	}
	rows, err := s.repo.ListByDate(ctx, filter)
	if err != nil {
		return nil, failure("list sale settlements", q, err)
	}
	return rows, nil
}

func (s *SaleSettlementService) Get(ctx context.Context, id uuid.UUID) (*model.SaleSettlementRow, error) {
	row, err := s.repo.GetRow(ctx, id)
	if err != nil {
		return nil, storeErr(err, "sale settlement", "get sale settlement", id)
	}
	return row, nil
}

func (s *SaleSettlementService) Create(ctx context.Context, req dto.SaleSettlementRequest) (string, error) {
	if err := validated(&req); err != nil {
		return "", err
	}
	v := req.ToModel()
	if err := s.insert(ctx, v.ID, &v, s.repo.CreateNumbered); err != nil {
		return "", err
	}
	return v.FormattedID, nil
}

// Update changes the date, invoice and observation; amounts and client are fixed.
func (s *SaleSettlementService) Update(ctx context.Context, id uuid.UUID, req dto.SaleSettlementUpdateRequest) error {
	if err := validated(&req); err != nil {
		return err
	}
	v, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	req.ApplyTo(v)
	return s.update(ctx, id, v)
}

func (s *SaleSettlementService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

// AddDetails stores the batch of details in one transaction. Repeated ids or
// freights inside the batch are rejected as invalid. Ids already stored and
// freights already billed are a conflict.
func (s *SaleSettlementService) AddDetails(ctx context.Context, settlementID uuid.UUID, list dto.SaleSettlementDetailList) error {
	if err := validated(list); err != nil {
		return err
	}
	err := s.details.CreateBatch(ctx, settlementID, list.ToModels(settlementID))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound("sale settlement")
	case errors.Is(err, repository.ErrFreightSettled):
		return conflict("freight already in a sale settlement")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return conflict("sale settlement detail id already exists")
	}
	return storeErr(err, "sale settlement detail", "create sale settlement details", list)
}

func (s *SaleSettlementService) Details(ctx context.Context, settlementID uuid.UUID) ([]model.SaleSettlementDetailRow, error) {
	rows, err := s.details.ListBySettlement(ctx, settlementID)
	if err != nil {
		return nil, failure("list sale settlement details", settlementID, err)
	}
	return rows, nil
}

func (s *SaleSettlementService) DeleteDetails(ctx context.Context, settlementID uuid.UUID) error {
	n, err := s.details.DeleteBySettlement(ctx, settlementID)
	if err != nil {
		return failure("delete sale settlement details", settlementID, err)
	}
	if n == 0 {
		return notFound("sale settlement details")
	}
	return nil
}
