package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"freight-service/internal/cache"
	"freight-service/internal/dto"
	"freight-service/internal/model"
	"freight-service/internal/repository"
)

type BankStore interface {
	store[model.Bank]
	Dropdown(ctx context.Context) ([]model.DropDownRow, error)
}

type BankService struct {
	entity[model.Bank]
	repo BankStore
}

func NewBankService(repo BankStore, dropdowns cache.Dropdowns) *BankService {
	return &BankService{
		entity: newEntity[model.Bank](repo, "bank", dropdowns, "banks"),
		repo:   repo,
	}
}

func (s *BankService) List(ctx context.Context) ([]model.Bank, error) {
	return s.list(ctx)
}

func (s *BankService) Dropdown(ctx context.Context) ([]model.DropDownRow, error) {
	return s.dropdown(ctx, "", func() ([]model.DropDownRow, error) {
		return s.repo.Dropdown(ctx)
	})
}

func (s *BankService) Get(ctx context.Context, id uuid.UUID) (*model.Bank, error) {
	return s.get(ctx, id)
}

func (s *BankService) Create(ctx context.Context, req dto.BankRequest) error {
	if err := validated(&req); err != nil {
		return err
	}
	b := req.ToModel()
	return s.create(ctx, b.ID, &b, nameUnique("bank", b.Name))
}

func (s *BankService) Update(ctx context.Context, id uuid.UUID, req dto.BankRequest) error {
	req.ID = id.String()
	if err := validated(&req); err != nil {
		return err
	}
	b := req.ToModel()
	return s.update(ctx, id, &b, nameUnique("bank", b.Name))
}

func (s *BankService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

type OutputTypeStore interface {
	store[model.OutputType]
	Dropdown(ctx context.Context) ([]model.DropDownRow, error)
}

type OutputTypeService struct {
	entity[model.OutputType]
	repo OutputTypeStore
}

func NewOutputTypeService(repo OutputTypeStore, dropdowns cache.Dropdowns) *OutputTypeService {
	return &OutputTypeService{
		entity: newEntity[model.OutputType](repo, "output type", dropdowns, "outputTypes"),
		repo:   repo,
	}
}

func (s *OutputTypeService) List(ctx context.Context) ([]model.OutputType, error) {
	return s.list(ctx)
}

func (s *OutputTypeService) Dropdown(ctx context.Context) ([]model.DropDownRow, error) {
	return s.dropdown(ctx, "", func() ([]model.DropDownRow, error) {
		return s.repo.Dropdown(ctx)
	})
}

func (s *OutputTypeService) Get(ctx context.Context, id uuid.UUID) (*model.OutputType, error) {
	return s.get(ctx, id)
}

func (s *OutputTypeService) Create(ctx context.Context, req dto.OutputTypeRequest) error {
	if err := validated(&req); err != nil {
		return err
	}
	t := req.ToModel()
	return s.create(ctx, t.ID, &t, nameUnique("output type", t.Name))
}

func (s *OutputTypeService) Update(ctx context.Context, id uuid.UUID, req dto.OutputTypeRequest) error {
	req.ID = id.String()
	if err := validated(&req); err != nil {
		return err
	}
	t := req.ToModel()
	return s.update(ctx, id, &t, nameUnique("output type", t.Name))
}

func (s *OutputTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

type OutputStore interface {
	store[model.Output]
	ListByBank(ctx context.Context, filter repository.OutputFilter) ([]model.OutputRow, error)
	SumByFreights(ctx context.Context, freightIDs []uuid.UUID) (decimal.Decimal, error)
}

// OutputService books money leaving a bank account.
type OutputService struct {
	entity[model.Output]
	repo OutputStore
}

func NewOutputService(repo OutputStore) *OutputService {
	return &OutputService{
		entity: newEntity[model.Output](repo, "output", nil, ""),
		repo:   repo,
	}
}

func (s *OutputService) List(ctx context.Context, q dto.OutputQuery) ([]model.OutputRow, error) {
	filter, err := q.ToFilter()
	if err != nil {
		return nil, invalid(err)
	}
	rows, err := s.repo.ListByBank(ctx, filter)
	if err != nil {
		return nil, failure("list outputs", q, err)
	}
	return rows, nil
}

func (s *OutputService) Get(ctx context.Context, id uuid.UUID) (*model.Output, error) {
	return s.get(ctx, id)
}

// Deposits sums the outputs booked against any of the freights.
func (s *OutputService) Deposits(ctx context.Context, freightIDs []string) (decimal.Decimal, error) {
	ids, err := dto.FreightIDList(freightIDs)
	if err != nil {
		return decimal.Zero, invalid(err)
	}
	sum, err := s.repo.SumByFreights(ctx, ids)
	if err != nil {
		return decimal.Zero, failure("sum deposits", freightIDs, err)
	}
	return sum, nil
}

func (s *OutputService) Create(ctx context.Context, req dto.OutputRequest) error {
	if err := validated(&req); err != nil {
		return err
	}
	o := req.ToModel()
	return s.create(ctx, o.ID, &o)
}

func (s *OutputService) Update(ctx context.Context, id uuid.UUID, req dto.OutputRequest) error {
	req.ID = id.String()
	if err := validated(&req); err != nil {
		return err
	}
	o := req.ToModel()
	return s.update(ctx, id, &o)
}

func (s *OutputService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}
