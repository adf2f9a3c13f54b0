package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"freight-service/internal/dto"
	"freight-service/internal/model"
	"freight-service/internal/repository"
)

type freightStub struct {
	*memStore[model.Freight]
	settlements map[uuid.UUID]bool
	assigned    map[uuid.UUID]*uuid.UUID
}

func newFreightStub() *freightStub {
	return &freightStub{
		memStore:    newMemStore(func(f *model.Freight) uuid.UUID { return f.ID }, nil),
		settlements: map[uuid.UUID]bool{},
		assigned:    map[uuid.UUID]*uuid.UUID{},
	}
}

func (s *freightStub) CreateNumbered(ctx context.Context, f *model.Freight) error {
	f.FormattedID = "F000001"
	return s.Create(ctx, f)
}

func (s *freightStub) GetByFormattedID(_ context.Context, formattedID string) (*model.Freight, error) {
	for _, f := range s.rows {
		if f.FormattedID == formattedID {
			return &f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *freightStub) ListCompressed(context.Context, repository.FreightFilter, int) ([]model.FreightCompressed, int64, error) {
	return []model.FreightCompressed{}, 0, nil
}

func (s *freightStub) ListNotLiquidated(context.Context, repository.NotLiquidatedFilter) ([]model.FreightCompressed, error) {
	return []model.FreightCompressed{}, nil
}

func (s *freightStub) ListByExpenseSettlement(context.Context, uuid.UUID) ([]model.FreightCompressed, error) {
	return []model.FreightCompressed{}, nil
}

func (s *freightStub) AssignExpenseSettlement(_ context.Context, ids []uuid.UUID, settlementID *uuid.UUID) (int64, error) {
	if settlementID != nil && !s.settlements[*settlementID] {
		return 0, gorm.ErrRecordNotFound
	}
	for _, id := range ids {
		s.assigned[id] = settlementID
	}
	return int64(len(ids)), nil
}

type ledgerStub struct {
	rows []model.OutputRow
	sum  decimal.Decimal
}

func (l ledgerStub) ListByFreight(context.Context, uuid.UUID) ([]model.OutputRow, error) {
	return l.rows, nil
}

func (l ledgerStub) SumByFreights(context.Context, []uuid.UUID) (decimal.Decimal, error) {
	return l.sum, nil
}

func TestGetByFormattedIDRejectsMalformedCode(t *testing.T) {
	svc := NewFreightService(newFreightStub(), ledgerStub{}, 10, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.GetByFormattedID(ctx, "X123")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetByFormattedID(ctx, "F000042")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReconcile(t *testing.T) {
	ctx := context.Background()
	repo := newFreightStub()
	svc := NewFreightService(repo, ledgerStub{}, 10, zerolog.Nop())

	freight := uuid.New()
	settlement := uuid.New()
	raw := settlement.String()

	err := svc.Reconcile(ctx, dto.NewReconcileRequest(&raw, freight.String()))
	assert.ErrorIs(t, err, ErrNotFound)

	repo.settlements[settlement] = true
	require.NoError(t, svc.Reconcile(ctx, dto.NewReconcileRequest(&raw, freight.String())))
	require.NotNil(t, repo.assigned[freight])
	assert.Equal(t, settlement, *repo.assigned[freight])

	require.NoError(t, svc.Reconcile(ctx, dto.NewReconcileRequest(nil, freight.String())))
	assert.Nil(t, repo.assigned[freight])

	err = svc.Reconcile(ctx, dto.NewReconcileRequest(nil, "nope"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOutputsCarryTheDepositTotal(t *testing.T) {
	ledger := ledgerStub{
		rows: []model.OutputRow{{}, {}},
		sum:  decimal.RequireFromString("1250.50"),
	}
	svc := NewFreightService(newFreightStub(), ledger, 10, zerolog.Nop())

	out, err := svc.Outputs(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Len(t, out.Rows, 2)
	assert.True(t, out.AllDeposits.Equal(decimal.RequireFromString("1250.50")))
}

func TestSearchDateRange(t *testing.T) {
	svc := NewFreightService(newFreightStub(), ledgerStub{}, 10, zerolog.Nop())

	_, err := svc.Search(context.Background(), dto.FreightQuery{DateStart: "2024-01-01", Page: "1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Search(context.Background(), dto.FreightQuery{DateStart: "2024-01-01", DateEnd: "2025-06-01", Page: "1"})
	assert.ErrorIs(t, err, ErrDateRange)
}

type detailStub struct {
	createErr error
	deleted   int64
}

func (d detailStub) CreateBatch(context.Context, uuid.UUID, []model.SaleSettlementDetail) error {
	return d.createErr
}

func (d detailStub) ListBySettlement(context.Context, uuid.UUID) ([]model.SaleSettlementDetailRow, error) {
	return []model.SaleSettlementDetailRow{}, nil
}

func (d detailStub) DeleteBySettlement(context.Context, uuid.UUID) (int64, error) {
	return d.deleted, nil
}

func detailList(ids ...string) dto.SaleSettlementDetailList {
	list := dto.SaleSettlementDetailList{}
	for _, id := range ids {
		list = append(list, dto.SaleSettlementDetailRequest{
			ID:              id,
			FreightID:       uuid.NewString(),
			ValueWithoutIgv: "1500.00",
		})
	}
	return list
}

func sameFreight(ids ...string) dto.SaleSettlementDetailList {
	list := detailList(ids...)
	for i := range list {
		list[i].FreightID = list[0].FreightID
	}
	return list
}

func TestAddDetailsErrorMapping(t *testing.T) {
	ctx := context.Background()
	settlement := uuid.New()
	id := uuid.NewString()

	cases := []struct {
		name    string
		details detailStub
		list    dto.SaleSettlementDetailList
		want    error
	}{
		{"repeated id in batch", detailStub{}, detailList(id, id), ErrInvalidInput},
		{"empty batch", detailStub{}, detailList(), ErrInvalidInput},
		{"missing settlement", detailStub{createErr: gorm.ErrRecordNotFound}, detailList(id), ErrNotFound},
		{"stored id", detailStub{createErr: gorm.ErrDuplicatedKey}, detailList(id), ErrConflict},
		{"freight already billed", detailStub{createErr: repository.ErrFreightSettled}, detailList(id), ErrConflict},
		{"repeated freight in batch", detailStub{}, sameFreight(id, uuid.NewString()), ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewSaleSettlementService(nil, tc.details)
			assert.ErrorIs(t, svc.AddDetails(ctx, settlement, tc.list), tc.want)
		})
	}

	svc := NewSaleSettlementService(nil, detailStub{})
	assert.NoError(t, svc.AddDetails(ctx, settlement, detailList(id)))
}

func TestDeleteDetailsWhenNoneStored(t *testing.T) {
	ctx := context.Background()

	svc := NewSaleSettlementService(nil, detailStub{})
	assert.ErrorIs(t, svc.DeleteDetails(ctx, uuid.New()), ErrNotFound)

	svc = NewSaleSettlementService(nil, detailStub{deleted: 3})
	assert.NoError(t, svc.DeleteDetails(ctx, uuid.New()))
}
