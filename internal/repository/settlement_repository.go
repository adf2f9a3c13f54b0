package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight-service/internal/model"
)

const (
	expenseSettlementSequence = "expense_settlement_formatted_id_seq"
	saleSettlementSequence    = "sale_settlement_formatted_id_seq"
)

// ErrFreightSettled marks a detail whose freight is already billed in a sale settlement.
var ErrFreightSettled = fmt.Errorf("freight already in a sale settlement: %w", gorm.ErrDuplicatedKey)

type ExpenseSettlementRepository struct {
	crud[model.ExpenseSettlement]
}

func NewExpenseSettlementRepository(db *gorm.DB) *ExpenseSettlementRepository {
	return &ExpenseSettlementRepository{crud: newCrud[model.ExpenseSettlement](db, "expense_settlements", "date_presentation")}
}

func (r *ExpenseSettlementRepository) CreateNumbered(ctx context.Context, e *model.ExpenseSettlement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		formattedID, err := nextFormattedID(tx, model.ExpenseSettlementPrefix, expenseSettlementSequence)
		if err != nil {
			return err
		}
		e.FormattedID = formattedID
		return tx.Create(e).Error
	})
}

// Report lists freights started in the range next to their settlement, if any.
// liquidated selects freights already attached to a settlement.
func (r *ExpenseSettlementRepository) Report(ctx context.Context, filter ExpenseSettlementFilter) ([]model.ExpenseSettlementReportRow, error) {
	query := r.db.WithContext(ctx).Table("freights f").
		Select(`
			e.id,
			f.id AS freight_id,
			f.formatted_id AS freight_formatted_id,
			e.formatted_id AS expense_settlement_formatted_id,
			r.name AS route_name,
			SUBSTRING(c.name, 1, 15) AS client_name,
			ut.license_plate AS truck_tractor_license_plate,
			us.license_plate AS semi_trailer_license_plate,
			SUBSTRING(d.name || ' ' || d.lastname, 1, 15) AS driver_full_name,
			SUBSTRING(t.name, 1, 15) AS transport_name,
			TO_CHAR(f.date_start, 'DD/MM/YY') AS date_start,
			TO_CHAR(f.date_end, 'DD/MM/YY') AS date_end,
			s.name AS service_name,
			TO_CHAR(e.date_presentation, 'DD/MM/YY') AS date_presentation,
			e.toll,
			e.viatic,
			e.load,
			e.unload,
			e.garage,
			e.washed,
			e.tire,
			e.mobility,
			e.other,
			e.other_detail,
			e.total,
			e.deposits,
			e.favors_the_company,
			e.residue,
			e.cancelled,
			e.observation
		`).
		Joins("LEFT JOIN expense_settlements e ON e.id = f.expense_settlement_id").
		Joins("INNER JOIN clients c ON c.id = f.client_id").
		Joins("INNER JOIN routes r ON r.id = f.route_id").
		Joins("INNER JOIN units ut ON ut.id = f.truck_tractor_id").
		Joins("INNER JOIN units us ON us.id = f.semi_trailer_id").
		Joins("INNER JOIN drivers d ON d.id = f.driver_id").
		Joins("INNER JOIN services s ON s.id = f.service_id").
		Joins("INNER JOIN transports t ON t.id = f.transport_id").
		Where("f.date_start BETWEEN ? AND ?", filter.DateStart, filter.DateEnd)

	if filter.Liquidated {
		query = query.Where("f.expense_settlement_id IS NOT NULL")
	} else {
		query = query.Where("f.expense_settlement_id IS NULL")
	}

	rows := []model.ExpenseSettlementReportRow{}
	if err := query.Order("f.date_start").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

type SaleSettlementRepository struct {
	crud[model.SaleSettlement]
}

func NewSaleSettlementRepository(db *gorm.DB) *SaleSettlementRepository {
	return &SaleSettlementRepository{crud: newCrud[model.SaleSettlement](db, "sale_settlements", "date")}
}

func (r *SaleSettlementRepository) CreateNumbered(ctx context.Context, s *model.SaleSettlement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		formattedID, err := nextFormattedID(tx, model.SaleSettlementPrefix, saleSettlementSequence)
		if err != nil {
			return err
		}
		s.FormattedID = formattedID
		return tx.Create(s).Error
	})
}

func (r *SaleSettlementRepository) ListByDate(ctx context.Context, filter DateRangeFilter) ([]model.SaleSettlementRow, error) {
	rows := []model.SaleSettlementRow{}
	err := r.db.WithContext(ctx).Table("sale_settlements s").
		Select(`
			s.id,
			s.formatted_id,
			TO_CHAR(s.date, 'DD/MM/YY') AS date,
			s.value_without_igv,
			c.name AS client_name,
			s.observation,
			s.value_igv,
			s.value_with_igv,
			s.invoice_number,
			TO_CHAR(s.invoice_date, 'DD/MM/YY') AS invoice_date
		`).
		Joins("INNER JOIN clients c ON c.id = s.client_id").
		Where("s.date BETWEEN ? AND ?", filter.DateStart, filter.DateEnd).
		Order("s.date").
		Scan(&rows).Error
	return rows, err
}

// GetRow returns one settlement with its client name and ISO dates.
func (r *SaleSettlementRepository) GetRow(ctx context.Context, id uuid.UUID) (*model.SaleSettlementRow, error) {
	var rows []model.SaleSettlementRow
	err := r.db.WithContext(ctx).Table("sale_settlements s").
		Select(`
			s.id,
			s.formatted_id,
			TO_CHAR(s.date, 'YYYY-MM-DD') AS date,
			s.value_without_igv,
			s.client_id,
			c.name AS client_name,
			s.observation,
			s.value_igv,
			s.value_with_igv,
			s.invoice_number,
			TO_CHAR(s.invoice_date, 'YYYY-MM-DD') AS invoice_date
		`).
		Joins("INNER JOIN clients c ON c.id = s.client_id").
		Where("s.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

type SaleSettlementDetailRepository struct {
	db *gorm.DB
}

func NewSaleSettlementDetailRepository(db *gorm.DB) *SaleSettlementDetailRepository {
	return &SaleSettlementDetailRepository{db: db}
}

// CreateBatch inserts every detail of one settlement in a single transaction.
// A missing settlement yields gorm.ErrRecordNotFound, a detail id already in
// use yields gorm.ErrDuplicatedKey and a freight billed before yields
// ErrFreightSettled.
func (r *SaleSettlementDetailRepository) CreateBatch(ctx context.Context, settlementID uuid.UUID, details []model.SaleSettlementDetail) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table("sale_settlements").Where("id = ?", settlementID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		ids := make([]uuid.UUID, len(details))
		for i, d := range details {
			ids[i] = d.ID
		}
		if err := tx.Table("sale_settlement_details").Where("id IN ?", ids).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}

		freightIDs := make([]uuid.UUID, len(details))
		for i, d := range details {
			freightIDs[i] = d.FreightID
		}
		if err := tx.Table("sale_settlement_details").Where("freight_id IN ?", freightIDs).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrFreightSettled
		}

		return tx.Create(&details).Error
	})
}

func (r *SaleSettlementDetailRepository) ListBySettlement(ctx context.Context, settlementID uuid.UUID) ([]model.SaleSettlementDetailRow, error) {
	rows := []model.SaleSettlementDetailRow{}
	err := r.db.WithContext(ctx).Table("sale_settlement_details sd").
		Select(`
			sd.id,
			f.formatted_id AS freight_formatted_id,
			r.name AS route_name,
			SUBSTRING(c.name, 1, 15) AS client_name,
			ut.license_plate AS truck_tractor_license_plate,
			us.license_plate AS semi_trailer_license_plate,
			SUBSTRING(d.name || ' ' || d.lastname, 1, 15) AS driver_full_name,
			SUBSTRING(t.name, 1, 15) AS transport_name,
			TO_CHAR(f.date_start, 'DD/MM/YY') AS date_start,
			TO_CHAR(f.date_end, 'DD/MM/YY') AS date_end,
			s.name AS service_name,
			f.grt,
			f.grr,
			f.ton,
			f.pallet,
			sd.value_without_igv,
			sd.value_additional_without_igv,
			sd.value_additional_detail,
			sd.observation
		`).
		Joins("INNER JOIN freights f ON f.id = sd.freight_id").
		Joins("INNER JOIN clients c ON c.id = f.client_id").
		Joins("INNER JOIN routes r ON r.id = f.route_id").
		Joins("INNER JOIN units ut ON ut.id = f.truck_tractor_id").
		Joins("INNER JOIN units us ON us.id = f.semi_trailer_id").
		Joins("INNER JOIN drivers d ON d.id = f.driver_id").
		Joins("INNER JOIN services s ON s.id = f.service_id").
		Joins("INNER JOIN transports t ON t.id = f.transport_id").
		Where("sd.sale_settlement_id = ?", settlementID).
		Order("f.date_start").
		Scan(&rows).Error
	return rows, err
}

// DeleteBySettlement removes every detail of the settlement and reports how many went.
func (r *SaleSettlementDetailRepository) DeleteBySettlement(ctx context.Context, settlementID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("sale_settlement_id = ?", settlementID).
		Delete(&model.SaleSettlementDetail{})
	return res.RowsAffected, res.Error
}
