package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight-service/internal/model"
)

const freightSequence = "freight_formatted_id_seq"

// freightColumns is the compressed projection shared by every freight listing.
const freightColumns = `
	f.id,
	f.formatted_id,
	TO_CHAR(f.date_start, 'DD/MM/YY') AS date_start,
	TO_CHAR(f.date_end, 'DD/MM/YY') AS date_end,
	r.name AS route_name,
	ut.license_plate AS truck_tractor_license_plate,
	us.license_plate AS semi_trailer_license_plate,
	SUBSTRING(d.name || ' ' || d.lastname, 1, 15) AS driver_full_name,
	SUBSTRING(t.name, 1, 15) AS transport_name,
	SUBSTRING(c.name, 1, 15) AS client_name,
	s.name AS service_name
`

type FreightRepository struct {
	crud[model.Freight]
}

func NewFreightRepository(db *gorm.DB) *FreightRepository {
	return &FreightRepository{crud: newCrud[model.Freight](db, "freights", "date_start")}
}

// joined selects from freights with every catalogue the listings print.
func (r *FreightRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("freights f").
		Joins("INNER JOIN clients c ON c.id = f.client_id").
		Joins("INNER JOIN routes r ON r.id = f.route_id").
		Joins("INNER JOIN units ut ON ut.id = f.truck_tractor_id").
		Joins("INNER JOIN units us ON us.id = f.semi_trailer_id").
		Joins("INNER JOIN drivers d ON d.id = f.driver_id").
		Joins("INNER JOIN services s ON s.id = f.service_id").
		Joins("INNER JOIN transports t ON t.id = f.transport_id")
}

// CreateNumbered stores f under the next F-prefixed formatted id.
func (r *FreightRepository) CreateNumbered(ctx context.Context, f *model.Freight) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		formattedID, err := nextFormattedID(tx, model.FreightPrefix, freightSequence)
		if err != nil {
			return err
		}
		f.FormattedID = formattedID
		return tx.Create(f).Error
	})
}

func (r *FreightRepository) GetByFormattedID(ctx context.Context, formattedID string) (*model.Freight, error) {
	var f model.Freight
	err := r.db.WithContext(ctx).
		Where("formatted_id = ?", strings.ToUpper(formattedID)).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ListCompressed runs the paginated multi-filter search.
func (r *FreightRepository) ListCompressed(ctx context.Context, filter FreightFilter, limit int) ([]model.FreightCompressed, int64, error) {
	query := r.joined(ctx).
		Where("f.date_start BETWEEN ? AND ?", filter.DateStart, filter.DateEnd)

	if filter.FormattedID != nil {
		query = query.Where("UPPER(f.formatted_id) LIKE ?", *filter.FormattedID)
	}
	if filter.RouteName != nil {
		query = query.Where("UPPER(r.name) LIKE ?", *filter.RouteName)
	}
	if filter.TruckTractorLicensePlate != nil {
		query = query.Where("UPPER(ut.license_plate) LIKE ?", *filter.TruckTractorLicensePlate)
	}
	if filter.SemiTrailerLicensePlate != nil {
		query = query.Where("UPPER(us.license_plate) LIKE ?", *filter.SemiTrailerLicensePlate)
	}
	if filter.DriverFullName != nil {
		query = query.Where("UPPER(d.name || ' ' || d.lastname) LIKE ?", *filter.DriverFullName)
	}
	if filter.TransportID != nil {
		query = query.Where("f.transport_id = ?", *filter.TransportID)
	}
	if filter.ClientID != nil {
		query = query.Where("f.client_id = ?", *filter.ClientID)
	}
	if filter.ServiceID != nil {
		query = query.Where("f.service_id = ?", *filter.ServiceID)
	}
	if filter.Grt != nil {
		query = query.Where("UPPER(COALESCE(f.grt, '')) LIKE ?", *filter.Grt)
	}
	if filter.Grr != nil {
		query = query.Where("UPPER(COALESCE(f.grr, '')) LIKE ?", *filter.Grr)
	}

	return paginate[model.FreightCompressed](query,
		freightColumns+", f.ton, f.grt, f.grr",
		"f.date_start, c.name, t.name, d.lastname", filter.Page, limit)
}

// ListNotLiquidated returns the driver's freights that no expense settlement covers yet.
func (r *FreightRepository) ListNotLiquidated(ctx context.Context, filter NotLiquidatedFilter) ([]model.FreightCompressed, error) {
	rows := []model.FreightCompressed{}
	err := r.joined(ctx).
		Select(freightColumns).
		Where("f.expense_settlement_id IS NULL").
		Where("f.transport_id = ?", filter.TransportID).
		Where("f.driver_id = ?", filter.DriverID).
		Where("f.date_start BETWEEN ? AND ?", filter.DateStart, filter.DateEnd).
		Order("f.date_start").
		Scan(&rows).Error
	return rows, err
}

func (r *FreightRepository) ListByExpenseSettlement(ctx context.Context, settlementID uuid.UUID) ([]model.FreightCompressed, error) {
	rows := []model.FreightCompressed{}
	err := r.joined(ctx).
		Select(freightColumns).
		Where("f.expense_settlement_id = ?", settlementID).
		Order("f.date_start").
		Scan(&rows).Error
	return rows, err
}

// ListByClient returns a client's freights with or without a sale settlement
// detail. Each freight appears once, with its earliest detail when it has one.
func (r *FreightRepository) ListByClient(ctx context.Context, filter ClientFreightsFilter) ([]model.ClientFreightRow, error) {
	query := r.joined(ctx).
		Select(`
			f.id,
			f.formatted_id AS freight_formatted_id,
			TO_CHAR(f.date_start, 'DD/MM/YY') AS date_start,
			TO_CHAR(f.date_end, 'DD/MM/YY') AS date_end,
			r.name AS route_name,
			f.ton,
			f.grt,
			f.grr,
			ut.license_plate AS truck_tractor_license_plate,
			us.license_plate AS semi_trailer_license_plate,
			SUBSTRING(d.name || ' ' || d.lastname, 1, 15) AS driver_full_name,
			SUBSTRING(t.name, 1, 15) AS transport_name,
			SUBSTRING(c.name, 1, 15) AS client_name,
			f.client_id,
			s.name AS service_name,
			r.value AS value_without_igv,
			COALESCE(sd.value_additional_without_igv, 0) AS value_additional_without_igv,
			sd.value_additional_detail,
			sd.observation AS detail_observation,
			f.observation
		`).
		Joins(`LEFT JOIN LATERAL (
			SELECT id, value_additional_without_igv, value_additional_detail, observation
			FROM sale_settlement_details
			WHERE freight_id = f.id
			ORDER BY created_at
			LIMIT 1
		) sd ON TRUE`).
		Where("f.client_id = ?", filter.ClientID).
		Where("f.date_start BETWEEN ? AND ?", filter.DateStart, filter.DateEnd)

	if filter.Liquidated {
		query = query.Where("sd.id IS NOT NULL")
	} else {
		query = query.Where("sd.id IS NULL")
	}

	rows := []model.ClientFreightRow{}
	if err := query.Order("f.date_start").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// AssignExpenseSettlement attaches the freights to settlementID, or detaches
// them when it is nil. A missing settlement yields gorm.ErrRecordNotFound and
// nothing is written.
func (r *FreightRepository) AssignExpenseSettlement(ctx context.Context, freightIDs []uuid.UUID, settlementID *uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if settlementID != nil {
			var count int64
			if err := tx.Table("expense_settlements").Where("id = ?", *settlementID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		res := tx.Model(&model.Freight{}).
			Where("id IN ?", freightIDs).
			Update("expense_settlement_id", settlementID)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

type TransportedProductRepository struct {
	crud[model.TransportedProduct]
}

func NewTransportedProductRepository(db *gorm.DB) *TransportedProductRepository {
	return &TransportedProductRepository{crud: newCrud[model.TransportedProduct](db, "freight_products", "created_at")}
}

func (r *TransportedProductRepository) ListByFreight(ctx context.Context, freightID uuid.UUID) ([]model.TransportedProductRow, error) {
	rows := []model.TransportedProductRow{}
	err := r.db.WithContext(ctx).Table("freight_products fp").
		Select(`
			fp.id,
			p.name AS product_name,
			fp.freight_id,
			fp.quantity,
			fp.sku,
			fp.observation
		`).
		Joins("INNER JOIN products p ON p.id = fp.product_id").
		Where("fp.freight_id = ?", freightID).
		Order("p.name").
		Scan(&rows).Error
	return rows, err
}
