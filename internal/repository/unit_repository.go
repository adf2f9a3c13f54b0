package repository

import (
	"context"

	"gorm.io/gorm"

	"freight-service/internal/model"
)

type UnitRepository struct {
	crud[model.Unit]
}

func NewUnitRepository(db *gorm.DB) *UnitRepository {
	return &UnitRepository{crud: newCrud[model.Unit](db, "units", "license_plate")}
}

// ListCompressed joins the policy so the grid can link its document.
func (r *UnitRepository) ListCompressed(ctx context.Context, filter UnitFilter) ([]model.UnitCompressed, error) {
	query := r.db.WithContext(ctx).Table("units u").
		Select(`
			u.id,
			u.license_plate,
			u.brand,
			u.color,
			u.length,
			u.height,
			u.width,
			u.dry_weight,
			u.gross_weight,
			u.useful_load,
			u.body_type,
			p.endorsement AS policy_endorsement,
			p.image_path AS policy_image_path,
			SUBSTRING(t.name FROM 1 FOR 15) AS transport_name
		`).
		Joins("LEFT JOIN policies p ON p.id = u.policy_id").
		Joins("INNER JOIN transports t ON t.id = u.transport_id")

	if filter.LicensePlate != nil {
		query = query.Where("UPPER(u.license_plate) LIKE ?", *filter.LicensePlate)
	}
	if filter.Brand != nil {
		query = query.Where("UPPER(u.brand) LIKE ?", *filter.Brand)
	}
	if filter.BodyType != nil {
		query = query.Where("UPPER(u.body_type) LIKE ?", *filter.BodyType)
	}
	if filter.TransportID != nil {
		query = query.Where("u.transport_id = ?", *filter.TransportID)
	}

	rows := []model.UnitCompressed{}
	if err := query.Order("u.brand, u.body_type").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *UnitRepository) Dropdown(ctx context.Context, transportID string) ([]model.DropDownRow, error) {
	return r.dropdown(ctx, `
		SELECT id, license_plate AS value
		FROM units
		WHERE transport_id = ?
		ORDER BY license_plate`, transportID)
}
