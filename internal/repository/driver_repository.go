package repository

import (
	"context"

	"gorm.io/gorm"

	"freight-service/internal/model"
)

type DriverRepository struct {
	crud[model.Driver]
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{crud: newCrud[model.Driver](db, "drivers", "lastname, name")}
}

// ListCompressed returns the drivers matching every present filter.
func (r *DriverRepository) ListCompressed(ctx context.Context, filter DriverFilter) ([]model.DriverCompressed, error) {
	query := r.db.WithContext(ctx).Table("drivers d").
		Select(`
			d.id,
			d.dni,
			d.dni_image_path,
			d.license,
			d.license_image_path,
			d.contract_image_path,
			d.name,
			d.lastname,
			d.cellphone_one,
			SUBSTRING(t.name FROM 1 FOR 15) AS transport_name
		`).
		Joins("INNER JOIN transports t ON t.id = d.transport_id")

	if filter.Name != nil {
		query = query.Where("UPPER(d.name) LIKE ?", *filter.Name)
	}
	if filter.Lastname != nil {
		query = query.Where("UPPER(d.lastname) LIKE ?", *filter.Lastname)
	}
	if filter.TransportID != nil {
		query = query.Where("d.transport_id = ?", *filter.TransportID)
	}

	rows := []model.DriverCompressed{}
	if err := query.Order("d.name, d.lastname, t.name").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DriverRepository) Dropdown(ctx context.Context, transportID string) ([]model.DropDownRow, error) {
	return r.dropdown(ctx, `
		SELECT id, (name || ', ' || lastname) AS value
		FROM drivers
		WHERE transport_id = ?
		ORDER BY lastname, name`, transportID)
}
