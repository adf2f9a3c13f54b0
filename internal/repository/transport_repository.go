package repository

import (
	"context"

	"gorm.io/gorm"

	"freight-service/internal/model"
)

type TransportRepository struct {
	crud[model.Transport]
}

func NewTransportRepository(db *gorm.DB) *TransportRepository {
	return &TransportRepository{crud: newCrud[model.Transport](db, "transports", "name")}
}

func (r *TransportRepository) ListCompressed(ctx context.Context) ([]model.TransportCompressed, error) {
	rows := []model.TransportCompressed{}
	err := r.db.WithContext(ctx).Table("transports").
		Select("id, ruc, name, address, telephone").
		Order("name").
		Scan(&rows).Error
	return rows, err
}

func (r *TransportRepository) Dropdown(ctx context.Context) ([]model.DropDownRow, error) {
	return r.dropdown(ctx, `
		SELECT id, SUBSTRING(name FROM 1 FOR 25) AS value
		FROM transports
		ORDER BY name`)
}
