package repository

import (
	"context"

	"gorm.io/gorm"

	"freight-service/internal/model"
)

type PolicyRepository struct {
	crud[model.Policy]
}

func NewPolicyRepository(db *gorm.DB) *PolicyRepository {
	return &PolicyRepository{crud: newCrud[model.Policy](db, "policies", "date_start")}
}

func (r *PolicyRepository) Dropdown(ctx context.Context) ([]model.DropDownRow, error) {
	return r.dropdown(ctx, `
		SELECT id, endorsement AS value
		FROM policies
		ORDER BY endorsement`)
}

type SctrRepository struct {
	crud[model.Sctr]
}

func NewSctrRepository(db *gorm.DB) *SctrRepository {
	return &SctrRepository{crud: newCrud[model.Sctr](db, "sctrs", "date_start")}
}

func (r *SctrRepository) Dropdown(ctx context.Context) ([]model.DropDownRow, error) {
	return r.dropdown(ctx, `
		SELECT id, pension_number AS value
		FROM sctrs
		ORDER BY pension_number`)
}
