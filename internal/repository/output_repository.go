package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"freight-service/internal/model"
)

type BankRepository struct {
	crud[model.Bank]
}

func NewBankRepository(db *gorm.DB) *BankRepository {
	return &BankRepository{crud: newCrud[model.Bank](db, "banks", "name")}
}

func (r *BankRepository) Dropdown(ctx context.Context) ([]model.DropDownRow, error) {
	return r.dropdown(ctx, `
		SELECT id, name AS value
		FROM banks
		ORDER BY name`)
}

type OutputTypeRepository struct {
	crud[model.OutputType]
}

func NewOutputTypeRepository(db *gorm.DB) *OutputTypeRepository {
	return &OutputTypeRepository{crud: newCrud[model.OutputType](db, "output_types", "name")}
}

func (r *OutputTypeRepository) Dropdown(ctx context.Context) ([]model.DropDownRow, error) {
	return r.dropdown(ctx, `
		SELECT id, name AS value
		FROM output_types
		ORDER BY name`)
}

const outputColumns = `
	o.id,
	b.name AS bank_name,
	TO_CHAR(o.date, 'DD/MM/YY') AS date,
	o.value,
	o.operation,
	ot.name AS output_type_name,
	f.formatted_id AS freight_formatted_id,
	o.observation,
	(u.name || ' ' || u.lastname) AS user_full_name
`

type OutputRepository struct {
	crud[model.Output]
}

func NewOutputRepository(db *gorm.DB) *OutputRepository {
	return &OutputRepository{crud: newCrud[model.Output](db, "outputs", "date")}
}

func (r *OutputRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("outputs o").
		Select(outputColumns).
		Joins("INNER JOIN banks b ON b.id = o.bank_id").
		Joins("INNER JOIN output_types ot ON ot.id = o.output_type_id").
		Joins("LEFT JOIN freights f ON f.id = o.freight_id").
		Joins("LEFT JOIN users u ON u.id = o.user_id")
}

func (r *OutputRepository) ListByBank(ctx context.Context, filter OutputFilter) ([]model.OutputRow, error) {
	rows := []model.OutputRow{}
	err := r.joined(ctx).
		Where("o.bank_id = ?", filter.BankID).
		Where("o.date BETWEEN ? AND ?", filter.DateStart, filter.DateEnd).
		Order("o.date").
		Scan(&rows).Error
	return rows, err
}

func (r *OutputRepository) ListByFreight(ctx context.Context, freightID uuid.UUID) ([]model.OutputRow, error) {
	rows := []model.OutputRow{}
	err := r.joined(ctx).
		Where("o.freight_id = ?", freightID).
		Order("o.date").
		Scan(&rows).Error
	return rows, err
}

// SumByFreights adds up the outputs tied to any of the freights. No rows sum to zero.
func (r *OutputRepository) SumByFreights(ctx context.Context, freightIDs []uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.WithContext(ctx).Table("outputs").
		Select("COALESCE(SUM(value), 0)").
		Where("freight_id IN ?", freightIDs).
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}
