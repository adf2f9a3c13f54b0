package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight-service/internal/model"
	"freight-service/internal/pagination"
)

// reference is a column in another table that points at a row's id.
type reference struct {
	table  string
	column string
}

// dependents lists, per table, every foreign key that blocks a delete.
var dependents = map[string][]reference{
	"transports": {
		{"drivers", "transport_id"},
		{"units", "transport_id"},
		{"freights", "transport_id"},
	},
	"drivers": {{"freights", "driver_id"}},
	"units": {
		{"freights", "truck_tractor_id"},
		{"freights", "semi_trailer_id"},
	},
	"policies": {{"units", "policy_id"}},
	"clients": {
		{"routes", "client_id"},
		{"products", "client_id"},
		{"freights", "client_id"},
		{"sale_settlements", "client_id"},
	},
	"products": {{"freight_products", "product_id"}},
	"routes":   {{"freights", "route_id"}},
	"services": {{"freights", "service_id"}},
	"freights": {
		{"sale_settlement_details", "freight_id"},
		{"freight_products", "freight_id"},
		{"outputs", "freight_id"},
	},
	"expense_settlements": {{"freights", "expense_settlement_id"}},
	"sale_settlements":    {{"sale_settlement_details", "sale_settlement_id"}},
	"banks":               {{"outputs", "bank_id"}},
	"output_types":        {{"outputs", "output_type_id"}},
	"users":               {{"outputs", "user_id"}},
}

// dependentsQuery builds one EXISTS over a UNION of every referencing table.
func dependentsQuery(table string) (string, int) {
	refs := dependents[table]
	if len(refs) == 0 {
		return "", 0
	}
	parts := make([]string, len(refs))
	for i, ref := range refs {
		parts[i] = fmt.Sprintf("SELECT 1 FROM %s WHERE %s = ?", ref.table, ref.column)
	}
	return "SELECT EXISTS (" + strings.Join(parts, " UNION ALL ") + ")", len(refs)
}

// Key is one column/value pair of a uniqueness check. Values compare case-insensitively.
type Key struct {
	Column string
	Value  string
}

// crud is the shared data access every entity repository embeds.
type crud[T any] struct {
	db    *gorm.DB
	table string
	order string
}

func newCrud[T any](db *gorm.DB, table, order string) crud[T] {
	return crud[T]{db: db, table: table, order: order}
}

func (c crud[T]) Create(ctx context.Context, v *T) error {
	return c.db.WithContext(ctx).Create(v).Error
}

func (c crud[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var v T
	if err := c.db.WithContext(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (c crud[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	q := c.db.WithContext(ctx)
	if c.order != "" {
		q = q.Order(c.order)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update writes every column except id and created_at.
func (c crud[T]) Update(ctx context.Context, v *T) error {
	res := c.db.WithContext(ctx).Model(v).Select("*").Omit("id", "created_at").Updates(v)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (c crud[T]) Delete(ctx context.Context, id uuid.UUID) error {
	var v T
	res := c.db.WithContext(ctx).Where("id = ?", id).Delete(&v)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (c crud[T]) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := c.db.WithContext(ctx).Table(c.table).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// HasDependents reports whether any registered foreign key still points at id.
func (c crud[T]) HasDependents(ctx context.Context, id uuid.UUID) (bool, error) {
	query, n := dependentsQuery(c.table)
	if n == 0 {
		return false, nil
	}
	args := make([]interface{}, n)
	for i := range args {
		args[i] = id
	}
	var exists bool
	if err := c.db.WithContext(ctx).Raw(query, args...).Scan(&exists).Error; err != nil {
		return false, err
	}
	return exists, nil
}

// Taken reports whether another row already holds all of keys. except is
// skipped so updates can keep their own values; pass uuid.Nil on create.
func (c crud[T]) Taken(ctx context.Context, except uuid.UUID, keys ...Key) (bool, error) {
	q := c.db.WithContext(ctx).Table(c.table)
	for _, k := range keys {
		q = q.Where(fmt.Sprintf("UPPER(%s) = UPPER(?)", k.Column), k.Value)
	}
	if except != uuid.Nil {
		q = q.Where("id <> ?", except)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (c crud[T]) dropdown(ctx context.Context, query string, args ...interface{}) ([]model.DropDownRow, error) {
	rows := []model.DropDownRow{}
	if err := c.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// maxFormattedNumber is the largest number a formatted id's six digits hold.
const maxFormattedNumber = 999999

var ErrFormattedIDExhausted = errors.New("formatted id sequence exhausted")

// nextFormattedID draws the next human code, e.g. F000123, from a sequence.
func nextFormattedID(tx *gorm.DB, prefix, sequence string) (string, error) {
	var n int64
	if err := tx.Raw("SELECT nextval(?::regclass)", sequence).Scan(&n).Error; err != nil {
		return "", err
	}
	if n > maxFormattedNumber {
		return "", fmt.Errorf("%s at %d: %w", sequence, n, ErrFormattedIDExhausted)
	}
	return fmt.Sprintf("%s%06d", prefix, n), nil
}

// paginate counts the rows matched by q and then fetches one page of them
// with the given columns. q carries only the FROM, joins and predicates.
func paginate[R any](q *gorm.DB, columns, order string, page, limit int) ([]R, int64, error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := []R{}
	if total == 0 {
		return rows, 0, nil
	}
	err := q.Session(&gorm.Session{}).
		Select(columns).
		Order(order).
		Offset(pagination.Offset(page, limit)).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
