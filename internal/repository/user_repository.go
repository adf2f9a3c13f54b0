package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"freight-service/internal/model"
)

type UserRepository struct {
	crud[model.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{crud: newCrud[model.User](db, "users", "lastname, name")}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetWithRole loads the user and its role in one round trip.
func (r *UserRepository) GetWithRole(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Joins("Role").
		Where("users.id = ?", id).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

const userViewColumns = `
	u.id,
	u.name,
	u.lastname,
	u.email,
	u.role_id,
	r.name AS role_name
`

func (r *UserRepository) ListViews(ctx context.Context) ([]model.UserView, error) {
	rows := []model.UserView{}
	err := r.db.WithContext(ctx).Table("users u").
		Select(userViewColumns).
		Joins("INNER JOIN roles r ON r.id = u.role_id").
		Order("u.lastname, u.name").
		Scan(&rows).Error
	return rows, err
}

func (r *UserRepository) GetView(ctx context.Context, id uuid.UUID) (*model.UserView, error) {
	var rows []model.UserView
	err := r.db.WithContext(ctx).Table("users u").
		Select(userViewColumns).
		Joins("INNER JOIN roles r ON r.id = u.role_id").
		Where("u.id = ?", id).
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

// UpdatePassword stores a new hash. Missing users yield gorm.ErrRecordNotFound.
func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("password", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplacePassword locks the user row, hands the stored hash to next and
// saves the hash it returns. An error from next aborts without writing.
func (r *UserRepository) ReplacePassword(ctx context.Context, id uuid.UUID, next func(current string) (string, error)) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u model.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&u).Error
		if err != nil {
			return err
		}
		hash, err := next(u.Password)
		if err != nil {
			return err
		}
		return tx.Model(&u).Update("password", hash).Error
	})
}

func (r *UserRepository) RoleExists(ctx context.Context, roleID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("roles").Where("id = ?", roleID).Count(&count).Error
	return count > 0, err
}
