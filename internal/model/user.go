package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ManagerRoleMarker identifies the manager role ("Gerente") by case-insensitive substring.
const ManagerRoleMarker = "GERENTE"

type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
}

func (Role) TableName() string {
	return "roles"
}

func (r Role) IsManager() bool {
	return strings.Contains(strings.ToUpper(r.Name), ManagerRoleMarker)
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(25);not null" json:"name"`
	Lastname  string    `gorm:"type:varchar(50);not null" json:"lastname"`
	Email     string    `gorm:"type:varchar(254);not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	RoleID    uuid.UUID `gorm:"type:uuid;not null" json:"roleId"`
	Role      *Role     `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// Principal is the authenticated caller extracted from a bearer token.
type Principal struct {
	UserID uuid.UUID
}
