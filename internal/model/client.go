package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Client struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Ruc         string    `gorm:"type:varchar(11);not null;uniqueIndex" json:"ruc"`
	Name        string    `gorm:"type:varchar(50);not null" json:"name"`
	Address     string    `gorm:"type:varchar(100);not null" json:"address"`
	Observation *string   `gorm:"type:text" json:"observation"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Client) TableName() string {
	return "clients"
}

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	ClientID    uuid.UUID `gorm:"type:uuid;not null;index" json:"clientId"`
	Observation *string   `gorm:"type:text" json:"observation"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

type Route struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string          `gorm:"type:varchar(100);not null" json:"name"`
	AddressStart string          `gorm:"type:varchar(300);not null" json:"addressStart"`
	AddressEnd   string          `gorm:"type:varchar(300);not null" json:"addressEnd"`
	ClientStart  string          `gorm:"type:varchar(100);not null" json:"clientStart"`
	ClientEnd    string          `gorm:"type:varchar(100);not null" json:"clientEnd"`
	Value        decimal.Decimal `gorm:"type:numeric(7,2);not null" json:"value"`
	ClientID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"clientId"`
	Observation  *string         `gorm:"type:text" json:"observation"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"-"`
}

func (Route) TableName() string {
	return "routes"
}

type Service struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(25);not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Service) TableName() string {
	return "services"
}
