package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Bank struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(25);not null;uniqueIndex" json:"name"`
	Observation *string   `gorm:"type:varchar(100)" json:"observation"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Bank) TableName() string {
	return "banks"
}

type OutputType struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(25);not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (OutputType) TableName() string {
	return "output_types"
}

// Output is a money movement out of a bank account, optionally tied to a freight.
type Output struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	BankID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"bankId"`
	Date         Date            `gorm:"not null" json:"date"`
	Value        decimal.Decimal `gorm:"type:numeric(7,2);not null" json:"value"`
	Operation    *string         `gorm:"type:varchar(25)" json:"operation"`
	OutputTypeID uuid.UUID       `gorm:"type:uuid;not null" json:"outputTypeId"`
	FreightID    *uuid.UUID      `gorm:"type:uuid;index" json:"freightId"`
	UserID       *uuid.UUID      `gorm:"type:uuid" json:"userId"`
	Observation  *string         `gorm:"type:varchar(100)" json:"observation"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"-"`
}

func (Output) TableName() string {
	return "outputs"
}
