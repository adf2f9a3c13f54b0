package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseSettlement struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	FormattedID      string          `gorm:"type:varchar(7);not null;uniqueIndex" json:"formattedId"`
	Toll             decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"toll"`
	Viatic           decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"viatic"`
	Load             decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"load"`
	Unload           decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"unload"`
	Garage           decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"garage"`
	Washed           decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"washed"`
	Tire             decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"tire"`
	Mobility         decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"mobility"`
	Other            decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"other"`
	OtherDetail      *string         `gorm:"type:text" json:"otherDetail"`
	Total            decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"total"`
	Deposits         decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"deposits"`
	FavorsTheCompany bool            `gorm:"not null" json:"favorsTheCompany"`
	Residue          decimal.Decimal `gorm:"type:numeric(7,2);not null" json:"residue"`
	Cancelled        bool            `gorm:"not null" json:"cancelled"`
	DatePresentation Date            `gorm:"not null" json:"datePresentation"`
	Observation      *string         `gorm:"type:text" json:"observation"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"-"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"-"`
}

func (ExpenseSettlement) TableName() string {
	return "expense_settlements"
}

type SaleSettlement struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	FormattedID     string          `gorm:"type:varchar(7);not null;uniqueIndex" json:"formattedId"`
	Date            Date            `gorm:"not null" json:"date"`
	ValueWithoutIgv decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"valueWithoutIgv"`
	ValueIgv        decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"valueIgv"`
	ValueWithIgv    decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"valueWithIgv"`
	ClientID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"clientId"`
	InvoiceNumber   *string         `gorm:"type:varchar(13)" json:"invoiceNumber"`
	InvoiceDate     *Date           `json:"invoiceDate"`
	Observation     *string         `gorm:"type:text" json:"observation"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"-"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"-"`
}

func (SaleSettlement) TableName() string {
	return "sale_settlements"
}

type SaleSettlementDetail struct {
	ID                        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	FreightID                 uuid.UUID       `gorm:"type:uuid;not null;index" json:"freightId"`
	ValueWithoutIgv           decimal.Decimal `gorm:"type:numeric(7,2);not null" json:"valueWithoutIgv"`
	ValueAdditionalWithoutIgv decimal.Decimal `gorm:"type:numeric(7,2);not null;default:0" json:"valueAdditionalWithoutIgv"`
	ValueAdditionalDetail     *string         `gorm:"type:varchar(100)" json:"valueAdditionalDetail"`
	Observation               *string         `gorm:"type:varchar(100)" json:"observation"`
	SaleSettlementID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"saleSettlementId"`
	CreatedAt                 time.Time       `gorm:"autoCreateTime" json:"-"`
}

func (SaleSettlementDetail) TableName() string {
	return "sale_settlement_details"
}
