package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	FreightPrefix           = "F"
	ExpenseSettlementPrefix = "L"
	SaleSettlementPrefix    = "V"
)

type Freight struct {
	ID                  uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	FormattedID         string              `gorm:"type:varchar(7);not null;uniqueIndex" json:"formattedId"`
	DateStart           Date                `gorm:"not null" json:"dateStart"`
	DateEnd             *Date               `json:"dateEnd"`
	Grt                 *string             `gorm:"type:varchar(1000)" json:"grt"`
	Grr                 *string             `gorm:"type:varchar(1000)" json:"grr"`
	Ton                 decimal.NullDecimal `gorm:"type:numeric(4,2)" json:"ton"`
	Pallet              *int                `json:"pallet"`
	RouteID             uuid.UUID           `gorm:"type:uuid;not null" json:"routeId"`
	TruckTractorID      uuid.UUID           `gorm:"type:uuid;not null" json:"truckTractorId"`
	SemiTrailerID       uuid.UUID           `gorm:"type:uuid;not null" json:"semiTrailerId"`
	DriverID            uuid.UUID           `gorm:"type:uuid;not null" json:"driverId"`
	TransportID         uuid.UUID           `gorm:"type:uuid;not null" json:"transportId"`
	ClientID            uuid.UUID           `gorm:"type:uuid;not null" json:"clientId"`
	ServiceID           uuid.UUID           `gorm:"type:uuid;not null" json:"serviceId"`
	ExpenseSettlementID *uuid.UUID          `gorm:"type:uuid" json:"expenseSettlementId"`
	Observation         *string             `gorm:"type:text" json:"observation"`
	CreatedAt           time.Time           `gorm:"autoCreateTime" json:"-"`
	UpdatedAt           time.Time           `gorm:"autoUpdateTime" json:"-"`
}

func (Freight) TableName() string {
	return "freights"
}

// TransportedProduct links a product carried by a freight.
type TransportedProduct struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null" json:"productId"`
	FreightID   uuid.UUID `gorm:"type:uuid;not null;index" json:"freightId"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Sku         string    `gorm:"type:varchar(40);not null" json:"sku"`
	Observation *string   `gorm:"type:text" json:"observation"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
}

func (TransportedProduct) TableName() string {
	return "freight_products"
}
