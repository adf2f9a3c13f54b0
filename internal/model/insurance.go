package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Policy struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Endorsement      string          `gorm:"type:varchar(15);not null" json:"endorsement"`
	DateStart        Date            `gorm:"not null" json:"dateStart"`
	DateEnd          Date            `gorm:"not null" json:"dateEnd"`
	InsuranceCarrier string          `gorm:"type:varchar(50);not null" json:"insuranceCarrier"`
	InsuranceCompany string          `gorm:"type:varchar(50);not null" json:"insuranceCompany"`
	NetPremium       decimal.Decimal `gorm:"type:numeric(9,2);not null" json:"netPremium"`
	Telephone        string          `gorm:"type:varchar(12);not null" json:"telephone"`
	ImagePath        string          `gorm:"type:text;not null" json:"imagePath"`
	Observation      *string         `gorm:"type:text" json:"observation"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"-"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"-"`
}

func (Policy) TableName() string {
	return "policies"
}

type Sctr struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PensionNumber    string    `gorm:"type:varchar(15);not null" json:"pensionNumber"`
	HealthNumber     string    `gorm:"type:varchar(15);not null" json:"healthNumber"`
	DateStart        Date      `gorm:"not null" json:"dateStart"`
	DateEnd          Date      `gorm:"not null" json:"dateEnd"`
	InsuranceCompany string    `gorm:"type:varchar(100);not null" json:"insuranceCompany"`
	ImagePath        string    `gorm:"type:text;not null" json:"imagePath"`
	Observation      *string   `gorm:"type:text" json:"observation"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Sctr) TableName() string {
	return "sctrs"
}
