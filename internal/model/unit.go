package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BodyTypes is the catalogue offered by the body type dropdown and accepted on write.
var BodyTypes = []string{
	"Remolcador",
	"Plataforma",
	"Baranda",
	"Furgon",
	"Furgon Isotermico",
	"Furgon Frigorifico",
	"Cañero",
	"Cigueña",
	"Cisterna",
	"Cisterna Combustible",
	"Tanque Isotermico",
	"Tanque Frigorifico",
	"Tanque Corrosivo",
	"Tanque Calorifico",
	"Tanque GLP",
	"Tanque GNC",
	"Tanque Criogenico",
	"Porta Contenedor",
	"Quilla",
	"Bombona",
	"Granelero",
	"Volquete",
	"Cama Baja",
	"Dolly",
	"Madrina",
	"Hormigonera",
	"Mezclador",
}

type Unit struct {
	ID                       uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	LicensePlate             string              `gorm:"type:varchar(7);not null;uniqueIndex" json:"licensePlate"`
	Year                     *int                `json:"year"`
	Brand                    string              `gorm:"type:varchar(25);not null" json:"brand"`
	Model                    *string             `gorm:"type:varchar(25)" json:"model"`
	EngineNumber             *string             `gorm:"type:varchar(25);uniqueIndex" json:"engineNumber"`
	ChassisNumber            *string             `gorm:"type:varchar(25);uniqueIndex" json:"chassisNumber"`
	Color                    string              `gorm:"type:varchar(25);not null" json:"color"`
	NumberCylinders          *int                `json:"numberCylinders"`
	NumberAxles              *int                `json:"numberAxles"`
	NumberTires              *int                `json:"numberTires"`
	NumberSeats              *int                `json:"numberSeats"`
	DryWeight                decimal.NullDecimal `gorm:"type:numeric(5,3)" json:"dryWeight"`
	GrossWeight              decimal.NullDecimal `gorm:"type:numeric(5,3)" json:"grossWeight"`
	UsefulLoad               decimal.NullDecimal `gorm:"type:numeric(5,3)" json:"usefulLoad"`
	Length                   decimal.NullDecimal `gorm:"type:numeric(4,2)" json:"length"`
	Height                   decimal.NullDecimal `gorm:"type:numeric(4,2)" json:"height"`
	Width                    decimal.NullDecimal `gorm:"type:numeric(4,2)" json:"width"`
	BodyType                 string              `gorm:"type:varchar(25);not null" json:"bodyType"`
	PolicyID                 *uuid.UUID          `gorm:"type:uuid;index" json:"policyId"`
	TechnicalReviewImagePath *string             `gorm:"type:text" json:"technicalReviewImagePath"`
	TechnicalReviewDateStart *Date               `json:"technicalReviewDateStart"`
	TechnicalReviewDateEnd   *Date               `json:"technicalReviewDateEnd"`
	MtcImagePath             *string             `gorm:"type:text" json:"mtcImagePath"`
	MtcDateStart             *Date               `json:"mtcDateStart"`
	MtcDateEnd               *Date               `json:"mtcDateEnd"`
	PropertyCardImagePath    *string             `gorm:"type:text" json:"propertyCardImagePath"`
	PropertyCardDateStart    *Date               `json:"propertyCardDateStart"`
	PropertyCardDateEnd      *Date               `json:"propertyCardDateEnd"`
	SoatImagePath            *string             `gorm:"type:text" json:"soatImagePath"`
	SoatDateStart            *Date               `json:"soatDateStart"`
	SoatDateEnd              *Date               `json:"soatDateEnd"`
	Observation              *string             `gorm:"type:text" json:"observation"`
	TransportID              uuid.UUID           `gorm:"type:uuid;not null;index" json:"transportId"`
	CreatedAt                time.Time           `gorm:"autoCreateTime" json:"-"`
	UpdatedAt                time.Time           `gorm:"autoUpdateTime" json:"-"`
}

func (Unit) TableName() string {
	return "units"
}

func (u *Unit) ImagePaths() map[string]string {
	paths := map[string]string{}
	for field, path := range map[string]*string{
		"technicalReviewImage": u.TechnicalReviewImagePath,
		"mtcImage":             u.MtcImagePath,
		"propertyCardImage":    u.PropertyCardImagePath,
		"soatImage":            u.SoatImagePath,
	} {
		if path != nil && *path != "" {
			paths[field] = *path
		}
	}
	return paths
}

func (u *Unit) SetImagePath(field, url string) {
	switch field {
	case "technicalReviewImage":
		u.TechnicalReviewImagePath = &url
	case "mtcImage":
		u.MtcImagePath = &url
	case "propertyCardImage":
		u.PropertyCardImagePath = &url
	case "soatImage":
		u.SoatImagePath = &url
	}
}
