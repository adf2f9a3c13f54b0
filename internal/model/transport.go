package model

import (
	"time"

	"github.com/google/uuid"
)

type Transport struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Ruc         string    `gorm:"type:varchar(11);not null;uniqueIndex" json:"ruc"`
	Name        string    `gorm:"type:varchar(50);not null" json:"name"`
	Address     string    `gorm:"type:varchar(100);not null" json:"address"`
	Telephone   string    `gorm:"type:varchar(12);not null" json:"telephone"`
	Observation *string   `gorm:"type:text" json:"observation"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Transport) TableName() string {
	return "transports"
}

type Driver struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Dni               string    `gorm:"type:varchar(8);not null;uniqueIndex" json:"dni"`
	DniImagePath      string    `gorm:"type:text;not null" json:"dniImagePath"`
	DniDateStart      Date      `gorm:"not null" json:"dniDateStart"`
	DniDateEnd        Date      `gorm:"not null" json:"dniDateEnd"`
	License           string    `gorm:"type:varchar(9);not null;uniqueIndex" json:"license"`
	LicenseImagePath  string    `gorm:"type:text;not null" json:"licenseImagePath"`
	LicenseDateStart  Date      `gorm:"not null" json:"licenseDateStart"`
	LicenseDateEnd    Date      `gorm:"not null" json:"licenseDateEnd"`
	Name              string    `gorm:"type:varchar(50);not null" json:"name"`
	Lastname          string    `gorm:"type:varchar(50);not null" json:"lastname"`
	CellphoneOne      string    `gorm:"type:varchar(9);not null" json:"cellphoneOne"`
	CellphoneTwo      *string   `gorm:"type:varchar(9)" json:"cellphoneTwo"`
	DateStart         Date      `gorm:"not null" json:"dateStart"`
	DateEnd           *Date     `json:"dateEnd"`
	ContractImagePath *string   `gorm:"type:text" json:"contractImagePath"`
	Observation       *string   `gorm:"type:text" json:"observation"`
	TransportID       uuid.UUID `gorm:"type:uuid;not null;index" json:"transportId"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Driver) TableName() string {
	return "drivers"
}

// ImagePaths lists the stored document URLs keyed by upload field.
func (d *Driver) ImagePaths() map[string]string {
	paths := map[string]string{
		"dniImage":     d.DniImagePath,
		"licenseImage": d.LicenseImagePath,
	}
	if d.ContractImagePath != nil {
		paths["contractImage"] = *d.ContractImagePath
	}
	return paths
}

// SetImagePath stores url under the path column of an upload field.
func (d *Driver) SetImagePath(field, url string) {
	switch field {
	case "dniImage":
		d.DniImagePath = url
	case "licenseImage":
		d.LicenseImagePath = url
	case "contractImage":
		d.ContractImagePath = &url
	}
}
