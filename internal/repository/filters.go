package repository

import (
	"time"
)

// String filters marked LIKE hold an upper-cased %value% pattern.

type DriverFilter struct {
	Name        *string // LIKE
	Lastname    *string // LIKE
	TransportID *string
}

type UnitFilter struct {
	LicensePlate *string // LIKE
	Brand        *string // LIKE
	BodyType     *string // LIKE
	TransportID  *string
}

type ProductFilter struct {
	Name     *string // LIKE
	ClientID *string
	Page     int
}

type RouteFilter struct {
	Name     *string // LIKE
	ClientID *string
	Page     int
}

type FreightFilter struct {
	FormattedID              *string // LIKE
	RouteName                *string // LIKE
	DriverFullName           *string // LIKE
	TruckTractorLicensePlate *string // LIKE
	SemiTrailerLicensePlate  *string // LIKE
	Grt                      *string // LIKE
	Grr                      *string // LIKE
	ClientID                 *string
	ServiceID                *string
	TransportID              *string
	DateStart                time.Time
	DateEnd                  time.Time
	Page                     int
}

type NotLiquidatedFilter struct {
	TransportID string
	DriverID    string
	DateStart   time.Time
	DateEnd     time.Time
}

type ClientFreightsFilter struct {
	ClientID   string
	Liquidated bool
	DateStart  time.Time
	DateEnd    time.Time
}

type ExpenseSettlementFilter struct {
	Liquidated bool
	DateStart  time.Time
	DateEnd    time.Time
}

type DateRangeFilter struct {
	DateStart time.Time
	DateEnd   time.Time
}

type OutputFilter struct {
	BankID    string
	DateStart time.Time
	DateEnd   time.Time
}
