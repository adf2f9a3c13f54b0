package dto

import (
	"github.com/google/uuid"

	"freight-service/internal/repository"
	"freight-service/internal/validation"
)

// Query parameters arrive as strings. Each ToFilter validates the present
// values, applies the one-year cap where dates are involved and returns the
// repository filter. Invalid input wraps validation.ErrInvalid, a query with
// nothing to narrow on returns validation.ErrNoFilter and a span wider than
// a year returns validation.ErrDateRange.

type DriverQuery struct {
	Name        string `form:"name"`
	Lastname    string `form:"lastname"`
	TransportID string `form:"transportId"`
}

func (q DriverQuery) ToFilter() (repository.DriverFilter, error) {
	f := validation.NewFilter()
	filter := repository.DriverFilter{
		Name:        f.Like("name", q.Name, "min=3,max=50"),
		Lastname:    f.Like("lastname", q.Lastname, "min=3,max=50"),
		TransportID: f.Optional("transportId", q.TransportID, "uuidv4"),
	}
	return filter, f.Err()
}

type UnitQuery struct {
	LicensePlate string `form:"licensePlate"`
	Brand        string `form:"brand"`
	BodyType     string `form:"bodyType"`
	TransportID  string `form:"transportId"`
}

func (q UnitQuery) ToFilter() (repository.UnitFilter, error) {
	f := validation.NewFilter()
	filter := repository.UnitFilter{
		LicensePlate: f.Like("licensePlate", q.LicensePlate, "min=3,max=7"),
		Brand:        f.Like("brand", q.Brand, "min=3,max=25"),
		BodyType:     f.Like("bodyType", q.BodyType, "min=3,max=25"),
		TransportID:  f.Optional("transportId", q.TransportID, "uuidv4"),
	}
	return filter, f.Err()
}

type ProductQuery struct {
	Name     string `form:"name"`
	ClientID string `form:"clientId"`
	Page     string `form:"page"`
}

func (q ProductQuery) ToFilter() (repository.ProductFilter, error) {
	f := validation.NewFilter()
	filter := repository.ProductFilter{
		Name:     f.Like("name", q.Name, "alnumspace,min=3,max=100"),
		ClientID: f.Optional("clientId", q.ClientID, "uuidv4"),
		Page:     f.Page(q.Page),
	}
	return filter, f.Err()
}

type RouteQuery struct {
	Name     string `form:"name"`
	ClientID string `form:"clientId"`
	Page     string `form:"page"`
}

func (q RouteQuery) ToFilter() (repository.RouteFilter, error) {
	f := validation.NewFilter()
	filter := repository.RouteFilter{
		Name:     f.Like("name", q.Name, "routename,min=3,max=100"),
		ClientID: f.Optional("clientId", q.ClientID, "uuidv4"),
		Page:     f.Page(q.Page),
	}
	return filter, f.Err()
}

type FreightQuery struct {
	FormattedID              string `form:"formattedId"`
	ClientID                 string `form:"clientId"`
	DriverFullName           string `form:"driverFullName"`
	RouteName                string `form:"routeName"`
	ServiceID                string `form:"serviceId"`
	TransportID              string `form:"transportId"`
	TruckTractorLicensePlate string `form:"truckTractorLicensePlate"`
	SemiTrailerLicensePlate  string `form:"semiTrailerLicensePlate"`
	DateStart                string `form:"dateStart"`
	DateEnd                  string `form:"dateEnd"`
	Grt                      string `form:"grt"`
	Grr                      string `form:"grr"`
	Page                     string `form:"page"`
}

func (q FreightQuery) ToFilter() (repository.FreightFilter, error) {
	f := validation.NewFilter()
	filter := repository.FreightFilter{
		FormattedID:              f.Like("formattedId", q.FormattedID, "formattedidfilter"),
		ClientID:                 f.Optional("clientId", q.ClientID, "uuidv4"),
		DriverFullName:           f.Like("driverFullName", q.DriverFullName, "alphaspace,min=3,max=50"),
		RouteName:                f.Like("routeName", q.RouteName, "alphaspace,min=3,max=100"),
		ServiceID:                f.Optional("serviceId", q.ServiceID, "uuidv4"),
		TransportID:              f.Optional("transportId", q.TransportID, "uuidv4"),
		TruckTractorLicensePlate: f.Like("truckTractorLicensePlate", q.TruckTractorLicensePlate, "platefilter"),
		SemiTrailerLicensePlate:  f.Like("semiTrailerLicensePlate", q.SemiTrailerLicensePlate, "platefilter"),
		Grt:                      f.Like("grt", q.Grt, "manifest"),
		Grr:                      f.Like("grr", q.Grr, "manifest"),
		Page:                     f.Page(q.Page),
	}

	// dates come as a pair or not at all
	if q.DateStart != "" || q.DateEnd != "" {
		start := f.RequiredDate("dateStart", q.DateStart)
		end := f.RequiredDate("dateEnd", q.DateEnd)
		if err := f.Err(); err != nil {
			return filter, err
		}
		if err := validation.CheckRange(&start, &end); err != nil {
			return filter, err
		}
		filter.DateStart, filter.DateEnd = start, end
		return filter, nil
	}

	filter.DateStart, filter.DateEnd = validation.Bounds(nil, nil)
	return filter, f.Err()
}

type NotLiquidatedQuery struct {
	TransportID string `form:"transportId"`
	DriverID    string `form:"driverId"`
	DateStart   string `form:"dateStart"`
	DateEnd     string `form:"dateEnd"`
}

func (q NotLiquidatedQuery) ToFilter() (repository.NotLiquidatedFilter, error) {
	f := validation.NewFilter()
	filter := repository.NotLiquidatedFilter{
		TransportID: f.Required("transportId", q.TransportID, "uuidv4"),
		DriverID:    f.Required("driverId", q.DriverID, "uuidv4"),
		DateStart:   f.RequiredDate("dateStart", q.DateStart),
		DateEnd:     f.RequiredDate("dateEnd", q.DateEnd),
	}
	if err := f.Err(); err != nil {
		return filter, err
	}
	return filter, validation.CheckRange(&filter.DateStart, &filter.DateEnd)
}

type ClientFreightsQuery struct {
	Liquidated string `form:"liquidated"`
	DateStart  string `form:"dateStart"`
	DateEnd    string `form:"dateEnd"`
}

func (q ClientFreightsQuery) ToFilter(clientID string) (repository.ClientFreightsFilter, error) {
	f := validation.NewFilter()
	filter := repository.ClientFreightsFilter{
		ClientID:   f.Required("clientId", clientID, "uuidv4"),
		Liquidated: f.Required("liquidated", q.Liquidated, "boolstr") == "true",
		DateStart:  f.RequiredDate("dateStart", q.DateStart),
		DateEnd:    f.RequiredDate("dateEnd", q.DateEnd),
	}
	if err := f.Err(); err != nil {
		return filter, err
	}
	return filter, validation.CheckRange(&filter.DateStart, &filter.DateEnd)
}

type ExpenseSettlementQuery struct {
	DateStart  string `form:"dateStart"`
	DateEnd    string `form:"dateEnd"`
	Liquidated string `form:"liquidated"`
}

func (q ExpenseSettlementQuery) ToFilter() (repository.ExpenseSettlementFilter, error) {
	f := validation.NewFilter()
	filter := repository.ExpenseSettlementFilter{
		DateStart:  f.RequiredDate("dateStart", q.DateStart),
		DateEnd:    f.RequiredDate("dateEnd", q.DateEnd),
		Liquidated: f.Required("liquidated", q.Liquidated, "boolstr") == "true",
	}
	if err := f.Err(); err != nil {
		return filter, err
	}
	return filter, validation.CheckRange(&filter.DateStart, &filter.DateEnd)
}

type DateRangeQuery struct {
	DateStart string `form:"dateStart"`
	DateEnd   string `form:"dateEnd"`
}

func (q DateRangeQuery) ToFilter() (repository.DateRangeFilter, error) {
	f := validation.NewFilter()
	filter := repository.DateRangeFilter{
		DateStart: f.RequiredDate("dateStart", q.DateStart),
		DateEnd:   f.RequiredDate("dateEnd", q.DateEnd),
	}
	if err := f.Err(); err != nil {
		return filter, err
	}
	return filter, validation.CheckRange(&filter.DateStart, &filter.DateEnd)
}

type OutputQuery struct {
	BankID    string `form:"bankId"`
	DateStart string `form:"dateStart"`
	DateEnd   string `form:"dateEnd"`
}

func (q OutputQuery) ToFilter() (repository.OutputFilter, error) {
	f := validation.NewFilter()
	filter := repository.OutputFilter{
		BankID:    f.Required("bankId", q.BankID, "uuidv4"),
		DateStart: f.RequiredDate("dateStart", q.DateStart),
		DateEnd:   f.RequiredDate("dateEnd", q.DateEnd),
	}
	if err := f.Err(); err != nil {
		return filter, err
	}
	return filter, validation.CheckRange(&filter.DateStart, &filter.DateEnd)
}

// ID validates a single identifier taken from the path or query string.
func ID(name, raw string) (uuid.UUID, error) {
	f := validation.NewFilter()
	id := f.Required(name, raw, "uuidv4")
	if err := f.Err(); err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(id)
}
