package model

import (
	"github.com/shopspring/decimal"
)

// Read models returned by listing queries. Dates are preformatted by the database.

type DropDownRow struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

type TransportCompressed struct {
	ID        string `json:"id"`
	Ruc       string `json:"ruc"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Telephone string `json:"telephone"`
}

type DriverCompressed struct {
	ID                string  `json:"id"`
	Dni               string  `json:"dni"`
	DniImagePath      string  `json:"dniImagePath"`
	License           string  `json:"license"`
	LicenseImagePath  string  `json:"licenseImagePath"`
	ContractImagePath *string `json:"contractImagePath"`
	Name              string  `json:"name"`
	Lastname          string  `json:"lastname"`
	CellphoneOne      string  `json:"cellphoneOne"`
	TransportName     string  `json:"transportName"`
}

type UnitCompressed struct {
	ID                string              `json:"id"`
	LicensePlate      string              `json:"licensePlate"`
	Brand             string              `json:"brand"`
	Color             string              `json:"color"`
	Length            decimal.NullDecimal `json:"length"`
	Height            decimal.NullDecimal `json:"height"`
	Width             decimal.NullDecimal `json:"width"`
	DryWeight         decimal.NullDecimal `json:"dryWeight"`
	GrossWeight       decimal.NullDecimal `json:"grossWeight"`
	UsefulLoad        decimal.NullDecimal `json:"usefulLoad"`
	BodyType          string              `json:"bodyType"`
	PolicyEndorsement *string             `json:"policyEndorsement"`
	PolicyImagePath   *string             `json:"policyImagePath"`
	TransportName     string              `json:"transportName"`
}

type ProductCompressed struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ClientName string `json:"clientName"`
}

type RouteCompressed struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	AddressStart string          `json:"addressStart"`
	AddressEnd   string          `json:"addressEnd"`
	ClientStart  string          `json:"clientStart"`
	ClientEnd    string          `json:"clientEnd"`
	Value        decimal.Decimal `json:"value"`
	ClientName   string          `json:"clientName"`
}

type FreightCompressed struct {
	ID                       string              `json:"id"`
	FormattedID              string              `json:"formattedId"`
	DateStart                string              `json:"dateStart"`
	DateEnd                  *string             `json:"dateEnd"`
	Ton                      decimal.NullDecimal `json:"ton,omitempty"`
	Grt                      *string             `json:"grt,omitempty"`
	Grr                      *string             `json:"grr,omitempty"`
	RouteName                string              `json:"routeName"`
	TruckTractorLicensePlate string              `json:"truckTractorLicensePlate"`
	SemiTrailerLicensePlate  string              `json:"semiTrailerLicensePlate"`
	DriverFullName           string              `json:"driverFullName"`
	TransportName            string              `json:"transportName"`
	ClientName               string              `json:"clientName"`
	ServiceName              string              `json:"serviceName"`
}

// ClientFreightRow is a freight seen from the sale settlement side of a client.
type ClientFreightRow struct {
	ID                        string              `json:"id"`
	FreightFormattedID        string              `json:"freightFormattedId"`
	DateStart                 string              `json:"dateStart"`
	DateEnd                   *string             `json:"dateEnd"`
	RouteName                 string              `json:"routeName"`
	Ton                       decimal.NullDecimal `json:"ton"`
	Grt                       *string             `json:"grt"`
	Grr                       *string             `json:"grr"`
	TruckTractorLicensePlate  string              `json:"truckTractorLicensePlate"`
	SemiTrailerLicensePlate   string              `json:"semiTrailerLicensePlate"`
	DriverFullName            string              `json:"driverFullName"`
	TransportName             string              `json:"transportName"`
	ClientName                string              `json:"clientName"`
	ClientID                  string              `json:"clientId"`
	ServiceName               string              `json:"serviceName"`
	ValueWithoutIgv           decimal.Decimal     `json:"valueWithoutIgv"`
	ValueAdditionalWithoutIgv decimal.Decimal     `json:"valueAdditionalWithoutIgv"`
	ValueAdditionalDetail     *string             `json:"valueAdditionalDetail"`
	DetailObservation         *string             `json:"detailObservation"`
	Observation               *string             `json:"observation"`
}

type ExpenseSettlementReportRow struct {
	ID                           *string              `json:"id"`
	FreightID                    string               `json:"freightId"`
	FreightFormattedID           string               `json:"freightFormattedId"`
	ExpenseSettlementFormattedID *string              `json:"expenseSettlementFormattedId"`
	RouteName                    string               `json:"routeName"`
	ClientName                   string               `json:"clientName"`
	TruckTractorLicensePlate     string               `json:"truckTractorLicensePlate"`
	SemiTrailerLicensePlate      string               `json:"semiTrailerLicensePlate"`
	DriverFullName               string               `json:"driverFullName"`
	TransportName                string               `json:"transportName"`
	DateStart                    string               `json:"dateStart"`
	DateEnd                      *string              `json:"dateEnd"`
	ServiceName                  string               `json:"serviceName"`
	DatePresentation             *string              `json:"datePresentation"`
	Toll                         decimal.NullDecimal  `json:"toll"`
	Viatic                       decimal.NullDecimal  `json:"viatic"`
	Load                         decimal.NullDecimal  `json:"load"`
	Unload                       decimal.NullDecimal  `json:"unload"`
	Garage                       decimal.NullDecimal  `json:"garage"`
	Washed                       decimal.NullDecimal  `json:"washed"`
	Tire                         decimal.NullDecimal  `json:"tire"`
	Mobility                     decimal.NullDecimal  `json:"mobility"`
	Other                        decimal.NullDecimal  `json:"other"`
	OtherDetail                  *string              `json:"otherDetail"`
	Total                        decimal.NullDecimal  `json:"total"`
	Deposits                     decimal.NullDecimal  `json:"deposits"`
	FavorsTheCompany             *bool                `json:"favorsTheCompany"`
	Residue                      decimal.NullDecimal  `json:"residue"`
	Cancelled                    *bool                `json:"cancelled"`
	Observation                  *string              `json:"observation"`
}

type SaleSettlementRow struct {
	ID              string          `json:"id"`
	FormattedID     string          `json:"formattedId"`
	Date            string          `json:"date"`
	ValueWithoutIgv decimal.Decimal `json:"valueWithoutIgv"`
	ClientID        string          `json:"clientId,omitempty"`
	ClientName      string          `json:"clientName"`
	Observation     *string         `json:"observation"`
	ValueIgv        decimal.Decimal `json:"valueIgv"`
	ValueWithIgv    decimal.Decimal `json:"valueWithIgv"`
	InvoiceNumber   *string         `json:"invoiceNumber"`
	InvoiceDate     *string         `json:"invoiceDate"`
}

type SaleSettlementDetailRow struct {
	ID                        string              `json:"id"`
	FreightFormattedID        string              `json:"freightFormattedId"`
	RouteName                 string              `json:"routeName"`
	ClientName                string              `json:"clientName"`
	TruckTractorLicensePlate  string              `json:"truckTractorLicensePlate"`
	SemiTrailerLicensePlate   string              `json:"semiTrailerLicensePlate"`
	DriverFullName            string              `json:"driverFullName"`
	TransportName             string              `json:"transportName"`
	DateStart                 string              `json:"dateStart"`
	DateEnd                   *string             `json:"dateEnd"`
	ServiceName               string              `json:"serviceName"`
	Grt                       *string             `json:"grt"`
	Grr                       *string             `json:"grr"`
	Ton                       decimal.NullDecimal `json:"ton"`
	Pallet                    *int                `json:"pallet"`
	ValueWithoutIgv           decimal.Decimal     `json:"valueWithoutIgv"`
	ValueAdditionalWithoutIgv decimal.Decimal     `json:"valueAdditionalWithoutIgv"`
	ValueAdditionalDetail     *string             `json:"valueAdditionalDetail"`
	Observation               *string             `json:"observation"`
}

type OutputRow struct {
	ID                 string          `json:"id"`
	BankName           string          `json:"bankName"`
	Date               string          `json:"date"`
	Value              decimal.Decimal `json:"value"`
	Operation          *string         `json:"operation"`
	OutputTypeName     string          `json:"outputTypeName"`
	FreightFormattedID *string         `json:"freightFormattedId"`
	Observation        *string         `json:"observation"`
	UserFullName       *string         `json:"userFullName"`
}

type FreightOutputs struct {
	Rows        []OutputRow     `json:"rows"`
	AllDeposits decimal.Decimal `json:"allDeposits"`
}

type TransportedProductRow struct {
	ID          string  `json:"id"`
	ProductName string  `json:"productName"`
	FreightID   string  `json:"freightId"`
	Quantity    int     `json:"quantity"`
	Sku         string  `json:"sku"`
	Observation *string `json:"observation"`
}

type UserView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	RoleID   string `json:"roleId"`
	RoleName string `json:"roleName"`
}
