package dto

import (
	"strings"

	"github.com/google/uuid"

	"freight-service/internal/model"
	"freight-service/internal/validation"
)

type ExpenseSettlementRequest struct {
	ID               string `json:"id" validate:"required,uuidv4"`
	Toll             string `json:"toll" validate:"required,amount=4"`
	Viatic           string `json:"viatic" validate:"required,amount=4"`
	Load             string `json:"load" validate:"required,amount=4"`
	Unload           string `json:"unload" validate:"required,amount=4"`
	Garage           string `json:"garage" validate:"required,amount=3"`
	Washed           string `json:"washed" validate:"required,amount=3"`
	Tire             string `json:"tire" validate:"required,amount=4"`
	Mobility         string `json:"mobility" validate:"required,amount=3"`
	Other            string `json:"other" validate:"required,amount=4"`
	OtherDetail      string `json:"otherDetail" validate:"omitempty,min=3,max=1000"`
	Total            string `json:"total" validate:"required,amount=4"`
	DatePresentation string `json:"datePresentation" validate:"required,isodate"`
	Deposits         string `json:"deposits" validate:"required,amount=4"`
	FavorsTheCompany string `json:"favorsTheCompany" validate:"required,boolstr"`
	Residue          string `json:"residue" validate:"required,samount=4"`
	Cancelled        string `json:"cancelled" validate:"required,boolstr"`
	Observation      string `json:"observation" validate:"omitempty,min=3,max=1000"`
}

func (r *ExpenseSettlementRequest) Validate() error {
	return validate(r)
}

// ApplyTo copies the request over s; the formatted id is left as is.
func (r *ExpenseSettlementRequest) ApplyTo(s *model.ExpenseSettlement) {
	s.ID = parseUUID(r.ID)
	s.Toll = parseDecimal(r.Toll)
	s.Viatic = parseDecimal(r.Viatic)
	s.Load = parseDecimal(r.Load)
	s.Unload = parseDecimal(r.Unload)
	s.Garage = parseDecimal(r.Garage)
	s.Washed = parseDecimal(r.Washed)
	s.Tire = parseDecimal(r.Tire)
	s.Mobility = parseDecimal(r.Mobility)
	s.Other = parseDecimal(r.Other)
	s.OtherDetail = nullable(r.OtherDetail)
	s.Total = parseDecimal(r.Total)
	s.DatePresentation = parseDate(r.DatePresentation)
	s.Deposits = parseDecimal(r.Deposits)
	s.FavorsTheCompany = parseBool(r.FavorsTheCompany)
	s.Residue = parseDecimal(r.Residue)
	s.Cancelled = parseBool(r.Cancelled)
	s.Observation = nullable(r.Observation)
}

type SaleSettlementRequest struct {
	ID              string `json:"id" validate:"required,uuidv4"`
	ClientID        string `json:"clientId" validate:"required,uuidv4"`
	Date            string `json:"date" validate:"required,isodate"`
	ValueWithoutIgv string `json:"valueWithoutIgv" validate:"required,amount=6"`
	ValueIgv        string `json:"valueIgv" validate:"required,amount=6"`
	ValueWithIgv    string `json:"valueWithIgv" validate:"required,amount=6"`
	InvoiceNumber   string `json:"invoiceNumber" validate:"omitempty,invoice"`
	InvoiceDate     string `json:"invoiceDate" validate:"omitempty,isodate"`
	Observation     string `json:"observation" validate:"omitempty,min=3,max=100"`
}

func (r *SaleSettlementRequest) Validate() error {
	return validate(r)
}

func (r *SaleSettlementRequest) ToModel() model.SaleSettlement {
	return model.SaleSettlement{
		ID:              parseUUID(r.ID),
		ClientID:        parseUUID(r.ClientID),
		Date:            parseDate(r.Date),
		ValueWithoutIgv: parseDecimal(r.ValueWithoutIgv),
		ValueIgv:        parseDecimal(r.ValueIgv),
		ValueWithIgv:    parseDecimal(r.ValueWithIgv),
		InvoiceNumber:   nullable(r.InvoiceNumber),
		InvoiceDate:     datePtr(r.InvoiceDate),
		Observation:     nullable(r.Observation),
	}
}

// SaleSettlementUpdateRequest covers the fields editable after creation.
type SaleSettlementUpdateRequest struct {
	Date          string `json:"date" validate:"required,isodate"`
	InvoiceNumber string `json:"invoiceNumber" validate:"omitempty,invoice"`
	InvoiceDate   string `json:"invoiceDate" validate:"omitempty,isodate"`
	Observation   string `json:"observation" validate:"omitempty,min=3,max=100"`
}

func (r *SaleSettlementUpdateRequest) Validate() error {
	return validate(r)
}

func (r *SaleSettlementUpdateRequest) ApplyTo(s *model.SaleSettlement) {
	s.Date = parseDate(r.Date)
	s.InvoiceNumber = nullable(r.InvoiceNumber)
	s.InvoiceDate = datePtr(r.InvoiceDate)
	s.Observation = nullable(r.Observation)
}

type SaleSettlementDetailRequest struct {
	ID                        string `json:"id" validate:"required,uuidv4"`
	FreightID                 string `json:"freightId" validate:"required,uuidv4"`
	ValueWithoutIgv           string `json:"valueWithoutIgv" validate:"required,amount=5"`
	ValueAdditionalWithoutIgv string `json:"valueAdditionalWithoutIgv" validate:"omitempty,amount=5"`
	ValueAdditionalDetail     string `json:"valueAdditionalDetail" validate:"omitempty,min=3,max=100"`
	Observation               string `json:"observation" validate:"omitempty,min=3,max=100"`
}

func (r *SaleSettlementDetailRequest) ToModel(saleSettlementID uuid.UUID) model.SaleSettlementDetail {
	additional := r.ValueAdditionalWithoutIgv
	if additional == "" {
		additional = "0"
	}
	return model.SaleSettlementDetail{
		ID:                        parseUUID(r.ID),
		FreightID:                 parseUUID(r.FreightID),
		ValueWithoutIgv:           parseDecimal(r.ValueWithoutIgv),
		ValueAdditionalWithoutIgv: parseDecimal(additional),
		ValueAdditionalDetail:     nullable(r.ValueAdditionalDetail),
		Observation:               nullable(r.Observation),
		SaleSettlementID:          saleSettlementID,
	}
}

type SaleSettlementDetailList []SaleSettlementDetailRequest

// Validate requires a non-empty list of valid details with distinct ids, each
// billing a different freight.
func (l SaleSettlementDetailList) Validate() error {
	if len(l) == 0 {
		return validation.FieldErrors{"details": "required"}
	}
	ids := make(map[string]struct{}, len(l))
	freights := make(map[string]struct{}, len(l))
	for i := range l {
		if err := validate(&l[i]); err != nil {
			return err
		}
		if _, dup := ids[strings.ToLower(l[i].ID)]; dup {
			return validation.FieldErrors{"id": "unique"}
		}
		if _, dup := freights[strings.ToLower(l[i].FreightID)]; dup {
			return validation.FieldErrors{"freightId": "unique"}
		}
		ids[strings.ToLower(l[i].ID)] = struct{}{}
		freights[strings.ToLower(l[i].FreightID)] = struct{}{}
	}
	return nil
}

func (l SaleSettlementDetailList) ToModels(saleSettlementID uuid.UUID) []model.SaleSettlementDetail {
	details := make([]model.SaleSettlementDetail, 0, len(l))
	for i := range l {
		details = append(details, l[i].ToModel(saleSettlementID))
	}
	return details
}
