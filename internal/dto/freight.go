package dto

import (
	"encoding/json"

	"github.com/google/uuid"

	"freight-service/internal/model"
	"freight-service/internal/validation"
)

type FreightRequest struct {
	ID             string `json:"id" validate:"required,uuidv4"`
	DateStart      string `json:"dateStart" validate:"required,isodate"`
	DateEnd        string `json:"dateEnd" validate:"omitempty,isodate"`
	RouteID        string `json:"routeId" validate:"required,uuidv4"`
	TruckTractorID string `json:"truckTractorId" validate:"required,uuidv4"`
	SemiTrailerID  string `json:"semiTrailerId" validate:"required,uuidv4"`
	DriverID       string `json:"driverId" validate:"required,uuidv4"`
	TransportID    string `json:"transportId" validate:"required,uuidv4"`
	ClientID       string `json:"clientId" validate:"required,uuidv4"`
	ServiceID      string `json:"serviceId" validate:"required,uuidv4"`
	Grt            string `json:"grt" validate:"omitempty,manifest"`
	Grr            string `json:"grr" validate:"omitempty,manifest"`
	Ton            string `json:"ton" validate:"omitempty,dimension"`
	Pallet         string `json:"pallet" validate:"omitempty,intmin=0,intmax=999"`
	Observation    string `json:"observation" validate:"omitempty,min=3,max=1000"`
}

func (r *FreightRequest) Validate() error {
	return validate(r)
}

// ApplyTo copies the request over f. The formatted id and settlement link are kept.
func (r *FreightRequest) ApplyTo(f *model.Freight) {
	f.ID = parseUUID(r.ID)
	f.DateStart = parseDate(r.DateStart)
	f.DateEnd = datePtr(r.DateEnd)
	f.RouteID = parseUUID(r.RouteID)
	f.TruckTractorID = parseUUID(r.TruckTractorID)
	f.SemiTrailerID = parseUUID(r.SemiTrailerID)
	f.DriverID = parseUUID(r.DriverID)
	f.TransportID = parseUUID(r.TransportID)
	f.ClientID = parseUUID(r.ClientID)
	f.ServiceID = parseUUID(r.ServiceID)
	f.Grt = nullable(r.Grt)
	f.Grr = nullable(r.Grr)
	f.Ton = nullDecimal(r.Ton)
	f.Pallet = intPtr(r.Pallet)
	f.Observation = nullable(r.Observation)
}

// ReconcileRequest attaches freights to an expense settlement, or detaches them
// when the settlement is an explicit null. A body without the key is rejected.
type ReconcileRequest struct {
	ExpenseSettlementID *string  `json:"expenseSettlementId"`
	FreightIDs          []string `json:"-"`

	settlementSet bool
}

func NewReconcileRequest(settlementID *string, freightIDs ...string) ReconcileRequest {
	return ReconcileRequest{ExpenseSettlementID: settlementID, FreightIDs: freightIDs, settlementSet: true}
}

// UnmarshalJSON records whether expenseSettlementId was sent, since an absent
// key and null both decode to a nil pointer.
func (r *ReconcileRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	value, ok := raw["expenseSettlementId"]
	r.settlementSet = ok
	r.ExpenseSettlementID = nil
	if !ok {
		return nil
	}
	return json.Unmarshal(value, &r.ExpenseSettlementID)
}

func (r *ReconcileRequest) Validate() error {
	fields := validation.FieldErrors{}
	if !r.settlementSet {
		fields["expenseSettlementId"] = "required"
	} else if r.ExpenseSettlementID != nil && !validation.IsUUIDv4(*r.ExpenseSettlementID) {
		fields["expenseSettlementId"] = "uuidv4"
	}
	if len(r.FreightIDs) == 0 {
		fields["freightId"] = "required"
	}
	for _, id := range r.FreightIDs {
		if !validation.IsUUIDv4(id) {
			fields["freightId"] = "uuidv4"
			break
		}
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}

func (r *ReconcileRequest) SettlementID() *uuid.UUID {
	if r.ExpenseSettlementID == nil {
		return nil
	}
	return uuidPtr(*r.ExpenseSettlementID)
}

func (r *ReconcileRequest) IDs() []uuid.UUID {
	return parseUUIDs(r.FreightIDs)
}

type TransportedProductRequest struct {
	ID          string `json:"id" validate:"required,uuidv4"`
	ProductID   string `json:"productId" validate:"required,uuidv4"`
	FreightID   string `json:"freightId" validate:"required,uuidv4"`
	Quantity    string `json:"quantity" validate:"required,intmin=1,intmax=2147483647"`
	Sku         string `json:"sku" validate:"required,sku"`
	Observation string `json:"observation" validate:"omitempty,min=3,max=100"`
}

func (r *TransportedProductRequest) Validate() error {
	return validate(r)
}

func (r *TransportedProductRequest) ToModel() model.TransportedProduct {
	return model.TransportedProduct{
		ID:          parseUUID(r.ID),
		ProductID:   parseUUID(r.ProductID),
		FreightID:   parseUUID(r.FreightID),
		Quantity:    *intPtr(r.Quantity),
		Sku:         r.Sku,
		Observation: nullable(r.Observation),
	}
}

func parseUUIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		ids = append(ids, parseUUID(s))
	}
	return ids
}

// FreightIDList validates a repeated freightId query parameter.
func FreightIDList(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, validation.FieldErrors{"freightId": "required"}
	}
	for _, id := range raw {
		if !validation.IsUUIDv4(id) {
			return nil, validation.FieldErrors{"freightId": "uuidv4"}
		}
	}
	return parseUUIDs(raw), nil
}
