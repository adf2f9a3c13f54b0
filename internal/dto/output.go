package dto

import (
	"freight-service/internal/model"
)

type BankRequest struct {
	ID          string `json:"id" validate:"required,uuidv4"`
	Name        string `json:"name" validate:"required,alphaspace,min=3,max=25"`
	Observation string `json:"observation" validate:"omitempty,min=3,max=100"`
}

func (r *BankRequest) Validate() error {
	return validate(r)
}

func (r *BankRequest) ToModel() model.Bank {
	return model.Bank{
		ID:          parseUUID(r.ID),
		Name:        r.Name,
		Observation: nullable(r.Observation),
	}
}

type OutputTypeRequest struct {
	ID   string `json:"id" validate:"required,uuidv4"`
	Name string `json:"name" validate:"required,alphaspace,min=3,max=25"`
}

func (r *OutputTypeRequest) Validate() error {
	return validate(r)
}

func (r *OutputTypeRequest) ToModel() model.OutputType {
	return model.OutputType{ID: parseUUID(r.ID), Name: r.Name}
}

type OutputRequest struct {
	ID           string `json:"id" validate:"required,uuidv4"`
	BankID       string `json:"bankId" validate:"required,uuidv4"`
	OutputTypeID string `json:"outputTypeId" validate:"required,uuidv4"`
	Date         string `json:"date" validate:"required,isodate"`
	Value        string `json:"value" validate:"required,amount=5"`
	FreightID    string `json:"freightId" validate:"omitempty,uuidv4"`
	Operation    string `json:"operation" validate:"omitempty,operation"`
	Observation  string `json:"observation" validate:"omitempty,min=3,max=100"`
	UserID       string `json:"userId" validate:"omitempty,uuidv4"`
}

func (r *OutputRequest) Validate() error {
	return validate(r)
}

func (r *OutputRequest) ToModel() model.Output {
	return model.Output{
		ID:           parseUUID(r.ID),
		BankID:       parseUUID(r.BankID),
		OutputTypeID: parseUUID(r.OutputTypeID),
		Date:         parseDate(r.Date),
		Value:        parseDecimal(r.Value),
		FreightID:    uuidPtr(r.FreightID),
		Operation:    nullable(r.Operation),
		Observation:  nullable(r.Observation),
		UserID:       uuidPtr(r.UserID),
	}
}
