package dto

import (
	"freight-service/internal/model"
)

type ClientRequest struct {
	ID          string `json:"id" validate:"required,uuidv4"`
	Ruc         string `json:"ruc" validate:"required,ruc"`
	Name        string `json:"name" validate:"required,min=3,max=50,alnumspace"`
	Address     string `json:"address" validate:"required,min=3,max=100"`
	Observation string `json:"observation" validate:"omitempty,min=3,max=1000"`
}

func (r *ClientRequest) Validate() error {
	return validate(r)
}

func (r *ClientRequest) ToModel() model.Client {
	return model.Client{
		ID:          parseUUID(r.ID),
		Ruc:         r.Ruc,
		Name:        r.Name,
		Address:     r.Address,
		Observation: nullable(r.Observation),
	}
}

type ProductRequest struct {
	ID          string `json:"id" validate:"required,uuidv4"`
	Name        string `json:"name" validate:"required,alnumspace,min=3,max=100"`
	ClientID    string `json:"clientId" validate:"required,uuidv4"`
	Observation string `json:"observation" validate:"omitempty,min=3,max=100"`
}

func (r *ProductRequest) Validate() error {
	return validate(r)
}

func (r *ProductRequest) ToModel() model.Product {
	return model.Product{
		ID:          parseUUID(r.ID),
		Name:        r.Name,
		ClientID:    parseUUID(r.ClientID),
		Observation: nullable(r.Observation),
	}
}

type RouteRequest struct {
	ID           string `json:"id" validate:"required,uuidv4"`
	Name         string `json:"name" validate:"required,routename,min=3,max=100"`
	AddressStart string `json:"addressStart" validate:"required,address,min=6,max=300"`
	AddressEnd   string `json:"addressEnd" validate:"required,address,min=6,max=300"`
	ClientStart  string `json:"clientStart" validate:"required,place,min=3,max=100"`
	ClientEnd    string `json:"clientEnd" validate:"required,place,min=3,max=100"`
	Value        string `json:"value" validate:"required,amount=5"`
	ClientID     string `json:"clientId" validate:"required,uuidv4"`
	Observation  string `json:"observation" validate:"omitempty,min=3,max=1000"`
}

func (r *RouteRequest) Validate() error {
	return validate(r)
}

func (r *RouteRequest) ToModel() model.Route {
	return model.Route{
		ID:           parseUUID(r.ID),
		Name:         r.Name,
		AddressStart: r.AddressStart,
		AddressEnd:   r.AddressEnd,
		ClientStart:  r.ClientStart,
		ClientEnd:    r.ClientEnd,
		Value:        parseDecimal(r.Value),
		ClientID:     parseUUID(r.ClientID),
		Observation:  nullable(r.Observation),
	}
}

type ServiceRequest struct {
	ID   string `json:"id" validate:"required,uuidv4"`
	Name string `json:"name" validate:"required,alphaspace,min=3,max=25"`
}

func (r *ServiceRequest) Validate() error {
	return validate(r)
}

func (r *ServiceRequest) ToModel() model.Service {
	return model.Service{ID: parseUUID(r.ID), Name: r.Name}
}
