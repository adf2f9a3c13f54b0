package dto

import (
	"freight-service/internal/model"
)

type TransportRequest struct {
	ID          string `json:"id" validate:"required,uuidv4"`
	Ruc         string `json:"ruc" validate:"required,ruc"`
	Name        string `json:"name" validate:"required,min=3,max=50,alnumspace"`
	Address     string `json:"address" validate:"required,min=3,max=100"`
	Telephone   string `json:"telephone" validate:"required,telephone"`
	Observation string `json:"observation" validate:"omitempty,min=3,max=1000"`
}

func (r *TransportRequest) Validate() error {
	return validate(r)
}

func (r *TransportRequest) ToModel() model.Transport {
	return model.Transport{
		ID:          parseUUID(r.ID),
		Ruc:         r.Ruc,
		Name:        r.Name,
		Address:     r.Address,
		Telephone:   r.Telephone,
		Observation: nullable(r.Observation),
	}
}

// DriverRequest carries the text fields of the multipart driver form.
// Image paths are set from uploaded files, never from the form.
type DriverRequest struct {
	ID               string `json:"id" form:"id" validate:"required,uuidv4"`
	Dni              string `json:"dni" form:"dni" validate:"required,dni"`
	DniDateStart     string `json:"dniDateStart" form:"dniDateStart" validate:"required,isodate"`
	DniDateEnd       string `json:"dniDateEnd" form:"dniDateEnd" validate:"required,isodate"`
	License          string `json:"license" form:"license" validate:"required,license"`
	LicenseDateStart string `json:"licenseDateStart" form:"licenseDateStart" validate:"required,isodate"`
	LicenseDateEnd   string `json:"licenseDateEnd" form:"licenseDateEnd" validate:"required,isodate"`
	Name             string `json:"name" form:"name" validate:"required,alphaspace,min=3,max=50"`
	Lastname         string `json:"lastname" form:"lastname" validate:"required,alphaspace,min=3,max=50"`
	CellphoneOne     string `json:"cellphoneOne" form:"cellphoneOne" validate:"required,intmin=900000000,intmax=999999999"`
	CellphoneTwo     string `json:"cellphoneTwo" form:"cellphoneTwo" validate:"omitempty,intmin=900000000,intmax=999999999"`
	DateStart        string `json:"dateStart" form:"dateStart" validate:"required,isodate"`
	DateEnd          string `json:"dateEnd" form:"dateEnd" validate:"omitempty,isodate"`
	Observation      string `json:"observation" form:"observation" validate:"omitempty,min=3,max=1000"`
	TransportID      string `json:"transportId" form:"transportId" validate:"required,uuidv4"`
}

func (r *DriverRequest) Validate() error {
	return validate(r)
}

// ApplyTo copies the request over d, leaving image paths untouched.
func (r *DriverRequest) ApplyTo(d *model.Driver) {
	d.ID = parseUUID(r.ID)
	d.Dni = r.Dni
	d.DniDateStart = parseDate(r.DniDateStart)
	d.DniDateEnd = parseDate(r.DniDateEnd)
	d.License = r.License
	d.LicenseDateStart = parseDate(r.LicenseDateStart)
	d.LicenseDateEnd = parseDate(r.LicenseDateEnd)
	d.Name = r.Name
	d.Lastname = r.Lastname
	d.CellphoneOne = r.CellphoneOne
	d.CellphoneTwo = nullable(r.CellphoneTwo)
	d.DateStart = parseDate(r.DateStart)
	d.DateEnd = datePtr(r.DateEnd)
	d.Observation = nullable(r.Observation)
	d.TransportID = parseUUID(r.TransportID)
}

// DriverRequestFrom renders a stored driver as the request it would have been created with.
func DriverRequestFrom(d model.Driver) DriverRequest {
	return DriverRequest{
		ID:               d.ID.String(),
		Dni:              d.Dni,
		DniDateStart:     d.DniDateStart.String(),
		DniDateEnd:       d.DniDateEnd.String(),
		License:          d.License,
		LicenseDateStart: d.LicenseDateStart.String(),
		LicenseDateEnd:   d.LicenseDateEnd.String(),
		Name:             d.Name,
		Lastname:         d.Lastname,
		CellphoneOne:     d.CellphoneOne,
		CellphoneTwo:     deref(d.CellphoneTwo),
		DateStart:        d.DateStart.String(),
		DateEnd:          dateString(d.DateEnd),
		Observation:      deref(d.Observation),
		TransportID:      d.TransportID.String(),
	}
}
