package dto

import (
	"freight-service/internal/model"
	"freight-service/internal/utils"
)

type UnitRequest struct {
	ID                       string `json:"id" form:"id" validate:"required,uuidv4"`
	LicensePlate             string `json:"licensePlate" form:"licensePlate" validate:"required,plate"`
	Year                     string `json:"year" form:"year" validate:"omitempty,intmin=1900,intmax=2100"`
	Brand                    string `json:"brand" form:"brand" validate:"required,alpha,min=3,max=25"`
	Model                    string `json:"model" form:"model" validate:"omitempty,unitmodel,min=3,max=25"`
	EngineNumber             string `json:"engineNumber" form:"engineNumber" validate:"omitempty,alphanum,min=3,max=25"`
	ChassisNumber            string `json:"chassisNumber" form:"chassisNumber" validate:"omitempty,alphanum,min=3,max=25"`
	Color                    string `json:"color" form:"color" validate:"required,alphaspace,min=3,max=25"`
	NumberCylinders          string `json:"numberCylinders" form:"numberCylinders" validate:"omitempty,intmin=0,intmax=99"`
	NumberAxles              string `json:"numberAxles" form:"numberAxles" validate:"omitempty,intmin=0,intmax=99"`
	NumberTires              string `json:"numberTires" form:"numberTires" validate:"omitempty,intmin=0,intmax=99"`
	NumberSeats              string `json:"numberSeats" form:"numberSeats" validate:"omitempty,intmin=0,intmax=99"`
	DryWeight                string `json:"dryWeight" form:"dryWeight" validate:"omitempty,weight"`
	GrossWeight              string `json:"grossWeight" form:"grossWeight" validate:"omitempty,weight"`
	UsefulLoad               string `json:"usefulLoad" form:"usefulLoad" validate:"omitempty,weight"`
	Length                   string `json:"length" form:"length" validate:"omitempty,dimension"`
	Height                   string `json:"height" form:"height" validate:"omitempty,dimension"`
	Width                    string `json:"width" form:"width" validate:"omitempty,dimension"`
	BodyType                 string `json:"bodyType" form:"bodyType" validate:"required,bodytype"`
	PolicyID                 string `json:"policyId" form:"policyId" validate:"omitempty,uuidv4"`
	TechnicalReviewDateStart string `json:"technicalReviewDateStart" form:"technicalReviewDateStart" validate:"omitempty,isodate"`
	TechnicalReviewDateEnd   string `json:"technicalReviewDateEnd" form:"technicalReviewDateEnd" validate:"omitempty,isodate"`
	MtcDateStart             string `json:"mtcDateStart" form:"mtcDateStart" validate:"omitempty,isodate"`
	MtcDateEnd               string `json:"mtcDateEnd" form:"mtcDateEnd" validate:"omitempty,isodate"`
	PropertyCardDateStart    string `json:"propertyCardDateStart" form:"propertyCardDateStart" validate:"omitempty,isodate"`
	PropertyCardDateEnd      string `json:"propertyCardDateEnd" form:"propertyCardDateEnd" validate:"omitempty,isodate"`
	SoatDateStart            string `json:"soatDateStart" form:"soatDateStart" validate:"omitempty,isodate"`
	SoatDateEnd              string `json:"soatDateEnd" form:"soatDateEnd" validate:"omitempty,isodate"`
	Observation              string `json:"observation" form:"observation" validate:"omitempty,min=3,max=1000"`
	TransportID              string `json:"transportId" form:"transportId" validate:"required,uuidv4"`
}

func (r *UnitRequest) Validate() error {
	return validate(r)
}

// ApplyTo copies the request over u, leaving image paths untouched.
func (r *UnitRequest) ApplyTo(u *model.Unit) {
	u.ID = parseUUID(r.ID)
	u.LicensePlate = utils.NormalizePlate(r.LicensePlate)
	u.Year = intPtr(r.Year)
	u.Brand = r.Brand
	u.Model = nullable(r.Model)
	u.EngineNumber = nullable(r.EngineNumber)
	u.ChassisNumber = nullable(r.ChassisNumber)
	u.Color = r.Color
	u.NumberCylinders = intPtr(r.NumberCylinders)
	u.NumberAxles = intPtr(r.NumberAxles)
	u.NumberTires = intPtr(r.NumberTires)
	u.NumberSeats = intPtr(r.NumberSeats)
	u.DryWeight = nullDecimal(r.DryWeight)
	u.GrossWeight = nullDecimal(r.GrossWeight)
	u.UsefulLoad = nullDecimal(r.UsefulLoad)
	u.Length = nullDecimal(r.Length)
	u.Height = nullDecimal(r.Height)
	u.Width = nullDecimal(r.Width)
	u.BodyType = r.BodyType
	u.PolicyID = uuidPtr(r.PolicyID)
	u.TechnicalReviewDateStart = datePtr(r.TechnicalReviewDateStart)
	u.TechnicalReviewDateEnd = datePtr(r.TechnicalReviewDateEnd)
	u.MtcDateStart = datePtr(r.MtcDateStart)
	u.MtcDateEnd = datePtr(r.MtcDateEnd)
	u.PropertyCardDateStart = datePtr(r.PropertyCardDateStart)
	u.PropertyCardDateEnd = datePtr(r.PropertyCardDateEnd)
	u.SoatDateStart = datePtr(r.SoatDateStart)
	u.SoatDateEnd = datePtr(r.SoatDateEnd)
	u.Observation = nullable(r.Observation)
	u.TransportID = parseUUID(r.TransportID)
}

func UnitRequestFrom(u model.Unit) UnitRequest {
	return UnitRequest{
		ID:                       u.ID.String(),
		LicensePlate:             u.LicensePlate,
		Year:                     intString(u.Year),
		Brand:                    u.Brand,
		Model:                    deref(u.Model),
		EngineNumber:             deref(u.EngineNumber),
		ChassisNumber:            deref(u.ChassisNumber),
		Color:                    u.Color,
		NumberCylinders:          intString(u.NumberCylinders),
		NumberAxles:              intString(u.NumberAxles),
		NumberTires:              intString(u.NumberTires),
		NumberSeats:              intString(u.NumberSeats),
		DryWeight:                nullDecimalString(u.DryWeight),
		GrossWeight:              nullDecimalString(u.GrossWeight),
		UsefulLoad:               nullDecimalString(u.UsefulLoad),
		Length:                   nullDecimalString(u.Length),
		Height:                   nullDecimalString(u.Height),
		Width:                    nullDecimalString(u.Width),
		BodyType:                 u.BodyType,
		PolicyID:                 uuidString(u.PolicyID),
		TechnicalReviewDateStart: dateString(u.TechnicalReviewDateStart),
		TechnicalReviewDateEnd:   dateString(u.TechnicalReviewDateEnd),
		MtcDateStart:             dateString(u.MtcDateStart),
		MtcDateEnd:               dateString(u.MtcDateEnd),
		PropertyCardDateStart:    dateString(u.PropertyCardDateStart),
		PropertyCardDateEnd:      dateString(u.PropertyCardDateEnd),
		SoatDateStart:            dateString(u.SoatDateStart),
		SoatDateEnd:              dateString(u.SoatDateEnd),
		Observation:              deref(u.Observation),
		TransportID:              u.TransportID.String(),
	}
}

type PolicyRequest struct {
	ID               string `json:"id" form:"id" validate:"required,uuidv4"`
	Endorsement      string `json:"endorsement" form:"endorsement" validate:"required,alnumdash,min=3,max=15"`
	DateStart        string `json:"dateStart" form:"dateStart" validate:"required,isodate"`
	DateEnd          string `json:"dateEnd" form:"dateEnd" validate:"required,isodate"`
	InsuranceCarrier string `json:"insuranceCarrier" form:"insuranceCarrier" validate:"required,alphaspace,min=3,max=50"`
	InsuranceCompany string `json:"insuranceCompany" form:"insuranceCompany" validate:"required,alphaspace,min=3,max=50"`
	NetPremium       string `json:"netPremium" form:"netPremium" validate:"required,amount=7"`
	Telephone        string `json:"telephone" form:"telephone" validate:"required,landline"`
	Observation      string `json:"observation" form:"observation" validate:"omitempty,min=3,max=1000"`
}

func (r *PolicyRequest) Validate() error {
	return validate(r)
}

func (r *PolicyRequest) ToModel(imagePath string) model.Policy {
	return model.Policy{
		ID:               parseUUID(r.ID),
		Endorsement:      r.Endorsement,
		DateStart:        parseDate(r.DateStart),
		DateEnd:          parseDate(r.DateEnd),
		InsuranceCarrier: r.InsuranceCarrier,
		InsuranceCompany: r.InsuranceCompany,
		NetPremium:       parseDecimal(r.NetPremium),
		Telephone:        r.Telephone,
		ImagePath:        imagePath,
		Observation:      nullable(r.Observation),
	}
}

type SctrRequest struct {
	ID               string `json:"id" form:"id" validate:"required,uuidv4"`
	PensionNumber    string `json:"pensionNumber" form:"pensionNumber" validate:"required,alnumdash,min=3,max=15"`
	HealthNumber     string `json:"healthNumber" form:"healthNumber" validate:"required,alnumdash,min=3,max=15"`
	DateStart        string `json:"dateStart" form:"dateStart" validate:"required,isodate"`
	DateEnd          string `json:"dateEnd" form:"dateEnd" validate:"required,isodate"`
	InsuranceCompany string `json:"insuranceCompany" form:"insuranceCompany" validate:"required,alphaspace,min=3,max=100"`
	Observation      string `json:"observation" form:"observation" validate:"omitempty,min=3,max=1000"`
}

func (r *SctrRequest) Validate() error {
	return validate(r)
}

func (r *SctrRequest) ToModel(imagePath string) model.Sctr {
	return model.Sctr{
		ID:               parseUUID(r.ID),
		PensionNumber:    r.PensionNumber,
		HealthNumber:     r.HealthNumber,
		DateStart:        parseDate(r.DateStart),
		DateEnd:          parseDate(r.DateEnd),
		InsuranceCompany: r.InsuranceCompany,
		ImagePath:        imagePath,
		Observation:      nullable(r.Observation),
	}
}

// ObservationRequest is the body of the policy and sctr updates.
type ObservationRequest struct {
	Observation string `json:"observation" validate:"omitempty,min=3,max=1000"`
}

func (r *ObservationRequest) Validate() error {
	return validate(r)
}

func (r *ObservationRequest) Value() *string {
	return nullable(r.Observation)
}
