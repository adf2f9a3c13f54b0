package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID        string `json:"id" validate:"required,uuidv4"`
	Ruc       string `json:"ruc" validate:"required,ruc"`
	Cellphone string `json:"cellphone" validate:"required,intmin=900000000,intmax=999999999"`
	Amount    string `json:"amount" validate:"omitempty,amount=5"`
	Date      string `json:"date" validate:"required,isodate"`
}

func validSample() sample {
	return sample{
		ID:        "0b0c8a6e-5d8b-4b1e-9a4c-6c1b7f0e2a11",
		Ruc:       "20123456789",
		Cellphone: "987654321",
		Amount:    "",
		Date:      "2022-02-28",
	}
}

func TestStructAcceptsValidPayload(t *testing.T) {
	assert.NoError(t, Struct(validSample()))
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	s := validSample()
	s.Ruc = "0123"
	s.Amount = "123456.1"

	err := Struct(s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))

	var fields FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Equal(t, "ruc", fields["ruc"])
	assert.Equal(t, "amount", fields["amount"])
	assert.Len(t, fields, 2)
}

func TestUUIDv4(t *testing.T) {
	assert.True(t, IsUUIDv4("0b0c8a6e-5d8b-4b1e-9a4c-6c1b7f0e2a11"))
	// version 1
	assert.False(t, IsUUIDv4("0b0c8a6e-5d8b-1b1e-9a4c-6c1b7f0e2a11"))
	assert.False(t, IsUUIDv4("0b0c8a6e5d8b4b1e9a4c6c1b7f0e2a11"))
	assert.False(t, IsUUIDv4(""))
}

func TestNamedRules(t *testing.T) {
	cases := []struct {
		tag   string
		value string
		ok    bool
	}{
		{"plate", "ABC-123", true},
		{"plate", "ABC123", false},
		{"telephone", "01-234-5678", true},
		{"telephone", "234-5678", true},
		{"telephone", "2345678", false},
		{"landline", "234-5678", false},
		{"weight", "12.345", true},
		{"weight", "123.4", false},
		{"dimension", "9.99", true},
		{"dimension", "9.999", false},
		{"amount=3", "999.99", true},
		{"amount=3", "1000", false},
		{"samount=4", "-12.5", true},
		{"amount=4", "-12.5", false},
		{"intmin=0,intmax=999", "0", true},
		{"intmin=0,intmax=999", "007", false},
		{"intmin=1900,intmax=2100", "2101", false},
		{"formattedid", "f000123", true},
		{"formattedid", "F12345", false},
		{"invoice", "F001-123", true},
		{"isodate", "2021-02-29", false},
		{"personname", "Ana Maria", true},
		{"personname", "Ana  Maria", false},
		{"bodytype", "furgon", true},
		{"bodytype", "Submarino", false},
		{"strongpassword", "Secr3t!pass", true},
		{"strongpassword", "secret123", false},
		{"boolstr", "true", true},
		{"boolstr", "1", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, Var(tc.value, tc.tag), "%s %q", tc.tag, tc.value)
	}
}

func TestFilterRequiresApprovedValue(t *testing.T) {
	f := NewFilter()
	assert.Nil(t, f.Like("name", "", "min=3"))
	assert.ErrorIs(t, f.Err(), ErrNoFilter)

	f = NewFilter()
	name := f.Like("name", " jua ", "min=3")
	require.NotNil(t, name)
	assert.Equal(t, "%JUA%", *name)
	assert.NoError(t, f.Err())
}

func TestFilterRejectsAnyInvalidValue(t *testing.T) {
	f := NewFilter()
	f.Like("name", "juan", "min=3")
	f.Optional("transportId", "nope", "uuidv4")

	err := f.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestFilterPage(t *testing.T) {
	f := NewFilter()
	assert.Equal(t, 3, f.Page("3"))
	f.Optional("name", "abc", "min=3")
	assert.NoError(t, f.Err())

	for _, raw := range []string{"", "0", "-1", "1.5", "abc"} {
		f := NewFilter()
		f.Optional("name", "abc", "min=3")
		f.Page(raw)
		assert.Error(t, f.Err(), raw)
	}
}

func TestCheckRange(t *testing.T) {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	ok := start.AddDate(0, 0, 366)
	tooWide := start.AddDate(0, 0, 367)

	assert.NoError(t, CheckRange(&start, &ok))
	assert.ErrorIs(t, CheckRange(&start, &tooWide), ErrDateRange)
	assert.NoError(t, CheckRange(&start, nil))
	assert.NoError(t, CheckRange(nil, &tooWide))
}

func TestBoundsDefaults(t *testing.T) {
	from, to := Bounds(nil, nil)
	assert.Equal(t, DefaultDateStart, from)
	assert.Equal(t, DefaultDateEnd, to)

	start := time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC)
	from, _ = Bounds(&start, nil)
	assert.Equal(t, start, from)
}
