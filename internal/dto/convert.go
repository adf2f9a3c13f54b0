package dto

import (
	"encoding/json"
	"strconv"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"freight-service/internal/model"
	"freight-service/internal/validation"
)

// validate trims the request in place and runs its tag rules.
func validate(req interface{}) error {
	validation.TrimStrings(req)
	return validation.Struct(req)
}

// Merge applies a JSON merge patch of the sent fields over base.
func Merge[T any](base T, patch []byte) (T, error) {
	var merged T
	original, err := json.Marshal(base)
	if err != nil {
		return merged, err
	}
	out, err := jsonpatch.MergePatch(original, patch)
	if err != nil {
		return merged, err
	}
	err = json.Unmarshal(out, &merged)
	return merged, err
}

// The converters below run after validation, so parse failures cannot happen
// on valid input and are mapped to zero values.

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func parseUUID(s string) uuid.UUID {
	id, _ := uuid.Parse(s)
	return id
}

func uuidPtr(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id := parseUUID(s)
	return &id
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func parseDecimal(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func nullDecimal(s string) decimal.NullDecimal {
	if s == "" {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(parseDecimal(s))
}

func nullDecimalString(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

func parseDate(s string) model.Date {
	d, _ := model.ParseDate(s)
	return d
}

func datePtr(s string) *model.Date {
	d, _ := model.DatePtr(s)
	return d
}

func dateString(d *model.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func intPtr(s string) *int {
	if s == "" {
		return nil
	}
	n, _ := strconv.Atoi(s)
	return &n
}

func intString(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func parseBool(s string) bool {
	return s == "true"
}
