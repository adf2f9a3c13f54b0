package validation

import (
	"errors"
	"strings"
	"time"

	"freight-service/internal/model"
)

var (
	ErrNoFilter  = errors.New("at least one valid filter is required")
	ErrDateRange = errors.New("date range exceeds one year")
)

// MaxRangeDays is the widest span a date-bounded report may cover.
const MaxRangeDays = 366

var (
	DefaultDateStart = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	DefaultDateEnd   = time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
)

// Filter collects query-string parameters, validating each one when present.
// A search is allowed only when every present value is valid and at least one
// of them narrows the result set.
type Filter struct {
	invalid  FieldErrors
	approved bool
}

func NewFilter() *Filter {
	return &Filter{invalid: FieldErrors{}}
}

// Optional validates value with tag when non-empty and returns it normalised for LIKE matching.
func (f *Filter) Optional(name, value, tag string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if !Var(value, tag) {
		f.invalid[name] = tag
		return nil
	}
	f.approved = true
	return &value
}

// Like is Optional wrapped in %..% and upper-cased.
func (f *Filter) Like(name, value, tag string) *string {
	v := f.Optional(name, value, tag)
	if v == nil {
		return nil
	}
	like := Like(*v)
	return &like
}

// Required rejects the query when value is empty or invalid.
func (f *Filter) Required(name, value, tag string) string {
	value = strings.TrimSpace(value)
	if value == "" || !Var(value, tag) {
		f.invalid[name] = "required," + tag
		return ""
	}
	f.approved = true
	return value
}

// Date parses an optional YYYY-MM-DD parameter.
func (f *Filter) Date(name, value string) *time.Time {
	raw := f.Optional(name, value, "isodate")
	if raw == nil {
		return nil
	}
	d, _ := model.ParseDate(*raw)
	return &d.Time
}

func (f *Filter) RequiredDate(name, value string) time.Time {
	raw := f.Required(name, value, "isodate")
	if raw == "" {
		return time.Time{}
	}
	d, _ := model.ParseDate(raw)
	return d.Time
}

// Page parses the mandatory 1-based page number. It does not count as a filter.
func (f *Filter) Page(value string) int {
	n, ok := parseStrictInt(strings.TrimSpace(value))
	if !ok || n < 1 || n > 1<<31-1 {
		f.invalid["page"] = "required,intmin=1"
		return 0
	}
	return int(n)
}

// Bool parses an optional "true"/"false" parameter.
func (f *Filter) Bool(name, value string) *bool {
	raw := f.Optional(name, value, "boolstr")
	if raw == nil {
		return nil
	}
	b := *raw == "true"
	return &b
}

// Err reports invalid values first, then a query without any usable filter.
func (f *Filter) Err() error {
	if len(f.invalid) > 0 {
		return f.invalid
	}
	if !f.approved {
		return ErrNoFilter
	}
	return nil
}

// CheckRange enforces the one-year cap when both ends are known.
func CheckRange(start, end *time.Time) error {
	if start == nil || end == nil {
		return nil
	}
	if end.Sub(*start) > MaxRangeDays*24*time.Hour {
		return ErrDateRange
	}
	return nil
}

// Bounds substitutes the open-ended defaults for absent dates.
func Bounds(start, end *time.Time) (time.Time, time.Time) {
	from, to := DefaultDateStart, DefaultDateEnd
	if start != nil {
		from = *start
	}
	if end != nil {
		to = *end
	}
	return from, to
}

func Like(value string) string {
	return "%" + strings.ToUpper(value) + "%"
}
