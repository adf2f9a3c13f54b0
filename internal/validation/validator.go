package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"freight-service/internal/model"
)

var ErrInvalid = errors.New("invalid data")

// FieldErrors lists the json names of the fields that failed and the rule they broke.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for field, rule := range f {
		parts = append(parts, field+":"+rule)
	}
	return "invalid fields: " + strings.Join(parts, ", ")
}

func (f FieldErrors) Unwrap() error {
	return ErrInvalid
}

// patterns maps a rule name to the regular expression a string field must match.
var patterns = map[string]*regexp.Regexp{
	"ruc":               regexp.MustCompile(`^[1-9]\d{10}$`),
	"telephone":         regexp.MustCompile(`^(\d{2}-)?\d{3}-\d{4}$`),
	"landline":          regexp.MustCompile(`^\d{2}-\d{3}-\d{4}$`),
	"dni":               regexp.MustCompile(`^\d{8}$`),
	"license":           regexp.MustCompile(`^[a-zA-Z0-9]{9}$`),
	"alphaspace":        regexp.MustCompile(`^[a-zA-Z ]+$`),
	"alnumspace":        regexp.MustCompile(`^[a-zA-Z0-9 ]+$`),
	"alnumdash":         regexp.MustCompile(`^[a-zA-Z0-9-]+$`),
	"address":           regexp.MustCompile(`^[a-zA-Z0-9 \-/]+$`),
	"place":             regexp.MustCompile(`^[a-zA-Z /]+$`),
	"routename":         regexp.MustCompile(`^[a-zA-Z -]+$`),
	"personname":        regexp.MustCompile(`^([a-zA-Z]+ ?)+$`),
	"plate":             regexp.MustCompile(`^[a-zA-Z0-9]{3}-[a-zA-Z0-9]{3}$`),
	"platefilter":       regexp.MustCompile(`^[a-zA-Z0-9-]{3,7}$`),
	"unitmodel":         regexp.MustCompile(`^[a-zA-Z0-9 -]+$`),
	"weight":            regexp.MustCompile(`^[0-9]{1,2}(\.[0-9]{1,3})?$`),
	"dimension":         regexp.MustCompile(`^[0-9]{1,2}(\.[0-9]{1,2})?$`),
	"manifest":          regexp.MustCompile(`^[0-9\-/]{3,1000}$`),
	"sku":               regexp.MustCompile(`^[a-zA-Z0-9\- ]{3,40}$`),
	"operation":         regexp.MustCompile(`^[0-9]{3,25}$`),
	"invoice":           regexp.MustCompile(`^[fF0-9]\d{3}-\d{1,8}$`),
	"formattedid":       regexp.MustCompile(`^[fF]\d{6}$`),
	"formattedidfilter": regexp.MustCompile(`^(?i)F?[0-9]{3,6}$`),
}

var (
	instance = newValidator()
	amounts  = map[string]*regexp.Regexp{}
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})

	for name, re := range patterns {
		re := re
		mustRegister(v, name, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
	}

	mustRegister(v, "uuidv4", isUUIDv4)
	mustRegister(v, "isodate", isISODate)
	mustRegister(v, "amount", isAmount)
	mustRegister(v, "samount", isSignedAmount)
	mustRegister(v, "intmin", intBound(func(n, bound int64) bool { return n >= bound }))
	mustRegister(v, "intmax", intBound(func(n, bound int64) bool { return n <= bound }))
	mustRegister(v, "boolstr", isBoolString)
	mustRegister(v, "strongpassword", isStrongPassword)
	mustRegister(v, "bodytype", isBodyType)

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %s: %v", tag, err))
	}
}

// Struct validates the tags of s and returns FieldErrors on failure.
func Struct(s interface{}) error {
	err := instance.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := FieldErrors{}
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

// Var validates a single value against a tag expression such as "required,uuidv4".
func Var(value interface{}, tag string) bool {
	return instance.Var(value, tag) == nil
}

func IsUUIDv4(raw string) bool {
	id, err := uuid.Parse(raw)
	if err != nil || len(raw) != 36 {
		return false
	}
	return id.Version() == 4 && id.Variant() == uuid.RFC4122
}

func isUUIDv4(fl validator.FieldLevel) bool {
	return IsUUIDv4(fl.Field().String())
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(model.DateLayout, fl.Field().String())
	return err == nil
}

func amountPattern(digits string, signed bool) *regexp.Regexp {
	key := digits
	if signed {
		key = "-" + digits
	}
	if re, ok := amounts[key]; ok {
		return re
	}
	sign := ""
	if signed {
		sign = "-?"
	}
	re := regexp.MustCompile(`^` + sign + `\d{1,` + digits + `}(\.\d{1,2})?$`)
	amounts[key] = re
	return re
}

func init() {
	// amount patterns are precompiled so lookups never write to the map concurrently
	for digits := 1; digits <= 9; digits++ {
		amountPattern(strconv.Itoa(digits), false)
		amountPattern(strconv.Itoa(digits), true)
	}
}

// isAmount implements amount=N: up to N integer digits and up to two decimals.
func isAmount(fl validator.FieldLevel) bool {
	re, ok := amounts[fl.Param()]
	return ok && re.MatchString(fl.Field().String())
}

func isSignedAmount(fl validator.FieldLevel) bool {
	re, ok := amounts["-"+fl.Param()]
	return ok && re.MatchString(fl.Field().String())
}

func intBound(cmp func(n, bound int64) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		bound, err := strconv.ParseInt(fl.Param(), 10, 64)
		if err != nil {
			return false
		}
		n, ok := parseStrictInt(fl.Field().String())
		return ok && cmp(n, bound)
	}
}

// parseStrictInt rejects signs and leading zeroes.
func parseStrictInt(raw string) (int64, bool) {
	if raw == "" || (len(raw) > 1 && raw[0] == '0') {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	return n, err == nil
}

func isBoolString(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "true", "false":
		return true
	}
	return false
}

func isStrongPassword(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if len(raw) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range raw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

func isBodyType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, allowed := range model.BodyTypes {
		if strings.EqualFold(allowed, value) {
			return true
		}
	}
	return false
}

// TrimStrings trims every exported string field of the struct s points to.
func TrimStrings(s interface{}) {
	v := reflect.ValueOf(s)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return
	}
	v = v.Elem()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if field.Kind() == reflect.String && field.CanSet() {
			field.SetString(strings.TrimSpace(field.String()))
		}
	}
}
