package validate

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

const MaxDescription = 255

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Add appends the non-nil checks.
func (e *Errs) Add(checks ...*ErrField) {
	for _, c := range checks {
		if c != nil {
			*e = append(*e, *c)
		}
	}
}

// Err returns e as an error, or nil when empty.
func (e Errs) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Helpers
func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func MaxLen(field, value string, max int) *ErrField {
	if len([]rune(value)) > max {
		return &ErrField{Field: field, Msg: "too long"}
	}
	return nil
}

// Money bounds: whole cents, at most MaxIntegerDigits digits before the point.
const (
	MoneyScale       = 2
	MaxIntegerDigits = 15
	maxDigits        = 20
)

// Decimal parses a JSON number or numeric string. An empty value yields def.
// NaN and infinities are not decimals and are rejected here, as are values
// outside the money bounds. Exponents are checked before any rescaling so
// inputs like 1e50000000 stay cheap to reject.
func Decimal(field string, raw json.Number, def decimal.Decimal) (decimal.Decimal, *ErrField) {
	s := strings.TrimSpace(raw.String())
	if s == "" {
		return def, nil
	}
	invalid := &ErrField{Field: field, Msg: "must be a finite number"}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, invalid
	}

	exp := d.Exponent()
	if exp < -maxDigits || exp > MaxIntegerDigits {
		return decimal.Zero, invalid
	}
	digits := d.NumDigits()
	if digits > maxDigits || (!d.IsZero() && digits+int(exp) > MaxIntegerDigits) {
		return decimal.Zero, invalid
	}
	// trailing zeros past the cents are fine: 1.500 is 1.50
	if exp < -MoneyScale && !d.Equal(d.Truncate(MoneyScale)) {
		return decimal.Zero, &ErrField{Field: field, Msg: "must have at most 2 decimal places"}
	}
	return d, nil
}

func NonNegative(field string, v decimal.Decimal) *ErrField {
	if v.IsNegative() {
		return &ErrField{Field: field, Msg: "must be >= 0"}
	}
	return nil
}
