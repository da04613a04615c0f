package validate

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimal(t *testing.T) {
	def := decimal.NewFromInt(1000)

	tests := []struct {
		name string
		raw  string
		want string // empty means rejected
	}{
		{"empty uses default", "", "1000"},
		{"integer", "150", "150"},
		{"cents", "12.25", "12.25"},
		{"trailing zeros", "1.500", "1.5"},
		{"exponent form", "1e3", "1000"},
		{"negative passes through", "-5", "-5"},
		{"zero with tiny exponent", "0e-5", "0"},
		{"largest integer part", "999999999999999.99", "999999999999999.99"},
		{"sub cent", "1.005", ""},
		{"huge exponent", "1e50000000", ""},
		{"tiny exponent", "0.001e-99999999", ""},
		{"too many integer digits", "1234567890123456", ""},
		{"too many digits", "1.000000000000000000001", ""},
		{"not a number", "lots", ""},
		{"nan", "NaN", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ef := Decimal("amount", json.Number(tt.raw), def)
			if tt.want == "" {
				require.NotNil(t, ef)
				assert.Equal(t, "amount", ef.Field)
				return
			}
			require.Nil(t, ef)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestErrsCollectsNonNil(t *testing.T) {
	var errs Errs
	errs.Add(nil, Required("name", " "), nil, NonNegative("credit_limit", decimal.NewFromInt(-1)))
	require.Len(t, errs, 2)
	assert.EqualError(t, errs.Err(), "name: required; credit_limit: must be >= 0")

	var none Errs
	assert.NoError(t, none.Err())
}
