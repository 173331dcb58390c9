package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNormalizeToKg(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		unit    string
		want    float64
		wantErr error
	}{
		{"grams", 1500, "g", 1.5, nil},
		{"grams co2e mixed case", 420, "gCO2e", 0.42, nil},
		{"kilograms", 3, "KG", 3, nil},
		{"tonnes", 1.2, "tCO2", 1200, nil},
		{"pounds", 10, "lb", 4.53592, nil},
		{"unknown unit", 1, "oz", 0, ErrInvalidUnit},
		{"negative", -1, "kg", 0, ErrNegativeValue},
		{"NaN", math.NaN(), "kg", 0, ErrCalculationOverflow},
		{"Inf", math.Inf(1), "kg", 0, ErrCalculationOverflow},
		{"overflow", math.MaxFloat64, "t", 0, ErrCalculationOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeToKg(tt.value, tt.unit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
	assert.True(t, IsRecognizedUnit("kgCO2e"))
	assert.False(t, IsRecognizedUnit(""))
}

func TestCalculate(t *testing.T) {
	eq, err := Calculate(69.35)
	require.NoError(t, err)
	require.False(t, eq.IsEmpty())
	require.Len(t, eq.Items, 4)

	miles, ok := eq.Find(KindMilesDriven)
	require.True(t, ok)
	assert.InDelta(t, 69.35/0.192, miles.Value, 1e-9)
	assert.Equal(t, "361", miles.Formatted)

	phones, _ := eq.Find(KindSmartphonesCharged)
	assert.Equal(t, "8,437", phones.Formatted)

	trees, _ := eq.Find(KindTreeSeedlings)
	assert.Equal(t, "1.2", trees.Formatted)

	assert.Equal(t, "Equivalent to driving ~361 miles or charging ~8,437 smartphones", eq.Summary)
}

func TestCalculate_BelowThreshold(t *testing.T) {
	eq, err := Calculate(0.5)
	require.NoError(t, err)
	assert.True(t, eq.IsEmpty())
	assert.InDelta(t, 0.5, eq.InputKg, 0)

	_, ok := eq.Find(KindHomeDays)
	assert.False(t, ok)
}

func TestCalculate_Errors(t *testing.T) {
	_, err := Calculate(-1)
	assert.ErrorIs(t, err, ErrNegativeValue)
	_, err = Calculate(math.Inf(1))
	assert.ErrorIs(t, err, ErrCalculationOverflow)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "18,248", FormatNumber(18248))
	assert.Equal(t, "1,234.57", FormatFloat(1234.567, 2))
	assert.Equal(t, "1,235", FormatFloat(1234.567, 0))
	assert.Equal(t, "~1.5 million", FormatLarge(1_500_000))
	assert.Equal(t, "~2.0 billion", FormatLarge(2_000_000_000))
	assert.Equal(t, "999", FormatLarge(999.4))
	assert.Equal(t, "69.4 kg CO2", FormatKg(69.36))
	assert.Equal(t, "4.25 t CO2", FormatKg(4250))
	assert.Equal(t, "146.0 kWh", FormatKWh(146))
	assert.Equal(t, "26.28 USD", FormatMoney(26.28, ""))
}

func TestFormatter_Language(t *testing.T) {
	en := NewFormatter(language.English)
	es := NewFormatter(language.Spanish)

	assert.Equal(t, FormatFloat(1234.567, 2), en.Float(1234.567, 2))
	assert.Equal(t, "0,5", es.Float(0.5, 1))
	assert.Equal(t, "69,4 kg CO2", es.Kg(69.36))
	assert.Equal(t, "4,25 t CO2", es.Kg(4250))
}
