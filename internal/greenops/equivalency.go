package greenops

import (
	"fmt"
	"math"
)

// Kind identifies one equivalency.
type Kind string

const (
	KindMilesDriven        Kind = "miles_driven"
	KindSmartphonesCharged Kind = "smartphones_charged"
	KindTreeSeedlings      Kind = "tree_seedlings"
	KindHomeDays           Kind = "home_days"
)

// Equivalent is one equivalency figure.
type Equivalent struct {
	Kind      Kind    `json:"kind"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
	Label     string  `json:"label"`
}

// Equivalencies expresses an annual CO2 mass in everyday terms.
type Equivalencies struct {
	InputKg float64      `json:"input_kg"`
	Items   []Equivalent `json:"items"`
	// Summary reads "Equivalent to driving ~X miles or charging ~Y smartphones".
	Summary string `json:"summary"`
}

// IsEmpty reports whether no equivalencies were produced.
func (e Equivalencies) IsEmpty() bool {
	return len(e.Items) == 0
}

type factor struct {
	kind  Kind
	kgPer float64
	label string
}

//nolint:gochecknoglobals // Fixed EPA table in display order.
var factors = []factor{
	{KindMilesDriven, EPAMilesDrivenFactor, "miles driven"},
	{KindSmartphonesCharged, EPASmartphoneChargeFactor, "smartphones charged"},
	{KindTreeSeedlings, EPATreeSeedlingFactor, "tree seedlings grown for 10 years"},
	{KindHomeDays, EPAHomeDayFactor, "days of household electricity"},
}

// Calculate returns the equivalencies of kg CO2e. Values below
// MinEquivalencyThresholdKg yield an empty result and no error.
func Calculate(kg float64) (Equivalencies, error) {
	if math.IsInf(kg, 0) || math.IsNaN(kg) {
		return Equivalencies{}, ErrCalculationOverflow
	}
	if kg < 0 {
		return Equivalencies{}, ErrNegativeValue
	}
	if kg < MinEquivalencyThresholdKg {
		return Equivalencies{InputKg: kg}, nil
	}

	out := Equivalencies{InputKg: kg, Items: make([]Equivalent, 0, len(factors))}
	for _, f := range factors {
		v := kg / f.kgPer
		out.Items = append(out.Items, Equivalent{
			Kind:      f.kind,
			Value:     v,
			Formatted: formatEquivalent(v),
			Label:     f.label,
		})
	}
	miles, _ := out.Find(KindMilesDriven)
	phones, _ := out.Find(KindSmartphonesCharged)
	out.Summary = fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
		miles.Formatted, phones.Formatted)
	return out, nil
}

// Find returns the equivalent of the given kind.
func (e Equivalencies) Find(kind Kind) (Equivalent, bool) {
	for _, item := range e.Items {
		if item.Kind == kind {
			return item, true
		}
	}
	return Equivalent{}, false
}

func formatEquivalent(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	if v < 10 {
		return FormatFloat(v, 1)
	}
	return FormatNumber(int64(math.Round(v)))
}
