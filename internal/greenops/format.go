package greenops

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders numbers and quantities with the separators of one language.
type Formatter struct {
	p *message.Printer
}

// NewFormatter returns a Formatter for tag.
func NewFormatter(tag language.Tag) Formatter {
	return Formatter{p: message.NewPrinter(tag)}
}

//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var english = NewFormatter(language.English)

// Number formats an integer with thousand separators.
func (f Formatter) Number(n int64) string {
	return f.p.Sprintf("%d", n)
}

// Float rounds v to precision decimals and adds thousand separators.
func (f Formatter) Float(v float64, precision int) string {
	if precision <= 0 {
		return f.Number(int64(math.Round(v)))
	}
	return f.p.Sprintf(fmt.Sprintf("%%.%df", precision), v)
}

// Kg renders a CO2 mass, switching to tonnes from 1000 kg.
func (f Formatter) Kg(kg float64) string {
	if math.Abs(kg) >= TonsToKg {
		return f.Float(kg/TonsToKg, 2) + " t CO2"
	}
	return f.Float(kg, 1) + " kg CO2"
}

// KWh renders an energy quantity in kWh.
func (f Formatter) KWh(kwh float64) string {
	return f.Float(kwh, 1) + " kWh"
}

// Money renders an amount with its currency code. An empty code means USD.
func (f Formatter) Money(amount float64, currency string) string {
	if currency == "" {
		currency = "USD"
	}
	return f.Float(amount, 2) + " " + currency
}

// FormatNumber formats an integer with thousand separators: 18248 → "18,248".
func FormatNumber(n int64) string {
	return english.Number(n)
}

// FormatFloat rounds f to precision decimals and adds thousand separators:
// FormatFloat(1234.567, 2) → "1,234.57".
func FormatFloat(f float64, precision int) string {
	return english.Float(f, precision)
}

// FormatLarge abbreviates values of a million or more.
func FormatLarge(n float64) string {
	switch {
	case n >= BillionThreshold:
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	case n >= LargeNumberThreshold:
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	default:
		return FormatNumber(int64(math.Round(n)))
	}
}

// FormatKg renders a CO2 mass, switching to tonnes from 1000 kg.
func FormatKg(kg float64) string {
	return english.Kg(kg)
}

// FormatKWh renders an energy quantity in kWh.
func FormatKWh(kwh float64) string {
	return english.KWh(kwh)
}

// FormatMoney renders an amount with its currency code.
func FormatMoney(amount float64, currency string) string {
	return english.Money(amount, currency)
}
