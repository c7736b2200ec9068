// Package money holds amounts in minor currency units (cents, fils) and
// renders them for display. Arithmetic stays in int64 so totals never drift.
package money

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Scale returns the number of minor digits of an ISO currency (2 for USD, 0 for JPY, 3 for KWD).
// Unknown codes fall back to 2.
func Scale(code string) int {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}

// Format renders a minor-unit amount as "USD 1,234.50".
func Format(amount int64, code string) string {
	scale := Scale(code)
	major := float64(amount) / math.Pow10(scale)
	return printer.Sprintf(fmt.Sprintf("%%s %%.%df", scale), code, major)
}

// Percent returns pct percent of amount, rounded half up to the minor unit.
// pct is taken to two decimals (basis points) and the product stays integral,
// so 1.15% of 3000 is 35 and not whatever 34.4999... a float would give.
func Percent(amount int64, pct float64) int64 {
	bp := int64(math.Round(pct * 100))
	n := amount * bp
	if n < 0 {
		return -((-n + 5000) / 10000)
	}
	return (n + 5000) / 10000
}

// Ratio returns part/whole as a percentage rounded to two decimals; 0 when whole is 0.
func Ratio(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*10000) / 100
}

// MustPositive returns an error when amount is not strictly positive.
func MustPositive(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d", amount)
	}
	return nil
}
