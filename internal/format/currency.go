// Package format renders monetary amounts for user-facing output.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Currency formats an amount as whole Canadian dollars with digit
// grouping, e.g. 16000 -> "$16,000". Amounts are rounded to the nearest
// dollar; the engine never produces sub-dollar figures.
func Currency(amount float64) string {
	n := int64(math.Round(amount))
	if n < 0 {
		return printer.Sprintf("-$%v", number.Decimal(-n))
	}
	return printer.Sprintf("$%v", number.Decimal(n))
}

// Percent formats a fractional rate as a percentage, e.g. 0.30 -> "30%".
func Percent(rate float64) string {
	return printer.Sprintf("%v%%", number.Decimal(rate*100, number.MaxFractionDigits(2)))
}
