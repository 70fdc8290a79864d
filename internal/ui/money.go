package ui

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// currency groups thousands with "." the way the receipts are expected to
// read: 1234567.89 -> "1.234.567".
var currency = message.NewPrinter(language.Spanish)

// Money renders a monetary value with thousands separators and no decimals,
// truncating the fractional part.
func Money(v float64) string {
	return currency.Sprintf("%d", int64(v))
}

// MoneyPad right-aligns Money output to the given width.
func MoneyPad(v float64, width int) string {
	return fmt.Sprintf("%*s", width, Money(v))
}
