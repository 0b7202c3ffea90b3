// Package money renders monetary amounts for display, keyed by the profile's
// currency code.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Spanish)

// Format renders an amount with locale-aware grouping, no forced decimals, and
// at most two fraction digits, followed by the currency symbol. Unknown
// currency codes fall back to USD.
func Format(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}

	value, _ := amount.Round(2).Float64()
	return printer.Sprintf("%v %v",
		number.Decimal(value, number.MinFractionDigits(0), number.MaxFractionDigits(2)),
		currency.Symbol(unit),
	)
}
