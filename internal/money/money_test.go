package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	out := Format(decimal.RequireFromString("1234.5"), "EUR")
	assert.Contains(t, out, "€")
	// Spanish locale groups thousands with a dot and uses a comma decimal separator.
	assert.Contains(t, out, "1.234,5")
}

func TestFormat_DropsForcedDecimals(t *testing.T) {
	out := Format(decimal.RequireFromString("500.00"), "USD")
	assert.Contains(t, out, "500")
	assert.NotContains(t, out, "500,00")
}

func TestFormat_RoundsToTwoDigits(t *testing.T) {
	out := Format(decimal.RequireFromString("10.999"), "USD")
	assert.Contains(t, out, "11")
}

func TestFormat_UnknownCurrencyFallsBackToUSD(t *testing.T) {
	out := Format(decimal.RequireFromString("10"), "???")
	assert.Contains(t, out, "US$")
}
