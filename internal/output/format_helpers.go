package output

import (
	"github.com/rigledger/haul-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.FromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 1 decimal.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(1) + "%"
}

// FormatMiles formats a mileage figure without fractional noise.
func FormatMiles(miles decimal.Decimal) string {
	return miles.StringFixed(0) + " mi"
}
