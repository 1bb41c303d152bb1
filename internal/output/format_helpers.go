package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	money "github.com/planwise/forecast/pkg/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Round().Format()
}

// FormatRate formats a fractional rate (0.07) as a percentage ("7.00%").
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

func intToString(v int) string { return strconv.Itoa(v) }
