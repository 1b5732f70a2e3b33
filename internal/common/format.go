package common

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
)

// Display formatting for monetary values. All display surfaces go through
// these helpers; the aggregator itself only ever sees raw float64 amounts
// in the reporting currency.

// FormatMoney formats an amount in the given currency for display,
// e.g. FormatMoney(285000, "JPY") -> "¥285,000".
func FormatMoney(amount float64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return fmt.Sprintf("%.2f %s", amount, currency)
	}
	minor := int64(math.Round(amount * math.Pow10(cur.Fraction)))
	return money.New(minor, cur.Code).Display()
}

// FormatJPY formats an amount in the reporting currency.
func FormatJPY(amount float64) string {
	return FormatMoney(amount, money.JPY)
}

// FormatSignedJPY formats a reporting-currency amount with an explicit sign.
func FormatSignedJPY(amount float64) string {
	if amount >= 0 {
		return "+" + FormatJPY(amount)
	}
	return FormatJPY(amount)
}

// FormatPct formats a percentage with two decimals.
func FormatPct(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// FormatSignedPct formats a percentage with an explicit sign.
func FormatSignedPct(pct float64) string {
	if pct >= 0 {
		return fmt.Sprintf("+%.2f%%", pct)
	}
	return fmt.Sprintf("%.2f%%", pct)
}
