// Package fx converts amounts between asset currencies and the reporting
// currency using a fixed rate table.
package fx

import "fmt"

// ReportingCurrency is the currency all aggregate figures are expressed in.
const ReportingCurrency = "JPY"

// UnknownCurrencyError indicates a currency code with no entry in the rate
// table. For persisted assets this is a data-integrity fault and must be
// surfaced, not skipped.
type UnknownCurrencyError struct {
	Currency string
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("unknown currency: %q", e.Currency)
}

// Table maps a currency code to its rate into the reporting currency.
// The reporting currency always maps to 1.
type Table map[string]float64

// DefaultTable returns the process-wide static rate table. The USD rate is
// a deliberate fixed simplification; there is no live FX source.
func DefaultTable() Table {
	return Table{
		"JPY": 1,
		"USD": 155,
	}
}

// Normalize converts amount from the given currency into the reporting
// currency. An unregistered currency returns *UnknownCurrencyError, never a
// silently wrong number.
func (t Table) Normalize(amount float64, currency string) (float64, error) {
	rate, ok := t[currency]
	if !ok {
		return 0, &UnknownCurrencyError{Currency: currency}
	}
	return amount * rate, nil
}

// Knows reports whether the table has a rate for the currency.
func (t Table) Knows(currency string) bool {
	_, ok := t[currency]
	return ok
}

// WithRate returns a copy of the table with one rate replaced. Used by the
// what-if simulation path; the base table is never mutated.
func (t Table) WithRate(currency string, rate float64) Table {
	out := make(Table, len(t))
	for c, r := range t {
		out[c] = r
	}
	out[currency] = rate
	return out
}
