// Package money formats exact-decimal monetary values for display.
// Amounts are carried as shopspring decimals end to end; rounding to
// two fraction digits happens here and nowhere else.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Formatter renders monetary values with a currency prefix.
type Formatter struct {
	// Prefix is the currency marker, e.g. "R$".
	Prefix string
}

// NewFormatter creates a formatter for the given currency prefix.
func NewFormatter(prefix string) *Formatter {
	return &Formatter{Prefix: prefix}
}

// Format renders the amount with two fraction digits, e.g. "R$ 89.90".
func (f *Formatter) Format(amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", f.Prefix, amount.StringFixed(2))
}

// FormatShipping renders a shipping amount, using "Grátis" for zero.
func (f *Formatter) FormatShipping(amount decimal.Decimal) string {
	if amount.IsZero() {
		return "Grátis"
	}
	return f.Format(amount)
}
