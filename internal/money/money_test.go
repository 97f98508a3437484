package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatter_Format(t *testing.T) {
	f := NewFormatter("R$")

	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{"whole number", "15", "R$ 15.00"},
		{"two digits", "89.90", "R$ 89.90"},
		{"rounds at display time", "179.799", "R$ 179.80"},
		{"zero", "0", "R$ 0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.Format(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormatter_FormatShipping(t *testing.T) {
	f := NewFormatter("R$")

	assert.Equal(t, "Grátis", f.FormatShipping(decimal.Zero))
	assert.Equal(t, "R$ 15.00", f.FormatShipping(decimal.RequireFromString("15")))
}
