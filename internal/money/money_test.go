package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "₦0.00"},
		{"100", "₦100.00"},
		{"1234.56", "₦1,234.56"},
		{"1234.5", "₦1,234.50"},
		{"1000000", "₦1,000,000.00"},
		{"-40", "₦-40.00"},
		{"-0.4", "₦-0.40"},
		{"-1234.56", "₦-1,234.56"},
	}
	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.amount)
		require.NoError(t, err)
		assert.Equal(t, tt.want, Format(d), "amount %s", tt.amount)
	}
}
