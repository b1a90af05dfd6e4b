package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassifyAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   TxType
	}{
		{"100", TypeSales},
		{"0.01", TypeSales},
		{"-40", TypeExpense},
		{"-0.01", TypeExpense},
		{"0", TypeExpense}, // zero classifies as Expense by convention
	}
	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.amount)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, ClassifyAmount(d), "amount %s", tt.amount)
	}
}
