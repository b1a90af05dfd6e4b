package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType classifies a transaction by the sign of its amount.
type TxType string

const (
	TypeSales   TxType = "Sales"
	TypeExpense TxType = "Expense"
)

// ClassifyAmount derives the transaction type from the amount sign.
// Zero classifies as Expense.
func ClassifyAmount(amount decimal.Decimal) TxType {
	if amount.IsPositive() {
		return TypeSales
	}
	return TypeExpense
}

// TransactionRecord is a normalized sales or expense line item.
// Type and Month are derived during normalization; any type asserted
// by the input source is discarded.
type TransactionRecord struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // positive = sales, negative = expense
	Type        TxType
	Month       time.Month
}
