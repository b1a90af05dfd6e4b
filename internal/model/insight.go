package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyReview aggregates one month's sales and expenses.
// Profit is always Sales + Expenses (expenses are negative).
type MonthlyReview struct {
	Month     time.Month
	Sales     decimal.Decimal
	Expenses  decimal.Decimal // negative or zero
	Profit    decimal.Decimal
	Narration string
}

// ProductPerformance is the summed sales amount for one product description.
type ProductPerformance struct {
	Description string
	TotalSales  decimal.Decimal
}

// InsightBundle is the complete aggregate output of one pipeline run.
// It is constructed once and never mutated.
type InsightBundle struct {
	TotalSales    decimal.Decimal
	TotalExpenses decimal.Decimal // negative or zero
	NetProfit     decimal.Decimal

	// MonthlyReviews holds one entry per month present in the data,
	// ordered January through December.
	MonthlyReviews []MonthlyReview

	// ProductPerformance is ranked descending by summed sales.
	// TopProducts and UnderperformingProducts are the head and tail of
	// that ranking; with fewer than 10 products the two overlap.
	ProductPerformance      []ProductPerformance
	TopProducts             []ProductPerformance
	UnderperformingProducts []ProductPerformance
}
