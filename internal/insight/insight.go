package insight

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/showinvestor-dev/showinvestor/internal/model"
)

// Narration texts, keyed by the sign of a month's profit.
const (
	narrationPositive = "The business performed well this month with a positive profit margin."
	narrationLoss     = "Expenses were higher than sales, resulting in a loss this month. Consider reducing expenses."
	narrationBalanced = "Sales and expenses were balanced this month."
)

// rankSize is how many products the top and underperforming views hold.
const rankSize = 5

// Narration derives the qualitative review for a month from its profit.
// Profit is a decimal aggregate, so the balanced branch is reachable
// only for exact zero; the check order is > then < then ==.
func Narration(profit decimal.Decimal) string {
	switch {
	case profit.IsPositive():
		return narrationPositive
	case profit.IsNegative():
		return narrationLoss
	default:
		return narrationBalanced
	}
}

// Build aggregates a normalized record set into an InsightBundle.
// An empty record set yields zero totals and empty sequences.
func Build(records []model.TransactionRecord) model.InsightBundle {
	type monthAgg struct {
		sales    decimal.Decimal
		expenses decimal.Decimal
	}

	totalSales := decimal.Zero
	totalExpenses := decimal.Zero
	byMonth := make(map[time.Month]*monthAgg)
	productSums := make(map[string]decimal.Decimal)
	var productOrder []string

	for _, rec := range records {
		agg := byMonth[rec.Month]
		if agg == nil {
			agg = &monthAgg{}
			byMonth[rec.Month] = agg
		}

		switch rec.Type {
		case model.TypeSales:
			totalSales = totalSales.Add(rec.Amount)
			agg.sales = agg.sales.Add(rec.Amount)
			if _, seen := productSums[rec.Description]; !seen {
				productOrder = append(productOrder, rec.Description)
			}
			productSums[rec.Description] = productSums[rec.Description].Add(rec.Amount)
		case model.TypeExpense:
			totalExpenses = totalExpenses.Add(rec.Amount)
			agg.expenses = agg.expenses.Add(rec.Amount)
		}
	}

	// One review per month present in the data, in calendar order.
	// A month with only one side still gets a review; the missing side
	// stays zero.
	var reviews []model.MonthlyReview
	for m := time.January; m <= time.December; m++ {
		agg, ok := byMonth[m]
		if !ok {
			continue
		}
		profit := agg.sales.Add(agg.expenses)
		reviews = append(reviews, model.MonthlyReview{
			Month:     m,
			Sales:     agg.sales,
			Expenses:  agg.expenses,
			Profit:    profit,
			Narration: Narration(profit),
		})
	}

	// Descending sales ranking; the stable sort keeps first-appearance
	// order for ties.
	perf := make([]model.ProductPerformance, 0, len(productOrder))
	for _, desc := range productOrder {
		perf = append(perf, model.ProductPerformance{
			Description: desc,
			TotalSales:  productSums[desc],
		})
	}
	sort.SliceStable(perf, func(i, j int) bool {
		return perf[i].TotalSales.GreaterThan(perf[j].TotalSales)
	})

	return model.InsightBundle{
		TotalSales:              totalSales,
		TotalExpenses:           totalExpenses,
		NetProfit:               totalSales.Add(totalExpenses),
		MonthlyReviews:          reviews,
		ProductPerformance:      perf,
		TopProducts:             head(perf, rankSize),
		UnderperformingProducts: tail(perf, rankSize),
	}
}

// head and tail are views over the ranking, not copies. With fewer than
// 2*n products they overlap; that is accepted behavior.
func head(perf []model.ProductPerformance, n int) []model.ProductPerformance {
	if len(perf) < n {
		n = len(perf)
	}
	return perf[:n]
}

func tail(perf []model.ProductPerformance, n int) []model.ProductPerformance {
	if len(perf) < n {
		n = len(perf)
	}
	return perf[len(perf)-n:]
}
