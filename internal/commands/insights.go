package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/showinvestor-dev/showinvestor/internal/model"
	"github.com/showinvestor-dev/showinvestor/internal/money"
)

func newInsightsCommand() *cobra.Command {
	var salesPath, expensesPath string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Print key business metrics without generating a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, _, err := buildBundle(salesPath, expensesPath)
			if err != nil {
				return err
			}
			printInsights(cmd, bundle)
			return nil
		},
	}

	cmd.Flags().StringVar(&salesPath, "sales", "", "sales file, CSV or XLSX (required)")
	cmd.Flags().StringVar(&expensesPath, "expenses", "", "expenses file, CSV or XLSX (required)")
	_ = cmd.MarkFlagRequired("sales")
	_ = cmd.MarkFlagRequired("expenses")

	return cmd
}

func printInsights(cmd *cobra.Command, bundle model.InsightBundle) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Key Business Metrics")
	fmt.Fprintf(out, "  Total Sales:    %s\n", money.Format(bundle.TotalSales))
	fmt.Fprintf(out, "  Total Expenses: %s\n", money.Format(bundle.TotalExpenses.Abs()))
	fmt.Fprintf(out, "  Net Profit:     %s\n", money.Format(bundle.NetProfit))

	fmt.Fprintln(out, "\nTop 5 Best-Selling Products")
	for _, p := range bundle.TopProducts {
		fmt.Fprintf(out, "  %-30s %s\n", p.Description, money.Format(p.TotalSales))
	}

	fmt.Fprintln(out, "\nBottom 5 Underperforming Products")
	for _, p := range bundle.UnderperformingProducts {
		fmt.Fprintf(out, "  %-30s %s\n", p.Description, money.Format(p.TotalSales))
	}

	fmt.Fprintln(out, "\nMonthly Reviews")
	for _, rv := range bundle.MonthlyReviews {
		fmt.Fprintf(out, "  %s\n", rv.Month)
		fmt.Fprintf(out, "    Sales:    %s\n", money.Format(rv.Sales))
		fmt.Fprintf(out, "    Expenses: %s\n", money.Format(rv.Expenses.Abs()))
		fmt.Fprintf(out, "    Profit:   %s\n", money.Format(rv.Profit))
		fmt.Fprintf(out, "    Summary:  %s\n", rv.Narration)
	}
}
