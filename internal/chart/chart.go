// Package chart renders aggregated financial series as PNG images.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/shopspring/decimal"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/showinvestor-dev/showinvestor/internal/model"
)

var (
	salesColor   = color.RGBA{G: 128, A: 255}
	expenseColor = color.RGBA{R: 255, A: 255}
	profitColor  = color.RGBA{B: 255, A: 255}
)

const barWidth = vg.Length(18)

// Aggregate renders the all-months overview: sales and absolute expense
// bars side by side with a profit line overlay, months on the x-axis in
// calendar order. An empty review sequence renders zero-valued bars.
func Aggregate(reviews []model.MonthlyReview) ([]byte, error) {
	months := make([]string, 0, len(reviews))
	sales := make(plotter.Values, 0, len(reviews))
	expenses := make(plotter.Values, 0, len(reviews))
	profit := make(plotter.XYs, 0, len(reviews))

	for i, rv := range reviews {
		months = append(months, rv.Month.String())
		sales = append(sales, rv.Sales.InexactFloat64())
		expenses = append(expenses, rv.Expenses.Abs().InexactFloat64())
		profit = append(profit, plotter.XY{X: float64(i), Y: rv.Profit.InexactFloat64()})
	}
	if len(reviews) == 0 {
		months = []string{""}
		sales = plotter.Values{0}
		expenses = plotter.Values{0}
		profit = plotter.XYs{{X: 0, Y: 0}}
	}

	p := plot.New()
	p.Title.Text = "Overall Performance - Sales, Expenses, and Profit"
	p.X.Label.Text = "Months"
	p.Y.Label.Text = "Amount (₦)"

	salesBars, err := plotter.NewBarChart(sales, barWidth)
	if err != nil {
		return nil, fmt.Errorf("sales bars: %w", err)
	}
	salesBars.Color = salesColor
	salesBars.LineStyle.Width = 0
	salesBars.Offset = -barWidth / 2

	expenseBars, err := plotter.NewBarChart(expenses, barWidth)
	if err != nil {
		return nil, fmt.Errorf("expense bars: %w", err)
	}
	expenseBars.Color = expenseColor
	expenseBars.LineStyle.Width = 0
	expenseBars.Offset = barWidth / 2

	profitLine, profitPoints, err := plotter.NewLinePoints(profit)
	if err != nil {
		return nil, fmt.Errorf("profit line: %w", err)
	}
	profitLine.Color = profitColor
	profitLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	profitPoints.Shape = draw.CircleGlyph{}
	profitPoints.Color = profitColor

	p.Add(salesBars, expenseBars, profitLine, profitPoints)
	p.Legend.Add("Sales", salesBars)
	p.Legend.Add("Expenses", expenseBars)
	p.Legend.Add("Profit", profitLine)
	p.Legend.Top = true
	p.NominalX(months...)

	return encodePNG(p, 8*vg.Inch, 5*vg.Inch)
}

// Monthly renders a single month's two-bar sales vs expenses comparison.
// The expense magnitude is shown absolute.
func Monthly(month time.Month, sales, expenses decimal.Decimal) ([]byte, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Performance for %s", month)
	p.Y.Label.Text = "Amount (₦)"

	salesBar, err := plotter.NewBarChart(plotter.Values{sales.InexactFloat64(), 0}, barWidth*2)
	if err != nil {
		return nil, fmt.Errorf("sales bar: %w", err)
	}
	salesBar.Color = salesColor
	salesBar.LineStyle.Width = 0

	expenseBar, err := plotter.NewBarChart(plotter.Values{0, expenses.Abs().InexactFloat64()}, barWidth*2)
	if err != nil {
		return nil, fmt.Errorf("expense bar: %w", err)
	}
	expenseBar.Color = expenseColor
	expenseBar.LineStyle.Width = 0

	p.Add(salesBar, expenseBar)
	p.NominalX("Sales", "Expenses")

	return encodePNG(p, 6*vg.Inch, 4*vg.Inch)
}

func encodePNG(p *plot.Plot, w, h vg.Length) ([]byte, error) {
	wt, err := p.WriterTo(w, h, "png")
	if err != nil {
		return nil, fmt.Errorf("encoding chart: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encoding chart: %w", err)
	}
	return buf.Bytes(), nil
}
