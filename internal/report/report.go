// Package report assembles an InsightBundle into a paginated PDF document.
package report

import (
	"bytes"
	"fmt"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/sync/errgroup"

	"github.com/showinvestor-dev/showinvestor/internal/chart"
	"github.com/showinvestor-dev/showinvestor/internal/model"
	"github.com/showinvestor-dev/showinvestor/internal/money"
)

// Column widths in points. The annual summary uses four equal columns,
// monthly tables two wide ones.
const (
	summaryColWidth = 100
	monthlyColWidth = 200
	rowHeight       = 18
	chartWidth      = 400
	chartHeight     = 250
	logoSize        = 100
)

// Options carries the caller-supplied presentation inputs.
type Options struct {
	BusinessName string
	Title        string

	// Logo is an optional encoded image placed at the top of page one.
	Logo       []byte
	LogoFormat string // "png" or "jpg"; defaults to "png"

	// FontData is an optional UTF-8 TTF. Without it the document falls
	// back to the built-in Helvetica, whose codepage cannot encode the
	// currency symbol.
	FontData []byte

	// Now supplies the generation timestamp; defaults to time.Now.
	Now func() time.Time
}

// Compose renders the bundle as a complete PDF and returns its bytes.
// It never touches the filesystem; persistence is the caller's choice.
func Compose(bundle model.InsightBundle, opts Options) ([]byte, error) {
	// Monthly charts are independent, so render them concurrently.
	// Results land in a slice indexed by review position, which keeps
	// the document in calendar order regardless of completion order.
	monthlyCharts := make([][]byte, len(bundle.MonthlyReviews))
	var g errgroup.Group
	for i, rv := range bundle.MonthlyReviews {
		g.Go(func() error {
			png, err := chart.Monthly(rv.Month, rv.Sales, rv.Expenses)
			if err != nil {
				return fmt.Errorf("rendering %s chart: %w", rv.Month, err)
			}
			monthlyCharts[i] = png
			return nil
		})
	}

	aggregate, err := chart.Aggregate(bundle.MonthlyReviews)
	if err != nil {
		return nil, fmt.Errorf("rendering aggregate chart: %w", err)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := newDoc(opts)
	d.header(opts)
	d.summaryTable(bundle.MonthlyReviews)
	d.image("aggregate", aggregate, "Overall Performance Chart")

	for i, rv := range bundle.MonthlyReviews {
		d.pdf.AddPage()
		d.monthPage(rv, monthlyCharts[i])
	}

	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}
	return buf.Bytes(), nil
}

// doc wraps the pdf builder with the active font family and, when the
// core font is in use, the codepage translator for non-ASCII text.
type doc struct {
	pdf  *fpdf.Fpdf
	font string
	tr   func(string) string
}

func newDoc(opts Options) *doc {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetTitle(opts.Title, true)

	d := &doc{pdf: pdf, font: "Helvetica"}
	if len(opts.FontData) > 0 {
		d.font = "report"
		pdf.AddUTF8FontFromBytes(d.font, "", opts.FontData)
		pdf.AddUTF8FontFromBytes(d.font, "B", opts.FontData)
	} else {
		d.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.AddPage()
	return d
}

// text translates a string for the active font when needed.
func (d *doc) text(s string) string {
	if d.tr != nil {
		return d.tr(s)
	}
	return s
}

func (d *doc) header(opts Options) {
	if len(opts.Logo) > 0 {
		format := opts.LogoFormat
		if format == "" {
			format = "png"
		}
		imgOpts := fpdf.ImageOptions{ImageType: format}
		d.pdf.RegisterImageOptionsReader("logo", imgOpts, bytes.NewReader(opts.Logo))
		d.pdf.ImageOptions("logo", d.pdf.GetX(), d.pdf.GetY(), logoSize, logoSize, true, imgOpts, 0, "")
		d.pdf.Ln(6)
	}

	name := opts.BusinessName
	if name == "" {
		name = "Business Name"
	}
	d.pdf.SetFont(d.font, "B", 18)
	d.pdf.CellFormat(0, 24, d.text(name), "", 1, "C", false, 0, "")

	d.pdf.SetFont(d.font, "B", 14)
	d.pdf.CellFormat(0, 20, d.text(opts.Title), "", 1, "C", false, 0, "")

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	d.pdf.SetFont(d.font, "", 10)
	d.pdf.CellFormat(0, 14, "Report Date: "+now().Format("2006-01-02"), "", 1, "C", false, 0, "")
	d.pdf.Ln(12)
}

func (d *doc) summaryTable(reviews []model.MonthlyReview) {
	d.heading("Annual Performance Summary (Detailed)")

	d.pdf.SetFont(d.font, "B", 10)
	d.pdf.SetFillColor(128, 128, 128)
	d.pdf.SetTextColor(245, 245, 245)
	for _, col := range []string{"Month", "Sales", "Expenses", "Profit"} {
		d.pdf.CellFormat(summaryColWidth, rowHeight, col, "1", 0, "C", true, 0, "")
	}
	d.pdf.Ln(-1)

	d.pdf.SetFont(d.font, "", 10)
	d.pdf.SetTextColor(0, 0, 0)
	for _, rv := range reviews {
		for _, cell := range summaryRow(rv) {
			d.pdf.CellFormat(summaryColWidth, rowHeight, d.text(cell), "1", 0, "C", false, 0, "")
		}
		d.pdf.Ln(-1)
	}
	d.pdf.Ln(12)
}

// summaryRow formats one annual summary table row. Expenses are shown
// as their absolute value.
func summaryRow(rv model.MonthlyReview) [4]string {
	return [4]string{
		rv.Month.String(),
		money.Format(rv.Sales),
		money.Format(rv.Expenses.Abs()),
		money.Format(rv.Profit),
	}
}

func (d *doc) monthPage(rv model.MonthlyReview, chartPNG []byte) {
	d.heading(fmt.Sprintf("Monthly Performance - %s", rv.Month))

	rows := [][2]string{
		{"Sales", money.Format(rv.Sales)},
		{"Expenses", money.Format(rv.Expenses.Abs())},
		{"Profit", money.Format(rv.Profit)},
	}
	d.pdf.SetFont(d.font, "", 10)
	for i, row := range rows {
		fill := i == 0
		if fill {
			d.pdf.SetFillColor(211, 211, 211)
		}
		d.pdf.CellFormat(monthlyColWidth, rowHeight, row[0], "1", 0, "C", fill, 0, "")
		d.pdf.CellFormat(monthlyColWidth, rowHeight, d.text(row[1]), "1", 1, "C", fill, 0, "")
	}
	d.pdf.Ln(6)

	d.image(fmt.Sprintf("month-%02d", rv.Month), chartPNG, "")

	d.pdf.SetFont(d.font, "", 10)
	d.pdf.MultiCell(0, 14, d.text("Summary: "+rv.Narration), "", "L", false)
}

func (d *doc) heading(text string) {
	d.pdf.SetFont(d.font, "B", 14)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.CellFormat(0, 20, d.text(text), "", 1, "L", false, 0, "")
	d.pdf.Ln(4)
}

func (d *doc) image(name string, png []byte, caption string) {
	if caption != "" {
		d.heading(caption)
	}
	imgOpts := fpdf.ImageOptions{ImageType: "png"}
	d.pdf.RegisterImageOptionsReader(name, imgOpts, bytes.NewReader(png))
	d.pdf.ImageOptions(name, d.pdf.GetX(), d.pdf.GetY(), chartWidth, chartHeight, true, imgOpts, 0, "")
	d.pdf.Ln(12)
}
