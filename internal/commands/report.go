package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/showinvestor-dev/showinvestor/internal/config"
	"github.com/showinvestor-dev/showinvestor/internal/id"
	"github.com/showinvestor-dev/showinvestor/internal/logger"
	"github.com/showinvestor-dev/showinvestor/internal/report"
	"github.com/showinvestor-dev/showinvestor/internal/runlog"
)

type reportParams struct {
	salesPath    string
	expensesPath string
	configPath   string
	outPath      string
	name         string
	logoPath     string
	title        string
	fontPath     string
}

func newReportCommand() *cobra.Command {
	var p reportParams

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the investor PDF report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(p)
		},
	}

	cmd.Flags().StringVar(&p.salesPath, "sales", "", "sales file, CSV or XLSX (required)")
	cmd.Flags().StringVar(&p.expensesPath, "expenses", "", "expenses file, CSV or XLSX (required)")
	cmd.Flags().StringVar(&p.configPath, "config", "", "path to showinvestor.yaml")
	cmd.Flags().StringVar(&p.outPath, "out", "", "output PDF path")
	cmd.Flags().StringVar(&p.name, "name", "", "business name (overrides config)")
	cmd.Flags().StringVar(&p.logoPath, "logo", "", "business logo, PNG or JPEG (overrides config)")
	cmd.Flags().StringVar(&p.title, "title", "", "report title (overrides config)")
	cmd.Flags().StringVar(&p.fontPath, "font", "", "UTF-8 TTF font file (overrides config)")
	_ = cmd.MarkFlagRequired("sales")
	_ = cmd.MarkFlagRequired("expenses")

	return cmd
}

func runReport(p reportParams) error {
	log := logger.New()

	cfg := config.Default("")
	if p.configPath != "" {
		loaded, err := config.Load(p.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags win over config.
	name := firstNonEmpty(p.name, cfg.Business.Name)
	title := firstNonEmpty(p.title, cfg.Report.Title)
	logoPath := firstNonEmpty(p.logoPath, cfg.Business.Logo)
	fontPath := firstNonEmpty(p.fontPath, cfg.Report.Font)

	bundle, records, err := buildBundle(p.salesPath, p.expensesPath)
	if err != nil {
		return err
	}
	log.Info().
		Int("records", records).
		Int("months", len(bundle.MonthlyReviews)).
		Int("products", len(bundle.ProductPerformance)).
		Msg("aggregated insights")

	opts := report.Options{BusinessName: name, Title: title}
	if logoPath != "" {
		opts.Logo, err = os.ReadFile(logoPath)
		if err != nil {
			return fmt.Errorf("reading logo: %w", err)
		}
		opts.LogoFormat = logoFormat(logoPath)
	}
	if fontPath != "" {
		opts.FontData, err = os.ReadFile(fontPath)
		if err != nil {
			return fmt.Errorf("reading font: %w", err)
		}
	}

	doc, err := report.Compose(bundle, opts)
	if err != nil {
		return err
	}

	out := p.outPath
	if out == "" {
		out = filepath.Join(cfg.Report.OutputDir, "Investor_Report.pdf")
	}
	if err := os.WriteFile(out, doc, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if err := logRun(cfg.Report.OutputDir, p, records, len(bundle.MonthlyReviews), out); err != nil {
		return err
	}

	log.Info().Str("output", out).Int("bytes", len(doc)).Msg("report written")
	return nil
}

func logRun(root string, p reportParams, records, months int, out string) error {
	now := time.Now()
	seq, err := runlog.NextSeq(root, now.Year(), int(now.Month()))
	if err != nil {
		return err
	}

	return runlog.Append(root, []runlog.Entry{{
		Timestamp:    now,
		RunID:        id.FormatRunID(now.Year(), int(now.Month()), seq),
		SalesFile:    filepath.Base(p.salesPath),
		ExpensesFile: filepath.Base(p.expensesPath),
		Records:      records,
		Months:       months,
		Output:       out,
	}})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func logoFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "jpg"
	default:
		return "png"
	}
}
