package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/showinvestor-dev/showinvestor/internal/insight"
	"github.com/showinvestor-dev/showinvestor/internal/model"
	"github.com/showinvestor-dev/showinvestor/internal/normalize"
	"github.com/showinvestor-dev/showinvestor/internal/tabular"
)

// loadTable opens a sales or expenses file and parses it by extension.
func loadTable(path string) (tabular.Table, error) {
	reader := tabular.DefaultRegistry().ForFile(path)
	if reader == nil {
		return tabular.Table{}, fmt.Errorf("unsupported input format %q", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return tabular.Table{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := reader.Read(f)
	if err != nil {
		return tabular.Table{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// buildBundle runs the full ingestion and aggregation pipeline over the
// two input files. Returns the bundle and the retained record count.
func buildBundle(salesPath, expensesPath string) (model.InsightBundle, int, error) {
	sales, err := loadTable(salesPath)
	if err != nil {
		return model.InsightBundle{}, 0, err
	}

	expenses, err := loadTable(expensesPath)
	if err != nil {
		return model.InsightBundle{}, 0, err
	}

	records, err := normalize.Normalize(sales, expenses)
	if err != nil {
		return model.InsightBundle{}, 0, err
	}

	return insight.Build(records), len(records), nil
}
