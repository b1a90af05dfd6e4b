package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/showinvestor-dev/showinvestor/internal/config"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a showinvestor workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string) error {
	for _, d := range []string{"logs", "reports"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name)
	cfg.Report.OutputDir = filepath.Join(dir, "reports")
	if err := config.Save(filepath.Join(dir, "showinvestor.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Initialized showinvestor workspace at %s\n", dir)
	return nil
}
