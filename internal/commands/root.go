package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/showinvestor-dev/showinvestor/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "showinvestor",
		Short:   "Investor-ready financial reports from sales and expense files",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newInsightsCommand())
	rootCmd.AddCommand(newReportCommand())

	return rootCmd
}
