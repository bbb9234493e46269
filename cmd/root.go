package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/mdsummary/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mdsummary",
	Short: "Generate an mdBook SUMMARY.md from a markdown directory tree",
	Long: `mdsummary walks a directory of markdown files, titles every page and
directory from its first heading (or its cleaned-up name), regenerates the
per-directory Content.md/Context.md index pages and writes a nested SUMMARY.md
for mdBook.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("mdsummary %s\n", version.String()))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
