package cmd

import (
	"fmt"

	"github.com/itsmostafa/mdsummary/internal/logging"
	"github.com/itsmostafa/mdsummary/internal/report"
	"github.com/itsmostafa/mdsummary/internal/toc"
	"github.com/spf13/cobra"
)

var generateOpts options
var generateDryRun bool
var generateStdout bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write SUMMARY.md and the per-directory index files",
	Long: `Scan the content root, rewrite every directory index (Context.md or
Content.md, created where a directory only holds subdirectories) and write the
summary document.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, &generateOpts)
		if err != nil {
			return err
		}
		cfg.DryRun = generateDryRun
		cfg.Stdout = generateStdout

		logger := logging.New(cmd.ErrOrStderr(), generateOpts.verbose)
		defer logger.Sync()

		out := cmd.OutOrStdout()
		if !cfg.Stdout {
			report.FormatHeader(out, cfg)
		}

		result, err := toc.Generate(cfg, logger)
		if err != nil {
			return err
		}

		if cfg.Stdout {
			fmt.Fprint(out, result.Summary)
			return nil
		}
		report.FormatResult(out, result)
		return nil
	},
}

func init() {
	addTraversalFlags(generateCmd, &generateOpts)
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Resolve the tree without writing any file")
	generateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "Print the summary instead of writing it (index files are still written)")

	rootCmd.AddCommand(generateCmd)
}
