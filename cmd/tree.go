package cmd

import (
	"github.com/itsmostafa/mdsummary/internal/logging"
	"github.com/itsmostafa/mdsummary/internal/report"
	"github.com/itsmostafa/mdsummary/internal/toc"
	"github.com/spf13/cobra"
)

var treeOpts options

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the resolved table of contents without writing anything",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, &treeOpts)
		if err != nil {
			return err
		}
		cfg.DryRun = true

		logger := logging.New(cmd.ErrOrStderr(), treeOpts.verbose)
		defer logger.Sync()

		result, err := toc.Generate(cfg, logger)
		if err != nil {
			return err
		}

		report.FormatTree(cmd.OutOrStdout(), result.Nodes)
		return nil
	},
}

func init() {
	addTraversalFlags(treeCmd, &treeOpts)
	rootCmd.AddCommand(treeCmd)
}
