package cmd

import (
	"os"
	"path/filepath"

	"github.com/itsmostafa/mdsummary/internal/config"
	"github.com/spf13/cobra"
)

// options are the traversal flags shared by generate and tree.
type options struct {
	root             string
	configPath       string
	summaryPath      string
	title            string
	ignoreDirs       []string
	ignoreFiles      []string
	ignorePatterns   []string
	useGitignore     bool
	includeRootFiles bool
	maxDepth         int
	verbose          bool
}

func addTraversalFlags(cmd *cobra.Command, opts *options) {
	// Root flag with env var fallback
	defaultRoot := "."
	if envRoot := os.Getenv("MDSUMMARY_ROOT"); envRoot != "" {
		defaultRoot = envRoot
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.root, "root", defaultRoot, "Root directory containing markdown content")
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: <root>/"+config.FileName+" if present)")
	flags.StringVar(&opts.summaryPath, "summary-path", "", "Output path for SUMMARY.md (default: <root>/SUMMARY.md)")
	flags.StringVar(&opts.title, "title", config.DefaultTitle, "Title of the summary document")
	flags.StringArrayVar(&opts.ignoreDirs, "ignore-dir", nil, "Additional directory name to ignore (repeatable)")
	flags.StringArrayVar(&opts.ignoreFiles, "ignore-file", nil, "Additional file name to ignore (repeatable)")
	flags.StringArrayVar(&opts.ignorePatterns, "ignore-pattern", nil, "Gitignore-style pattern to ignore (repeatable)")
	flags.BoolVar(&opts.useGitignore, "use-gitignore", false, "Also apply <root>/.gitignore")
	flags.BoolVar(&opts.includeRootFiles, "include-root-files", false, "Include markdown files directly under the root")
	flags.IntVar(&opts.maxDepth, "max-depth", config.DefaultMaxDepth, "Maximum directory nesting")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig reads the config file, if any, and applies the flags that were
// set on the command line on top of it.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	path := opts.configPath
	required := path != ""
	if !required {
		path = filepath.Join(opts.root, config.FileName)
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()

	// A root set in the config file is relative to the file itself.
	if cfg.Root != "." && !flags.Changed("root") && os.Getenv("MDSUMMARY_ROOT") == "" {
		if !filepath.IsAbs(cfg.Root) {
			cfg.Root = filepath.Join(filepath.Dir(path), cfg.Root)
		}
	} else {
		cfg.Root = opts.root
	}

	if flags.Changed("summary-path") {
		cfg.SummaryPath = opts.summaryPath
	}
	if flags.Changed("title") {
		cfg.Title = opts.title
	}
	if flags.Changed("use-gitignore") {
		cfg.UseGitignore = opts.useGitignore
	}
	if flags.Changed("include-root-files") {
		cfg.IncludeRootFiles = opts.includeRootFiles
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = opts.maxDepth
	}
	cfg.IgnoreDirs = append(cfg.IgnoreDirs, opts.ignoreDirs...)
	cfg.IgnoreFiles = append(cfg.IgnoreFiles, opts.ignoreFiles...)
	cfg.IgnorePatterns = append(cfg.IgnorePatterns, opts.ignorePatterns...)

	return cfg.Resolve()
}
