// Package config holds the options of a summary run: where the content
// lives, where the summary goes, and what to ignore.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
)

// FileName is the config file looked up in the content root when no
// explicit config path is given.
const FileName = ".mdsummary.toml"

const (
	DefaultTitle       = "Summary"
	DefaultSummaryName = "SUMMARY.md"
	DefaultMaxDepth    = 256
)

var (
	ErrRootNotFound     = errors.New("content root directory not found")
	ErrRootNotDirectory = errors.New("content root is not a directory")
)

// DefaultIgnoreDirs are directory names never descended into: VCS metadata,
// editor settings, caches, dependencies, build output, the rendered book
// and helper scripts.
var DefaultIgnoreDirs = []string{
	".git",
	".github",
	".vscode",
	".idea",
	".venv",
	".mypy_cache",
	"__pycache__",
	"node_modules",
	"scripts",
	"target",
	"build",
	"book",
	"dist",
}

// DefaultIgnoreFiles keeps the summary out of its own table of contents.
var DefaultIgnoreFiles = []string{DefaultSummaryName}

type Config struct {
	// Root is the directory containing the markdown content.
	Root string `toml:"root"`

	// SummaryPath is where the summary document is written
	// (default: <root>/SUMMARY.md).
	SummaryPath string `toml:"summary_path"`

	// Title is the H1 of the summary document.
	Title string `toml:"title"`

	// IgnoreDirs and IgnoreFiles are exact names added to the built-in sets.
	IgnoreDirs  []string `toml:"ignore_dirs"`
	IgnoreFiles []string `toml:"ignore_files"`

	// IgnorePatterns are gitignore-style patterns matched against
	// root-relative paths.
	IgnorePatterns []string `toml:"ignore_patterns"`

	// UseGitignore also applies <root>/.gitignore.
	UseGitignore bool `toml:"use_gitignore"`

	// IncludeRootFiles keeps loose markdown files directly under Root.
	IncludeRootFiles bool `toml:"include_root_files"`

	// MaxDepth bounds directory recursion.
	MaxDepth int `toml:"max_depth"`

	// DryRun resolves the tree without writing index files or the summary.
	DryRun bool `toml:"-"`

	// Stdout prints the summary instead of writing SummaryPath.
	Stdout bool `toml:"-"`
}

// Default returns a Config rooted at the current directory.
func Default() Config {
	return Config{
		Root:     ".",
		Title:    DefaultTitle,
		MaxDepth: DefaultMaxDepth,
	}
}

// Load reads a TOML config file on top of Default. When required is false a
// missing file is not an error.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve makes Root and SummaryPath absolute and fills defaults left empty.
func (c Config) Resolve() (Config, error) {
	if c.Root == "" {
		c.Root = "."
	}
	root, err := filepath.Abs(c.Root)
	if err != nil {
		return c, fmt.Errorf("resolve root %s: %w", c.Root, err)
	}
	c.Root = root

	if c.SummaryPath == "" {
		c.SummaryPath = filepath.Join(root, DefaultSummaryName)
	}
	summary, err := filepath.Abs(c.SummaryPath)
	if err != nil {
		return c, fmt.Errorf("resolve summary path %s: %w", c.SummaryPath, err)
	}
	c.SummaryPath = summary

	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}

	return c, nil
}

// Validate checks that Root is an existing directory.
func (c Config) Validate() error {
	info, err := os.Stat(c.Root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, c.Root)
		}
		return fmt.Errorf("stat root %s: %w", c.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDirectory, c.Root)
	}
	return nil
}

// IgnoredDirNames merges the built-in directory names with IgnoreDirs.
func (c Config) IgnoredDirNames() []string {
	return lo.Uniq(append(append([]string{}, DefaultIgnoreDirs...), c.IgnoreDirs...))
}

// IgnoredFileNames merges the built-in file names, the summary's own name
// and IgnoreFiles.
func (c Config) IgnoredFileNames() []string {
	names := append([]string{}, DefaultIgnoreFiles...)
	if c.SummaryPath != "" {
		names = append(names, filepath.Base(c.SummaryPath))
	}
	return lo.Uniq(append(names, c.IgnoreFiles...))
}

// GitignorePath is the root .gitignore consulted when UseGitignore is set.
func (c Config) GitignorePath() string {
	return filepath.Join(c.Root, ".gitignore")
}
