package toc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/natefinch/atomic"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/itsmostafa/mdsummary/internal/config"
)

// ErrNoContent is returned when the content tree holds no markdown at all.
// The summary document is not written in that case.
var ErrNoContent = errors.New("no markdown content discovered")

// Result describes a finished run.
type Result struct {
	Config      config.Config
	Nodes       []Node
	Summary     string
	Written     bool
	Indexes     []string
	Synthesized []string
	Stats       Stats
}

// Generate builds the table of contents for cfg.Root, rewrites the index
// files along the way and writes the summary document. Nothing is written
// when the root is invalid or has no content.
func Generate(cfg config.Config, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rules, err := RulesFor(cfg)
	if err != nil {
		return nil, err
	}

	builder := NewBuilder(osfs.New(cfg.Root), rules, logger)
	builder.DryRun = cfg.DryRun
	builder.MaxDepth = cfg.MaxDepth

	logger.Debug("scanning content", zap.String("root", cfg.Root))
	nodes, err := builder.CollectRoot()
	if err != nil {
		return nil, err
	}
	if !cfg.IncludeRootFiles {
		nodes = FilterRootFiles(nodes)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoContent, cfg.Root)
	}

	summary := SummaryContent(cfg.Title, nodes, RelativeLinker(cfg.Root, filepath.Dir(cfg.SummaryPath)))
	result := &Result{
		Config:      cfg,
		Nodes:       nodes,
		Summary:     summary,
		Indexes:     builder.Indexes(),
		Synthesized: builder.Synthesized(),
		Stats:       Count(nodes),
	}

	if cfg.DryRun || cfg.Stdout {
		return result, nil
	}
	if err := WriteSummary(cfg.SummaryPath, summary); err != nil {
		return nil, err
	}
	result.Written = true
	logger.Debug("wrote summary", zap.String("path", cfg.SummaryPath))

	return result, nil
}

// FilterRootFiles drops linked entries whose page sits directly in the root.
// Directory entries are kept.
func FilterRootFiles(nodes []Node) []Node {
	return lo.Reject(nodes, func(n Node, _ int) bool {
		file, ok := FileOf(n)
		return ok && filepath.Dir(file) == rootDir
	})
}

// WriteSummary atomically replaces the summary document at path.
func WriteSummary(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerms); err != nil {
		return fmt.Errorf("create summary directory: %w", err)
	}

	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}

	// atomic.WriteFile creates new files owner-only.
	if err := os.Chmod(path, filePerms); err != nil {
		return fmt.Errorf("set summary permissions: %w", err)
	}

	return nil
}
