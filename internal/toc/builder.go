package toc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/itsmostafa/mdsummary/internal/config"
	"github.com/itsmostafa/mdsummary/internal/natsort"
	"github.com/itsmostafa/mdsummary/internal/title"
)

// SynthesizedIndexName is the index file created in directories that only
// contain subdirectories.
const SynthesizedIndexName = "Content.md"

// rootDir is the root of the builder's filesystem.
const rootDir = "."

// IndexNames are the recognized index file names, in discovery order.
var IndexNames = []string{"Context.md", "context.md", "Content.md", "content.md"}

// DefaultFileNames are the candidates for a directory's anchor page, in
// preference order.
var DefaultFileNames = []string{
	"README.md",
	"Readme.md",
	"readme.md",
	"index.md",
	"Index.md",
	"INDEX.md",
	"Content.md",
	"content.md",
	"Context.md",
	"context.md",
}

// ErrTooDeep is returned when directories nest deeper than the builder's
// MaxDepth.
var ErrTooDeep = errors.New("directory tree too deep")

// Builder turns a content tree into Nodes. Directories are resolved
// bottom-up and each directory's index file is rewritten once its children
// are known.
type Builder struct {
	FS       billy.Filesystem
	Rules    Rules
	Logger   *zap.Logger
	DryRun   bool
	MaxDepth int

	indexes     []string
	synthesized []string
}

// NewBuilder creates a Builder over fs. All paths handed to and returned by
// the builder are relative to the root of fs.
func NewBuilder(fs billy.Filesystem, rules Rules, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		FS:       fs,
		Rules:    rules,
		Logger:   logger,
		MaxDepth: config.DefaultMaxDepth,
	}
}

// Indexes returns the index files written so far.
func (b *Builder) Indexes() []string {
	return b.indexes
}

// Synthesized returns the index files created because a directory had none.
// In dry-run mode they are reported but not written.
func (b *Builder) Synthesized() []string {
	return b.synthesized
}

// CollectRoot builds the top-level entries: every markdown file directly in
// the root, then every directory under it that yields a node.
func (b *Builder) CollectRoot() ([]Node, error) {
	entries, err := b.list(rootDir)
	if err != nil {
		return nil, err
	}

	var nodes []Node
	for _, file := range entries.markdown {
		nodes = append(nodes, b.fileNode(file))
	}

	for _, dir := range entries.dirs {
		node, ok, err := b.buildDirectory(dir, 1)
		if err != nil {
			return nil, err
		}
		if ok {
			nodes = append(nodes, node)
		}
	}

	return nodes, nil
}

// BuildDirectory builds the node for dir. The boolean is false when the
// directory has neither an anchor page nor children and is left out.
func (b *Builder) BuildDirectory(dir string) (Node, bool, error) {
	return b.buildDirectory(dir, strings.Count(filepath.ToSlash(filepath.Clean(dir)), "/")+1)
}

func (b *Builder) buildDirectory(dir string, depth int) (Node, bool, error) {
	if b.MaxDepth > 0 && depth > b.MaxDepth {
		return nil, false, fmt.Errorf("%w: %s exceeds %d levels", ErrTooDeep, dir, b.MaxDepth)
	}

	entries, err := b.list(dir)
	if err != nil {
		return nil, false, err
	}

	index := entries.first(IndexNames)

	filesWithoutIndex := lo.Filter(entries.markdown, func(file string, _ int) bool {
		return file != index
	})

	var children []Node
	for _, file := range filesWithoutIndex {
		children = append(children, b.fileNode(file))
	}

	for _, sub := range entries.dirs {
		child, ok, err := b.buildDirectory(sub, depth+1)
		if err != nil {
			return nil, false, err
		}
		if ok {
			children = append(children, child)
		}
	}

	synthesized := false
	if index == "" && len(children) > 0 && len(filesWithoutIndex) == 0 {
		index = filepath.Join(dir, SynthesizedIndexName)
		synthesized = true
		b.synthesized = append(b.synthesized, index)
		b.Logger.Debug("synthesizing index", zap.String("dir", dir), zap.String("index", index))
	}

	defaultFile := entries.first(DefaultFileNames)
	anchor := defaultFile
	if index != "" && (synthesized || defaultFile == "" || IsIndexName(defaultFile)) {
		anchor = index
	} else if anchor == "" && len(filesWithoutIndex) > 0 {
		anchor = filesWithoutIndex[0]
	}

	if index != "" && len(children) > 0 {
		indexTitle, ok := title.ExtractHeading(b.FS, index)
		if !ok {
			indexTitle = title.FromName(filepath.Base(dir))
		}
		if err := b.writeIndex(index, indexTitle, children, dir); err != nil {
			return nil, false, err
		}
	}

	if anchor == "" && len(children) == 0 {
		b.Logger.Debug("pruning empty directory", zap.String("dir", dir))
		return nil, false, nil
	}

	if anchor != "" {
		children = lo.Reject(children, func(n Node, _ int) bool {
			file, ok := FileOf(n)
			return ok && file == anchor
		})
		if len(children) == 0 {
			children = nil
		}
	}

	dirTitle := title.ForDirectory(b.FS, dir, anchor)
	if anchor == "" {
		return &GroupNode{Title: dirTitle, Children: children}, true, nil
	}
	return &LinkedNode{Title: dirTitle, File: anchor, Children: children}, true, nil
}

func (b *Builder) fileNode(file string) Node {
	return &LinkedNode{Title: title.ForFile(b.FS, file), File: file}
}

func (b *Builder) writeIndex(index, indexTitle string, children []Node, dir string) error {
	if b.DryRun {
		b.Logger.Debug("dry run, not writing index", zap.String("index", index))
		return nil
	}
	if err := WriteIndex(b.FS, index, indexTitle, children, dir); err != nil {
		return err
	}
	b.indexes = append(b.indexes, index)
	b.Logger.Debug("wrote index", zap.String("index", index), zap.Int("entries", len(children)))
	return nil
}

// IsIndexName reports whether the base name of path is a recognized index
// file name, ignoring case.
func IsIndexName(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	return lo.ContainsBy(IndexNames, func(index string) bool {
		return strings.ToLower(index) == name
	})
}

// dirEntries is the filtered, naturally ordered listing of one directory.
type dirEntries struct {
	dir      string
	dirs     []string
	markdown []string
	files    map[string]bool
}

// first returns the path of the first name in names that exists as a file
// in the directory, or "".
func (e dirEntries) first(names []string) string {
	for _, name := range names {
		if e.files[name] {
			return filepath.Join(e.dir, name)
		}
	}
	return ""
}

func (b *Builder) list(dir string) (dirEntries, error) {
	infos, err := b.FS.ReadDir(dir)
	if err != nil {
		return dirEntries{}, fmt.Errorf("read directory %s: %w", dir, err)
	}

	entries := dirEntries{dir: dir, files: make(map[string]bool)}
	var dirNames, fileNames []string
	for _, info := range infos {
		name := info.Name()
		path := filepath.Join(dir, name)

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := b.FS.Stat(path)
			if err != nil {
				b.Logger.Warn("skipping unreadable link", zap.String("path", path), zap.Error(err))
				continue
			}
			info = target
		}

		switch {
		case info.IsDir():
			if !b.Rules.SkipDir(path) {
				dirNames = append(dirNames, name)
			}
		case info.Mode().IsRegular():
			entries.files[name] = true
			if !b.Rules.SkipFile(path) {
				fileNames = append(fileNames, name)
			}
		}
	}

	natsort.Sort(dirNames)
	natsort.Sort(fileNames)
	for _, name := range dirNames {
		entries.dirs = append(entries.dirs, filepath.Join(dir, name))
	}
	for _, name := range fileNames {
		entries.markdown = append(entries.markdown, filepath.Join(dir, name))
	}

	return entries, nil
}
