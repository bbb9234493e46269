package toc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"github.com/samber/lo"

	"github.com/itsmostafa/mdsummary/internal/config"
)

// MarkdownExtensions are the file extensions treated as markdown content.
var MarkdownExtensions = []string{".md", ".markdown", ".mdown"}

// Rules decides which directory entries take part in the tree. It is built
// once per run and not modified afterwards.
type Rules struct {
	dirs     map[string]bool
	files    map[string]bool
	patterns *gitignore.GitIgnore
}

// NewRules builds Rules from exact directory and file names, gitignore-style
// patterns and an optional .gitignore file. A missing gitignore file is
// ignored.
func NewRules(dirs, files, patterns []string, gitignoreFile string) (Rules, error) {
	r := Rules{
		dirs:  lo.SliceToMap(dirs, func(name string) (string, bool) { return name, true }),
		files: lo.SliceToMap(files, func(name string) (string, bool) { return name, true }),
	}

	if gitignoreFile != "" {
		if _, err := os.Stat(gitignoreFile); err == nil {
			matcher, err := gitignore.CompileIgnoreFileAndLines(gitignoreFile, patterns...)
			if err != nil {
				return r, fmt.Errorf("compile %s: %w", gitignoreFile, err)
			}
			r.patterns = matcher
			return r, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return r, fmt.Errorf("stat %s: %w", gitignoreFile, err)
		}
	}

	if len(patterns) > 0 {
		r.patterns = gitignore.CompileIgnoreLines(patterns...)
	}

	return r, nil
}

// RulesFor builds the Rules of a run from its configuration.
func RulesFor(cfg config.Config) (Rules, error) {
	var gitignoreFile string
	if cfg.UseGitignore {
		gitignoreFile = cfg.GitignorePath()
	}
	return NewRules(cfg.IgnoredDirNames(), cfg.IgnoredFileNames(), cfg.IgnorePatterns, gitignoreFile)
}

// SkipDir reports whether the directory at rel (relative to the root) is
// left out of the tree.
func (r Rules) SkipDir(rel string) bool {
	name := filepath.Base(rel)
	if r.dirs[name] || strings.HasPrefix(name, ".") {
		return true
	}
	return r.patterns != nil && r.patterns.MatchesPath(filepath.ToSlash(rel)+"/")
}

// SkipFile reports whether the file at rel (relative to the root) is left
// out of the tree. Only markdown files are kept.
func (r Rules) SkipFile(rel string) bool {
	name := filepath.Base(rel)
	if r.files[name] || strings.HasPrefix(name, ".") || !IsMarkdown(name) {
		return true
	}
	return r.patterns != nil && r.patterns.MatchesPath(filepath.ToSlash(rel))
}

// IsMarkdown reports whether name has a markdown extension.
func IsMarkdown(name string) bool {
	return lo.Contains(MarkdownExtensions, strings.ToLower(filepath.Ext(name)))
}
