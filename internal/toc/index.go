package toc

import (
	"fmt"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

const (
	dirPerms  = 0o755
	filePerms = 0o644
)

// IndexContent renders a directory index: an H1 with indexTitle, a blank
// line and the children as a list, ending in exactly one newline.
func IndexContent(indexTitle string, children []Node, link Linker) string {
	lines := []string{"# " + indexTitle, ""}
	lines = append(lines, Render(children, link)...)
	if lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// WriteIndex writes the index file at path, linking children relative to
// baseDir. Parent directories are created as needed.
func WriteIndex(fs billy.Filesystem, path, indexTitle string, children []Node, baseDir string) error {
	content := IndexContent(indexTitle, children, RelativeLinker("", baseDir))

	if err := fs.MkdirAll(filepath.Dir(path), dirPerms); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := util.WriteFile(fs, path, []byte(content), filePerms); err != nil {
		return fmt.Errorf("write index %s: %w", path, err)
	}
	return nil
}
