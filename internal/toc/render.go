package toc

import (
	"fmt"
	"path/filepath"
	"strings"
)

const indentSize = 4

// maxHeadingLevel is the deepest ATX heading markdown supports.
const maxHeadingLevel = 6

// Linker turns a root-relative anchor file into the link target written in a
// document.
type Linker func(file string) string

// RelativeLinker links files relative to baseDir. root is the directory the
// anchor files are relative to; baseDir is the directory of the document
// being written. Links always use forward slashes.
func RelativeLinker(root, baseDir string) Linker {
	return func(file string) string {
		target := filepath.Join(root, file)
		rel, err := filepath.Rel(baseDir, target)
		if err != nil {
			rel = target
		}
		return filepath.ToSlash(rel)
	}
}

// Render turns nodes into the lines of a nested markdown list. Linked nodes
// become list items indented four spaces per level; group nodes become
// headings, and their children start a fresh list at the left margin.
func Render(nodes []Node, link Linker) []string {
	return render(nodes, link, 0)
}

func render(nodes []Node, link Linker, depth int) []string {
	var lines []string
	for _, node := range nodes {
		childDepth := 0
		_, isGroup := node.(*GroupNode)

		switch n := node.(type) {
		case *LinkedNode:
			indent := strings.Repeat(" ", indentSize*depth)
			lines = append(lines, fmt.Sprintf("%s- [%s](%s)", indent, n.Title, link(n.File)))
			childDepth = depth + 1
		case *GroupNode:
			if len(lines) > 0 && lines[len(lines)-1] != "" {
				lines = append(lines, "")
			}
			level := min(maxHeadingLevel, depth+1)
			lines = append(lines, strings.Repeat("#", level)+" "+n.Title, "")
		default:
			panic(fmt.Sprintf("toc: unexpected node type %T", node))
		}

		children := ChildrenOf(node)
		if len(children) == 0 {
			continue
		}
		childLines := render(children, link, childDepth)
		lines = append(lines, childLines...)
		if isGroup && len(childLines) > 0 && childLines[len(childLines)-1] != "" {
			lines = append(lines, "")
		}
	}
	return lines
}

// SummaryContent renders the summary document: an H1 with docTitle followed
// by the table of contents, ending in a newline.
func SummaryContent(docTitle string, nodes []Node, link Linker) string {
	lines := append([]string{"# " + docTitle, ""}, Render(nodes, link)...)
	return strings.Join(lines, "\n") + "\n"
}
