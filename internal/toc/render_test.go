package toc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// renderedLink is a link found in rendered markdown with the number of
// lists enclosing it.
type renderedLink struct {
	Title string
	Dest  string
	Depth int
}

// parseLinks parses markdown with goldmark and returns its links in
// document order.
func parseLinks(t *testing.T, src string) []renderedLink {
	t.Helper()
	source := []byte(src)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var links []renderedLink
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		link, ok := n.(*ast.Link)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}

		var buf bytes.Buffer
		for child := link.FirstChild(); child != nil; child = child.NextSibling() {
			if txt, ok := child.(*ast.Text); ok {
				buf.Write(txt.Segment.Value(source))
			}
		}

		depth := 0
		for p := n.Parent(); p != nil; p = p.Parent() {
			if p.Kind() == ast.KindList {
				depth++
			}
		}

		links = append(links, renderedLink{Title: buf.String(), Dest: string(link.Destination), Depth: depth})
		return ast.WalkSkipChildren, nil
	})
	require.NoError(t, err)
	return links
}

func TestRender_LinkedNodes(t *testing.T) {
	nodes := []Node{
		&LinkedNode{Title: "Intro", File: "intro.md"},
		&LinkedNode{Title: "Guide", File: "guide/README.md", Children: []Node{
			&LinkedNode{Title: "Install", File: "guide/install.md", Children: []Node{
				&LinkedNode{Title: "Linux", File: "guide/linux.md"},
			}},
		}},
	}

	lines := Render(nodes, RelativeLinker("", "."))
	assert.Equal(t, []string{
		"- [Intro](intro.md)",
		"- [Guide](guide/README.md)",
		"    - [Install](guide/install.md)",
		"        - [Linux](guide/linux.md)",
	}, lines)

	assert.Equal(t, []renderedLink{
		{Title: "Intro", Dest: "intro.md", Depth: 1},
		{Title: "Guide", Dest: "guide/README.md", Depth: 1},
		{Title: "Install", Dest: "guide/install.md", Depth: 2},
		{Title: "Linux", Dest: "guide/linux.md", Depth: 3},
	}, parseLinks(t, SummaryContent("Summary", nodes, RelativeLinker("", "."))))
}

func TestRender_GroupNodes(t *testing.T) {
	nodes := []Node{
		&GroupNode{Title: "Part One", Children: []Node{
			&LinkedNode{Title: "Intro", File: "a/intro.md", Children: []Node{
				&LinkedNode{Title: "Deep", File: "a/deep.md"},
			}},
		}},
		&LinkedNode{Title: "Appendix", File: "b.md"},
	}

	assert.Equal(t, []string{
		"# Part One",
		"",
		"- [Intro](a/intro.md)",
		"    - [Deep](a/deep.md)",
		"",
		"- [Appendix](b.md)",
	}, Render(nodes, RelativeLinker("", ".")))
}

func TestRender_NestedGroupResetsIndent(t *testing.T) {
	nodes := []Node{
		&LinkedNode{Title: "Top", File: "top.md", Children: []Node{
			&GroupNode{Title: "Sub", Children: []Node{
				&LinkedNode{Title: "Leaf", File: "leaf.md"},
			}},
		}},
	}

	assert.Equal(t, []string{
		"- [Top](top.md)",
		"## Sub",
		"",
		"- [Leaf](leaf.md)",
		"",
	}, Render(nodes, RelativeLinker("", ".")))
}

func TestRender_HeadingLevelCapped(t *testing.T) {
	var node Node = &GroupNode{Title: "Deepest", Children: []Node{&LinkedNode{Title: "Leaf", File: "leaf.md"}}}
	for i := 0; i < 7; i++ {
		node = &LinkedNode{Title: "Level", File: "level.md", Children: []Node{node}}
	}

	lines := Render([]Node{node}, RelativeLinker("", "."))
	assert.Contains(t, lines, "###### Deepest")
}

func TestRelativeLinker(t *testing.T) {
	tests := []struct {
		name    string
		root    string
		baseDir string
		file    string
		want    string
	}{
		{"same directory", "/docs", "/docs", "guide/a.md", "guide/a.md"},
		{"summary in subdirectory", "/docs", "/docs/out", "guide/a.md", "../guide/a.md"},
		{"summary above root", "/docs", "/", "guide/a.md", "docs/guide/a.md"},
		{"index links", "", "guide", "guide/sub/a.md", "sub/a.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeLinker(tt.root, tt.baseDir)(tt.file))
		})
	}
}

func TestSummaryContent(t *testing.T) {
	nodes := []Node{&LinkedNode{Title: "Intro", File: "intro.md"}}

	assert.Equal(t, "# Book\n\n- [Intro](intro.md)\n", SummaryContent("Book", nodes, RelativeLinker("", ".")))
	assert.Equal(t, "# Book\n\n", SummaryContent("Book", nil, RelativeLinker("", ".")))
}

func TestIndexContent(t *testing.T) {
	link := RelativeLinker("", "guide")

	t.Run("linked children", func(t *testing.T) {
		children := []Node{&LinkedNode{Title: "A", File: "guide/a.md"}}
		assert.Equal(t, "# Guide\n\n- [A](a.md)\n", IndexContent("Guide", children, link))
	})

	t.Run("group child ends with a single newline", func(t *testing.T) {
		children := []Node{&GroupNode{Title: "Group", Children: []Node{
			&LinkedNode{Title: "A", File: "guide/a.md"},
		}}}
		assert.Equal(t, "# Guide\n\n# Group\n\n- [A](a.md)\n", IndexContent("Guide", children, link))
	})

	t.Run("no children", func(t *testing.T) {
		assert.Equal(t, "# Guide\n", IndexContent("Guide", nil, link))
	})
}
