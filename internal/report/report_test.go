package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itsmostafa/mdsummary/internal/config"
	"github.com/itsmostafa/mdsummary/internal/toc"
)

func TestMode(t *testing.T) {
	assert.Equal(t, "write", Mode(config.Config{}))
	assert.Equal(t, "stdout", Mode(config.Config{Stdout: true}))
	assert.Equal(t, "dry run", Mode(config.Config{DryRun: true, Stdout: true}))
}

func TestFormatHeader(t *testing.T) {
	var buf bytes.Buffer
	FormatHeader(&buf, config.Config{Root: "/docs", SummaryPath: "/docs/SUMMARY.md", Title: "Handbook"})

	out := buf.String()
	assert.Contains(t, out, "Handbook")
	assert.Contains(t, out, "/docs/SUMMARY.md")
	assert.Contains(t, out, "write")
}

func TestFormatResult(t *testing.T) {
	var buf bytes.Buffer
	FormatResult(&buf, &toc.Result{
		Config:      config.Config{Root: "/docs", SummaryPath: "/docs/SUMMARY.md"},
		Written:     true,
		Indexes:     []string{"guide/Content.md"},
		Synthesized: []string{"guide/Content.md"},
		Stats:       toc.Stats{Linked: 4, Groups: 1},
	})

	out := buf.String()
	assert.Contains(t, out, "Summary Complete")
	assert.Contains(t, out, "Wrote /docs/SUMMARY.md")
	assert.Contains(t, out, "4")
	assert.Contains(t, out, "/docs/guide/Content.md")
}

func TestFormatResult_DryRun(t *testing.T) {
	var buf bytes.Buffer
	FormatResult(&buf, &toc.Result{Config: config.Config{DryRun: true}})
	assert.Contains(t, buf.String(), "Dry run, nothing written")
}

func TestFormatTree(t *testing.T) {
	var buf bytes.Buffer
	FormatTree(&buf, []toc.Node{
		&toc.GroupNode{Title: "Part", Children: []toc.Node{
			&toc.LinkedNode{Title: "Intro", File: "part/intro.md"},
		}},
	})

	assert.Contains(t, buf.String(), "Part\n")
	assert.Contains(t, buf.String(), "  Intro part/intro.md\n")
}
