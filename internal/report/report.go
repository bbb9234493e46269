// Package report prints the terminal output of a summary run.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/mdsummary/internal/config"
	"github.com/itsmostafa/mdsummary/internal/toc"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	// dimStyle for muted labels and link targets
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for counts and written paths
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for dry-run notices
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// groupStyle for heading-only entries in tree listings
	groupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))

	// boxStyle for the result box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	// headerBoxStyle for the run header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// Mode returns a short description of what a run with cfg writes.
func Mode(cfg config.Config) string {
	switch {
	case cfg.DryRun:
		return "dry run"
	case cfg.Stdout:
		return "stdout"
	}
	return "write"
}

// FormatHeader renders the run header with the resolved configuration.
func FormatHeader(w io.Writer, cfg config.Config) {
	content := fmt.Sprintf("%s %s  %s %s\n%s %s\n%s %s",
		dimStyle.Render("Title:"), titleStyle.Render(cfg.Title),
		dimStyle.Render("Mode:"), titleStyle.Render(Mode(cfg)),
		dimStyle.Render("Root:"), cfg.Root,
		dimStyle.Render("Summary:"), cfg.SummaryPath,
	)

	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// FormatResult renders the summary box of a finished run.
func FormatResult(w io.Writer, result *toc.Result) {
	line1 := fmt.Sprintf("%s %s  %s %s",
		dimStyle.Render("Entries:"), successStyle.Render(fmt.Sprint(result.Stats.Linked)),
		dimStyle.Render("Groups:"), successStyle.Render(fmt.Sprint(result.Stats.Groups)),
	)
	line2 := fmt.Sprintf("%s %s  %s %s",
		dimStyle.Render("Indexes written:"), successStyle.Render(fmt.Sprint(len(result.Indexes))),
		dimStyle.Render("Synthesized:"), successStyle.Render(fmt.Sprint(len(result.Synthesized))),
	)

	var status string
	switch {
	case result.Written:
		status = successStyle.Render("Wrote " + result.Config.SummaryPath)
	case result.Config.DryRun:
		status = warnStyle.Render("Dry run, nothing written")
	default:
		status = dimStyle.Render("Summary not written")
	}

	content := titleStyle.Render("Summary Complete") + "\n" + line1 + "\n" + line2 + "\n" + status
	fmt.Fprintln(w, boxStyle.Render(content))

	for _, index := range result.Synthesized {
		fmt.Fprintf(w, "%s %s\n", dimStyle.Render("+"), filepath.Join(result.Config.Root, index))
	}
}

// FormatTree renders nodes as an indented outline: titles followed by their
// dimmed link targets, grouping headings in bold.
func FormatTree(w io.Writer, nodes []toc.Node) {
	toc.Walk(nodes, func(n toc.Node, depth int) {
		indent := strings.Repeat("  ", depth)
		switch n := n.(type) {
		case *toc.LinkedNode:
			fmt.Fprintf(w, "%s%s %s\n", indent, n.Title, dimStyle.Render(filepath.ToSlash(n.File)))
		case *toc.GroupNode:
			fmt.Fprintf(w, "%s%s\n", indent, groupStyle.Render(n.Title))
		}
	})
}
