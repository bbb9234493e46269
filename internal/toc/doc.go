// Package toc builds the table of contents of a markdown content tree and
// renders it as an mdBook-style summary document.
//
// # Overview
//
// A Builder walks the content root depth-first. Every markdown file becomes
// a linked entry titled by its first heading (or its cleaned-up name), and
// every directory becomes an entry anchored on its README, index or
// Content/Context page. Directories that only hold subdirectories get a
// Content.md index synthesized for them, and every directory index is
// regenerated from the directory's children as soon as they are known.
//
// # Node shapes
//
// Entries are either:
//
//   - *LinkedNode: a title, an anchor file and children. Rendered as a list
//     item "- [Title](path)".
//
//   - *GroupNode: a title and children without a page. Rendered as a
//     heading; its children start a new list at the left margin.
//
// # Usage
//
//	cfg := config.Default()
//	cfg.Root = "docs"
//	result, err := toc.Generate(cfg, logger)
//
// Generate writes the summary once, after the whole tree is resolved. Index
// files are written per directory and are left in place if a later
// directory fails.
package toc
