package toc

// Node is one entry of the table of contents. It is either a *LinkedNode,
// which points at a page, or a *GroupNode, a heading without a page of its
// own.
type Node interface {
	isNode()
}

// LinkedNode is an entry with an anchor file. File is relative to the
// content root.
type LinkedNode struct {
	Title    string
	File     string
	Children []Node
}

// GroupNode is a grouping heading with no anchor file.
type GroupNode struct {
	Title    string
	Children []Node
}

func (*LinkedNode) isNode() {}
func (*GroupNode) isNode()  {}

// TitleOf returns the title of n.
func TitleOf(n Node) string {
	switch n := n.(type) {
	case *LinkedNode:
		return n.Title
	case *GroupNode:
		return n.Title
	}
	return ""
}

// ChildrenOf returns the children of n in render order.
func ChildrenOf(n Node) []Node {
	switch n := n.(type) {
	case *LinkedNode:
		return n.Children
	case *GroupNode:
		return n.Children
	}
	return nil
}

// FileOf returns the anchor file of n, if it has one.
func FileOf(n Node) (string, bool) {
	if l, ok := n.(*LinkedNode); ok {
		return l.File, true
	}
	return "", false
}

// Walk traverses nodes in depth-first order, calling fn with each node and
// its depth.
func Walk(nodes []Node, fn func(n Node, depth int)) {
	var walk func([]Node, int)
	walk = func(children []Node, depth int) {
		for _, n := range children {
			fn(n, depth)
			walk(ChildrenOf(n), depth+1)
		}
	}
	walk(nodes, 0)
}

// Stats counts the entries of a tree.
type Stats struct {
	Linked int
	Groups int
}

// Count returns the number of linked and group nodes under nodes.
func Count(nodes []Node) Stats {
	var s Stats
	Walk(nodes, func(n Node, _ int) {
		switch n.(type) {
		case *LinkedNode:
			s.Linked++
		case *GroupNode:
			s.Groups++
		}
	})
	return s
}
