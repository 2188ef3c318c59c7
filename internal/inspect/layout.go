package inspect

import "github.com/dshills/offsettree/offsettree"

// NodePos is one node's drawing position and shape, derived from a
// Tree's in-order traversal. Column is the node's line number scaled to
// fit width; row is its depth in the tree.
type NodePos struct {
	offsettree.NodeView
	Col int
	Row int
}

// Layout walks tree in line-number order and assigns each node a column
// proportional to its line number (so the drawing reads left-to-right in
// the same order as the text it indexes) and a row equal to its depth.
// width must be at least 1; a tree of a single line always lands at
// column 0.
func Layout(tree *offsettree.Tree, width int) []NodePos {
	if width < 1 {
		width = 1
	}

	n := tree.Len()
	positions := make([]NodePos, 0, n)

	it := tree.Nodes()
	for it.Next() {
		v := it.View()
		col := 0
		if n > 1 {
			col = int(v.Lnum) * (width - 1) / int(n-1)
		}
		positions = append(positions, NodePos{
			NodeView: v,
			Col:      col,
			Row:      v.Depth,
		})
	}
	return positions
}

// MaxRow returns the deepest row among positions, or -1 if positions is
// empty.
func MaxRow(positions []NodePos) int {
	max := -1
	for _, p := range positions {
		if p.Row > max {
			max = p.Row
		}
	}
	return max
}
