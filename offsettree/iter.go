package offsettree

// NodeView is a read-only snapshot of one node's shape and absolute
// position: the fields a caller needs to draw or audit the tree without
// reaching into its internal relative encoding.
type NodeView struct {
	Lnum     uint32
	Offset   int64
	Height   int
	Balance  int
	Depth    int
	HasLeft  bool
	HasRight bool
}

type nodeIterFrame struct {
	n     *node
	off   int64
	ln    int64
	depth int
}

// NodeIterator walks a Tree's nodes in ascending line-number order.
// Mutating the tree while an iterator is live invalidates it.
type NodeIterator struct {
	stack []nodeIterFrame
	cur   NodeView
}

// Nodes returns an iterator over every node, in ascending line-number
// order, for callers (such as internal/inspect) that want to read the
// tree's shape without a callback.
func (t *Tree) Nodes() *NodeIterator {
	it := &NodeIterator{stack: make([]nodeIterFrame, 0, t.root.height+1)}
	it.pushLeftSpine(t.root, 0, 0, 0)
	return it
}

func (it *NodeIterator) pushLeftSpine(n *node, off, ln int64, depth int) {
	for n != nil {
		off += n.relOff
		ln += n.relLnum
		it.stack = append(it.stack, nodeIterFrame{n: n, off: off, ln: ln, depth: depth})
		n = n.left
		depth++
	}
}

// Next advances to the next node in line-number order. It returns false
// once every node has been visited.
func (it *NodeIterator) Next() bool {
	if len(it.stack) == 0 {
		return false
	}
	top := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]

	it.cur = NodeView{
		Lnum:     uint32(top.ln),
		Offset:   top.off,
		Height:   top.n.height,
		Balance:  balanceFactor(top.n),
		Depth:    top.depth,
		HasLeft:  top.n.left != nil,
		HasRight: top.n.right != nil,
	}

	if top.n.right != nil {
		it.pushLeftSpine(top.n.right, top.off, top.ln, top.depth+1)
	}
	return true
}

// View returns the node most recently visited by Next.
func (it *NodeIterator) View() NodeView {
	return it.cur
}
