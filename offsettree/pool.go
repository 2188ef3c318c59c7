package offsettree

import "sync"

// NodePool recycles tree nodes across Remove/InsertAfter calls, the same
// sync.Pool-backed recycling a rope implementation would use for its own
// (differently shaped) nodes. It is optional; a Tree created
// without WithPool simply allocates with new(node) and leaves removed
// nodes to the garbage collector.
type NodePool struct {
	pool sync.Pool
}

// NewNodePool creates an empty node pool.
func NewNodePool() *NodePool {
	return &NodePool{
		pool: sync.Pool{
			New: func() any { return new(node) },
		},
	}
}

func (p *NodePool) get() *node {
	if p == nil {
		return new(node)
	}
	n := p.pool.Get().(*node)
	*n = node{}
	return n
}

func (p *NodePool) put(n *node) {
	if p == nil || n == nil {
		return
	}
	*n = node{}
	p.pool.Put(n)
}
