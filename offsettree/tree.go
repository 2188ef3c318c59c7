package offsettree

import "fmt"

// Tree is a Balanced Offset Tree: an AVL tree mapping dense line numbers
// 0..Len()-1 to the ascending byte offsets at which each line starts.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	root *node
	max  uint32

	pool  *NodePool
	debug bool
}

// New builds a Tree from a buffer, scanning it for line starts with
// ScanLineStarts. It fails with ErrInvalidUTF8 if buf is not valid UTF-8
// and with ErrEmptyBuffer if buf is empty.
func New(buf []byte, opts ...Option) (*Tree, error) {
	offsets, err := ScanLineStarts(buf)
	if err != nil {
		return nil, err
	}
	return NewFromOffsets(offsets, opts...)
}

// NewFromOffsets builds a Tree directly from an ascending array of line
// start offsets (offsets[0] must be 0). This is the bulk-construction path
// used internally by New and by callers (such as internal/snapshot) that
// already have a line-start array and want to skip re-scanning a buffer.
//
// Construction is a single median-split recursion over the array, never
// going through InsertAfter, so the result is perfectly height-balanced
// in O(N) rather than O(N log N).
func NewFromOffsets(offsets []int64, opts ...Option) (*Tree, error) {
	if len(offsets) == 0 {
		return nil, ErrEmptyBuffer
	}

	t := &Tree{max: uint32(len(offsets))}
	for _, opt := range opts {
		opt(t)
	}

	t.root = t.buildBalanced(offsets, 0, len(offsets), 0, 0)
	return t, nil
}

func (t *Tree) buildBalanced(offsets []int64, lo, hi int, parentOff, parentLnum int64) *node {
	if lo >= hi {
		return nil
	}
	mid := (lo + hi) / 2

	n := t.pool.get()
	n.relOff = offsets[mid] - parentOff
	n.relLnum = int64(mid) - parentLnum

	n.left = t.buildBalanced(offsets, lo, mid, offsets[mid], int64(mid))
	if n.left != nil {
		n.left.parent = n
	}
	n.right = t.buildBalanced(offsets, mid+1, hi, offsets[mid], int64(mid))
	if n.right != nil {
		n.right.parent = n
	}
	updateHeight(n)
	return n
}

// Len returns the number of lines currently indexed.
func (t *Tree) Len() uint32 {
	return t.max
}

// descend walks from the root to the node at absolute line number lnum,
// returning the node along with its absolute offset and line number
// (the latter is always lnum itself, returned for symmetry with internal
// callers that reuse this on a just-computed target).
func (t *Tree) descend(lnum uint32) (*node, int64, int64, error) {
	if lnum >= t.max {
		return nil, 0, 0, fmt.Errorf("%w: line %d (max %d)", ErrIndexOutOfBound, lnum, t.max)
	}
	target := int64(lnum)
	n := t.root
	var off, ln int64
	for n != nil {
		off += n.relOff
		ln += n.relLnum
		switch {
		case target == ln:
			return n, off, ln, nil
		case target < ln:
			n = n.left
		default:
			n = n.right
		}
	}
	// A correctly constructed tree always finds the node: invariant 3
	// guarantees every line number in [0, max) is present. Reaching here
	// means an invariant was already broken by an earlier operation.
	panic("offsettree: corrupted invariant: line number not found")
}

// Get returns the absolute byte offset at which line lnum starts.
func (t *Tree) Get(lnum uint32) (int64, error) {
	_, off, _, err := t.descend(lnum)
	return off, err
}

// Set changes line lnum's start offset to newOff. Every line before lnum
// is left unchanged; every line after lnum is shifted by the same delta
// (newOff minus its old offset) — Set both edits one line and re-bases
// everything after it, it does not "only" move line lnum. Line 0 is
// pinned to offset 0 and cannot be targeted.
func (t *Tree) Set(lnum uint32, newOff int64) error {
	if lnum == 0 {
		return fmt.Errorf("%w: line 0 is pinned to offset 0", ErrIndexOutOfBound)
	}
	n, curOff, _, err := t.descend(lnum)
	if err != nil {
		return err
	}
	delta := newOff - curOff
	if delta == 0 {
		return nil
	}
	applyShift(n, delta, 0)
	return t.checkIfDebug()
}

// Incr shifts line lnum's start offset (and every later line's, by the
// same amount) by delta. Line 0 cannot be targeted.
func (t *Tree) Incr(lnum uint32, delta int64) error {
	if lnum == 0 {
		return fmt.Errorf("%w: line 0 is pinned to offset 0", ErrIndexOutOfBound)
	}
	n, _, _, err := t.descend(lnum)
	if err != nil {
		return err
	}
	if delta == 0 {
		return nil
	}
	applyShift(n, delta, 0)
	return t.checkIfDebug()
}

// Decr is Incr with the delta negated.
func (t *Tree) Decr(lnum uint32, delta int64) error {
	return t.Incr(lnum, -delta)
}

func (t *Tree) checkIfDebug() error {
	if !t.debug {
		return nil
	}
	if err := t.Check(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}
	return nil
}

// bstInsert inserts a new node for (targetLnum, targetOff) by descending
// the tree on line-number order alone. Invariant 3 (dense line numbers)
// guarantees exactly one nil child slot matches targetLnum's position;
// every caller of bstInsert has already made room for it by shifting the
// rest of the tree (see InsertAfter).
func (t *Tree) bstInsert(targetLnum, targetOff int64) *node {
	nn := t.pool.get()
	nn.height = 1

	cur := t.root
	curOff, curLnum := cur.relOff, cur.relLnum
	for {
		if targetLnum < curLnum {
			if cur.left == nil {
				nn.relOff = targetOff - curOff
				nn.relLnum = targetLnum - curLnum
				nn.parent = cur
				cur.left = nn
				return nn
			}
			next := cur.left
			curOff += next.relOff
			curLnum += next.relLnum
			cur = next
		} else {
			if cur.right == nil {
				nn.relOff = targetOff - curOff
				nn.relLnum = targetLnum - curLnum
				nn.parent = cur
				cur.right = nn
				return nn
			}
			next := cur.right
			curOff += next.relOff
			curLnum += next.relLnum
			cur = next
		}
	}
}
