package offsettree

import "fmt"

// Remove deletes line lnum. Every line after lnum is renumbered down by
// one and re-based so it keeps its own byte offset minus the width of the
// removed line — the node that was at lnum+1 ends up exactly where the
// removed line used to start. Line 0 is pinned and cannot be removed.
//
// This implements the behavior spec.md describes but whose reference
// source leaves unimplemented: standard AVL deletion (splice by child
// count, in-order-successor promotion for the two-child case) composed
// with the same relative-encoding shift InsertAfter uses in reverse, then
// a bottom-up AVL rebalance from the physical splice point to the root.
func (t *Tree) Remove(lnum uint32) error {
	if lnum == 0 {
		return fmt.Errorf("%w: line 0 is pinned to offset 0", ErrIndexOutOfBound)
	}
	target, targetOff, targetLnum, err := t.descend(lnum)
	if err != nil {
		return err
	}

	if lnum+1 < t.max {
		displaced, displacedOff, _, err := t.descend(lnum + 1)
		if err != nil {
			return err
		}
		width := displacedOff - targetOff
		applyShift(displaced, -width, -1)
	}

	rebalanceFrom := t.spliceOut(target, targetOff, targetLnum)
	t.rebalancePath(rebalanceFrom)
	t.max--
	t.pool.put(target)

	return t.checkIfDebug()
}

// spliceOut physically removes target (whose known absolute offset/line
// number are absOff/absLnum) from the tree and returns the node from
// which rebalancing should start (nil if nothing above target needs it).
func (t *Tree) spliceOut(target *node, absOff, absLnum int64) *node {
	switch {
	case target.left == nil && target.right == nil:
		p := target.parent
		replaceChild(p, target, nil)
		if p == nil {
			t.root = nil
		}
		target.parent = nil
		return p

	case target.left == nil || target.right == nil:
		c := target.left
		if c == nil {
			c = target.right
		}
		c.relOff += target.relOff
		c.relLnum += target.relLnum
		p := target.parent
		c.parent = p
		replaceChild(p, target, c)
		if p == nil {
			t.root = c
		}
		target.left, target.right, target.parent = nil, nil, nil
		return p

	default:
		return t.spliceTwoChildren(target, absOff, absLnum)
	}
}

// spliceTwoChildren handles the case where target has both children: its
// in-order successor (the leftmost node of target.right) is detached and
// promoted into target's structural slot, keeping the successor's own
// absolute offset/line number but re-basing them relative to target's old
// parent.
func (t *Tree) spliceTwoChildren(target *node, absOff, absLnum int64) *node {
	rightOff := absOff + target.right.relOff
	rightLnum := absLnum + target.right.relLnum
	succ, succOff, succLnum, rebalanceFrom := t.detachLeftmost(target.right, rightOff, rightLnum)

	p := target.parent
	parentOff := absOff - target.relOff
	parentLnum := absLnum - target.relLnum

	succ.left = target.left
	if target.left != nil {
		target.left.parent = succ
	}
	succ.right = target.right
	if target.right != nil {
		target.right.parent = succ
	}
	succ.parent = p
	succ.relOff = succOff - parentOff
	succ.relLnum = succLnum - parentLnum
	replaceChild(p, target, succ)
	if p == nil {
		t.root = succ
	}

	target.left, target.right, target.parent = nil, nil, nil

	if rebalanceFrom == target {
		rebalanceFrom = succ
	}
	return rebalanceFrom
}

// detachLeftmost removes and returns the leftmost node of the subtree
// rooted at n (whose absolute offset/line number are absOff/absLnum),
// re-linking n's parent to whatever replaces it. The removed node's own
// child/parent links are cleared so it can be reattached elsewhere.
func (t *Tree) detachLeftmost(n *node, absOff, absLnum int64) (removed *node, remOff, remLnum int64, rebalanceFrom *node) {
	if n.left == nil {
		p := n.parent
		c := n.right
		if c != nil {
			c.relOff += n.relOff
			c.relLnum += n.relLnum
			c.parent = p
		}
		replaceChild(p, n, c)
		n.left, n.right, n.parent = nil, nil, nil
		return n, absOff, absLnum, p
	}
	childOff := absOff + n.left.relOff
	childLnum := absLnum + n.left.relLnum
	return t.detachLeftmost(n.left, childOff, childLnum)
}
