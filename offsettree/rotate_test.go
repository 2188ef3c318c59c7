package offsettree

import "testing"

// abs reconstructs n's absolute value (offset and line number, which this
// file keeps numerically identical to exercise both fields through the
// same assertions) given its parent's already-resolved absolute value.
func abs(n *node, parentAbs int64) int64 {
	return parentAbs + n.relOff
}

func TestRotateRightPreservesAbsoluteValues(t *testing.T) {
	x := &node{relOff: 10, relLnum: 10}
	y := &node{relOff: -6, relLnum: -6}
	alpha := &node{relOff: -2, relLnum: -2}
	beta := &node{relOff: 3, relLnum: 3}
	gamma := &node{relOff: 5, relLnum: 5}

	x.left, y.parent = y, x
	y.left, alpha.parent = alpha, y
	y.right, beta.parent = beta, y
	x.right, gamma.parent = gamma, x
	updateHeight(alpha)
	updateHeight(beta)
	updateHeight(gamma)
	updateHeight(y)
	updateHeight(x)

	newRoot := rotateRight(x)
	if newRoot != y {
		t.Fatalf("rotateRight(x) = %p, want y (%p)", newRoot, y)
	}
	if y.parent != nil {
		t.Fatalf("y.parent = %v, want nil", y.parent)
	}
	if y.left != alpha || y.right != x {
		t.Fatalf("y's children = (%p, %p), want (alpha, x)", y.left, y.right)
	}
	if x.left != beta || x.right != gamma {
		t.Fatalf("x's children = (%p, %p), want (beta, gamma)", x.left, x.right)
	}

	yAbs := abs(y, 0)
	xAbs := abs(x, yAbs)
	if yAbs != 4 {
		t.Errorf("y absolute = %d, want 4", yAbs)
	}
	if xAbs != 10 {
		t.Errorf("x absolute = %d, want 10", xAbs)
	}
	if a := abs(alpha, yAbs); a != 2 {
		t.Errorf("alpha absolute = %d, want 2", a)
	}
	if b := abs(beta, xAbs); b != 7 {
		t.Errorf("beta absolute = %d, want 7", b)
	}
	if g := abs(gamma, xAbs); g != 15 {
		t.Errorf("gamma absolute = %d, want 15", g)
	}
	// relLnum must mirror relOff since both were seeded identically.
	if y.relLnum != y.relOff || x.relLnum != x.relOff || beta.relLnum != beta.relOff {
		t.Errorf("relLnum diverged from relOff after rotation")
	}
}

func TestRotateLeftPreservesAbsoluteValues(t *testing.T) {
	x := &node{relOff: 10, relLnum: 10}
	y := &node{relOff: 6, relLnum: 6}
	beta := &node{relOff: -3, relLnum: -3}
	gamma := &node{relOff: 2, relLnum: 2}
	alpha := &node{relOff: -5, relLnum: -5}

	x.right, y.parent = y, x
	y.left, beta.parent = beta, y
	y.right, gamma.parent = gamma, y
	x.left, alpha.parent = alpha, x
	updateHeight(alpha)
	updateHeight(beta)
	updateHeight(gamma)
	updateHeight(y)
	updateHeight(x)

	newRoot := rotateLeft(x)
	if newRoot != y {
		t.Fatalf("rotateLeft(x) = %p, want y (%p)", newRoot, y)
	}
	if y.left != x || y.right != gamma {
		t.Fatalf("y's children = (%p, %p), want (x, gamma)", y.left, y.right)
	}
	if x.left != alpha || x.right != beta {
		t.Fatalf("x's children = (%p, %p), want (alpha, beta)", x.left, x.right)
	}

	yAbs := abs(y, 0)
	xAbs := abs(x, yAbs)
	if yAbs != 16 {
		t.Errorf("y absolute = %d, want 16", yAbs)
	}
	if xAbs != 10 {
		t.Errorf("x absolute = %d, want 10", xAbs)
	}
	if a := abs(alpha, xAbs); a != 5 {
		t.Errorf("alpha absolute = %d, want 5", a)
	}
	if b := abs(beta, xAbs); b != 13 {
		t.Errorf("beta absolute = %d, want 13", b)
	}
	if g := abs(gamma, yAbs); g != 18 {
		t.Errorf("gamma absolute = %d, want 18", g)
	}
}

func TestRebalanceNodeLeftLeft(t *testing.T) {
	// n has a left-heavy left subtree (balance factor +2, left child +1).
	n := &node{}
	l := &node{}
	ll := &node{}
	n.left, l.parent = l, n
	l.left, ll.parent = ll, l
	updateHeight(ll)
	updateHeight(l)
	updateHeight(n)

	newSub := rebalanceNode(n)
	if newSub != l {
		t.Fatalf("rebalanceNode(LL case) = %p, want l (%p)", newSub, l)
	}
	if balanceFactor(newSub) < -1 || balanceFactor(newSub) > 1 {
		t.Errorf("balance factor after LL fixup = %d, want within [-1,1]", balanceFactor(newSub))
	}
}

func TestRebalanceNodeRightRight(t *testing.T) {
	n := &node{}
	r := &node{}
	rr := &node{}
	n.right, r.parent = r, n
	r.right, rr.parent = rr, r
	updateHeight(rr)
	updateHeight(r)
	updateHeight(n)

	newSub := rebalanceNode(n)
	if newSub != r {
		t.Fatalf("rebalanceNode(RR case) = %p, want r (%p)", newSub, r)
	}
}

func TestRebalanceNodeLeftRight(t *testing.T) {
	n := &node{}
	l := &node{}
	lr := &node{}
	n.left, l.parent = l, n
	l.right, lr.parent = lr, l
	updateHeight(lr)
	updateHeight(l)
	updateHeight(n)

	newSub := rebalanceNode(n)
	if newSub != lr {
		t.Fatalf("rebalanceNode(LR case) = %p, want lr (%p)", newSub, lr)
	}
}

func TestRebalanceNodeRightLeft(t *testing.T) {
	n := &node{}
	r := &node{}
	rl := &node{}
	n.right, r.parent = r, n
	r.left, rl.parent = rl, r
	updateHeight(rl)
	updateHeight(r)
	updateHeight(n)

	newSub := rebalanceNode(n)
	if newSub != rl {
		t.Fatalf("rebalanceNode(RL case) = %p, want rl (%p)", newSub, rl)
	}
}
