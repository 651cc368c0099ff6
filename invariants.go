package ostree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Check validates the structural invariants of the tree: key order, subtree
// sizes and uniqueness of keys.
//
// Check is intended for tests and debugging. It returns an error wrapping
// ErrCorruptTree which describes the first violation found.
func (t *Tree[K]) Check() error {
	if t == nil || t.root == nil {
		return nil
	}
	_, err := checkNode(t.root, nil, nil)
	return err
}

// checkNode checks the subtree at n, whose keys have to lie strictly between
// lo and hi (nil meaning unbounded). It returns the number of nodes counted.
func checkNode[K constraints.Ordered](n *node[K], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && n.key <= *lo {
		return 0, fmt.Errorf("%w: key %v not greater than %v", ErrCorruptTree, n.key, *lo)
	}
	if hi != nil && n.key >= *hi {
		return 0, fmt.Errorf("%w: key %v not less than %v", ErrCorruptTree, n.key, *hi)
	}
	lcnt, err := checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	rcnt, err := checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}
	if n.size != lcnt+rcnt+1 {
		return 0, fmt.Errorf("%w: node %v has size %d, subtree holds %d",
			ErrCorruptTree, n.key, n.size, lcnt+rcnt+1)
	}
	return n.size, nil
}

// IsBalanced reports whether, for every node, the heights of its left and
// right subtree differ by at most one. Trees returned by FromSorted and
// trees just rebalanced are always balanced. An empty tree is balanced.
func (t *Tree[K]) IsBalanced() bool {
	if t == nil {
		return true
	}
	_, ok := balancedHeight(t.root)
	return ok
}

func balancedHeight[K constraints.Ordered](n *node[K]) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, ok := balancedHeight(n.left)
	if !ok {
		return 0, false
	}
	rh, ok := balancedHeight(n.right)
	if !ok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return 1 + max(lh, rh), true
}
