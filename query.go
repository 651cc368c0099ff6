package ostree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Select returns the k-th smallest key, counting from 0. O(h).
//
// If k is not within [0, Len()), Select returns the zero key and
// ErrIndexOutOfBounds.
func (t *Tree[K]) Select(k int) (K, error) {
	if k < 0 || k >= t.Len() {
		var zero K
		return zero, fmt.Errorf("%w: select %d of %d keys", ErrIndexOutOfBounds, k, t.Len())
	}
	return selectKey(t.root, k), nil
}

func selectKey[K constraints.Ordered](n *node[K], k int) K {
	for {
		assert(n != nil && 0 <= k && k < n.size, "selectKey: index outside subtree")
		lsize := sizeOf(n.left)
		switch {
		case k < lsize:
			n = n.left
		case k == lsize:
			return n.key
		default:
			k -= lsize + 1
			n = n.right
		}
	}
}

// Rank returns the number of keys in the tree which are less than key.
// key need not be present. For every valid k, Rank(Select(k)) == k. O(h).
func (t *Tree[K]) Rank(key K) int {
	if t == nil {
		return 0
	}
	rank := 0
	n := t.root
	for n != nil {
		if key <= n.key {
			n = n.left
		} else {
			rank += sizeOf(n.left) + 1
			n = n.right
		}
	}
	return rank
}

// CountInRange returns the number of keys k with lo <= k <= hi. If lo > hi,
// the result is 0.
//
// CountInRange visits every node of the tree and is therefore O(n). It does
// not prune subtrees by key order. An O(h) count may be derived from Rank
// and Contains.
func (t *Tree[K]) CountInRange(lo, hi K) int {
	if t == nil {
		return 0
	}
	return countRange(t.root, lo, hi)
}

func countRange[K constraints.Ordered](n *node[K], lo, hi K) int {
	if n == nil {
		return 0
	}
	cnt := countRange(n.left, lo, hi) + countRange(n.right, lo, hi)
	if lo <= n.key && n.key <= hi {
		cnt++
	}
	return cnt
}

// Min returns the smallest key. ok is false for an empty tree.
func (t *Tree[K]) Min() (key K, ok bool) {
	if t.IsEmpty() {
		return key, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.key, true
}

// Max returns the largest key. ok is false for an empty tree.
func (t *Tree[K]) Max() (key K, ok bool) {
	if t.IsEmpty() {
		return key, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, true
}
