package ostree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Keys returns all keys in ascending order. For an empty tree Keys returns
// an empty, non-nil slice. O(n).
func (t *Tree[K]) Keys() []K {
	return t.Traverse(InOrder)
}

// FromSorted creates a balanced tree holding keys.
//
// keys must be non-empty and strictly ascending (which rules out duplicates).
// Otherwise FromSorted returns ErrIllegalArguments and no tree. The
// resulting tree satisfies IsBalanced. keys is not retained. O(n).
func FromSorted[K constraints.Ordered](keys []K) (*Tree[K], error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: cannot build tree from empty key sequence", ErrIllegalArguments)
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			T().Debugf("ostree: key sequence not ascending at index %d", i)
			return nil, fmt.Errorf("%w: keys not strictly ascending at index %d (%v, %v)",
				ErrIllegalArguments, i, keys[i-1], keys[i])
		}
	}
	t := &Tree[K]{root: buildBalanced(keys, 0, len(keys)-1)}
	T().Debugf("ostree: built tree of %d keys, height %d", t.Len(), t.Height())
	return t, nil
}

// Rebalance rebuilds the tree from its sorted key sequence, so that
// afterwards for every node the heights of its subtrees differ by at most
// one. The set of keys is unchanged. Rebalancing an empty tree is a no-op.
// O(n).
func (t *Tree[K]) Rebalance() {
	if t.IsEmpty() {
		return
	}
	before := heightOf(t.root)
	keys := t.Keys()
	// the new node set is complete before it replaces the old one
	root := buildBalanced(keys, 0, len(keys)-1)
	t.root = root
	T().Debugf("ostree: rebalanced %d keys, height %d -> %d", len(keys), before, heightOf(root))
}

// buildBalanced creates a subtree from keys[start…end] (inclusive), with the
// median as root. Returns nil for an empty range.
func buildBalanced[K constraints.Ordered](keys []K, start, end int) *node[K] {
	if start > end {
		return nil
	}
	mid := start + (end-start)/2
	return &node[K]{
		key:   keys[mid],
		size:  end - start + 1,
		left:  buildBalanced(keys, start, mid-1),
		right: buildBalanced(keys, mid+1, end),
	}
}
