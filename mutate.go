package ostree

import "golang.org/x/exp/constraints"

// Contains reports whether key is stored in the tree. O(h).
func (t *Tree[K]) Contains(key K) bool {
	if t == nil {
		return false
	}
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Insert adds key to the tree. Inserting a key already present is a no-op.
// Insert reports whether the tree changed. O(h).
//
// Insert does not rebalance; see Rebalance.
func (t *Tree[K]) Insert(key K) bool {
	assert(t != nil, "Insert called on nil tree")
	// sizes are incremented on the way down, so membership and allocation
	// have to be settled before touching any node
	if t.Contains(key) {
		return false
	}
	leaf := newLeaf(key)
	slot := &t.root
	for *slot != nil {
		n := *slot
		n.size++
		if key < n.key {
			slot = &n.left
		} else {
			slot = &n.right
		}
	}
	*slot = leaf
	return true
}

// Delete removes key from the tree. Deleting an absent key is a no-op.
// Delete reports whether the tree changed. O(h).
func (t *Tree[K]) Delete(key K) bool {
	if t == nil || !t.Contains(key) {
		return false
	}
	t.root = remove(t.root, key)
	return true
}

// remove deletes key from the subtree rooted at n and returns the new subtree
// root. key must be present in the subtree: every node passed on the way down
// loses exactly one descendant.
func remove[K constraints.Ordered](n *node[K], key K) *node[K] {
	assert(n != nil, "remove: key not present in subtree")
	switch {
	case key < n.key:
		n.size--
		n.left = remove(n.left, key)
	case key > n.key:
		n.size--
		n.right = remove(n.right, key)
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	default:
		// two children: pull up the in-order successor
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.key = succ.key
		n.size--
		n.right = remove(n.right, succ.key)
	}
	return n
}
