package ostree

import "golang.org/x/exp/constraints"

// Tree is a binary search tree of unique keys, augmented with subtree sizes.
//
// The zero value is an empty tree ready to use. A nil *Tree behaves like an
// empty tree for all read operations.
type Tree[K constraints.Ordered] struct {
	root *node[K]
}

// node holds a single key. size counts the nodes of the subtree rooted here,
// including the node itself.
type node[K constraints.Ordered] struct {
	key         K
	left, right *node[K]
	size        int
}

func newLeaf[K constraints.Ordered](key K) *node[K] {
	return &node[K]{key: key, size: 1}
}

// sizeOf handles nil nodes, which contribute 0.
func sizeOf[K constraints.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return n.size
}

func heightOf[K constraints.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return 1 + max(heightOf(n.left), heightOf(n.right))
}

// New creates an empty tree.
func New[K constraints.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// Len returns the number of keys in the tree. O(1).
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return sizeOf(t.root)
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the number of nodes on the longest root-to-leaf path,
// where 0 means empty and 1 means a single node. O(n).
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return heightOf(t.root)
}

// Clear drops all keys. The old node set is left to the garbage collector.
func (t *Tree[K]) Clear() {
	if t == nil {
		return
	}
	t.root = nil
}

// Root returns a read-only view of the root node.
func (t *Tree[K]) Root() Node[K] {
	if t == nil {
		return Node[K]{}
	}
	return Node[K]{n: t.root}
}

// --- Node views ------------------------------------------------------------

// Node is a read-only view of a tree node. It lets clients (formatters,
// debugging tools) inspect the shape of a tree without being able to break
// its invariants. The zero value represents an absent node.
//
// A Node is valid only as long as the tree it stems from is not modified.
type Node[K constraints.Ordered] struct {
	n *node[K]
}

// IsNil reports whether the view represents an absent node.
func (v Node[K]) IsNil() bool {
	return v.n == nil
}

// Key returns the key of the node, or the zero key for an absent node.
func (v Node[K]) Key() K {
	if v.n == nil {
		var zero K
		return zero
	}
	return v.n.key
}

// Size returns the number of keys in the subtree rooted at v.
func (v Node[K]) Size() int {
	return sizeOf(v.n)
}

// Height returns the height of the subtree rooted at v.
func (v Node[K]) Height() int {
	return heightOf(v.n)
}

// Left returns the left child.
func (v Node[K]) Left() Node[K] {
	if v.n == nil {
		return Node[K]{}
	}
	return Node[K]{n: v.n.left}
}

// Right returns the right child.
func (v Node[K]) Right() Node[K] {
	if v.n == nil {
		return Node[K]{}
	}
	return Node[K]{n: v.n.right}
}
