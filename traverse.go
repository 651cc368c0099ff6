package ostree

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Order selects a depth-first traversal order.
type Order int8

// Traversal orders
const (
	PreOrder  Order = iota // node, left, right
	InOrder                // left, node, right; yields ascending keys
	PostOrder              // left, right, node
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	}
	return fmt.Sprintf("Order(%d)", int8(o))
}

func (o Order) valid() bool {
	return o == PreOrder || o == InOrder || o == PostOrder
}

// ForEach walks the keys of t in order o.
//
// Iteration stops early if fn returns false. ForEach panics for an invalid
// order.
func (t *Tree[K]) ForEach(o Order, fn func(key K) bool) {
	assert(o.valid(), "ForEach called with invalid order "+o.String())
	if t == nil || t.root == nil || fn == nil {
		return
	}
	forEachNode(t.root, o, fn)
}

func forEachNode[K constraints.Ordered](n *node[K], o Order, fn func(key K) bool) bool {
	if n == nil {
		return true
	}
	if o == PreOrder && !fn(n.key) {
		return false
	}
	if !forEachNode(n.left, o, fn) {
		return false
	}
	if o == InOrder && !fn(n.key) {
		return false
	}
	if !forEachNode(n.right, o, fn) {
		return false
	}
	if o == PostOrder && !fn(n.key) {
		return false
	}
	return true
}

// Traverse returns all keys of t in order o. For an empty tree Traverse
// returns an empty, non-nil slice. Traverse panics for an invalid order.
func (t *Tree[K]) Traverse(o Order) []K {
	keys := make([]K, 0, t.Len())
	t.ForEach(o, func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Render formats the keys of t in order o as a bracketed, comma separated
// list, e.g. "[1,2,3]". An empty tree renders as "[empty]".
func (t *Tree[K]) Render(o Order) string {
	if t.IsEmpty() {
		assert(o.valid(), "Render called with invalid order "+o.String())
		return "[empty]"
	}
	var b strings.Builder
	b.WriteByte('[')
	first := true
	t.ForEach(o, func(key K) bool {
		if !first {
			b.WriteByte(',')
		}
		first = false
		fmt.Fprintf(&b, "%v", key)
		return true
	})
	b.WriteByte(']')
	return b.String()
}

// String renders the keys in ascending order.
func (t *Tree[K]) String() string {
	return t.Render(InOrder)
}
