package ostree

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

type nodeids[K constraints.Ordered] struct {
	idTable map[*node[K]]int
	max     int
}

func newtable[K constraints.Ordered]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*node[K]]int),
		max:     1,
	}
}

func (ids *nodeids[K]) alloc(n *node[K]) int {
	if id, ok := ids.idTable[n]; ok {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Every node is labelled with its key and its
// subtree size.
func Tree2Dot[K constraints.Ordered](t *Tree[K], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[K]()
	var walk func(n *node[K])
	walk = func(n *node[K]) {
		ID := ids.alloc(n)
		label := fmt.Sprintf("%v\\n(%d)", n.key, n.size)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, escapeDot(label), nodeDotStyles(n))
		if n.left == nil && n.right == nil {
			return
		}
		// an absent child is drawn only if its sibling exists, to make left
		// and right distinguishable
		for i, child := range [2]*node[K]{n.left, n.right} {
			if child == nil {
				nilid := -(2*ID + i)
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			walk(child)
		}
	}
	if !t.IsEmpty() {
		walk(t.root)
	}
	var out strings.Builder
	out.WriteString("strict digraph {\n")
	out.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	out.WriteString(nodelist.String())
	out.WriteString(edgelist.String())
	out.WriteString("}\n")
	if _, err := io.WriteString(w, out.String()); err != nil {
		T().Errorf("ostree DOT: %s", err.Error())
		return err
	}
	return nil
}

func escapeDot(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[K constraints.Ordered](n *node[K]) string {
	s := ",style=filled,shape=circle"
	if n.left == nil && n.right == nil {
		s += ",fillcolor=\"#a3d7e4\""
	} else {
		s += ",color=black,fillcolor=white"
	}
	return s
}
