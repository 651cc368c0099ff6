package formatter

import (
	"fmt"
	"io"

	"github.com/npillmayer/ostree"
	"golang.org/x/exp/constraints"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders the shape of t as nested unordered lists:
//
//	<ul class="ostree">
//	  <li><span class="key">4</span><span class="size">5</span>
//	    <ul> left child, right child </ul>
//	  </li>
//	</ul>
//
// A node with exactly one child gets an empty <li class="nil"> in place of
// the absent one, to keep left and right distinguishable. An empty tree
// renders as <ul class="ostree-empty"></ul>.
func HTML[K constraints.Ordered](t *ostree.Tree[K], w io.Writer) error {
	if t.IsEmpty() {
		return html.Render(w, element(atom.Ul, "ostree-empty"))
	}
	root := element(atom.Ul, "ostree")
	root.AppendChild(htmlNode(t.Root()))
	if err := html.Render(w, root); err != nil {
		T().Errorf("ostree HTML: %s", err.Error())
		return err
	}
	return nil
}

func htmlNode[K constraints.Ordered](n ostree.Node[K]) *html.Node {
	if n.IsNil() {
		return element(atom.Li, "nil")
	}
	li := element(atom.Li, "")
	li.AppendChild(span("key", fmt.Sprintf("%v", n.Key())))
	li.AppendChild(span("size", fmt.Sprintf("%d", n.Size())))
	if n.Left().IsNil() && n.Right().IsNil() {
		return li
	}
	children := element(atom.Ul, "")
	children.AppendChild(htmlNode(n.Left()))
	children.AppendChild(htmlNode(n.Right()))
	li.AppendChild(children)
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func span(class, text string) *html.Node {
	s := element(atom.Span, class)
	s.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return s
}
