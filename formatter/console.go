package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/ostree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/exp/constraints"
)

// Indent is the number of columns a tree level is shifted to the right.
const Indent = 4

// Palette holds the colors used to draw a tree on a console.
// A nil color prints uncolored.
type Palette struct {
	Inner *color.Color // keys of nodes with at least one child
	Leaf  *color.Color // keys of leaf nodes
	Size  *color.Color // subtree sizes
}

// DefaultPalette returns the palette used if no other is given.
func DefaultPalette() *Palette {
	return &Palette{
		Inner: color.New(color.FgBlue, color.Bold),
		Leaf:  color.New(color.FgGreen),
		Size:  color.New(color.FgHiBlack),
	}
}

// ConsoleFormat draws trees on a console with a fixed width font.
type ConsoleFormat struct {
	palette *Palette
}

// NewConsoleFormat creates a new console formatter. If palette is nil,
// DefaultPalette is used.
func NewConsoleFormat(palette *Palette) *ConsoleFormat {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &ConsoleFormat{palette: palette}
}

var setupGraphemes sync.Once

// displayWidth measures s in fixed width positions.
func displayWidth(s string, context *uax11.Context) int {
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// fit shortens s so that it occupies at most width positions, marking the cut
// with an ellipsis.
func fit(s string, width int, context *uax11.Context) string {
	if displayWidth(s, context) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		cut := string(runes) + "…"
		if displayWidth(cut, context) <= width {
			return cut
		}
	}
	return ""
}

// Output draws the shape of t to w, one node per line. The right subtree of
// a node is drawn above it and the left subtree below, each level indented
// by Indent columns, so that reading the diagram from bottom to top visits
// the keys in ascending order. Every line shows the key and, in parentheses,
// the size of the subtree rooted at the node.
//
// config may be nil. An empty tree is drawn as "[empty]".
func Output[K constraints.Ordered](t *ostree.Tree[K], w io.Writer, config *Config, format *ConsoleFormat) error {
	if format == nil {
		format = NewConsoleFormat(nil)
	}
	palette := format.palette
	if palette == nil {
		palette = &Palette{}
	}
	config = config.normalized()
	if t.IsEmpty() {
		_, err := io.WriteString(w, "[empty]\n")
		return err
	}
	var draw func(n ostree.Node[K], depth int) error
	draw = func(n ostree.Node[K], depth int) error {
		if n.IsNil() {
			return nil
		}
		if err := draw(n.Right(), depth+1); err != nil {
			return err
		}
		if err := drawLine(w, n, depth, config, palette); err != nil {
			return err
		}
		return draw(n.Left(), depth+1)
	}
	return draw(t.Root(), 0)
}

// drawLine writes a single node as "key (size)", indented by depth levels.
// The key is shortened if the line would exceed config.LineWidth.
func drawLine[K constraints.Ordered](w io.Writer, n ostree.Node[K], depth int, config *Config, palette *Palette) error {
	indent := min(depth*Indent, config.LineWidth)
	size := fmt.Sprintf(" (%d)", n.Size())
	room := config.LineWidth - indent - displayWidth(size, config.Context)
	key := fit(fmt.Sprintf("%v", n.Key()), max(room, 0), config.Context)
	keyColor := palette.Leaf
	if !n.Left().IsNil() || !n.Right().IsNil() {
		keyColor = palette.Inner
	}
	if _, err := io.WriteString(w, strings.Repeat(" ", indent)); err != nil {
		return err
	}
	if err := colored(w, keyColor, key); err != nil {
		return err
	}
	if err := colored(w, palette.Size, size); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func colored(w io.Writer, c *color.Color, s string) error {
	if c == nil {
		_, err := io.WriteString(w, s)
		return err
	}
	_, err := c.Fprint(w, s)
	return err
}

// Print draws the shape of t to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties.
func Print[K constraints.Ordered](t *ostree.Tree[K], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Output(t, os.Stdout, config, NewConsoleFormat(nil))
}
