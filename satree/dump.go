package satree

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/satree/point"
)

// DumpText renders the tree in the canonical textual form: for each node,
// "{point_repr}" followed, if it has children, by "(child1,child2,...)" in
// neighbour (construction) order. point_repr is "(c1, c2, ..., cd)" with
// each coordinate rendered as a signed decimal; integer-valued coordinates
// render as bare integers so the canonical integer-coordinate scenarios
// match character-for-character (see DESIGN.md on coordinate formatting).
func (t *Tree) DumpText() string {
	if t == nil || t.Root == nil {
		return ""
	}

	var b strings.Builder
	dumpNode(&b, t.Root)

	return b.String()
}

func dumpNode(b *strings.Builder, n *Node) {
	b.WriteByte('{')
	b.WriteString(pointRepr(n.Point))
	b.WriteByte('}')
	if len(n.Neighbours) == 0 {
		return
	}

	b.WriteByte('(')
	for i, c := range n.Neighbours {
		if i > 0 {
			b.WriteByte(',')
		}
		dumpNode(b, c)
	}
	b.WriteByte(')')
}

func pointRepr(p point.Point) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatCoord(c))
	}
	b.WriteByte(')')

	return b.String()
}

func formatCoord(c float64) string {
	if !math.IsInf(c, 0) && !math.IsNaN(c) && c == math.Trunc(c) {
		if math.Abs(c) < 1<<63 {
			return strconv.FormatInt(int64(c), 10)
		}

		return strconv.FormatFloat(c, 'f', -1, 64)
	}

	return strconv.FormatFloat(c, 'g', -1, 64)
}

// DumpIndented renders the tree as a human-browsable indented listing, one
// line per node, annotated with its neighbour count — a second text form
// supplementing the canonical DumpText (see SPEC_FULL.md §5, grounded on
// original_source/SATree.h's print(node, space)).
func (t *Tree) DumpIndented() string {
	if t == nil || t.Root == nil {
		return ""
	}

	var b strings.Builder
	dumpIndentedNode(&b, t.Root, 0)

	return b.String()
}

func dumpIndentedNode(b *strings.Builder, n *Node, depth int) {
	fmt.Fprintf(b, "%s|- %s |N(a)| = %d\n", strings.Repeat("    ", depth), pointRepr(n.Point), len(n.Neighbours))
	for _, c := range n.Neighbours {
		dumpIndentedNode(b, c, depth+1)
	}
}
