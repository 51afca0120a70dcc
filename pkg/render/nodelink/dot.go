package nodelink

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/graphvis/pkg/graph"
)

// Default drawing attributes.
const (
	DefaultNodeColor = "skyblue"
	DefaultEdgeColor = "gray"
	DefaultFontSize  = 14
)

// Options configures node-link diagram rendering.
type Options struct {
	// Layout selects the layout algorithm: "spring" (force-directed, the
	// default) or "circular".
	Layout string
	// NodeColor is the fill color of node circles. Any Graphviz color name
	// or "#rrggbb" value works.
	NodeColor string
	// EdgeColor is the stroke color of edges.
	EdgeColor string
	// FontSize is the node label size in points.
	FontSize int
}

// withDefaults returns a copy of o with empty fields set to their defaults.
func (o Options) withDefaults() Options {
	if o.Layout == "" {
		o.Layout = LayoutSpring
	}
	if o.NodeColor == "" {
		o.NodeColor = DefaultNodeColor
	}
	if o.EdgeColor == "" {
		o.EdgeColor = DefaultEdgeColor
	}
	if o.FontSize <= 0 {
		o.FontSize = DefaultFontSize
	}
	return o
}

// ToDOT converts a graph to undirected Graphviz DOT source.
// The result can be rendered with a [Renderer] or saved for external Graphviz tools.
//
// Every node 0..n-1 is declared, so isolated nodes are drawn too. Edges are
// emitted in (U, V) order, which keeps the output stable across runs.
func ToDOT(g *graph.Graph, opts Options) string {
	opts = opts.withDefaults()

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  pad=0.3;\n")
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fillcolor=%q, color=%q, fontsize=%d, width=0.5, fixedsize=true];\n",
		opts.NodeColor, opts.NodeColor, opts.FontSize)
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=1.5];\n", opts.EdgeColor)
	buf.WriteString("\n")

	for _, u := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q;\n", strconv.Itoa(u))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", strconv.Itoa(e.U), strconv.Itoa(e.V))
	}

	buf.WriteString("}\n")
	return buf.String()
}
