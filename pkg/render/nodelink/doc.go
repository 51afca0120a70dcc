// Package nodelink renders graphs as node-link diagrams.
//
// # Overview
//
// Nodes are drawn as labelled circles and edges as plain lines. Layout and
// drawing are delegated to Graphviz, running in-process through
// [github.com/goccy/go-graphviz]; this package only describes the graph.
//
// # Usage
//
// Start a [Renderer], then render to any supported [Format]:
//
//	r, err := nodelink.New(ctx, nodelink.Options{Layout: nodelink.LayoutCircular})
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	err = r.Render(ctx, g, nodelink.FormatPNG, f)
//
// [ToDOT] exposes the DOT source on its own for external Graphviz tools.
//
// # Layouts
//
//   - spring: force-directed placement (Graphviz neato)
//   - circular: nodes on a circle (Graphviz circo)
//
// # Availability
//
// [New] returns an UNAVAILABLE error when the Graphviz engine cannot start,
// and PDF output returns one when rsvg-convert is missing. Callers use
// errors.Is(err, errors.ErrCodeUnavailable) to switch to text output.
package nodelink
