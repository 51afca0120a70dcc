// Package render provides visualization rendering for graphs.
//
// # Overview
//
// This package holds the output side of graphvis:
//
//   - Generic format conversion (SVG to PDF)
//   - Node-link diagrams (in [nodelink] subpackage)
//   - Plain-text adjacency lists (in [text] subpackage)
//
// # Format Conversion
//
// [ToPDF] converts any SVG to PDF using the external rsvg-convert tool
// (from librsvg). When the tool is missing it returns an UNAVAILABLE error,
// which the CLI treats like any other missing rendering capability.
//
//	pdf, err := render.ToPDF(svg)
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage lays out and draws undirected graphs with an
// in-process Graphviz engine.
//
//	r, err := nodelink.New(ctx, nodelink.Options{Layout: "circular"})
//	err = r.Render(ctx, g, nodelink.FormatPNG, f)
//
// # Text Fallback
//
// The [text] subpackage prints one "<node>: <neighbors>" line per node and
// needs nothing beyond an io.Writer.
//
// [nodelink]: github.com/matzehuels/graphvis/pkg/render/nodelink
// [text]: github.com/matzehuels/graphvis/pkg/render/text
package render
