// Package pkg provides the libraries behind graphvis, a small tool that draws
// undirected graphs given as a node count and a JSON edge list.
//
// # Overview
//
// The pkg directory is organized by pipeline stage:
//
//  1. [io] - Reading edge lists from flags or standard input
//  2. [graph] - The undirected graph and its construction from raw pairs
//  3. [render] - Drawing the graph as an image, or as text when that fails
//  4. [display] - Showing a rendered image in the platform's viewer
//
// # Architecture
//
// The typical data flow:
//
//	--edges '[[0,1],[1,2]]'  or  stdin
//	         ↓
//	    [io] package (decode JSON pairs)
//	         ↓
//	    [graph] package (shift, range-check, dedupe)
//	         ↓
//	    [render/nodelink] package (Graphviz layout + SVG/PNG/JPG/DOT/PDF)
//	         ↓                       ↘ unavailable
//	    [display] or --out file      [render/text] adjacency list
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/graphvis/pkg/graph"
//	    "github.com/matzehuels/graphvis/pkg/io"
//	    "github.com/matzehuels/graphvis/pkg/render/nodelink"
//	)
//
//	pairs, _ := io.ParseEdges("[[0,1],[1,2],[2,0]]")
//	g, dropped := graph.Build(3, pairs)
//	// dropped lists pairs outside 0..n-1
//
//	r, _ := nodelink.New(ctx, nodelink.Options{Layout: "circular"})
//	defer r.Close()
//	_ = r.Render(ctx, g, nodelink.FormatPNG, f)
//
// # Main Packages
//
// [graph] - Undirected graph over nodes 0..n-1 with set semantics for edges.
// [graph.Build] drops out-of-range pairs and reports them to the caller.
//
// [io] - JSON edge list decoding. Malformed documents produce a
// [io.MalformedInputError] naming the offending element.
//
// [render/nodelink] - Node-link diagrams using Graphviz (neato for the spring
// layout, circo for the circular one).
//
// [render/text] - The adjacency list printed when no image can be produced.
//
// [render] - Format conversion (SVG to PDF).
//
// [display] - Image viewer detection for macOS, Windows, and X11/Wayland.
//
// [errors] - Structured error codes shared by every package.
//
// [observability] - Hooks for instrumenting parse, build, and render stages.
//
// # Testing
//
//	go test ./...              # All tests
//	go test -run Example ./... # Examples only
//
// [io]: https://pkg.go.dev/github.com/matzehuels/graphvis/pkg/io
// [graph]: https://pkg.go.dev/github.com/matzehuels/graphvis/pkg/graph
// [graph.Build]: https://pkg.go.dev/github.com/matzehuels/graphvis/pkg/graph#Build
// [render]: https://pkg.go.dev/github.com/matzehuels/graphvis/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/graphvis/pkg/render/nodelink
// [render/text]: https://pkg.go.dev/github.com/matzehuels/graphvis/pkg/render/text
// [display]: https://pkg.go.dev/github.com/matzehuels/graphvis/pkg/display
// [errors]: https://pkg.go.dev/github.com/matzehuels/graphvis/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/graphvis/pkg/observability
// [io.MalformedInputError]: https://pkg.go.dev/github.com/matzehuels/graphvis/pkg/io#MalformedInputError
package pkg
