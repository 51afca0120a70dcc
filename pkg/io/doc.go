// Package io parses edge lists from command-line arguments and standard input.
//
// # Format
//
// An edge list is a JSON array of two-element integer arrays:
//
//	[[4,5],[1,6],[6,4]]
//
// Each element is one undirected edge between the two node indices. Indices
// are not range-checked here; [graph.Build] drops out-of-range edges.
// Integers beyond the range of int are kept as math.MaxInt or math.MinInt so
// they are dropped the same way.
//
// # Sources
//
// [LoadEdges] takes the raw --edges value. The special value "-" ([StdinArg])
// reads the whole of standard input instead:
//
//	pairs, err := io.LoadEdges(ctx, "-", os.Stdin)
//
// # Errors
//
// Invalid JSON and wrongly shaped documents return [*MalformedInputError],
// which names the offending element when there is one. Use errors.As to
// inspect it.
//
// [graph.Build]: github.com/matzehuels/graphvis/pkg/graph.Build
package io
