// Package graph provides the undirected graph built from parsed edge input.
//
// # Model
//
// A [Graph] has the nodes 0..n-1 and a set of undirected edges. Every edge
// references only nodes inside that range; [Graph.AddEdge] refuses anything
// else with [ErrNodeOutOfRange].
//
// Edges are stored normalized ([Edge] has U <= V), so duplicates and reversed
// duplicates collapse into one edge. Self-loops are allowed.
//
// # Building
//
// [Build] turns raw [Pair] values into a graph and reports which pairs it
// dropped for being out of range:
//
//	g, dropped := graph.Build(10, pairs)
//	for _, p := range dropped {
//	    logger.Warn("dropping edge", "edge", p)
//	}
//
// [Shift] converts 1-based input to 0-based before building:
//
//	g, _ := graph.Build(3, graph.Shift(pairs, -1))
//
// # Queries
//
// [Graph.Neighbors] returns sorted neighbor lists and is symmetric: v is a
// neighbor of u exactly when u is a neighbor of v. [Graph.Edges] returns the
// edges in a stable (U, V) order, which renderers rely on for reproducible
// output.
package graph
