package graph

// Build creates a graph with nodes 0..n-1 and adds every pair whose endpoints
// both lie in that range.
//
// Pairs that reference a node outside the range are not added. They are
// returned in input order as dropped so the caller can warn about each one;
// dropping an edge is never an error.
func Build(n int, pairs []Pair) (g *Graph, dropped []Pair) {
	g = New(n)
	for _, p := range pairs {
		if err := g.AddEdge(p[0], p[1]); err != nil {
			dropped = append(dropped, p)
		}
	}
	return g, dropped
}

// Shift adds delta to every index in pairs and returns the result as a new slice.
// A delta of -1 converts 1-based input to 0-based indices.
func Shift(pairs []Pair, delta int) []Pair {
	if pairs == nil {
		return nil
	}
	out := make([]Pair, len(pairs))
	for i, p := range pairs {
		out[i] = Pair{p[0] + delta, p[1] + delta}
	}
	return out
}
