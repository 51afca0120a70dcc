package graph

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrNodeOutOfRange is returned by [Graph.AddEdge] when an endpoint lies
// outside the node range [0, n).
var ErrNodeOutOfRange = errors.New("node out of range")

// Pair is a raw edge as parsed from input, before range validation.
// Pairs keep the order the user wrote them in.
type Pair [2]int

// String formats the pair the way it appears in the JSON input, e.g. "[0,10]".
func (p Pair) String() string {
	return fmt.Sprintf("[%d,%d]", p[0], p[1])
}

// Edge is an undirected edge with U <= V.
type Edge struct {
	U, V int
}

// NewEdge returns the normalized edge between u and v.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{U: u, V: v}
}

// IsLoop reports whether the edge connects a node to itself.
func (e Edge) IsLoop() bool { return e.U == e.V }

// Graph is a simple undirected graph over the nodes 0..n-1.
//
// Edges have set semantics: adding (u, v) twice, or adding (v, u) after (u, v),
// leaves a single edge. Self-loops are stored like any other edge.
//
// The zero value is an empty graph with no nodes. Graph is not safe for
// concurrent use.
type Graph struct {
	n     int
	edges map[Edge]struct{}
	adj   map[int]map[int]struct{}
}

// New creates a graph with nodes 0..n-1 and no edges.
// A non-positive n yields a graph with no nodes.
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}
	return &Graph{
		n:     n,
		edges: make(map[Edge]struct{}),
		adj:   make(map[int]map[int]struct{}),
	}
}

// Contains reports whether u is a node of the graph.
func (g *Graph) Contains(u int) bool {
	return u >= 0 && u < g.n
}

// AddEdge adds the undirected edge {u, v}.
// It returns an error wrapping [ErrNodeOutOfRange] if either endpoint is not
// a node of the graph; the graph is left unchanged in that case.
func (g *Graph) AddEdge(u, v int) error {
	if !g.Contains(u) || !g.Contains(v) {
		return fmt.Errorf("edge [%d,%d] with n=%d: %w", u, v, g.n, ErrNodeOutOfRange)
	}
	if g.edges == nil {
		g.edges = make(map[Edge]struct{})
		g.adj = make(map[int]map[int]struct{})
	}
	g.edges[NewEdge(u, v)] = struct{}{}
	g.link(u, v)
	g.link(v, u)
	return nil
}

func (g *Graph) link(from, to int) {
	set, ok := g.adj[from]
	if !ok {
		set = make(map[int]struct{})
		g.adj[from] = set
	}
	set[to] = struct{}{}
}

// HasEdge reports whether {u, v} is an edge, in either orientation.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.edges[NewEdge(u, v)]
	return ok
}

// NodeCount returns n.
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns 0..n-1 in ascending order.
func (g *Graph) Nodes() []int {
	nodes := make([]int, g.n)
	for i := range nodes {
		nodes[i] = i
	}
	return nodes
}

// Edges returns all edges sorted by (U, V).
func (g *Graph) Edges() []Edge {
	return slices.SortedFunc(maps.Keys(g.edges), func(a, b Edge) int {
		if a.U != b.U {
			return a.U - b.U
		}
		return a.V - b.V
	})
}

// Neighbors returns the neighbors of u in ascending order.
// A node with a self-loop lists itself once. Unknown nodes have no neighbors.
func (g *Graph) Neighbors(u int) []int {
	return slices.Sorted(maps.Keys(g.adj[u]))
}

// Degree returns the number of distinct neighbors of u.
func (g *Graph) Degree(u int) int {
	return len(g.adj[u])
}
