// Package text renders a graph as a plain adjacency list.
//
// It is the fallback used when no image renderer is available, and has no
// dependencies beyond an io.Writer:
//
//	0: 2 3 6
//	1: 2 6
//	7:
package text

import (
	"bufio"
	"io"
	"strconv"

	"github.com/matzehuels/graphvis/pkg/graph"
)

// WriteAdjacency writes one line per node, in ascending node order, listing
// the node's neighbors in ascending order. Isolated nodes print as "<node>:".
func WriteAdjacency(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	for _, u := range g.Nodes() {
		bw.WriteString(strconv.Itoa(u))
		bw.WriteByte(':')
		for _, v := range g.Neighbors(u) {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
