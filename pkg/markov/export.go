package markov

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// dotEscaper handles characters that would break a quoted DOT label.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// ExportDOT writes the graph as Graphviz text: a node declaration per token,
// plus start->node, node->node and node->end edges, each annotated with its
// observation count. The start and end pseudo-nodes are rendered as squares.
// Output is deterministic: nodes appear in creation order and edges are
// sorted by successor id.
func (g *Graph) ExportDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "graph G {")
	fmt.Fprintln(bw, "start [shape = Msquare]")
	fmt.Fprintln(bw, "end [shape = Msquare]")

	for id, n := range g.nodes {
		fmt.Fprintf(bw, "%d [label = \"%s\"];\n", id, dotEscaper.Replace(n.value))
	}

	for _, id := range sortedIDs(g.starts) {
		count := g.starts[id]
		if id == End {
			fmt.Fprintf(bw, "start -- end [label = \"%d.0\"];\n", count)
			continue
		}
		fmt.Fprintf(bw, "start -- %d [label = \"%d.0\"];\n", id, count)
	}

	for id, n := range g.nodes {
		for _, succ := range sortedIDs(n.edges) {
			count := n.edges[succ]
			if succ == End {
				fmt.Fprintf(bw, "%d -- end [width = \"%d.0\"];\n", id, count)
				continue
			}
			fmt.Fprintf(bw, "%d -- %d [width = \"%d.0\"];\n", id, succ, count)
		}
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// sortedIDs returns the keys of a distribution in ascending id order, with
// End placed last.
func sortedIDs(dist map[NodeID]int) []NodeID {
	ids := make([]NodeID, 0, len(dist))
	for id := range dist {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i] == End {
			return false
		}
		if ids[j] == End {
			return true
		}
		return ids[i] < ids[j]
	})
	return ids
}
