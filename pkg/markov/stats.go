package markov

// GraphStats holds aggregated counts for a graph.
type GraphStats struct {
	Nodes          int // The number of distinct tokens.
	Edges          int // The number of unique node->successor links, including links to End.
	Transitions    int // The sum of all observation counts, start observations included.
	StartingTokens int // The number of unique entries in the start distribution.
}

// Stats returns a snapshot of aggregate statistics for the graph.
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		Nodes:          len(g.nodes),
		StartingTokens: len(g.starts),
	}

	for _, count := range g.starts {
		stats.Transitions += count
	}
	for _, n := range g.nodes {
		stats.Edges += len(n.edges)
		for _, count := range n.edges {
			stats.Transitions += count
		}
	}

	return stats
}
