package markov

import (
	"strings"
	"testing"
)

// newTestGraph builds a graph from the given chains, one AddChain call each.
func newTestGraph(t *testing.T, chains ...[]string) *Graph {
	t.Helper()
	g := NewGraph()
	for _, chain := range chains {
		g.AddChain(chain)
	}
	return g
}

// words is a shorthand for building a chain from space-separated text.
func words(text string) []string {
	return strings.Fields(text)
}

// mustLookup resolves a token that the test has already ingested.
func mustLookup(t *testing.T, g *Graph, value string) NodeID {
	t.Helper()
	id, ok := g.Lookup(value)
	if !ok {
		t.Fatalf("token %q not found in graph", value)
	}
	return id
}
