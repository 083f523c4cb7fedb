package markov

import (
	"io"
	"log/slog"
)

// NodeID addresses a node inside a Graph. IDs are assigned in creation order
// and are stable for the lifetime of the graph, which makes them usable as
// external names (for example in the Graphviz export). They carry no other
// meaning; node identity is the token value.
type NodeID int

// End is the sentinel successor that marks chain termination. It may appear
// as a key in any edge distribution (and, for empty chains, in the start
// distribution) but never addresses a real node.
const End NodeID = -1

// node is a single vertex: one distinct token value together with the counts
// of every transition observed out of it.
type node struct {
	value string
	edges map[NodeID]int
}

// Graph is a directed multigraph of token transitions. Nodes live in an
// arena addressed by NodeID; edge weights are observation counts and only
// ever grow. A Graph is not safe for concurrent mutation: finish all
// AddChain calls before generating.
type Graph struct {
	nodes  []node
	index  map[string]NodeID // token value -> arena position
	starts map[NodeID]int    // count of times a node began a chain
	logger *slog.Logger
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index:  make(map[string]NodeID),
		starts: make(map[NodeID]int),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets the logger for the graph. By default, all logs are discarded.
func (g *Graph) SetLogger(logger *slog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// getOrCreate resolves a token value to its node, registering a new node
// with a fresh id when the value has not been seen before.
func (g *Graph) getOrCreate(value string) NodeID {
	if id, ok := g.index[value]; ok {
		return id
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node{value: value, edges: make(map[NodeID]int)})
	g.index[value] = id
	return id
}

// AddChain ingests one ordered token sequence as a training example. The
// first token gains a start observation, every adjacent pair gains an edge
// observation, and the last token gains an observation toward End. Counts
// from successive calls accumulate additively, as if all chains were one
// combined training signal.
//
// An empty chain records a single vacuous start-to-End observation, so a
// later walk may legitimately produce an empty sequence.
func (g *Graph) AddChain(tokens []string) {
	if len(tokens) == 0 {
		g.starts[End]++
		return
	}

	cur := g.getOrCreate(tokens[0])
	g.starts[cur]++

	for _, token := range tokens[1:] {
		next := g.getOrCreate(token)
		g.nodes[cur].edges[next]++
		cur = next
	}

	g.nodes[cur].edges[End]++
}

// NodeCount returns the number of distinct tokens in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// Lookup returns the id of the node holding the given token value, if any.
func (g *Graph) Lookup(value string) (NodeID, bool) {
	id, ok := g.index[value]
	return id, ok
}

// Value returns the token value held by the given node. The second return
// is false for End and for ids outside the arena.
func (g *Graph) Value(id NodeID) (string, bool) {
	if id < 0 || int(id) >= len(g.nodes) {
		return "", false
	}
	return g.nodes[id].value, true
}

// Successors returns a copy of the outgoing edge distribution of the given
// node: successor id (possibly End) to observation count. It returns nil for
// ids outside the arena.
func (g *Graph) Successors(id NodeID) map[NodeID]int {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil
	}
	out := make(map[NodeID]int, len(g.nodes[id].edges))
	for succ, count := range g.nodes[id].edges {
		out[succ] = count
	}
	return out
}

// Starts returns a copy of the start distribution: node id (possibly End,
// for ingested empty chains) to the count of chains it began.
func (g *Graph) Starts() map[NodeID]int {
	out := make(map[NodeID]int, len(g.starts))
	for id, count := range g.starts {
		out[id] = count
	}
	return out
}
