/*
Package markov implements an in-memory word-transition graph and the weighted
random walks that generate new token sequences from it.

A Graph is built incrementally by feeding it token chains with AddChain; every
observed transition (including the virtual start of a chain and its
termination) is counted as an edge weight. Generate then walks the graph from
the start distribution, choosing each successor with probability proportional
to its weight, until the end marker is drawn. Sampling behavior can be
adjusted with temperature and top-K options, and the full graph is exportable
as Graphviz text for inspection.
*/
package markov
