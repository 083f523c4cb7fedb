/*
Package source feeds token chains into a markov.Graph from external files.

A Loader reads line-oriented text files, JSON chat exports and SQLite chat
logs, splits each logical unit of text into tokens, and forwards every chain
that meets a minimum length to the graph. Sources that cannot be read or
parsed are reported and skipped; the graph only ever sees well-formed chains.
*/
package source
