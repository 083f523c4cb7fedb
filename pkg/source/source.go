package source

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/CTAG07/Drosera/pkg/markov"
)

// ErrUnknownFormat is returned by LoadFile for file extensions it has no
// reader for.
var ErrUnknownFormat = errors.New("source: unknown file format")

const (
	// DefaultMinTokens is the minimum chain length a unit of text must reach
	// to be ingested. Shorter units contribute nothing to the graph.
	DefaultMinTokens = 5
	// DefaultRowQuery is the query run against SQLite sources to extract one
	// unit of text per row.
	DefaultRowQuery = "SELECT text FROM messages"
)

// Loader ingests source files into a markov.Graph.
type Loader struct {
	graph     *markov.Graph
	tokenizer *Tokenizer
	minTokens int
	rowQuery  string
	logger    *slog.Logger
}

// LoaderOption Is a function that configures a Loader.
type LoaderOption func(*Loader)

// WithMinTokens sets the minimum token count for an ingested chain.
// Default: DefaultMinTokens
func WithMinTokens(n int) LoaderOption {
	return func(l *Loader) {
		l.minTokens = n
	}
}

// WithRowQuery sets the query used to extract text rows from SQLite sources.
// Default: DefaultRowQuery
func WithRowQuery(query string) LoaderOption {
	return func(l *Loader) {
		l.rowQuery = query
	}
}

// WithLogger sets the logger for the Loader. By default, all logs are discarded.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a Loader that feeds the given graph, tokenizing with the
// given tokenizer.
func NewLoader(graph *markov.Graph, tokenizer *Tokenizer, opts ...LoaderOption) *Loader {
	l := &Loader{
		graph:     graph,
		tokenizer: tokenizer,
		minTokens: DefaultMinTokens,
		rowQuery:  DefaultRowQuery,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// addText tokenizes one logical unit of text and feeds it to the graph.
// It reports whether a chain was actually added.
func (l *Loader) addText(text string) bool {
	tokens := l.tokenizer.Split(text)
	if len(tokens) < l.minTokens {
		return false
	}
	l.graph.AddChain(tokens)
	return true
}

// LoadFile ingests a single source file, choosing a reader by file extension.
// Text files contribute one chain per line, JSON chat exports one chain per
// string message, SQLite files one chain per queried row.
func (l *Loader) LoadFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt":
		return l.loadText(path)
	case ".json":
		return l.loadJSON(path)
	case ".db", ".sqlite", ".sqlite3":
		return l.loadSQLite(path)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// LoadAll ingests every given path, reporting and skipping sources that fail
// so the remaining ones still contribute. It returns the number of sources
// that loaded successfully.
func (l *Loader) LoadAll(paths []string) int {
	loaded := 0
	for _, path := range paths {
		if err := l.LoadFile(path); err != nil {
			l.logger.Warn("Skipping source",
				slog.String("source", path),
				slog.Any("error", err),
			)
			continue
		}
		loaded++
	}
	return loaded
}
