package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/CTAG07/Drosera/pkg/markov"
)

// newTestLoader builds a fresh graph and a loader over it.
func newTestLoader(t *testing.T, opts ...LoaderOption) (*markov.Graph, *Loader) {
	t.Helper()
	g := markov.NewGraph()
	return g, NewLoader(g, NewTokenizer(), opts...)
}

// writeTestFile drops a file with the given contents into a temp dir.
func writeTestFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestLoadFileUnknownFormat(t *testing.T) {
	_, l := newTestLoader(t)

	err := l.LoadFile("corpus.xml")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, l := newTestLoader(t)

	if err := l.LoadFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected an error for a missing source file")
	}
}

func TestLoadAllSkipsBadSources(t *testing.T) {
	g, l := newTestLoader(t)

	good := writeTestFile(t, "good.txt", "one two three four five\n")
	bad := writeTestFile(t, "bad.weird", "whatever")
	missing := filepath.Join(t.TempDir(), "missing.json")

	loaded := l.LoadAll([]string{bad, good, missing})
	if loaded != 1 {
		t.Errorf("expected 1 loaded source, got %d", loaded)
	}
	if g.NodeCount() != 5 {
		t.Errorf("expected the good source to be ingested, got %d nodes", g.NodeCount())
	}
}

func TestTokenizerSplit(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want int
	}{
		{name: "Simple words", text: "one two three", want: 3},
		{name: "Mixed whitespace", text: " one\ttwo \n three  four ", want: 4},
		{name: "Empty", text: "", want: 0},
		{name: "Whitespace only", text: " \t ", want: 0},
	}

	tok := NewTokenizer()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tok.Split(tc.text); len(got) != tc.want {
				t.Errorf("Split(%q) = %v, want %d tokens", tc.text, got, tc.want)
			}
		})
	}
}

func TestTokenizerCustomRegex(t *testing.T) {
	tok := NewTokenizer(WithSplitRegex(`[a-z]+`))

	got := tok.Split("one,two;three")
	if len(got) != 3 || got[0] != "one" || got[2] != "three" {
		t.Errorf("custom split regex gave %v", got)
	}
}
