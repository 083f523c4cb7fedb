package source

import (
	"testing"
)

func TestLoadJSON(t *testing.T) {
	contents := `{
  "name": "exported chat",
  "messages": [
    {"id": 1, "text": "the quick brown fox jumps"},
    {"id": 2, "text": "too short"},
    {"id": 3, "text": ["formatted", {"type": "bold", "text": "fragment"}]},
    {"id": 4, "text": "over the lazy sleeping dog"}
  ]
}`
	path := writeTestFile(t, "export.json", contents)

	g, l := newTestLoader(t)
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	if _, ok := g.Lookup("fox"); !ok {
		t.Error("expected string message to be ingested")
	}
	if _, ok := g.Lookup("formatted"); ok {
		t.Error("array-valued text payloads must be skipped")
	}
	if _, ok := g.Lookup("short"); ok {
		t.Error("below-threshold messages must be skipped")
	}
	if got := g.Stats().StartingTokens; got != 2 {
		t.Errorf("expected 2 ingested messages, got %d starting tokens", got)
	}
}

func TestLoadJSONRepairsTrailingComma(t *testing.T) {
	// A trailing comma is invalid JSON but trivially repairable.
	contents := `{"messages": [{"text": "one two three four five"},]}`
	path := writeTestFile(t, "broken.json", contents)

	g, l := newTestLoader(t)
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("expected the document to be repaired, got error: %v", err)
	}
	if g.NodeCount() != 5 {
		t.Errorf("expected the repaired message to be ingested, got %d nodes", g.NodeCount())
	}
}

func TestLoadJSONUnparseable(t *testing.T) {
	// Repairs to a JSON array, which still doesn't match the document shape.
	path := writeTestFile(t, "hopeless.json", `[1, 2, 3`)

	g, l := newTestLoader(t)
	if err := l.LoadFile(path); err == nil {
		t.Error("expected an error for a document with the wrong shape")
	}
	if g.NodeCount() != 0 {
		t.Errorf("a failed source must not contribute to the graph, got %d nodes", g.NodeCount())
	}
}
