package source

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	jsonrepair "github.com/kaptinlin/jsonrepair"
)

// messageDoc mirrors the chat-export layout: a top-level "messages" array of
// records whose "text" field holds the message payload.
type messageDoc struct {
	Messages []struct {
		Text json.RawMessage `json:"text"`
	} `json:"messages"`
}

// loadJSON ingests a JSON chat export, one chain per string message. A
// document that fails to parse is run through jsonrepair once before being
// given up on.
func (l *Loader) loadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read json source: %w", err)
	}

	var doc messageDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		repaired, repErr := jsonrepair.JSONRepair(string(data))
		if repErr != nil {
			return fmt.Errorf("could not parse json source: %w", err)
		}
		if err := json.Unmarshal([]byte(repaired), &doc); err != nil {
			return fmt.Errorf("could not parse json source after repair: %w", err)
		}
		l.logger.Warn("Repaired malformed json source",
			slog.String("source", path),
		)
	}

	chains := 0
	for _, msg := range doc.Messages {
		// Some exports store formatted messages as arrays of fragments; only
		// plain string payloads are usable.
		var text string
		if len(msg.Text) == 0 || json.Unmarshal(msg.Text, &text) != nil {
			continue
		}
		if l.addText(text) {
			chains++
		}
	}

	l.logger.Info("JSON source ingested",
		slog.String("source", path),
		slog.Int("messages", len(doc.Messages)),
		slog.Int("chains_added", chains),
	)
	return nil
}
