package source

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
)

// maxLineBytes bounds the scanner buffer so a single pathological line cannot
// exhaust memory.
const maxLineBytes = 1 << 20

// loadText ingests a line-oriented text file, one chain per non-trivial line.
func (l *Loader) loadText(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open text source: %w", err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	chains := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if l.addText(scanner.Text()) {
			chains++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read text source: %w", err)
	}

	l.logger.Info("Text source ingested",
		slog.String("source", path),
		slog.Int("chains_added", chains),
	)
	return nil
}
