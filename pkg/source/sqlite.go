package source

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
)

// loadSQLite ingests a SQLite chat log, one chain per row of the configured
// query. The database is opened read-only; NULL rows are skipped.
func (l *Loader) loadSQLite(path string) error {
	// sql.Open would happily create a missing file; reject it up front.
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("could not open sqlite source: %w", err)
	}

	db, err := openDB(path)
	if err != nil {
		return fmt.Errorf("could not open sqlite source: %w", err)
	}
	defer func(db *sql.DB) {
		_ = db.Close()
	}(db)

	rows, err := db.Query(l.rowQuery)
	if err != nil {
		return fmt.Errorf("could not query sqlite source: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	chains := 0
	for rows.Next() {
		var text sql.NullString
		if err := rows.Scan(&text); err != nil {
			return fmt.Errorf("could not scan sqlite row: %w", err)
		}
		if text.Valid && l.addText(text.String) {
			chains++
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("could not read sqlite source: %w", err)
	}

	l.logger.Info("SQLite source ingested",
		slog.String("source", path),
		slog.Int("chains_added", chains),
	)
	return nil
}
