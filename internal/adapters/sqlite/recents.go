package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	_ "github.com/mattn/go-sqlite3"

	"jsoncanvas/internal/ports"
)

// Recents implements ports.RecentIndex using SQLite
type Recents struct {
	db *sql.DB
}

// Ensure Recents implements RecentIndex
var _ ports.RecentIndex = (*Recents)(nil)

// NewRecents creates a new recents index
func NewRecents() *Recents {
	return &Recents{}
}

// Open initializes the index at dbPath
func (r *Recents) Open(dbPath string) error {
	// Expand ~ in path
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// WAL mode keeps concurrent CLI and TUI invocations from tripping
	// over each other.
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	r.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS recents (
			path      TEXT PRIMARY KEY,
			label     TEXT NOT NULL DEFAULT '',
			opened_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_recents_opened ON recents(opened_at);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}
	return nil
}

// Close closes the database connection
func (r *Recents) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Touch records that the document at path was opened now
func (r *Recents) Touch(path, label string) error {
	_, err := r.db.Exec(`
		INSERT INTO recents (path, label, opened_at) VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			label = excluded.label,
			opened_at = excluded.opened_at
	`, path, label, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to record document: %w", err)
	}
	return nil
}

// List returns up to limit entries, most recently opened first
func (r *Recents) List(limit int) ([]ports.RecentDocument, error) {
	rows, err := r.db.Query(`
		SELECT path, label, opened_at FROM recents
		ORDER BY opened_at DESC, path
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recents: %w", err)
	}
	defer rows.Close()

	var docs []ports.RecentDocument
	for rows.Next() {
		var doc ports.RecentDocument
		var openedAt int64
		if err := rows.Scan(&doc.Path, &doc.Label, &openedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent: %w", err)
		}
		doc.OpenedAt = time.Unix(0, openedAt)
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// DocumentLabel extracts a display label from raw document text by
// peeking at the top-level name/title keys, without a full parse.
func DocumentLabel(contents string) string {
	data := []byte(contents)
	for _, key := range []string{"name", "title"} {
		if s, err := jsonparser.GetString(data, key); err == nil && s != "" {
			return s
		}
	}
	return ""
}
