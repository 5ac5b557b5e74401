package ports

import "time"

// RecentDocument is one entry in the recently-opened list.
type RecentDocument struct {
	Path     string
	Label    string
	OpenedAt time.Time
}

// RecentIndex tracks recently opened documents so the CLI and TUI can
// offer them back quickly.
type RecentIndex interface {
	Open(dbPath string) error
	Close() error

	// Touch records that the document at path was opened now, replacing
	// any previous entry for the same path.
	Touch(path, label string) error

	// List returns up to limit entries, most recently opened first.
	List(limit int) ([]RecentDocument, error)
}
