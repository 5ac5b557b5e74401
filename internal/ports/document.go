package ports

import "context"

// DocumentStore provides access to the single document under edit as
// serialized JSON text. Implementations replace the contents wholesale;
// readers never observe a partially written document.
type DocumentStore interface {
	// GetContents returns the current document text.
	GetContents() (string, error)

	// SetContents persists a new document text. It may fail; the caller
	// decides how to surface that.
	SetContents(ctx context.Context, contents string) error
}
