package application

import "jsoncanvas/internal/domain"

// Re-export domain types for use by adapters
type (
	Value   = domain.Value
	Path    = domain.Path
	Segment = domain.Segment
	Row     = domain.Row
	Node    = domain.Node
	Edit    = domain.Edit
	EditSet = domain.EditSet
)

// ParsePath parses the canonical $["key"][0] display form.
func ParsePath(s string) (domain.Path, error) {
	return domain.ParsePath(s)
}

// FormatPath renders a path in its canonical display form.
func FormatPath(p domain.Path) string {
	return p.String()
}
