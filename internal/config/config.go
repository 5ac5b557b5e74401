package config

import (
	"os"
	"path/filepath"
)

const DefaultDocumentPath = "~/Documents/canvas.json"

// DocumentPath returns the document path from the JSONCANVAS_FILE env
// var, falling back to DefaultDocumentPath.
func DocumentPath() string {
	if env := os.Getenv("JSONCANVAS_FILE"); env != "" {
		return env
	}
	return DefaultDocumentPath
}

// RecentsPath returns the location of the recent-documents index,
// under the user cache directory unless JSONCANVAS_RECENTS overrides it.
func RecentsPath() string {
	if env := os.Getenv("JSONCANVAS_RECENTS"); env != "" {
		return env
	}
	cache, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "jsoncanvas", "recents.db")
	}
	return filepath.Join(cache, "jsoncanvas", "recents.db")
}
