package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"jsoncanvas/internal/adapters/editor"
	"jsoncanvas/internal/adapters/filesystem"
	"jsoncanvas/internal/adapters/sqlite"
	"jsoncanvas/internal/adapters/tui"
	"jsoncanvas/internal/config"
)

func main() {
	docPath := config.DocumentPath()
	if len(os.Args) > 1 {
		docPath = os.Args[1]
	}

	// Initialize adapters
	store := filesystem.NewStore(docPath)
	editorOpener := editor.NewOpener()

	touchRecents(store)

	// Create and run TUI app
	app := tui.NewApp(store, editorOpener, store.Path())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// touchRecents records the document in the recent-documents index.
// Best effort: the TUI works fine without the index.
func touchRecents(store *filesystem.Store) {
	recentsPath := config.RecentsPath()
	if err := os.MkdirAll(filepath.Dir(recentsPath), 0o755); err != nil {
		return
	}

	recents := sqlite.NewRecents()
	if err := recents.Open(recentsPath); err != nil {
		return
	}
	defer recents.Close()

	label := ""
	if contents, err := store.GetContents(); err == nil {
		label = sqlite.DocumentLabel(contents)
	}
	_ = recents.Touch(store.Path(), label)
}
