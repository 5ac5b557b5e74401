package ports

import "os/exec"

// EditorOpener opens the raw document in an external editor.
type EditorOpener interface {
	// OpenFile opens the file in the user's preferred editor, using
	// $EDITOR/$VISUAL with common fallbacks.
	OpenFile(path string) error

	// Command returns the exec.Cmd for opening the file, for use with
	// bubbletea's ExecProcess.
	Command(path string) (*exec.Cmd, error)
}
