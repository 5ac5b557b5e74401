package views

import (
	"jsoncanvas/internal/application/commands"
	"jsoncanvas/internal/domain"
)

// SwitchToExplorerMsg returns to the node explorer
type SwitchToExplorerMsg struct{}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// SwitchToEditMsg opens the edit modal for a node
type SwitchToEditMsg struct {
	Node *domain.Node
}

// EditCommittedMsg indicates the edit session persisted successfully
type EditCommittedMsg struct {
	Result *commands.EditResult
}

// EditFailedMsg indicates the edit session failed; the modal stays open
type EditFailedMsg struct {
	Err error
}

// OpenEditorMsg requests opening the raw document in an external editor
type OpenEditorMsg struct{}

type errMsg struct {
	err error
}

type documentLoadedMsg struct {
	doc domain.Value
}
