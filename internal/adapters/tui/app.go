package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"jsoncanvas/internal/adapters/editor"
	"jsoncanvas/internal/adapters/tui/views"
	"jsoncanvas/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewExplorer ViewState = iota
	ViewEdit
	ViewDetail
	ViewHelp
)

// App is the main TUI application model
type App struct {
	store   ports.DocumentStore
	editor  *editor.Opener
	docPath string

	state    ViewState
	explorer *views.ExplorerModel
	edit     *views.EditModel
	detail   *views.DetailModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. docPath is the on-disk location
// of the document, used when handing off to an external editor.
func NewApp(store ports.DocumentStore, ed *editor.Opener, docPath string) *App {
	return &App{
		store:    store,
		editor:   ed,
		docPath:  docPath,
		state:    ViewExplorer,
		explorer: views.NewExplorerModel(store),
		edit:     views.NewEditModel(store),
		detail:   views.NewDetailModel(),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.explorer.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.explorer.SetSize(msg.Width, msg.Height)
		a.edit.SetSize(msg.Width, msg.Height)
		a.detail.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToEditMsg:
		a.state = ViewEdit
		a.edit.SetNode(msg.Node)
		return a, a.edit.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToExplorerMsg:
		a.state = ViewExplorer
		return a, nil

	// Edit session messages
	case views.EditCommittedMsg:
		if msg.Result.Skipped {
			a.state = ViewExplorer
			return a, nil
		}
		a.explorer.SetDocument(msg.Result.Document)
		a.explorer.SetMessage(msg.Result.Message, false)
		a.detail.SetNode(msg.Result.Node, msg.Result.Document)
		a.state = ViewDetail
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(a.docPath)

	case editorFinishedMsg:
		a.state = ViewExplorer
		if msg.err != nil {
			a.explorer.SetMessage(msg.err.Error(), true)
			return a, nil
		}
		return a, a.explorer.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewExplorer:
		_, cmd = a.explorer.Update(msg)
	case ViewEdit:
		_, cmd = a.edit.Update(msg)
	case ViewDetail:
		_, cmd = a.detail.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewEdit:
		return a.edit.View()
	case ViewDetail:
		return a.detail.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.explorer.View()
	}
}
