package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"jsoncanvas/internal/adapters/tui/styles"
)

// HelpModel shows the full key reference
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			return m, func() tea.Msg {
				return SwitchToExplorerMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Help"))
	b.WriteString("\n\n")

	sections := []struct {
		name string
		keys []key.Binding
	}{
		{"Navigation", []key.Binding{
			ExplorerKeys.Up,
			ExplorerKeys.Down,
			ExplorerKeys.Drill,
			ExplorerKeys.Back,
		}},
		{"Editing", []key.Binding{
			ExplorerKeys.Edit,
			ExplorerKeys.Editor,
			ExplorerKeys.Reload,
		}},
		{"Other", []key.Binding{
			ExplorerKeys.CopyPath,
			ExplorerKeys.Help,
			ExplorerKeys.Quit,
		}},
	}

	for _, section := range sections {
		b.WriteString(styles.Subtitle.Render(section.name))
		b.WriteString("\n")
		for _, binding := range section.keys {
			b.WriteString("  ")
			b.WriteString(styles.HelpKey.Render(padKey(binding.Help().Key)))
			b.WriteString(" ")
			b.WriteString(styles.HelpDesc.Render(binding.Help().Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.MutedText.Render("press any key to go back"))

	return styles.App.Render(b.String())
}

func padKey(k string) string {
	const width = 12
	if len(k) >= width {
		return k
	}
	return k + strings.Repeat(" ", width-len(k))
}
