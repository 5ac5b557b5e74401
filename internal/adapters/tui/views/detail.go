package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"jsoncanvas/internal/adapters/tui/styles"
	"jsoncanvas/internal/domain"
)

// DetailKeyMap defines key bindings for the detail view
type DetailKeyMap struct {
	Back key.Binding
	Quit key.Binding
}

var DetailKeys = DetailKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "enter", "h"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// DetailModel shows the serialized subtree of a node after a commit
type DetailModel struct {
	ViewState
	node *domain.Node
	body string
}

// NewDetailModel creates a new detail model
func NewDetailModel() *DetailModel {
	return &DetailModel{}
}

// SetNode installs the node to display, serializing its subtree from
// the given document.
func (m *DetailModel) SetNode(node *domain.Node, doc domain.Value) {
	m.node = node
	m.ClearMessage()

	v, ok := domain.Resolve(doc, node.Path)
	if !ok {
		m.body = ""
		m.SetMessage("node no longer present in document", true)
		return
	}
	text, err := domain.Serialize(v)
	if err != nil {
		m.body = ""
		m.SetMessage(err.Error(), true)
		return
	}
	m.body = text
}

// Init initializes the detail view
func (m *DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view
func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DetailKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, DetailKeys.Back):
			return m, func() tea.Msg {
				return SwitchToExplorerMsg{}
			}
		}
	}

	return m, nil
}

// View renders the detail view
func (m *DetailModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Node Detail"))
	b.WriteString("\n")
	if m.node != nil {
		b.WriteString(styles.PathBar.Render(m.node.Path.String()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if msg := m.RenderMessage(); msg != "" {
		b.WriteString(msg)
		b.WriteString("\n")
	} else {
		b.WriteString(m.body)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(renderHelpKeys(DetailKeys.Back, DetailKeys.Quit))

	return styles.App.Render(b.String())
}
