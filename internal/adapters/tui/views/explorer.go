package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"jsoncanvas/internal/adapters/tui/styles"
	"jsoncanvas/internal/domain"
	"jsoncanvas/internal/ports"
)

// ExplorerKeyMap defines key bindings for the explorer view
type ExplorerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Drill    key.Binding
	Back     key.Binding
	Edit     key.Binding
	CopyPath key.Binding
	Editor   key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var ExplorerKeys = ExplorerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Drill: key.NewBinding(
		key.WithKeys("l", "right", "enter"),
		key.WithHelp("l/→/enter", "drill in"),
	),
	Back: key.NewBinding(
		key.WithKeys("h", "left", "backspace"),
		key.WithHelp("h/←", "parent"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit node"),
	),
	CopyPath: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Editor: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open in $EDITOR"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ExplorerModel is the node graph browser: it shows the selected node's
// rows and lets the user drill into nested containers, one node per
// screen.
type ExplorerModel struct {
	ViewState
	store  ports.DocumentStore
	doc    domain.Value
	path   domain.Path
	cur    domain.Value
	rows   []domain.Row
	cursor int
	loaded bool
}

// NewExplorerModel creates a new explorer model
func NewExplorerModel(store ports.DocumentStore) *ExplorerModel {
	return &ExplorerModel{store: store}
}

// Init initializes the explorer
func (m *ExplorerModel) Init() tea.Cmd {
	return m.loadDocument
}

// Reload re-reads the document from the store
func (m *ExplorerModel) Reload() tea.Cmd {
	return m.loadDocument
}

func (m *ExplorerModel) loadDocument() tea.Msg {
	text, err := m.store.GetContents()
	if err != nil {
		return errMsg{err}
	}
	doc, err := domain.Parse(text)
	if err != nil {
		return errMsg{err}
	}
	return documentLoadedMsg{doc: doc}
}

// SetDocument installs an already-parsed document, e.g. the result of a
// committed edit, without another store round trip.
func (m *ExplorerModel) SetDocument(doc domain.Value) {
	m.doc = doc
	m.loaded = true
	m.refresh()
}

// SelectedNode returns the node currently on screen, or nil before the
// document is loaded. The rows are copied so the edit session owns them.
func (m *ExplorerModel) SelectedNode() *domain.Node {
	if !m.loaded {
		return nil
	}
	rows := make([]domain.Row, len(m.rows))
	copy(rows, m.rows)
	path := make(domain.Path, len(m.path))
	copy(path, m.path)
	return &domain.Node{Path: path, Rows: rows}
}

// refresh re-resolves the current path, popping to an ancestor when the
// subtree disappeared.
func (m *ExplorerModel) refresh() {
	for {
		if v, ok := domain.Resolve(m.doc, m.path); ok {
			m.cur = v
			m.rows = domain.Rows(v)
			break
		}
		if len(m.path) == 0 {
			m.cur = m.doc
			m.rows = domain.Rows(m.doc)
			break
		}
		m.path = m.path[:len(m.path)-1]
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles messages for the explorer view
func (m *ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case documentLoadedMsg:
		m.SetDocument(msg.doc)
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ExplorerKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, ExplorerKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, ExplorerKeys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, ExplorerKeys.Drill):
			m.drill()
			return m, nil

		case key.Matches(msg, ExplorerKeys.Back):
			if len(m.path) > 0 {
				m.path = m.path[:len(m.path)-1]
				m.cursor = 0
				m.ClearMessage()
				m.refresh()
			}
			return m, nil

		case key.Matches(msg, ExplorerKeys.Edit):
			if node := m.SelectedNode(); node != nil {
				return m, func() tea.Msg {
					return SwitchToEditMsg{Node: node}
				}
			}
			return m, nil

		case key.Matches(msg, ExplorerKeys.CopyPath):
			if err := clipboard.WriteAll(m.path.String()); err != nil {
				m.SetMessage(fmt.Sprintf("clipboard: %v", err), true)
			} else {
				m.SetMessage(fmt.Sprintf("Copied %s", m.path), false)
			}
			return m, nil

		case key.Matches(msg, ExplorerKeys.Editor):
			return m, func() tea.Msg {
				return OpenEditorMsg{}
			}

		case key.Matches(msg, ExplorerKeys.Reload):
			m.ClearMessage()
			return m, m.Reload()

		case key.Matches(msg, ExplorerKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

// drill descends into the container row under the cursor. Unkeyed rows
// are addressed by position.
func (m *ExplorerModel) drill() {
	if m.cursor >= len(m.rows) {
		return
	}
	row := m.rows[m.cursor]
	if row.Kind == domain.RowPrimitive {
		return
	}

	// Keyed segments for object children, positional for array elements
	seg := domain.Index(m.cursor)
	if m.cur.Kind() == domain.KindObject {
		seg = domain.Key(row.Key)
	}
	m.path = append(m.path, seg)
	m.cursor = 0
	m.ClearMessage()
	m.refresh()
}

// View renders the explorer view
func (m *ExplorerModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("jsoncanvas"))
	b.WriteString("\n")
	b.WriteString(styles.PathBar.Render(m.path.String()))
	b.WriteString("\n\n")

	if !m.loaded {
		b.WriteString(styles.MutedText.Render("Loading document..."))
	} else if len(m.rows) == 0 {
		b.WriteString(styles.MutedText.Render("(empty node)"))
	} else {
		for i, row := range m.rows {
			line := m.renderRow(i, row)
			if i == m.cursor {
				line = styles.RowSelected.Render("▸ " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if msg := m.RenderMessage(); msg != "" {
		b.WriteString(msg)
		b.WriteString("\n\n")
	}

	b.WriteString(renderHelpKeys(
		ExplorerKeys.Drill, ExplorerKeys.Back, ExplorerKeys.Edit,
		ExplorerKeys.CopyPath, ExplorerKeys.Editor, ExplorerKeys.Help,
		ExplorerKeys.Quit,
	))

	return styles.App.Render(b.String())
}

func (m *ExplorerModel) renderRow(i int, row domain.Row) string {
	label := row.Key
	if label == "" {
		label = fmt.Sprintf("[%d]", i)
	}

	switch row.Kind {
	case domain.RowObject:
		return styles.RowKey.Render(label) + ": " + styles.RowContainer.Render("{…}")
	case domain.RowArray:
		return styles.RowKey.Render(label) + ": " + styles.RowContainer.Render("[…]")
	default:
		return styles.RowKey.Render(label) + ": " + renderPrimitive(row.Value)
	}
}

func renderPrimitive(v domain.Value) string {
	kind := v.Kind().String()
	style := styles.MutedText.Foreground(styles.ValueColor(kind))

	switch v.Kind() {
	case domain.KindString:
		return style.Render(`"` + v.Str() + `"`)
	case domain.KindNumber:
		return style.Render(v.Number().String())
	case domain.KindBool:
		if v.Bool() {
			return style.Render("true")
		}
		return style.Render("false")
	default:
		return style.Render("null")
	}
}

func renderHelpKeys(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, styles.HelpKey.Render(b.Help().Key)+" "+styles.HelpDesc.Render(b.Help().Desc))
	}
	return strings.Join(parts, "  ")
}
