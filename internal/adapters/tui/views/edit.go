package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"jsoncanvas/internal/adapters/tui/styles"
	"jsoncanvas/internal/application/commands"
	"jsoncanvas/internal/domain"
	"jsoncanvas/internal/ports"
)

// editState tracks where the edit session is in its lifecycle
type editState int

const (
	editIdle editState = iota
	editEditing
	editSaving
)

// editableFields are the node attributes the modal exposes, in display
// order. They map one-to-one onto the form inputs.
var editableFields = []string{"name", "color"}

// EditModel is the node edit modal. Submitting runs a full edit
// session: build the patch, write the document and persist it. While
// the save is in flight input is ignored; a failure keeps the modal
// open with the error so nothing typed is lost.
type EditModel struct {
	ViewState
	store ports.DocumentStore
	node  *domain.Node
	form  *InputForm
	state editState
}

// NewEditModel creates a new edit modal
func NewEditModel(store ports.DocumentStore) *EditModel {
	form := NewInputForm(
		NewInputField("Name:", "display name", 200),
		NewInputField("Color:", "node color", 100),
	)
	return &EditModel{
		store: store,
		form:  form,
	}
}

// SetNode opens the modal for a node, filling the inputs from its rows.
// A field whose row is missing starts empty.
func (m *EditModel) SetNode(node *domain.Node) {
	m.node = node
	m.state = editEditing
	m.ClearMessage()
	m.form.Reset()
	for i, field := range editableFields {
		if v, ok := rowText(node, field); ok {
			m.form.SetValue(i, v)
		}
	}
}

// rowText returns the display text of a keyed primitive row
func rowText(node *domain.Node, key string) (string, bool) {
	if node == nil {
		return "", false
	}
	for _, r := range node.Rows {
		if r.Key != key || r.Kind != domain.RowPrimitive {
			continue
		}
		switch r.Value.Kind() {
		case domain.KindString:
			return r.Value.Str(), true
		case domain.KindNumber:
			return r.Value.Number().String(), true
		case domain.KindBool:
			if r.Value.Bool() {
				return "true", true
			}
			return "false", true
		default:
			return "", true
		}
	}
	return "", false
}

// Init initializes the edit modal
func (m *EditModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the edit modal
func (m *EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case EditFailedMsg:
		m.state = editEditing
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		// No input while the save is in flight
		if m.state == editSaving {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg {
				return SwitchToExplorerMsg{}
			}

		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.save()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

// save dispatches the edit session as a background command
func (m *EditModel) save() tea.Cmd {
	m.state = editSaving
	m.ClearMessage()

	edits := make(domain.EditSet, 0, len(editableFields))
	for i, field := range editableFields {
		edits = append(edits, domain.Edit{
			Key:   field,
			Value: domain.String(m.form.Value(i)),
		})
	}

	store := m.store
	node := m.node
	return func() tea.Msg {
		cmd := commands.NewEditCommand(store, node, edits)
		if err := cmd.Validate(); err != nil {
			return EditFailedMsg{Err: err}
		}
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return EditFailedMsg{Err: err}
		}
		return EditCommittedMsg{Result: result}
	}
}

// View renders the edit modal
func (m *EditModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Edit Node"))
	b.WriteString("\n")
	if m.node != nil {
		b.WriteString(styles.PathBar.Render(m.node.Path.String()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i := range editableFields {
		b.WriteString(m.form.RenderField(i))
		b.WriteString("\n\n")
	}

	if m.state == editSaving {
		b.WriteString(styles.MutedText.Render("Saving..."))
		b.WriteString("\n\n")
	} else if msg := m.RenderMessage(); msg != "" {
		b.WriteString(msg)
		b.WriteString("\n\n")
	}

	b.WriteString(m.form.RenderHelp("save"))

	return styles.App.Render(b.String())
}
