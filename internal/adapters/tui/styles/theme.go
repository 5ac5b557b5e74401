package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Value kind colors
	KindString = lipgloss.Color("#10B981") // Green
	KindNumber = lipgloss.Color("#60A5FA") // Blue
	KindBool   = lipgloss.Color("#F97316") // Orange
	KindNull   = lipgloss.Color("#6B7280") // Gray

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Path breadcrumb shown above the row list
	PathBar = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	// Row styles
	RowKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#60A5FA")) // Blue

	RowContainer = lipgloss.NewStyle().
			Foreground(Warning).
			Italic(true)

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// ValueColor returns the color used to render a primitive of the given
// JSON kind name.
func ValueColor(kind string) lipgloss.Color {
	switch kind {
	case "string":
		return KindString
	case "number":
		return KindNumber
	case "bool":
		return KindBool
	case "null":
		return KindNull
	default:
		return White
	}
}
