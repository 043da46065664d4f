package telemetry

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	entryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#667085"))
	dirStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#667085")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22A06B"))
	abortStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D93025"))
)

// Icons.
const (
	iconCheck   = "✓"
	iconCross   = "✗"
	iconWarning = "!"
	iconDot     = "●"
)
