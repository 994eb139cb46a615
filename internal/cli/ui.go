package cli

import "github.com/charmbracelet/lipgloss"

// Color palette shared by report output and the interactive prompt.
var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings and values
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - entered values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// styleTitle for section headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleValue for user-entered values.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// styleDim for secondary/muted text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleSuccess for success messages.
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// styleWarning for soft warnings such as flagged interference.
	styleWarning = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)

	// styleError for prompt validation failures.
	styleError = lipgloss.NewStyle().Foreground(colorRed)
)
