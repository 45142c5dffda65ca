package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	activeStyle     = lipgloss.NewStyle().Bold(true)
	buttonStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 2)
	disabledStyle   = buttonStyle.Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
