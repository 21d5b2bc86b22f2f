package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E0AAFF"))
	subtitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	crumbStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	crumbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E0E7FF"))

	listPanelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#4C566A")).Padding(0, 1)
	detailPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#4C566A")).Padding(0, 1).MarginLeft(2)
	modalStyle       = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#7C3AED")).Padding(1, 2)

	statusBarStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(lipgloss.Color("#312E81")).Foreground(lipgloss.Color("#E0E7FF"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8")).Padding(0, 1).MarginTop(1)

	stepperStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	stepperActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FDE047"))

	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A5B4FC")).MarginTop(1)
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FDE047"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CBD5F5"))
	guideStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B")).Italic(true)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E7FF"))
	readonlyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))

	selectedRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))
	checkedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))
	uncheckedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	missingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))

	activeBorderColor = lipgloss.Color("#A78BFA")
)
