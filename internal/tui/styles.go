package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibspiral/internal/ui"
)

// The dashboard styles are package globals so the panel View methods stay
// cheap; initTUIStyles rebuilds them when the theme changes.
var (
	panelStyle       lipgloss.Style
	panelTitleStyle  lipgloss.Style
	headerStyle      lipgloss.Style
	titleStyle       lipgloss.Style
	versionStyle     lipgloss.Style
	elapsedStyle     lipgloss.Style
	inputBoxStyle    lipgloss.Style
	placeholderStyle lipgloss.Style
	statusErrorStyle lipgloss.Style
	statusOKStyle    lipgloss.Style
	seqIndexStyle    lipgloss.Style
	seqValueStyle    lipgloss.Style
	captionStyle     lipgloss.Style
	gridStyle        lipgloss.Style
	arcStyle         lipgloss.Style
	metricLabelStyle lipgloss.Style
	metricValueStyle lipgloss.Style
	footerKeyStyle   lipgloss.Style
	footerDescStyle  lipgloss.Style
	helpKeyStyle     lipgloss.Style
	helpDescStyle    lipgloss.Style
	dimStyle         lipgloss.Style
	cpuSparkStyle    lipgloss.Style
	memSparkStyle    lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles derives every style from the active theme. It runs at
// package init and again from Run once the CLI flags have settled the theme.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	accent := lipgloss.NewStyle().Foreground(t.Accent)
	dim := lipgloss.NewStyle().Foreground(t.Dim)
	text := lipgloss.NewStyle().Foreground(t.Text)

	panelStyle = text.Border(lipgloss.RoundedBorder()).BorderForeground(t.Border)
	panelTitleStyle = accent.Bold(true)

	headerStyle = accent.Bold(true).Padding(0, 1)
	titleStyle = accent.Bold(true)
	versionStyle = dim
	elapsedStyle = accent

	inputBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Accent).Padding(0, 1)
	placeholderStyle = dim
	statusErrorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	statusOKStyle = lipgloss.NewStyle().Foreground(t.Success)

	seqIndexStyle = dim
	seqValueStyle = text
	captionStyle = dim.Italic(true)
	gridStyle = dim
	arcStyle = accent

	metricLabelStyle = dim
	metricValueStyle = accent.Bold(true)
	cpuSparkStyle = accent
	memSparkStyle = lipgloss.NewStyle().Foreground(t.Warning)

	footerKeyStyle = accent.Bold(true)
	footerDescStyle = dim
	helpKeyStyle = accent
	helpDescStyle = text
	dimStyle = dim
}

// barStyle returns the palette style for the bar or square at index i.
func barStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ui.PaletteColor(i))
}
