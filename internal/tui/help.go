package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibspiral/internal/ui"
	"github.com/agbru/fibspiral/internal/validation"
)

// renderHelpOverlay centers the help box over the dashboard.
func renderHelpOverlay(width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ui.GetCurrentTUITheme().Accent).
		Width(min(56, width-4)).
		Height(min(20, height-2)).
		Padding(1, 2)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		box.Render(buildHelpContent()))
}

// buildHelpContent builds the help overlay text.
func buildHelpContent() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("FIBONACCI SPIRAL - HELP"))
	b.WriteString("\n\n")

	b.WriteString(panelTitleStyle.Render("Evaluation"))
	b.WriteString("\n")
	b.WriteString(formatHelpLine("0-9", fmt.Sprintf("Edit the index (0..%d)", validation.MaxN)))
	b.WriteString(formatHelpLine("Enter", "Evaluate F(n)"))
	b.WriteString(formatHelpLine("r", "Reset the session"))
	b.WriteString("\n")

	b.WriteString(panelTitleStyle.Render("Panels"))
	b.WriteString("\n")
	b.WriteString(formatHelpLine("g", "Toggle the spiral grid"))
	b.WriteString(formatHelpLine("m", "Toggle the metrics panel"))
	b.WriteString(formatHelpLine("Up/Down / k/j", "Scroll the sequence"))
	b.WriteString(formatHelpLine("PgUp/PgDn", "Scroll the sequence by page"))
	b.WriteString("\n")

	b.WriteString(panelTitleStyle.Render("Interface"))
	b.WriteString("\n")
	b.WriteString(formatHelpLine("?", "Toggle this help"))
	b.WriteString(formatHelpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(dimStyle.Render(strings.Repeat("-", 40)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press ? or Esc to close this help"))

	return b.String()
}

// formatHelpLine renders one key/description row, keys padded to a column.
func formatHelpLine(key, desc string) string {
	return fmt.Sprintf("  %s  %s\n",
		helpKeyStyle.Width(15).Render(key),
		helpDescStyle.Render(desc),
	)
}
