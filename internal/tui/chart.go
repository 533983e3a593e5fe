package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/fibspiral/internal/chart"
	"github.com/agbru/fibspiral/internal/fib"
	"github.com/agbru/fibspiral/internal/format"
)

// chartLabelWidth fits "F(40)" plus a space.
const chartLabelWidth = 6

// ChartModel renders the sequence as a horizontal bar chart, one bar per
// term, rescaled to the panel width whenever the size or sequence changes.
type ChartModel struct {
	seq    fib.Sequence
	bars   chart.BarSet
	width  int
	height int
}

// NewChartModel creates an empty chart panel.
func NewChartModel() ChartModel {
	return ChartModel{}
}

// SetSize updates dimensions and rescales the bars.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
	c.rescale()
}

// SetSequence replaces the charted sequence and rescales the bars.
func (c *ChartModel) SetSequence(seq fib.Sequence) {
	c.seq = seq
	c.rescale()
}

// Reset clears the chart.
func (c *ChartModel) Reset() {
	c.seq = nil
	c.bars = nil
}

func (c *ChartModel) rescale() {
	if len(c.seq) == 0 {
		c.bars = nil
		return
	}
	c.bars = chart.Scale(c.seq, c.barWidth())
}

// barWidth is the cell budget for the bar itself: panel width minus the
// border, padding, index label and the widest value column.
func (c *ChartModel) barWidth() int {
	valueWidth := 0
	if len(c.seq) > 0 {
		valueWidth = len(format.FormatNumber(c.seq.Last().Value))
	}
	w := c.width - 4 - chartLabelWidth - valueWidth - 1
	if w < 1 {
		w = 1
	}
	return w
}

// View renders the chart panel.
func (c ChartModel) View() string {
	var rows []string
	rows = append(rows, panelTitleStyle.Render("Chart"))

	innerHeight := c.height - 3
	if innerHeight < 1 {
		innerHeight = 1
	}

	switch {
	case len(c.bars) == 0:
		rows = append(rows, dimStyle.Render("no result yet"))
	default:
		maxBar := c.barWidth()
		start := 0
		if len(c.bars) > innerHeight {
			// Keep the tail so F(n) stays visible; note what was clipped.
			start = len(c.bars) - innerHeight + 1
			rows = append(rows, dimStyle.Render(fmt.Sprintf("… F(0)–F(%d) above", c.bars[start-1].Index)))
		}
		for _, b := range c.bars[start:] {
			rows = append(rows, c.renderBar(b, maxBar))
		}
	}

	return panelStyle.
		Width(c.width - 2).
		Height(c.height - 2).
		Render(strings.Join(rows, "\n"))
}

// renderBar renders one bar row: index label, filled bar, raw value.
func (c ChartModel) renderBar(b chart.Bar, maxBar int) string {
	label := seqIndexStyle.Render(fmt.Sprintf("%-*s", chartLabelWidth, fmt.Sprintf("F(%d)", b.Index)))

	filled := b.Scaled
	if filled > maxBar {
		filled = maxBar
	}
	bar := barStyle(int(b.Index)).Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", maxBar-filled))

	value := seqValueStyle.Render(format.FormatNumber(b.Raw))
	return label + bar + " " + value
}
