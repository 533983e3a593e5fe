package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibspiral/internal/format"
	"github.com/agbru/fibspiral/internal/metrics"
	"github.com/agbru/fibspiral/internal/present"
	"github.com/agbru/fibspiral/internal/sysmon"
)

// sparklineSamples is the trail length of the CPU and memory sparklines.
// At the 500ms tick cadence this covers the last twelve seconds.
const sparklineSamples = 24

// MetricsModel displays runtime memory statistics, system usage sparklines
// and the indicators derived from the last evaluation.
type MetricsModel struct {
	heapAlloc    uint64
	heapSys      uint64
	heapObjects  uint64
	numGC        uint32
	pauseTotalNs uint64
	numGoroutine int
	cpuHistory   *sysmon.History
	memHistory   *sysmon.History
	indicators   *metrics.Indicators
	analysis     present.Analysis
	width        int
	height       int
}

// NewMetricsModel starts the panel with empty usage trails.
func NewMetricsModel() MetricsModel {
	return MetricsModel{
		cpuHistory: sysmon.NewHistory(sparklineSamples),
		memHistory: sysmon.NewHistory(sparklineSamples),
	}
}

// SetSize records the frame the panel must fill.
func (m *MetricsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// UpdateRuntimeStats stores the latest Go runtime sample.
func (m *MetricsModel) UpdateRuntimeStats(msg RuntimeStatsMsg) {
	m.heapAlloc = msg.HeapAlloc
	m.heapSys = msg.HeapSys
	m.heapObjects = msg.HeapObjects
	m.numGC = msg.NumGC
	m.pauseTotalNs = msg.PauseTotalNs
	m.numGoroutine = msg.Goroutines
}

// UpdateSysStats appends one system usage sample to the sparkline trails.
func (m *MetricsModel) UpdateSysStats(msg SysStatsMsg) {
	s := sysmon.Stats{CPUPercent: msg.CPUPercent, MemPercent: msg.MemPercent}
	m.cpuHistory.Push(s)
	m.memHistory.Push(s)
}

// UpdateResult stores the indicators and analysis of the last evaluation.
func (m *MetricsModel) UpdateResult(ind metrics.Indicators, analysis present.Analysis) {
	m.indicators = &ind
	m.analysis = analysis
}

// Reset clears the evaluation-derived rows. The runtime and system trails
// keep running.
func (m *MetricsModel) Reset() {
	m.indicators = nil
	m.analysis = present.Analysis{}
}

// View stacks the heap line, the usage sparklines, and the two-column
// indicator grid.
func (m MetricsModel) View() string {
	var rows strings.Builder
	rows.WriteString(panelTitleStyle.Render("Metrics"))

	// Compact top line: Heap: X / Y | GC: N (Xms)
	heapStr := metricValueStyle.Render(formatBytes(m.heapAlloc) + " / " + formatBytes(m.heapSys))
	gcPauseStr := metricValueStyle.Render(fmt.Sprintf("%d (%.1fms)", m.numGC, float64(m.pauseTotalNs)/1e6))
	pipe := metricLabelStyle.Render(" | ")
	rows.WriteString("\n")
	rows.WriteString(fmt.Sprintf(" %s %s%s%s %s",
		metricLabelStyle.Render("Heap:"), heapStr,
		pipe,
		metricLabelStyle.Render("GC:"), gcPauseStr))

	rows.WriteString("\n")
	rows.WriteString(m.renderSysLine("CPU", m.cpuHistory.CPU(), cpuSparkStyle))
	rows.WriteString("\n")
	rows.WriteString(m.renderSysLine("MEM", m.memHistory.Mem(), memSparkStyle))

	colWidth := (m.width - 6) / 2

	leftCol := []string{
		formatMetricCol("Goroutines:", fmt.Sprintf("%d", m.numGoroutine), colWidth),
	}
	rightCol := []string{
		formatMetricCol("Objects:", fmt.Sprintf("%d", m.heapObjects), colWidth),
	}

	if m.indicators != nil {
		parity, isFib := "odd", "no"
		if m.indicators.IsEven {
			parity = "even"
		}
		if m.analysis.LastIsFibonacci {
			isFib = "yes"
		}
		leftCol = append(leftCol,
			formatMetricCol("Bits:", fmt.Sprintf("%d", m.indicators.Bits), colWidth),
			formatMetricCol("Parity:", parity, colWidth),
			formatMetricCol("Sum:", format.FormatNumber(m.analysis.Sum), colWidth),
			formatMetricCol("Time:", format.FormatExecutionDuration(m.indicators.Duration), colWidth),
		)
		rightCol = append(rightCol,
			formatMetricCol("Digits:", fmt.Sprintf("%d", m.indicators.Digits), colWidth),
			formatMetricCol("φ error:", metrics.FormatGoldenError(m.indicators.GoldenError), colWidth),
			formatMetricCol("Squares:", fmt.Sprintf("%d", m.indicators.Squares), colWidth),
			formatMetricCol("Fibonacci:", isFib, colWidth),
		)
	}

	for i := range leftCol {
		rows.WriteString("\n" + leftCol[i] + rightCol[i])
	}

	return panelStyle.Width(m.width - 2).Height(m.height - 2).Render(rows.String())
}

// renderSysLine draws one "CPU ▁▂▃ 42.0%" row, trimming the sparkline tail
// to the available width.
func (m MetricsModel) renderSysLine(label string, values []float64, spark lipgloss.Style) string {
	avail := m.width - 16
	if avail < 1 {
		avail = 1
	}
	if len(values) > avail {
		values = values[len(values)-avail:]
	}
	current := 0.0
	if len(values) > 0 {
		current = values[len(values)-1]
	}
	return fmt.Sprintf(" %s %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-4s", label)),
		spark.Render(RenderSparkline(values)),
		metricValueStyle.Render(fmt.Sprintf("%5.1f%%", current)))
}

// formatMetricCol renders one "label value" cell padded to colWidth.
// lipgloss.Width sees through the ANSI codes the styles add.
func formatMetricCol(label, value string, colWidth int) string {
	cell := " " + metricLabelStyle.Render(fmt.Sprintf("%-12s", label)) + " " + metricValueStyle.Render(value)
	if pad := colWidth - lipgloss.Width(cell); pad > 0 {
		cell += strings.Repeat(" ", pad)
	}
	return cell
}

func formatBytes(b uint64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
		gb = 1 << 30
	)
	switch {
	case b >= gb:
		return fmt.Sprintf("%.1f GB", float64(b)/gb)
	case b >= mb:
		return fmt.Sprintf("%.1f MB", float64(b)/mb)
	case b >= kb:
		return fmt.Sprintf("%.1f KB", float64(b)/kb)
	default:
		return fmt.Sprintf("%d B", b)
	}
}
