package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibspiral/internal/config"
	apperrors "github.com/agbru/fibspiral/internal/errors"
	"github.com/agbru/fibspiral/internal/format"
	"github.com/agbru/fibspiral/internal/metrics"
	"github.com/agbru/fibspiral/internal/present"
	"github.com/agbru/fibspiral/internal/sysmon"
	"github.com/agbru/fibspiral/internal/validation"
)

// Fixed chrome heights; the body rows split the rest by percentage.
const (
	headerHeight   = 1
	inputHeight    = 3
	footerHeight   = 1
	minBodyHeight  = 8
	topRowPercent  = 60
	leftColPercent = 50
)

// Model glues the dashboard panels to one bubbletea event loop. All panel
// state flows through Update; the panels themselves never talk to each other.
type Model struct {
	header  HeaderModel
	input   InputModel
	chart   ChartModel
	spiral  SpiralModel
	seq     SequenceModel
	metrics MetricsModel
	footer  FooterModel

	keymap KeyMap

	width  int
	height int

	sampler    *metrics.RuntimeSampler
	parentCtx  context.Context
	config     config.AppConfig
	ref        *programRef
	status     string
	generation uint64
	evaluating bool

	showMetrics bool
	showHelp    bool
	exitCode    int
}

// NewModel assembles a blank dashboard.
func NewModel(parentCtx context.Context, cfg config.AppConfig, version string) Model {
	return Model{
		header:      NewHeaderModel(version),
		input:       NewInputModel(),
		chart:       NewChartModel(),
		spiral:      NewSpiralModel(),
		metrics:     NewMetricsModel(),
		keymap:      DefaultKeyMap(),
		sampler:     metrics.NewRuntimeSampler(),
		parentCtx:   parentCtx,
		config:      cfg,
		ref:         &programRef{},
		showMetrics: true,
		exitCode:    apperrors.ExitSuccess,
	}
}

// bodyHeight is the space left for the panel rows after the fixed chrome.
func (m Model) bodyHeight() int {
	return max(minBodyHeight, m.height-headerHeight-inputHeight-footerHeight)
}

func (m Model) topRowHeight() int    { return m.bodyHeight() * topRowPercent / 100 }
func (m Model) bottomRowHeight() int { return m.bodyHeight() - m.topRowHeight() }
func (m Model) leftWidth() int       { return m.width * leftColPercent / 100 }
func (m Model) rightWidth() int      { return m.width - m.leftWidth() }

// Init starts the sampling tick and the context watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), watchContextCmd(m.parentCtx))
}

// Update routes each message to the panel state it concerns.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m, tea.Batch(sampleRuntimeCmd(m.sampler), sampleSysStatsCmd(), tickCmd())

	case RuntimeStatsMsg:
		m.metrics.UpdateRuntimeStats(msg)
		return m, nil

	case SysStatsMsg:
		m.metrics.UpdateSysStats(msg)
		return m, nil

	case EvalMsg:
		if msg.Generation != m.generation {
			return m, nil // stale result from before a reset
		}
		m.applyEvaluation(msg)
		return m, nil

	case NoticeMsg:
		m.footer.SetNotice(msg.Text, msg.IsError)
		return m, nil

	case ContextCancelledMsg:
		m.exitCode = apperrors.ExitErrorCanceled
		return m, tea.Quit
	}

	return m, nil
}

// applyEvaluation feeds one evaluation outcome into every panel.
func (m *Model) applyEvaluation(msg EvalMsg) {
	m.evaluating = false
	if msg.Err != nil {
		m.status = statusErrorStyle.Render("✗ " + validation.Describe(msg.Err))
		return
	}

	res := msg.Result
	last := res.Sequence.Last()
	m.status = statusOKStyle.Render("✓ "+format.Result(last)) +
		dimStyle.Render(" in "+format.FormatExecutionDuration(msg.Duration))

	m.chart.SetSequence(res.Sequence)
	m.spiral.SetResult(res.N, res.Spiral)
	m.seq.SetSequence(res.Sequence)

	squares := 0
	if res.Spiral != nil {
		squares = len(res.Spiral.Squares)
	}
	ind := metrics.NewIndicators(res.N, last.Value, res.Analysis.GoldenRatio, squares, msg.Duration)
	m.metrics.UpdateResult(ind, res.Analysis)
	m.footer.Clear()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keymap.Help), msg.Type == tea.KeyEsc:
			m.showHelp = false
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keymap.Evaluate):
		input := strings.TrimSpace(m.input.Value())
		if input == "" || m.evaluating {
			return m, nil
		}
		m.evaluating = true
		m.status = dimStyle.Render("evaluating…")
		return m, evaluateCmd(m.parentCtx, input, m.config.MaxBar, m.generation)

	case key.Matches(msg, m.keymap.Reset):
		m.reset()
		return m, nil

	case key.Matches(msg, m.keymap.Grid):
		m.spiral.ToggleGrid()
		return m, nil

	case key.Matches(msg, m.keymap.Metrics):
		m.showMetrics = !m.showMetrics
		m.layoutPanels()
		return m, nil

	case key.Matches(msg, m.keymap.Up):
		m.seq.ScrollUp(1)
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		m.seq.ScrollDown(1)
		return m, nil

	case key.Matches(msg, m.keymap.PageUp):
		m.seq.ScrollUp(m.seq.PageSize())
		return m, nil

	case key.Matches(msg, m.keymap.PageDown):
		m.seq.ScrollDown(m.seq.PageSize())
		return m, nil
	}

	m.input.HandleKey(msg)
	return m, nil
}

// reset returns the dashboard to its pre-evaluation state. The generation
// bump discards any evaluation still in flight.
func (m *Model) reset() {
	m.generation++
	m.evaluating = false
	m.status = ""
	m.input.Reset()
	m.chart.Reset()
	m.spiral.Reset()
	m.seq.Reset()
	m.metrics.Reset()
	m.footer.Clear()
	m.header.Reset()
}

// View composes the chrome and the two panel rows top to bottom.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.showHelp {
		return renderHelpOverlay(m.width, m.height)
	}

	header := m.header.View()
	input := m.input.View(m.status)
	footer := m.footer.View()

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, m.chart.View(), m.spiral.View())

	var bottomRow string
	if m.showMetrics {
		bottomRow = lipgloss.JoinHorizontal(lipgloss.Top, m.seq.View(), m.metrics.View())
	} else {
		bottomRow = m.seq.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, input, topRow, bottomRow, footer)
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.input.SetWidth(m.width)
	m.footer.SetWidth(m.width)

	top, bottom := m.topRowHeight(), m.bottomRowHeight()
	m.chart.SetSize(m.leftWidth(), top)
	m.spiral.SetSize(m.rightWidth(), top)
	if m.showMetrics {
		m.seq.SetSize(m.leftWidth(), bottom)
		m.metrics.SetSize(m.rightWidth(), bottom)
	} else {
		m.seq.SetSize(m.width, bottom)
	}
}

// Run drives the dashboard to completion and reports the process exit code.
// The notices channel may be nil; when set, messages sent on it surface in
// the dashboard footer.
func Run(ctx context.Context, cfg config.AppConfig, version string, notices <-chan Notice) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, cfg, version)

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so outside goroutines can
	// Send into the event loop.
	model.ref.SetProgram(p)
	if notices != nil {
		go forwardNotices(model.ref, notices)
	}

	final, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	m, ok := final.(Model)
	if !ok {
		return apperrors.ExitSuccess
	}
	return m.exitCode
}

// evaluateCmd runs one evaluation off the UI goroutine. The command closes
// over plain values only; all model state stays on the update goroutine and
// changes when the EvalMsg comes back.
func evaluateCmd(ctx context.Context, input string, maxBar int, gen uint64) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		res, err := present.Evaluate(ctx, input, maxBar)
		return EvalMsg{
			Result:     res,
			Err:        err,
			Duration:   time.Since(start),
			Generation: gen,
		}
	}
}

// samplePeriod is how often the runtime and system gauges refresh.
const samplePeriod = 500 * time.Millisecond

// tickCmd schedules the next sampling tick.
func tickCmd() tea.Cmd {
	return tea.Tick(samplePeriod, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// sampleRuntimeCmd reads the Go runtime counters off the UI goroutine.
func sampleRuntimeCmd(sampler *metrics.RuntimeSampler) tea.Cmd {
	return func() tea.Msg {
		return RuntimeStatsMsg(sampler.Sample())
	}
}

// sampleSysStatsCmd reads system-wide CPU and memory usage.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		stats := sysmon.Sample()
		return SysStatsMsg{CPUPercent: stats.CPUPercent, MemPercent: stats.MemPercent}
	}
}

// watchContextCmd turns cancellation of ctx into a quit message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
