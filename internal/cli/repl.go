// Package cli provides the one-shot presenter, the REPL, and shell
// completion generation for the terminal surfaces.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/agbru/fibspiral/internal/format"
	"github.com/agbru/fibspiral/internal/present"
	"github.com/agbru/fibspiral/internal/sysmon"
	"github.com/agbru/fibspiral/internal/ui"
	"github.com/agbru/fibspiral/internal/validation"
)

// REPLConfig carries the settings every evaluation in a session shares.
type REPLConfig struct {
	// MaxBar is the chart width in cells.
	MaxBar int
	// Timeout is the maximum duration for each evaluation.
	Timeout time.Duration
}

// REPL represents an interactive Fibonacci session. Results live in a
// present.Session, so a failed evaluation keeps the previous panels
// available to the inspection commands.
type REPL struct {
	config  REPLConfig
	session *present.Session
	in      io.Reader
	out     io.Writer
}

// NewREPL builds a REPL bound to stdin and stdout with a fresh session.
func NewREPL(config REPLConfig) *REPL {
	return &REPL{
		config:  config,
		session: present.NewSession(config.MaxBar),
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

// SetInput replaces the command source. Tests feed scripted sessions
// through here.
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput replaces the render target.
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start runs the prompt loop. It returns when the user exits, input is
// exhausted, or ctx is canceled.
func (r *REPL) Start(ctx context.Context) {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	lines := bufio.NewScanner(r.in)
	for {
		if ctx.Err() != nil {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}

		fmt.Fprint(r.out, ui.ColorGreen()+"fib> "+ui.ColorReset())
		if !lines.Scan() {
			if err := lines.Err(); err != nil {
				fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			}
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}

		input := strings.TrimSpace(lines.Text())
		if input == "" {
			continue
		}
		if !r.processCommand(ctx, input) {
			return
		}
	}
}

// printBanner draws the welcome frame.
func (r *REPL) printBanner() {
	bar := strings.Repeat("═", 58)
	fmt.Fprintf(r.out, "\n%s╔%s╗%s\n", ui.ColorCyan(), bar, ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s🌀 Fibonacci Spiral - Interactive Mode%s                %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚%s╝%s\n\n", ui.ColorCyan(), bar, ui.ColorReset())
}

// printHelp lists the commands, the evaluate shorthand first since it is the
// main interaction.
func (r *REPL) printHelp() {
	rows := []struct {
		name string
		desc string
	}{
		{"<n>", "evaluate F(n), e.g. 10"},
		{"chart", "bar chart of the last result"},
		{"spiral", "spiral panel of the last result"},
		{"seq", "full sequence of the last result"},
		{"math", "analysis of the last result"},
		{"reset", "clear the session"},
		{"status", "session and system status"},
		{"help", "this list"},
		{"exit, quit", "leave interactive mode"},
	}

	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, row := range rows {
		fmt.Fprintf(r.out, "  %s%-12s%s %s\n", ui.ColorYellow(), row.name, ui.ColorReset(), row.desc)
	}
}

// processCommand dispatches one line of input. A false return ends the loop.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	switch cmd := strings.ToLower(parts[0]); cmd {
	case "chart", "c":
		r.showPanel(DisplayChart)
	case "spiral", "sp":
		r.showPanel(DisplaySpiral)
	case "seq", "s":
		r.showPanel(DisplaySequence)
	case "math", "m":
		r.showPanel(DisplayAnalysis)
	case "reset":
		r.cmdReset()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintln(r.out, ui.ColorGreen()+"Goodbye!"+ui.ColorReset())
		return false
	default:
		// A bare number is shorthand for evaluate. Anything that reads as
		// an attempted number, signs and decimals included, goes through
		// the validator so the rejection gets the typed message instead of
		// an unknown-command hint.
		if !looksLikeIndex(cmd) {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
			return true
		}
		r.evaluate(ctx, cmd)
	}
	return true
}

// looksLikeIndex reports whether s starts like a number: a digit, a sign,
// or a decimal point.
func looksLikeIndex(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}

// evaluate runs the pipeline for one input and prints the headline. A failed
// evaluation leaves the previous session result untouched.
func (r *REPL) evaluate(ctx context.Context, input string) {
	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	start := time.Now()
	res, err := r.session.Submit(ctx, input)
	duration := time.Since(start)

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %s%s\n", ui.ColorRed(), validation.Describe(err), ui.ColorReset())
		if _, ok := r.session.Last(); ok {
			fmt.Fprintf(r.out, "The previous result is kept; %sstatus%s shows it.\n", ui.ColorYellow(), ui.ColorReset())
		}
		return
	}

	DisplayResultLine(r.out, res, duration)
	fmt.Fprintf(r.out, "Type %schart%s, %sspiral%s, %sseq%s or %smath%s to inspect.\n",
		ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset(),
		ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// showPanel renders one panel of the last result, or hints when the session
// is empty.
func (r *REPL) showPanel(render func(io.Writer, present.Result)) {
	res, ok := r.session.Last()
	if !ok {
		fmt.Fprintf(r.out, "%sNo result yet.%s Type a number first, e.g. %s10%s.\n",
			ui.ColorYellow(), ui.ColorReset(), ui.ColorMagenta(), ui.ColorReset())
		return
	}
	render(r.out, res)
	fmt.Fprintln(r.out)
}

// cmdReset clears the session.
func (r *REPL) cmdReset() {
	r.session.Reset()
	fmt.Fprintf(r.out, "Session cleared.\n")
}

// cmdStatus displays the current configuration, system load, and the last
// result.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Chart width: %s%d%s cells\n", ui.ColorCyan(), r.config.MaxBar, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:     %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintf(r.out, "  Environment: %s%d%s logical processors, Go %s%s%s\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset())

	stats := sysmon.Sample()
	fmt.Fprintf(r.out, "  System:      CPU %s%.1f%%%s, memory %s%.1f%%%s\n",
		ui.ColorCyan(), stats.CPUPercent, ui.ColorReset(),
		ui.ColorCyan(), stats.MemPercent, ui.ColorReset())

	if res, ok := r.session.Last(); ok {
		fmt.Fprintf(r.out, "  Last result: %s%s%s\n", ui.ColorGreen(), format.Result(res.Sequence.Last()), ui.ColorReset())
	} else {
		fmt.Fprintf(r.out, "  Last result: none\n")
	}
	fmt.Fprintln(r.out)
}
