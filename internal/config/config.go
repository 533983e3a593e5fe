// Package config defines the application configuration and its three-layer
// resolution: command-line flags take precedence over FIBSPIRAL_* environment
// variables, which take precedence over built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/fibspiral/internal/errors"
	"github.com/agbru/fibspiral/internal/ui"
	"github.com/agbru/fibspiral/internal/validation"
)

// ─────────────────────────────────────────────────────────────────────────────
// Defaults
// ─────────────────────────────────────────────────────────────────────────────

const (
	// EnvPrefix is prepended to every environment override key.
	EnvPrefix = "FIBSPIRAL_"

	// DefaultMaxBar is the chart width, in cells, used when --max-bar is
	// not given. Fits an 80-column terminal with room for labels.
	DefaultMaxBar = 40

	// DefaultTimeout bounds a one-shot run end to end, including report
	// writing.
	DefaultTimeout = 10 * time.Second

	// DefaultTheme is the golden palette matching the spiral's subject.
	DefaultTheme = "golden"

	// DefaultLogLevel keeps stderr quiet unless something needs attention.
	DefaultLogLevel = "info"
)

// validThemes are the accepted --theme values.
var validThemes = map[string]bool{"golden": true, "light": true, "none": true}

// validLogLevels are the accepted --log-level values (zerolog's level names).
var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true,
	"error": true, "fatal": true, "panic": true, "disabled": true,
}

// AppConfig holds the resolved configuration for one application run.
type AppConfig struct {
	// N is the one-shot index to evaluate; meaningful only when NSet.
	N uint64
	// NSet records whether -n was given at all. Without it (and without
	// --repl or --completion) the application starts the TUI dashboard.
	NSet bool
	// MaxBar is the chart width in cells.
	MaxBar int
	// ShowChart, ShowSpiral and ShowSequence select one-shot panels.
	ShowChart    bool
	ShowSpiral   bool
	ShowSequence bool
	// REPL starts the interactive read-eval-print loop instead of the TUI.
	REPL bool
	// Quiet reduces one-shot output to the bare result line.
	Quiet bool
	// OutputFile, when set, receives a full report of the evaluation.
	OutputFile string
	// Theme names the color scheme: golden, light, or none.
	Theme string
	// NoColor disables all color output regardless of theme.
	NoColor bool
	// LogLevel sets the zerolog level for diagnostic output on stderr.
	LogLevel string
	// MetricsAddr, when set, serves Prometheus metrics on that address.
	MetricsAddr string
	// Timeout bounds non-interactive runs.
	Timeout time.Duration
	// Completion selects a shell to emit a completion script for.
	Completion string
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment overrides for flags that were not set explicitly.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The raw arguments, without the program name.
//   - errWriter: Destination for usage and flag errors.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError for
//     invalid values.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	var cfg AppConfig
	registerFlags(fs, &cfg)
	fs.Usage = func() { printUsage(fs.Output(), programName) }

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q: all options are flags", fs.Arg(0))
	}

	cfg.NSet = flagWasSet(fs, "n")
	applyEnvOverrides(&cfg, fs)

	if err := validateConfig(&cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// registerFlags declares every flag on the flag set, binding aliased short
// and long forms to the same field.
func registerFlags(fs *flag.FlagSet, cfg *AppConfig) {
	fs.Uint64Var(&cfg.N, "n", 0, fmt.Sprintf("evaluate a single index (0..%d) and print the panels", validation.MaxN))
	fs.IntVar(&cfg.MaxBar, "max-bar", DefaultMaxBar, "chart width in cells")

	fs.BoolVar(&cfg.ShowChart, "chart", true, "include the bar chart in one-shot output")
	fs.BoolVar(&cfg.ShowSpiral, "spiral", true, "include the spiral in one-shot output")
	fs.BoolVar(&cfg.ShowSequence, "seq", true, "include the full sequence in one-shot output")

	fs.BoolVar(&cfg.REPL, "repl", false, "start the interactive read-eval-print loop")

	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the result line")
	fs.BoolVar(&cfg.Quiet, "q", false, "print only the result line (shorthand)")

	fs.StringVar(&cfg.OutputFile, "output", "", "write a report file for the evaluation")
	fs.StringVar(&cfg.OutputFile, "o", "", "write a report file (shorthand)")

	fs.StringVar(&cfg.Theme, "theme", DefaultTheme, "color scheme: golden, light, or none")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable all color output")

	fs.StringVar(&cfg.LogLevel, "log-level", DefaultLogLevel, "zerolog level for stderr diagnostics")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (for example 127.0.0.1:9090)")

	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "time limit for non-interactive runs")
	fs.StringVar(&cfg.Completion, "completion", "", "emit a completion script: bash, zsh, fish, or powershell")
}

// validateConfig rejects values the rest of the application cannot work
// with. Range checking of the evaluated index itself is the validator's job,
// so -n values out of range surface as validation errors, not config errors.
func validateConfig(cfg *AppConfig) error {
	if cfg.MaxBar < 1 {
		return apperrors.NewConfigError("--max-bar must be at least 1, got %d", cfg.MaxBar)
	}
	if !validThemes[cfg.Theme] {
		return apperrors.NewConfigError("unknown theme %q: valid themes are golden, light, none", cfg.Theme)
	}
	if !validLogLevels[cfg.LogLevel] {
		return apperrors.NewConfigError("unknown log level %q", cfg.LogLevel)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("--timeout must be positive, got %s", cfg.Timeout)
	}
	return nil
}

// printUsage writes the grouped, colored usage text.
func printUsage(w io.Writer, programName string) {
	t := ui.GetCurrentTheme()

	fmt.Fprintf(w, "%s%s%s — Fibonacci sequence calculator and spiral visualizer\n\n", t.Bold, programName, t.Reset)
	fmt.Fprintf(w, "%sUsage:%s\n", t.Underline, t.Reset)
	fmt.Fprintf(w, "  %s                 start the TUI dashboard\n", programName)
	fmt.Fprintf(w, "  %s [flags]\n\n", programName)

	fmt.Fprintf(w, "%sEvaluation:%s\n", t.Underline, t.Reset)
	fmt.Fprintf(w, "  %s-n%s int            evaluate a single index (0..%d) and exit\n", t.Primary, t.Reset, validation.MaxN)
	fmt.Fprintf(w, "  %s--repl%s           interactive read-eval-print loop\n", t.Primary, t.Reset)
	fmt.Fprintf(w, "  %s--timeout%s dur     time limit for non-interactive runs (default %s)\n\n", t.Primary, t.Reset, DefaultTimeout)

	fmt.Fprintf(w, "%sOutput:%s\n", t.Underline, t.Reset)
	fmt.Fprintf(w, "  %s--chart --spiral --seq%s   panel toggles (default all on)\n", t.Primary, t.Reset)
	fmt.Fprintf(w, "  %s--max-bar%s int     chart width in cells (default %d)\n", t.Primary, t.Reset, DefaultMaxBar)
	fmt.Fprintf(w, "  %s-q, --quiet%s      print only the result line\n", t.Primary, t.Reset)
	fmt.Fprintf(w, "  %s-o, --output%s file write a report file\n\n", t.Primary, t.Reset)

	fmt.Fprintf(w, "%sAppearance:%s\n", t.Underline, t.Reset)
	fmt.Fprintf(w, "  %s--theme%s name      golden, light, or none (default %s)\n", t.Primary, t.Reset, DefaultTheme)
	fmt.Fprintf(w, "  %s--no-color%s       disable all color output (NO_COLOR is honored too)\n\n", t.Primary, t.Reset)

	fmt.Fprintf(w, "%sObservability:%s\n", t.Underline, t.Reset)
	fmt.Fprintf(w, "  %s--log-level%s name  zerolog level for stderr (default %s)\n", t.Primary, t.Reset, DefaultLogLevel)
	fmt.Fprintf(w, "  %s--metrics-addr%s a  serve /metrics and /healthz on this address\n\n", t.Primary, t.Reset)

	fmt.Fprintf(w, "%sMiscellaneous:%s\n", t.Underline, t.Reset)
	fmt.Fprintf(w, "  %s--completion%s sh   emit a completion script (bash, zsh, fish, powershell)\n", t.Primary, t.Reset)
	fmt.Fprintf(w, "  %s-V, --version%s    print version information\n", t.Primary, t.Reset)
	fmt.Fprintf(w, "  %s-h, --help%s       this text\n\n", t.Primary, t.Reset)

	fmt.Fprintf(w, "%sEnvironment:%s\n", t.Underline, t.Reset)
	fmt.Fprintf(w, "  Every flag has a %s%s*%s override, applied when the flag is absent:\n", t.Secondary, EnvPrefix, t.Reset)
	fmt.Fprintf(w, "  N, MAX_BAR, CHART, SPIRAL, SEQ, QUIET, OUTPUT, THEME, NO_COLOR,\n")
	fmt.Fprintf(w, "  LOG_LEVEL, METRICS_ADDR, TIMEOUT\n\n")

	fmt.Fprintf(w, "%sExamples:%s\n", t.Underline, t.Reset)
	fmt.Fprintf(w, "  %s\n", programName)
	fmt.Fprintf(w, "  %s -n 10 --quiet\n", programName)
	fmt.Fprintf(w, "  %s -n 12 -o report.txt --no-color\n", programName)
	fmt.Fprintf(w, "  %s --repl --theme light\n", programName)
}
