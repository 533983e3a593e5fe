package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/fibspiral/internal/cli"
	"github.com/agbru/fibspiral/internal/config"
	apperrors "github.com/agbru/fibspiral/internal/errors"
	"github.com/agbru/fibspiral/internal/logging"
	"github.com/agbru/fibspiral/internal/server"
	"github.com/agbru/fibspiral/internal/tui"
	"github.com/agbru/fibspiral/internal/ui"
)

// Application owns one parsed invocation: its configuration, its logger,
// and the stream errors go to.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	logger    logging.Logger
}

// AppOption adjusts an Application before its configuration is parsed.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application. Tests use this to
// capture lifecycle output.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.logger = l }
}

// New parses args into a runnable Application. Index zero of args is the
// program name, matching the shape of os.Args.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName, cmdArgs := "fibspiral", []string(nil)
	if len(args) > 0 {
		programName, cmdArgs = args[0], args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.logger == nil {
		app.logger = logging.NewLeveledLogger(errWriter, "fibspiral", cfg.LogLevel)
	}
	return app, nil
}

// Run executes the application based on the configured mode: completion
// generation, one-shot evaluation, the REPL, or the TUI dashboard (the
// default). The optional metrics listener runs beside whichever foreground
// mode is active.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	applyLogLevel(a.Config.LogLevel)
	ui.InitTheme(a.Config.NoColor)
	if ui.GetCurrentTheme().Name != "none" {
		ui.SetTheme(a.Config.Theme)
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	switch {
	case a.Config.NSet:
		return a.runOneShot(ctx, out)
	case a.Config.REPL:
		return a.runREPL(ctx, out)
	default:
		return a.runTUI(ctx)
	}
}

// applyLogLevel sets the global zerolog level, falling back to info when the
// configured name does not parse.
func applyLogLevel(level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// runCompletion writes the requested shell completion script to out.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Completion error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runOneShot evaluates -n once under the configured timeout.
func (a *Application) runOneShot(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()

	return a.withMetricsListener(ctx, func(ctx context.Context) int {
		return cli.RunOneShot(ctx, a.Config, out, a.ErrWriter)
	})
}

// runREPL starts the interactive read-eval-print loop.
func (a *Application) runREPL(ctx context.Context, out io.Writer) int {
	return a.withMetricsListener(ctx, func(ctx context.Context) int {
		repl := cli.NewREPL(cli.REPLConfig{
			MaxBar:  a.Config.MaxBar,
			Timeout: a.Config.Timeout,
		})
		repl.SetOutput(out)
		repl.Start(ctx)

		if ctx.Err() != nil {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitSuccess
	})
}

// runTUI launches the dashboard. A failing metrics listener surfaces as a
// footer notice instead of tearing the dashboard down.
func (a *Application) runTUI(ctx context.Context) int {
	if a.Config.MetricsAddr == "" {
		return tui.Run(ctx, a.Config, Version, nil)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	notices := make(chan tui.Notice, 4)

	var g errgroup.Group
	srv := server.New(a.Config.MetricsAddr, a.logger)
	g.Go(func() error {
		if err := srv.Run(ctx); err != nil {
			notices <- tui.Notice{Text: fmt.Sprintf("metrics listener failed: %v", err), IsError: true}
			return err
		}
		return nil
	})

	code := tui.Run(ctx, a.Config, Version, notices)

	cancel()
	if err := g.Wait(); err != nil {
		a.logger.Error("metrics listener failed", err)
	}
	close(notices)
	return code
}

// withMetricsListener runs fn, serving the metrics listener beside it when
// one is configured. The listener drains once fn returns; a listener failure
// turns an otherwise clean exit into a generic error.
func (a *Application) withMetricsListener(ctx context.Context, fn func(context.Context) int) int {
	if a.Config.MetricsAddr == "" {
		return fn(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g errgroup.Group
	srv := server.New(a.Config.MetricsAddr, a.logger)
	g.Go(func() error {
		return srv.Run(ctx)
	})

	code := fn(ctx)

	cancel()
	if err := g.Wait(); err != nil {
		a.logger.Error("metrics listener failed", err)
		if code == apperrors.ExitSuccess {
			code = apperrors.ExitErrorGeneric
		}
	}
	return code
}

// IsHelpError reports whether err came from --help, which the flag package
// surfaces after it has already printed usage.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
