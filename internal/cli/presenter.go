package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/briandowns/spinner"
	"github.com/rs/zerolog/log"

	"github.com/agbru/fibspiral/internal/config"
	apperrors "github.com/agbru/fibspiral/internal/errors"
	"github.com/agbru/fibspiral/internal/present"
	"github.com/agbru/fibspiral/internal/ui"
	"github.com/agbru/fibspiral/internal/validation"
)

// RunOneShot evaluates cfg.N once and renders the result to out according to
// the output flags. The spinner animates on errOut so stdout stays clean for
// scripts; errors are reported on errOut as well. The return value is the
// process exit code.
func RunOneShot(ctx context.Context, cfg config.AppConfig, out, errOut io.Writer) int {
	sp := newSpinner(spinner.WithWriter(errOut))
	sp.UpdateSuffix(fmt.Sprintf(" evaluating F(%d)...", cfg.N))
	sp.Start()

	start := time.Now()
	res, err := present.Evaluate(ctx, strconv.FormatUint(cfg.N, 10), cfg.MaxBar)
	duration := time.Since(start)

	sp.Stop()

	if err != nil {
		return HandleEvaluationError(err, errOut)
	}

	outputCfg := OutputConfig{
		OutputFile:   cfg.OutputFile,
		Quiet:        cfg.Quiet,
		ShowChart:    cfg.ShowChart,
		ShowSpiral:   cfg.ShowSpiral,
		ShowSequence: cfg.ShowSequence,
	}
	if err := DisplayResultWithConfig(out, res, duration, outputCfg); err != nil {
		log.Error().Err(err).Str("file", cfg.OutputFile).Msg("report write failed")
		fmt.Fprintf(errOut, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// HandleEvaluationError prints err in the appropriate style and returns the
// process exit code for it. Validation failures carry their own phrasing;
// everything else is classified by cause.
func HandleEvaluationError(err error, out io.Writer) int {
	var timeoutErr apperrors.TimeoutError

	switch {
	case err == nil:
		return apperrors.ExitSuccess

	case apperrors.IsValidationError(err):
		fmt.Fprintf(out, "%sInvalid input: %s%s\n", ui.ColorRed(), validation.Describe(err), ui.ColorReset())
		return apperrors.ExitErrorInput

	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sTimeout: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return apperrors.ExitErrorTimeout

	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sCanceled.%s\n", ui.ColorYellow(), ui.ColorReset())
		return apperrors.ExitErrorCanceled

	default:
		fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return apperrors.ExitErrorGeneric
	}
}
