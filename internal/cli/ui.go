//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerInterval is the refresh cadence of the evaluation spinner.
// Evaluations finish in microseconds, so the spinner matters only when the
// run also writes a report file to slow media.
const SpinnerInterval = 120 * time.Millisecond

// Spinner is the control surface the one-shot presenter needs from a
// terminal spinner. Keeping it an interface puts the briandowns/spinner
// dependency behind a single seam and lets tests substitute a mock.
type Spinner interface {
	// Start begins the animation.
	Start()
	// Stop halts the animation and clears the line.
	Stop()
	// UpdateSuffix replaces the text displayed after the spinner glyph.
	UpdateSuffix(suffix string)
}

// spinnerAdapter implements Spinner on top of the briandowns spinner, in the
// same shape as logging.ZerologAdapter wraps zerolog.
type spinnerAdapter struct {
	s *spinner.Spinner
}

func (a *spinnerAdapter) Start() { a.s.Start() }

func (a *spinnerAdapter) Stop() { a.s.Stop() }

func (a *spinnerAdapter) UpdateSuffix(suffix string) {
	a.s.Suffix = suffix
}

// newSpinner builds the production spinner. Tests swap this variable for a
// constructor returning a mock.
var newSpinner = func(options ...spinner.Option) Spinner {
	return &spinnerAdapter{s: spinner.New(spinner.CharSets[11], SpinnerInterval, options...)}
}
