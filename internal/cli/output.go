package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/agbru/fibspiral/internal/errors"
	"github.com/agbru/fibspiral/internal/format"
	"github.com/agbru/fibspiral/internal/metrics"
	"github.com/agbru/fibspiral/internal/present"
	"github.com/agbru/fibspiral/internal/spiral"
	"github.com/agbru/fibspiral/internal/ui"
)

// OutputConfig selects which parts of an evaluation reach the terminal and
// whether a report file is written. Display* functions render to an
// [io.Writer]; Format* functions return strings without I/O;
// [WriteResultToFile] touches the filesystem.
type OutputConfig struct {
	// OutputFile is the path to save the report (empty for no file output).
	OutputFile string
	// Quiet mode reduces output to the bare result line.
	Quiet bool
	// ShowChart includes the bar chart panel.
	ShowChart bool
	// ShowSpiral includes the spiral panel.
	ShowSpiral bool
	// ShowSequence includes the full sequence panel.
	ShowSequence bool
}

// DisplayResultLine writes the headline "F(n) = value" with the evaluation
// duration.
func DisplayResultLine(out io.Writer, res present.Result, duration time.Duration) {
	fmt.Fprintf(out, "%s%s%s%s  %s(%s)%s\n",
		ui.ColorBold(), ui.ColorGreen(), format.Result(res.Sequence.Last()), ui.ColorReset(),
		ui.ColorCyan(), format.FormatExecutionDuration(duration), ui.ColorReset())
}

// DisplayChart writes the bar chart panel: one row per term, the bar scaled
// against the widest row.
func DisplayChart(out io.Writer, res present.Result) {
	fmt.Fprintf(out, "\n%sChart%s\n", ui.ColorBold(), ui.ColorReset())

	width := res.Bars.MaxScaled()
	for _, b := range res.Bars {
		label := fmt.Sprintf("F(%d)", b.Index)
		fmt.Fprintf(out, "  %-7s %s%s%s %s\n",
			label,
			ui.ColorYellow(), format.Bar(b.Scaled, width), ui.ColorReset(),
			format.FormatNumber(b.Raw))
	}
}

// DisplaySpiral writes the spiral panel: the per-n description, and when a
// layout exists, the tiled square sides and the bounding box.
func DisplaySpiral(out io.Writer, res present.Result) {
	fmt.Fprintf(out, "\n%sSpiral%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  %s\n", spiral.Describe(res.N))

	if res.Spiral == nil {
		return
	}
	sides := make([]string, len(res.Spiral.Squares))
	for i, sq := range res.Spiral.Squares {
		sides[i] = fmt.Sprintf("%.0f", sq.Size)
	}
	b := res.Spiral.Bounds
	fmt.Fprintf(out, "  squares: %s%s%s\n", ui.ColorCyan(), strings.Join(sides, ", "), ui.ColorReset())
	fmt.Fprintf(out, "  bounds:  %s%.0f x %.0f%s\n", ui.ColorCyan(), b.Width(), b.Height(), ui.ColorReset())
}

// DisplaySequence writes the full sequence panel as one comma-separated line.
func DisplaySequence(out io.Writer, res present.Result) {
	fmt.Fprintf(out, "\n%sSequence%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  %s\n", format.Sequence(res.Sequence))
}

// DisplayAnalysis writes the derived quantities: the golden ratio
// approximation with its error, the term sum, and the closure check on the
// last value.
func DisplayAnalysis(out io.Writer, res present.Result) {
	fmt.Fprintf(out, "\n%sAnalysis%s\n", ui.ColorBold(), ui.ColorReset())

	if res.Analysis.GoldenRatio > 0 {
		errPhi := math.Abs(res.Analysis.GoldenRatio - math.Phi)
		fmt.Fprintf(out, "  F(n)/F(n-1):  %s%.6f%s  (phi error %s)\n",
			ui.ColorCyan(), res.Analysis.GoldenRatio, ui.ColorReset(),
			metrics.FormatGoldenError(errPhi))
	} else {
		fmt.Fprintf(out, "  F(n)/F(n-1):  n/a (needs two nonzero terms)\n")
	}
	fmt.Fprintf(out, "  sum of terms: %s%s%s\n",
		ui.ColorCyan(), format.FormatNumber(res.Analysis.Sum), ui.ColorReset())

	isFib := "no"
	if res.Analysis.LastIsFibonacci {
		isFib = "yes"
	}
	fmt.Fprintf(out, "  last value is Fibonacci: %s%s%s\n", ui.ColorGreen(), isFib, ui.ColorReset())
}

// FormatQuietResult reduces an evaluation to its single "F(n) = value" line,
// the shape scripts want to capture.
func FormatQuietResult(res present.Result) string {
	return format.Result(res.Sequence.Last())
}

// DisplayQuietResult writes the quiet-mode line and nothing else.
func DisplayQuietResult(out io.Writer, res present.Result) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// DisplayResult writes the full one-shot output: the result line followed by
// the panels selected in config.
func DisplayResult(out io.Writer, res present.Result, duration time.Duration, config OutputConfig) {
	DisplayResultLine(out, res, duration)
	if config.ShowChart {
		DisplayChart(out, res)
	}
	if config.ShowSpiral {
		DisplaySpiral(out, res)
	}
	if config.ShowSequence {
		DisplaySequence(out, res)
	}
	DisplayAnalysis(out, res)
}

// WriteResultToFile saves the evaluation report to config.OutputFile. An
// empty path is a no-op; missing parent directories are created.
func WriteResultToFile(res present.Result, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	if dir := filepath.Dir(config.OutputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.WrapError(err, "create report directory")
		}
	}
	file, err := os.Create(config.OutputFile)
	if err != nil {
		return apperrors.WrapError(err, "create report file")
	}
	defer file.Close()

	return writeReport(file, res, duration)
}

// writeReport renders the plain-text report: a commented header carrying the
// size indicators, the result with the full sequence under it, then the
// analysis lines.
func writeReport(w io.Writer, res present.Result, duration time.Duration) error {
	last := res.Sequence.Last()
	squares := 0
	if res.Spiral != nil {
		squares = len(res.Spiral.Squares)
	}
	ind := metrics.NewIndicators(res.N, last.Value, res.Analysis.GoldenRatio, squares, duration)

	var b strings.Builder
	fmt.Fprintf(&b, "# Fibonacci Evaluation Report\n")
	fmt.Fprintf(&b, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "# N: %d\n", ind.N)
	fmt.Fprintf(&b, "# Bits: %d\n", ind.Bits)
	fmt.Fprintf(&b, "# Digits: %d\n", ind.Digits)
	fmt.Fprintf(&b, "# Duration: %s\n\n", format.FormatExecutionDuration(duration))

	fmt.Fprintf(&b, "%s\n\n", format.Result(last))
	for _, t := range res.Sequence {
		fmt.Fprintf(&b, "%s\n", format.Result(t))
	}
	b.WriteString("\n")

	if res.Analysis.GoldenRatio > 0 {
		fmt.Fprintf(&b, "golden ratio approximation: %.6f\n", res.Analysis.GoldenRatio)
	}
	fmt.Fprintf(&b, "sum of terms: %d\n", res.Analysis.Sum)
	fmt.Fprintf(&b, "last value is Fibonacci: %t\n", res.Analysis.LastIsFibonacci)
	if res.Spiral != nil {
		fmt.Fprintf(&b, "spiral squares: %d\n", squares)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// DisplayResultWithConfig runs the whole output pipeline for one evaluation:
// quiet or full rendering to out, then the optional report file with a
// confirmation line.
func DisplayResultWithConfig(out io.Writer, res present.Result, duration time.Duration, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, res)
	} else {
		DisplayResult(out, res, duration, config)
	}

	if config.OutputFile == "" {
		return nil
	}
	if err := WriteResultToFile(res, duration, config); err != nil {
		return err
	}
	if !config.Quiet {
		fmt.Fprintf(out, "\n%s✓ Report saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
	}
	return nil
}
