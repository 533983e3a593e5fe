package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders a duration at the precision its size
// warrants: whole microseconds under a millisecond, whole milliseconds under
// a second, and tenth-of-a-second resolution beyond that. Evaluations sit at
// the microsecond end of that range; the coarser scales exist for report
// writing and the dashboard session clock.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d\u00b5s", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.Round(100 * time.Millisecond).String()
	}
}
