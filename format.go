package minitimer

import (
	"fmt"
	"time"
)

// FormatTime renders a duration as a clock string: "HH:MM:SS" when at least
// one full hour has elapsed, "MM:SS" otherwise. Fields are zero-padded to two
// digits and widen naturally past 99 (24 hours renders as "24:00:00").
// Negative durations are treated as zero.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := d.Milliseconds()
	hours := total / 3_600_000
	rem := total % 3_600_000
	minutes := rem / 60_000
	seconds := rem % 60_000 / 1_000

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
