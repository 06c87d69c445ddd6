package mod

import "time"

// daysWindow returns the inclusive [start, end] unix-second window covering
// the last days*24h ending at now. Callers validate days before calling.
func daysWindow(days int, now time.Time) (start, end int64) {
	end = now.Unix()
	start = now.Add(-time.Duration(days) * 24 * time.Hour).Unix()
	return start, end
}
