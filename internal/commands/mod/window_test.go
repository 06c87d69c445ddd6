package mod

import (
	"testing"
	"time"
)

func TestDaysWindow(t *testing.T) {
	now := time.Unix(1704067200, 0) // 2024-01-01 00:00:00 UTC

	start, end := daysWindow(7, now)
	if end != 1704067200 {
		t.Errorf("end = %d, want %d", end, 1704067200)
	}
	if want := int64(1704067200 - 7*86400); start != want {
		t.Errorf("start = %d, want %d", start, want)
	}

	start, end = daysWindow(1, now)
	if end-start != 86400 {
		t.Errorf("1-day window spans %d seconds, want 86400", end-start)
	}
}
