package models

import (
	"testing"
	"time"
)

func TestQuotaSetRoundTrip(t *testing.T) {
	q := QuotaSet{Sent: 10, Edited: 5, Deleted: 2}
	parsed, err := ParseQuotaSet(q.Serialize())
	if err != nil {
		t.Fatalf("ParseQuotaSet: %v", err)
	}
	if parsed != q {
		t.Errorf("round trip = %v, want %v", parsed, q)
	}
}

func TestParseQuotaSetRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "1,2", "a,b,c", "1,2,3,4", "-1,0,0"} {
		if _, err := ParseQuotaSet(s); err == nil {
			t.Errorf("ParseQuotaSet(%q) accepted malformed input", s)
		}
	}
}

func TestParseActionKind(t *testing.T) {
	for _, s := range []string{"sent", "edited", "deleted"} {
		k, err := ParseActionKind(s)
		if err != nil {
			t.Fatalf("ParseActionKind(%q): %v", s, err)
		}
		if string(k) != s {
			t.Errorf("ParseActionKind(%q) = %q", s, k)
		}
	}
	if _, err := ParseActionKind("banned"); err == nil {
		t.Error("ParseActionKind accepted unknown kind")
	}
}

func TestNewActionValidation(t *testing.T) {
	if _, err := NewAction(ActionSent, "g", "c", "m", "msg", 100); err != nil {
		t.Fatalf("valid sent action rejected: %v", err)
	}
	if _, err := NewAction(ActionDeleted, "g", "c", "m", "", 100); err != nil {
		t.Fatalf("valid deleted action rejected: %v", err)
	}
	if _, err := NewAction(ActionSent, "g", "c", "m", "", 100); err == nil {
		t.Error("sent action without message ID accepted")
	}
	if _, err := NewAction(ActionDeleted, "g", "c", "m", "msg", 100); err == nil {
		t.Error("deleted action with message ID accepted")
	}
	if _, err := NewAction(ActionSent, "", "c", "m", "msg", 100); err == nil {
		t.Error("action without guild ID accepted")
	}
	if _, err := NewAction(ActionSent, "g", "c", "m", "msg", 0); err == nil {
		t.Error("action without timestamp accepted")
	}
}

func TestValidWeek(t *testing.T) {
	for _, s := range []string{"2024-01", "2024-53", "1999-09"} {
		if !ValidWeek(s) {
			t.Errorf("ValidWeek(%q) = false", s)
		}
	}
	for _, s := range []string{"", "2024-1", "2024-00", "2024-54", "24-01", "2024_01"} {
		if ValidWeek(s) {
			t.Errorf("ValidWeek(%q) = true", s)
		}
	}
}

func TestWeekOf(t *testing.T) {
	// Monday 2024-01-01 is ISO week 1 of 2024.
	if got := WeekOf(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)); got != "2024-01" {
		t.Errorf("WeekOf(2024-01-01) = %q, want 2024-01", got)
	}
	// Sunday 2023-01-01 still belongs to the last week of 2022.
	if got := WeekOf(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)); got != "2022-52" {
		t.Errorf("WeekOf(2023-01-01) = %q, want 2022-52", got)
	}
}

func TestMondayOfWeek(t *testing.T) {
	m := MondayOfWeek(2024, 1)
	if !m.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("MondayOfWeek(2024, 1) = %v", m)
	}
	if m.Weekday() != time.Monday {
		t.Errorf("MondayOfWeek returned a %v", m.Weekday())
	}
	// Every Monday maps back to its own week label.
	for week := 1; week <= 52; week++ {
		day := MondayOfWeek(2023, week)
		if got := WeekOf(day); got != WeekOf(day.AddDate(0, 0, 6)) {
			t.Errorf("week of %v changed before Sunday", day)
		}
	}
}
