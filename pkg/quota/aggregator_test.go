package quota

import (
	"context"
	"testing"

	"github.com/BTStudios/ModTrackGo/pkg/models"
)

// record writes a batch of actions of one kind inside the test window.
func record(t *testing.T, svc *Service, kind models.ActionKind, n int, base int64) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		ev := ActionEvent{
			Kind:      kind,
			GuildID:   testGuild,
			ChannelID: "chan-1",
			ActorID:   testMod,
			Timestamp: base + int64(i),
		}
		if kind != models.ActionDeleted {
			ev.MessageID = "msg"
		}
		recorded, err := svc.Record(ctx, ev)
		if err != nil {
			t.Fatalf("Record(%s #%d): %v", kind, i, err)
		}
		if !recorded {
			t.Fatalf("Record(%s #%d): not recorded", kind, i)
		}
	}
}

func TestCountByType(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	record(t, svc, models.ActionSent, 4, weekStart+100)
	record(t, svc, models.ActionEdited, 2, weekStart+200)
	record(t, svc, models.ActionDeleted, 1, weekStart+300)

	counts, err := svc.CountByType(ctx, testGuild, testMod, weekStart, weekStart+604800)
	if err != nil {
		t.Fatalf("CountByType: %v", err)
	}
	want := ActionCounts{Sent: 4, Edited: 2, Deleted: 1}
	if counts != want {
		t.Errorf("counts = %v, want %v", counts, want)
	}
}

func TestCountByTypeWindowBoundsInclusive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// One action exactly on each bound, one outside each.
	for _, ts := range []int64{weekStart - 1, weekStart, weekStart + 100, weekStart + 101} {
		record(t, svc, models.ActionSent, 1, ts)
	}

	counts, err := svc.CountByType(ctx, testGuild, testMod, weekStart, weekStart+100)
	if err != nil {
		t.Fatalf("CountByType: %v", err)
	}
	if counts.Sent != 2 {
		t.Errorf("Sent = %d, want 2 (both bounds inclusive)", counts.Sent)
	}
}

func TestCountByTypeNeverActiveModeratorIsZero(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	counts, err := svc.CountByType(ctx, testGuild, "never-seen", weekStart, weekStart+604800)
	if err != nil {
		t.Fatalf("CountByType: %v", err)
	}
	if counts != (ActionCounts{}) {
		t.Errorf("counts = %v, want all zero", counts)
	}
}

func TestMeets(t *testing.T) {
	quotas := models.QuotaSet{Sent: 10, Edited: 5, Deleted: 2}

	cases := []struct {
		counts ActionCounts
		want   bool
	}{
		{ActionCounts{10, 5, 2}, true},
		{ActionCounts{11, 6, 3}, true},
		{ActionCounts{9, 5, 2}, false},
		{ActionCounts{10, 4, 2}, false},
		{ActionCounts{10, 5, 1}, false},
		{ActionCounts{}, false},
	}
	for _, tc := range cases {
		if got := tc.counts.Meets(quotas); got != tc.want {
			t.Errorf("Meets(%v, %v) = %v, want %v", tc.counts, quotas, got, tc.want)
		}
	}

	if !(ActionCounts{}).Meets(models.QuotaSet{}) {
		t.Error("zero counts must satisfy zero quotas")
	}
}
