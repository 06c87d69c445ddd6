package quota

import (
	"context"
	"testing"
	"time"

	"github.com/BTStudios/ModTrackGo/pkg/models"
)

const (
	testGuild = "guild-1"
	testMod   = "mod-1"
	// Monday 2024-01-01 00:00:00 UTC, start of ISO week 2024-01.
	weekStart int64 = 1704067200
)

func newTestService(t *testing.T) (*Service, *memStore) {
	t.Helper()
	store := newMemStore()
	svc := NewService(store)
	svc.now = func() time.Time { return time.Unix(weekStart, 0) }
	if err := svc.ConfigureGuild(context.Background(), &models.GuildSettings{
		GuildID:       testGuild,
		ModCategoryID: "cat-exempt",
		CheckInterval: 604800,
		DefaultQuotas: "10,5,2",
	}); err != nil {
		t.Fatalf("ConfigureGuild: %v", err)
	}
	if err := svc.RegisterModerator(context.Background(), testGuild, testMod, models.QuotaSet{Sent: 10, Edited: 5, Deleted: 2}); err != nil {
		t.Fatalf("RegisterModerator: %v", err)
	}
	return svc, store
}

func sentEvent(ts int64) ActionEvent {
	return ActionEvent{
		Kind:      models.ActionSent,
		GuildID:   testGuild,
		ChannelID: "chan-1",
		MessageID: "msg-1",
		ActorID:   testMod,
		Timestamp: ts,
	}
}

func TestRecordHappyPath(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	recorded, err := svc.Record(ctx, sentEvent(weekStart+10))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !recorded {
		t.Fatal("expected the action to be recorded")
	}
	if len(store.actions) != 1 {
		t.Fatalf("expected 1 stored action, got %d", len(store.actions))
	}
	if store.actions[0].Kind != models.ActionSent {
		t.Errorf("stored kind = %q, want %q", store.actions[0].Kind, models.ActionSent)
	}
}

func TestRecordUnconfiguredGuildIsNoOp(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	ev := sentEvent(weekStart + 10)
	ev.GuildID = "guild-without-setup"
	recorded, err := svc.Record(ctx, ev)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if recorded {
		t.Error("event for an unconfigured guild must not be recorded")
	}
	if len(store.actions) != 0 {
		t.Errorf("expected no stored actions, got %d", len(store.actions))
	}
}

func TestRecordExemptCategoryIsNoOp(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	ev := sentEvent(weekStart + 10)
	ev.CategoryID = "cat-exempt"
	for i := 0; i < 3; i++ {
		recorded, err := svc.Record(ctx, ev)
		if err != nil {
			t.Fatalf("Record #%d: %v", i, err)
		}
		if recorded {
			t.Fatalf("Record #%d: exempt-category event must not be recorded", i)
		}
	}
	if len(store.actions) != 0 {
		t.Errorf("expected no stored actions, got %d", len(store.actions))
	}

	counts, err := svc.CountByType(ctx, testGuild, testMod, weekStart, weekStart+604800)
	if err != nil {
		t.Fatalf("CountByType: %v", err)
	}
	if counts != (ActionCounts{}) {
		t.Errorf("counts = %v, want all zero", counts)
	}
}

func TestRecordUnknownActorIsNoOp(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	ev := sentEvent(weekStart + 10)
	ev.ActorID = "someone-else"
	recorded, err := svc.Record(ctx, ev)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if recorded || len(store.actions) != 0 {
		t.Error("event from an unregistered user must not be recorded")
	}
}

func TestRecordInactiveActorIsNoOp(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	if err := svc.DeregisterModerator(ctx, testGuild, testMod); err != nil {
		t.Fatalf("DeregisterModerator: %v", err)
	}
	recorded, err := svc.Record(ctx, sentEvent(weekStart+10))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if recorded || len(store.actions) != 0 {
		t.Error("event from a deregistered moderator must not be recorded")
	}
}

func TestRecordRejectsMalformedEvent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ev := sentEvent(weekStart + 10)
	ev.Kind = models.ActionDeleted // deleted events must not carry a message id
	if _, err := svc.Record(ctx, ev); err == nil {
		t.Error("expected an error for a deleted event carrying a message id")
	}

	ev = sentEvent(weekStart + 10)
	ev.MessageID = ""
	if _, err := svc.Record(ctx, ev); err == nil {
		t.Error("expected an error for a sent event without a message id")
	}
}
