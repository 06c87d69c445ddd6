package quota

import (
	"context"
	"testing"
	"time"

	"github.com/BTStudios/ModTrackGo/pkg/models"
)

type captureNotifier struct {
	calls   int
	last    []EvaluationResult
	guildID string
}

func (c *captureNotifier) QuotaCheckCompleted(settings *models.GuildSettings, results []EvaluationResult) {
	c.calls++
	c.guildID = settings.GuildID
	c.last = results
}

func newTestScheduler(svc *Service, notifiers ...Notifier) *Scheduler {
	sch := NewScheduler(svc, time.Minute, notifiers...)
	return sch
}

func TestTickSkipsGuildBeforeIntervalElapsed(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	store.guilds[testGuild].LastCheck = weekStart

	notifier := &captureNotifier{}
	sch := newTestScheduler(svc, notifier)
	// One second short of the 604800s interval.
	sch.now = func() time.Time { return time.Unix(weekStart+604799, 0) }

	sch.Tick(ctx)

	if notifier.calls != 0 {
		t.Errorf("notifier called %d times, want 0", notifier.calls)
	}
	if got := store.guilds[testGuild].LastCheck; got != weekStart {
		t.Errorf("lastCheck = %d, want untouched %d", got, weekStart)
	}
}

func TestTickSkipsGuildWithoutInterval(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	store.guilds[testGuild].CheckInterval = 0
	store.guilds[testGuild].LastCheck = 0

	notifier := &captureNotifier{}
	sch := newTestScheduler(svc, notifier)
	sch.now = func() time.Time { return time.Unix(weekStart+604800, 0) }

	sch.Tick(ctx)

	if notifier.calls != 0 {
		t.Errorf("notifier called %d times, want 0", notifier.calls)
	}
}

func TestTickRunsDueGuildAndAdvancesLastCheck(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	store.guilds[testGuild].LastCheck = weekStart
	now := weekStart + 604800

	record(t, svc, models.ActionSent, 10, weekStart+100)
	record(t, svc, models.ActionEdited, 5, weekStart+200)
	record(t, svc, models.ActionDeleted, 2, weekStart+300)

	notifier := &captureNotifier{}
	sch := newTestScheduler(svc, notifier)
	sch.now = func() time.Time { return time.Unix(now, 0) }

	sch.Tick(ctx)

	if notifier.calls != 1 {
		t.Fatalf("notifier called %d times, want 1", notifier.calls)
	}
	if notifier.guildID != testGuild {
		t.Errorf("notified guild = %q, want %q", notifier.guildID, testGuild)
	}
	if len(notifier.last) != 1 {
		t.Fatalf("got %d results, want 1", len(notifier.last))
	}
	if notifier.last[0].Outcome != OutcomeCompliant {
		t.Errorf("outcome = %q, want %q", notifier.last[0].Outcome, OutcomeCompliant)
	}
	if got := store.guilds[testGuild].LastCheck; got != now {
		t.Errorf("lastCheck = %d, want advanced to %d", got, now)
	}

	// Immediately re-ticking must not fire the guild again.
	sch.Tick(ctx)
	if notifier.calls != 1 {
		t.Errorf("notifier called %d times after second tick, want still 1", notifier.calls)
	}
}

func TestWeeklyCheckEndToEndNonCompliant(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	// Quota (6,1,0), activity (5,2,1): sent falls short, so the AND of
	// the three comparisons fails despite two surpluses.
	if err := svc.SetModeratorQuotas(ctx, testGuild, testMod, models.QuotaSet{Sent: 6, Edited: 1, Deleted: 0}); err != nil {
		t.Fatalf("SetModeratorQuotas: %v", err)
	}
	store.mods[key(testGuild, testMod)].ConsecutiveWeeks = 2
	store.guilds[testGuild].LastCheck = weekStart

	record(t, svc, models.ActionSent, 5, weekStart+100)
	record(t, svc, models.ActionEdited, 2, weekStart+200)
	record(t, svc, models.ActionDeleted, 1, weekStart+300)

	notifier := &captureNotifier{}
	sch := newTestScheduler(svc, notifier)
	sch.now = func() time.Time { return time.Unix(weekStart+604800, 0) }

	sch.Tick(ctx)

	if len(notifier.last) != 1 {
		t.Fatalf("got %d results, want 1", len(notifier.last))
	}
	result := notifier.last[0]
	if result.Outcome != OutcomeNonCompliant {
		t.Errorf("outcome = %q, want %q", result.Outcome, OutcomeNonCompliant)
	}
	if result.Counts != (ActionCounts{Sent: 5, Edited: 2, Deleted: 1}) {
		t.Errorf("counts = %v, want 5/2/1", result.Counts)
	}
	if result.Streak != 0 {
		t.Errorf("result streak = %d, want 0", result.Streak)
	}
	if got := store.mods[key(testGuild, testMod)].ConsecutiveWeeks; got != 0 {
		t.Errorf("stored streak = %d, want 0", got)
	}
}

func TestRunGuildCheckSkipsDeregisteredModerators(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	if err := svc.DeregisterModerator(ctx, testGuild, testMod); err != nil {
		t.Fatalf("DeregisterModerator: %v", err)
	}
	settings := store.guilds[testGuild]
	settings.LastCheck = weekStart

	results, err := svc.RunGuildCheck(ctx, settings, weekStart+604800)
	if err != nil {
		t.Fatalf("RunGuildCheck: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results for a guild with no active moderators, want 0", len(results))
	}
}

func TestSchedulerStartStop(t *testing.T) {
	svc, _ := newTestService(t)

	sch := NewScheduler(svc, 10*time.Millisecond)
	sch.Start()
	time.Sleep(30 * time.Millisecond)
	sch.Stop()
	// Stop must be idempotent.
	sch.Stop()
}

func TestTickWaitsFullIntervalAfterSetup(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	// Setup seeds the last-check mark, so a tick shortly after must not
	// evaluate anyone over a [0, now] window.
	if got := store.guilds[testGuild].LastCheck; got != weekStart {
		t.Fatalf("lastCheck after setup = %d, want seeded to %d", got, weekStart)
	}

	notifier := &captureNotifier{}
	sch := newTestScheduler(svc, notifier)
	sch.now = func() time.Time { return time.Unix(weekStart+60, 0) }

	sch.Tick(ctx)

	if notifier.calls != 0 {
		t.Errorf("notifier called %d times one minute after setup, want 0", notifier.calls)
	}
	if got := store.guilds[testGuild].LastCheck; got != weekStart {
		t.Errorf("lastCheck = %d, want untouched %d", got, weekStart)
	}

	// One full interval later the guild is due.
	sch.now = func() time.Time { return time.Unix(weekStart+604800, 0) }
	sch.Tick(ctx)
	if notifier.calls != 1 {
		t.Errorf("notifier called %d times after a full interval, want 1", notifier.calls)
	}
}
