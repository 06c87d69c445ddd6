package quota

import (
	"context"
	"testing"

	"github.com/BTStudios/ModTrackGo/pkg/models"
)

func TestEvaluateModeratorCompliant(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	record(t, svc, models.ActionSent, 10, weekStart+100)
	record(t, svc, models.ActionEdited, 5, weekStart+200)
	record(t, svc, models.ActionDeleted, 2, weekStart+300)

	mod, err := svc.Moderator(ctx, testGuild, testMod)
	if err != nil {
		t.Fatalf("Moderator: %v", err)
	}

	result, err := svc.EvaluateModerator(ctx, mod, weekStart, weekStart+604800)
	if err != nil {
		t.Fatalf("EvaluateModerator: %v", err)
	}
	if result.Outcome != OutcomeCompliant {
		t.Errorf("outcome = %q, want %q", result.Outcome, OutcomeCompliant)
	}
	if result.Week != "2024-01" {
		t.Errorf("week = %q, want 2024-01", result.Week)
	}
	if result.Streak != 1 {
		t.Errorf("result streak = %d, want 1", result.Streak)
	}

	mod, _ = svc.Moderator(ctx, testGuild, testMod)
	if mod.ConsecutiveWeeks != 1 {
		t.Errorf("stored streak = %d, want 1", mod.ConsecutiveWeeks)
	}
}

func TestEvaluateModeratorNonCompliantResetsStreak(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	// One sent action short of the quota; editing and deleting are met.
	record(t, svc, models.ActionSent, 9, weekStart+100)
	record(t, svc, models.ActionEdited, 5, weekStart+200)
	record(t, svc, models.ActionDeleted, 2, weekStart+300)

	// Give the moderator an existing streak to lose.
	store.mods[key(testGuild, testMod)].ConsecutiveWeeks = 4

	mod, err := svc.Moderator(ctx, testGuild, testMod)
	if err != nil {
		t.Fatalf("Moderator: %v", err)
	}
	result, err := svc.EvaluateModerator(ctx, mod, weekStart, weekStart+604800)
	if err != nil {
		t.Fatalf("EvaluateModerator: %v", err)
	}
	if result.Outcome != OutcomeNonCompliant {
		t.Errorf("outcome = %q, want %q", result.Outcome, OutcomeNonCompliant)
	}
	if result.Streak != 0 {
		t.Errorf("result streak = %d, want 0", result.Streak)
	}

	mod, _ = svc.Moderator(ctx, testGuild, testMod)
	if mod.ConsecutiveWeeks != 0 {
		t.Errorf("stored streak = %d, want 0", mod.ConsecutiveWeeks)
	}
}

func TestEvaluateModeratorVacationWeekSkipped(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	store.mods[key(testGuild, testMod)].ConsecutiveWeeks = 3
	if err := svc.AddVacationWeek(ctx, testGuild, testMod, "2024-01"); err != nil {
		t.Fatalf("AddVacationWeek: %v", err)
	}

	mod, err := svc.Moderator(ctx, testGuild, testMod)
	if err != nil {
		t.Fatalf("Moderator: %v", err)
	}
	result, err := svc.EvaluateModerator(ctx, mod, weekStart, weekStart+604800)
	if err != nil {
		t.Fatalf("EvaluateModerator: %v", err)
	}
	if result.Outcome != OutcomeVacation {
		t.Errorf("outcome = %q, want %q", result.Outcome, OutcomeVacation)
	}
	if result.Streak != 3 {
		t.Errorf("result streak = %d, want the untouched 3", result.Streak)
	}

	mod, _ = svc.Moderator(ctx, testGuild, testMod)
	if mod.ConsecutiveWeeks != 3 {
		t.Errorf("stored streak = %d, want the untouched 3", mod.ConsecutiveWeeks)
	}
}

func TestVacationWeekCreditsSevenDays(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.AddVacationWeek(ctx, testGuild, testMod, "2024-01"); err != nil {
		t.Fatalf("AddVacationWeek: %v", err)
	}
	mod, err := svc.Moderator(ctx, testGuild, testMod)
	if err != nil {
		t.Fatalf("Moderator: %v", err)
	}
	if mod.VacationDays != 7 {
		t.Errorf("vacation days = %d, want 7", mod.VacationDays)
	}

	if err := svc.RemoveVacationWeek(ctx, testGuild, testMod, "2024-01"); err != nil {
		t.Fatalf("RemoveVacationWeek: %v", err)
	}
	mod, _ = svc.Moderator(ctx, testGuild, testMod)
	if mod.VacationDays != 0 {
		t.Errorf("vacation days after removal = %d, want 0", mod.VacationDays)
	}

	weeks, err := svc.VacationWeeks(ctx, testGuild, testMod)
	if err != nil {
		t.Fatalf("VacationWeeks: %v", err)
	}
	if len(weeks) != 0 {
		t.Errorf("expected no vacation weeks left, got %d", len(weeks))
	}
}

func TestVacationDaysNeverGoNegative(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.AddVacationWeek(ctx, testGuild, testMod, "2024-01"); err != nil {
		t.Fatalf("AddVacationWeek: %v", err)
	}

	// A deregister/re-register cycle zeroes the vacation-days counter but
	// keeps the vacation week row.
	if err := svc.DeregisterModerator(ctx, testGuild, testMod); err != nil {
		t.Fatalf("DeregisterModerator: %v", err)
	}
	if err := svc.RegisterModerator(ctx, testGuild, testMod, models.QuotaSet{Sent: 1}); err != nil {
		t.Fatalf("RegisterModerator: %v", err)
	}
	mod, err := svc.Moderator(ctx, testGuild, testMod)
	if err != nil {
		t.Fatalf("Moderator: %v", err)
	}
	if mod.VacationDays != 0 {
		t.Fatalf("vacation days after re-register = %d, want 0", mod.VacationDays)
	}

	// Removing the surviving week debits the counter, which must clamp
	// at zero rather than go negative.
	if err := svc.RemoveVacationWeek(ctx, testGuild, testMod, "2024-01"); err != nil {
		t.Fatalf("RemoveVacationWeek: %v", err)
	}
	mod, _ = svc.Moderator(ctx, testGuild, testMod)
	if mod.VacationDays != 0 {
		t.Errorf("vacation days after removal = %d, want clamped to 0", mod.VacationDays)
	}
}
