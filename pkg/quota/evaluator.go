package quota

import (
	"context"
	"time"

	"github.com/BTStudios/ModTrackGo/pkg/models"
)

// Outcome is the result of evaluating one moderator for one window.
type Outcome string

const (
	// OutcomeVacation means the week was marked as vacation and the check
	// was skipped entirely; the streak is untouched.
	OutcomeVacation Outcome = "vacation"
	// OutcomeCompliant means every count reached its quota.
	OutcomeCompliant Outcome = "compliant"
	// OutcomeNonCompliant means at least one count fell short.
	OutcomeNonCompliant Outcome = "non-compliant"
)

// EvaluationResult describes what one quota check decided for one moderator.
type EvaluationResult struct {
	GuildID string       `json:"guildId"`
	UserID  string       `json:"userId"`
	Week    string       `json:"week"`
	Outcome Outcome      `json:"outcome"`
	Counts  ActionCounts `json:"counts"`
	Quotas  models.QuotaSet `json:"quotas"`
	Streak  int          `json:"streak"`
}

// EvaluateModerator runs one compliance check for the window [start, end].
// A week marked as vacation is skipped without touching the streak. Otherwise
// the window's counts are compared against the moderator's quotas: meeting
// all three extends the streak by one, missing any resets it to zero.
func (s *Service) EvaluateModerator(ctx context.Context, mod *models.Moderator, start, end int64) (EvaluationResult, error) {
	week := models.WeekOf(time.Unix(start, 0).UTC())
	result := EvaluationResult{
		GuildID: mod.GuildID,
		UserID:  mod.UserID,
		Week:    week,
		Quotas:  mod.Quotas(),
		Streak:  mod.ConsecutiveWeeks,
	}

	onVacation, err := s.store.IsVacationWeek(ctx, mod.GuildID, mod.UserID, week)
	if err != nil {
		return result, err
	}
	if onVacation {
		result.Outcome = OutcomeVacation
		return result, nil
	}

	counts, err := s.CountByType(ctx, mod.GuildID, mod.UserID, start, end)
	if err != nil {
		return result, err
	}
	result.Counts = counts

	if counts.Meets(mod.Quotas()) {
		if err := s.store.IncrementStreak(ctx, mod.GuildID, mod.UserID); err != nil {
			return result, err
		}
		result.Outcome = OutcomeCompliant
		result.Streak = mod.ConsecutiveWeeks + 1
		return result, nil
	}

	if err := s.store.ResetStreak(ctx, mod.GuildID, mod.UserID); err != nil {
		return result, err
	}
	result.Outcome = OutcomeNonCompliant
	result.Streak = 0
	return result, nil
}
