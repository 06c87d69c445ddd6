// Package quota implements the moderator activity tracking engine: recording
// actions, aggregating them over time windows, evaluating weekly quota
// compliance and driving the recurring per-guild checks.
package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/models"
)

// Store is the persistence surface the engine runs against. It is satisfied
// by *database.Stores; tests substitute an in-memory implementation.
type Store interface {
	Guild(ctx context.Context, guildID string) (*models.GuildSettings, error)
	AllGuilds(ctx context.Context) ([]*models.GuildSettings, error)
	AddGuild(ctx context.Context, settings *models.GuildSettings) error
	SetGuildLastCheck(ctx context.Context, guildID string, timestamp int64) error
	SetGuildModCategory(ctx context.Context, guildID, categoryID string) error
	SetGuildCheckInterval(ctx context.Context, guildID string, seconds int64) error
	SetGuildDefaultQuotas(ctx context.Context, guildID string, quotas models.QuotaSet) error

	Moderator(ctx context.Context, guildID, userID string) (*models.Moderator, error)
	ActiveModerators(ctx context.Context, guildID string) ([]*models.Moderator, error)
	RegisterModerator(ctx context.Context, guildID, userID string, quotas models.QuotaSet) error
	DeregisterModerator(ctx context.Context, guildID, userID string) error
	SetModeratorQuotas(ctx context.Context, guildID, userID string, quotas models.QuotaSet) error
	IncrementStreak(ctx context.Context, guildID, userID string) error
	ResetStreak(ctx context.Context, guildID, userID string) error
	AddVacationDays(ctx context.Context, guildID, userID string, days int) error

	InsertAction(ctx context.Context, action *models.Action) error
	CountActions(ctx context.Context, guildID, userID string, kind models.ActionKind, start, end int64) (int64, error)

	AddVacationWeek(ctx context.Context, guildID, userID, week string) error
	RemoveVacationWeek(ctx context.Context, guildID, userID, week string) error
	IsVacationWeek(ctx context.Context, guildID, userID, week string) (bool, error)
	VacationWeeks(ctx context.Context, guildID, userID string) ([]*models.VacationWeek, error)
}

// Service is the single long-lived owner of all quota state. It is
// constructed once at startup and handed explicitly to the scheduler, the
// event handlers and the command handlers.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates the quota service on top of a store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// ConfigureGuild creates the settings row for a guild during initial setup.
// The last-check mark is seeded to the setup time so the first quota check
// happens one full interval later, not on the next scheduler tick.
func (s *Service) ConfigureGuild(ctx context.Context, settings *models.GuildSettings) error {
	if settings.CheckInterval <= 0 {
		return fmt.Errorf("check interval must be positive, got %d", settings.CheckInterval)
	}
	if settings.DefaultQuotas == "" {
		settings.DefaultQuotas = models.QuotaSet{}.Serialize()
	}
	if _, err := settings.DefaultQuotaSet(); err != nil {
		return err
	}
	if settings.LastCheck == 0 {
		settings.LastCheck = s.now().Unix()
	}
	return s.store.AddGuild(ctx, settings)
}

// GuildSettings returns a guild's configuration, or database.ErrNotFound for
// a guild that never completed setup.
func (s *Service) GuildSettings(ctx context.Context, guildID string) (*models.GuildSettings, error) {
	return s.store.Guild(ctx, guildID)
}

// SetModCategory updates the exempt moderator category for a guild.
func (s *Service) SetModCategory(ctx context.Context, guildID, categoryID string) error {
	return s.store.SetGuildModCategory(ctx, guildID, categoryID)
}

// SetCheckInterval updates the seconds between quota checks for a guild.
func (s *Service) SetCheckInterval(ctx context.Context, guildID string, seconds int64) error {
	if seconds <= 0 {
		return fmt.Errorf("check interval must be positive, got %d", seconds)
	}
	return s.store.SetGuildCheckInterval(ctx, guildID, seconds)
}

// SetDefaultQuotas updates the quota triple seeded into newly registered
// moderators. Quotas of existing moderators are not touched.
func (s *Service) SetDefaultQuotas(ctx context.Context, guildID string, quotas models.QuotaSet) error {
	return s.store.SetGuildDefaultQuotas(ctx, guildID, quotas)
}

// RegisterModerator starts tracking a user with the given weekly quotas.
// Registering a currently active moderator fails with
// database.ErrAlreadyRegistered; a previously deregistered row is reactivated
// in place.
func (s *Service) RegisterModerator(ctx context.Context, guildID, userID string, quotas models.QuotaSet) error {
	return s.store.RegisterModerator(ctx, guildID, userID, quotas)
}

// RegisterModeratorWithDefaults registers a user with the guild's default
// quota triple.
func (s *Service) RegisterModeratorWithDefaults(ctx context.Context, guildID, userID string) error {
	settings, err := s.store.Guild(ctx, guildID)
	if err != nil {
		return err
	}
	quotas, err := settings.DefaultQuotaSet()
	if err != nil {
		return err
	}
	return s.store.RegisterModerator(ctx, guildID, userID, quotas)
}

// DeregisterModerator stops tracking a user. The row is kept for history.
func (s *Service) DeregisterModerator(ctx context.Context, guildID, userID string) error {
	return s.store.DeregisterModerator(ctx, guildID, userID)
}

// Moderator returns one moderator row, or database.ErrNotFound.
func (s *Service) Moderator(ctx context.Context, guildID, userID string) (*models.Moderator, error) {
	return s.store.Moderator(ctx, guildID, userID)
}

// ActiveModerators returns the active moderators of a guild.
func (s *Service) ActiveModerators(ctx context.Context, guildID string) ([]*models.Moderator, error) {
	return s.store.ActiveModerators(ctx, guildID)
}

// SetModeratorQuotas updates the weekly quotas of one moderator.
func (s *Service) SetModeratorQuotas(ctx context.Context, guildID, userID string, quotas models.QuotaSet) error {
	return s.store.SetModeratorQuotas(ctx, guildID, userID, quotas)
}

// AddVacationWeek exempts a moderator from evaluation for one ISO week and
// credits seven days to their lifetime vacation counter.
func (s *Service) AddVacationWeek(ctx context.Context, guildID, userID, week string) error {
	if err := s.store.AddVacationWeek(ctx, guildID, userID, week); err != nil {
		return err
	}
	return s.store.AddVacationDays(ctx, guildID, userID, 7)
}

// RemoveVacationWeek unmarks a vacation week and takes the seven days back.
func (s *Service) RemoveVacationWeek(ctx context.Context, guildID, userID, week string) error {
	if err := s.store.RemoveVacationWeek(ctx, guildID, userID, week); err != nil {
		return err
	}
	return s.store.AddVacationDays(ctx, guildID, userID, -7)
}

// VacationWeeks lists a moderator's vacation weeks.
func (s *Service) VacationWeeks(ctx context.Context, guildID, userID string) ([]*models.VacationWeek, error) {
	return s.store.VacationWeeks(ctx, guildID, userID)
}

var _ Store = (*database.Stores)(nil)
