package database

import (
	"context"

	"github.com/BTStudios/ModTrackGo/pkg/models"
)

// Flat accessors over the entity stores. These give the quota engine one
// surface to program against instead of reaching into individual stores.

func (s *Stores) Guild(ctx context.Context, guildID string) (*models.GuildSettings, error) {
	return s.Guilds.Get(ctx, guildID)
}

func (s *Stores) AllGuilds(ctx context.Context) ([]*models.GuildSettings, error) {
	return s.Guilds.List(ctx)
}

func (s *Stores) AddGuild(ctx context.Context, settings *models.GuildSettings) error {
	return s.Guilds.Add(ctx, settings)
}

func (s *Stores) SetGuildLastCheck(ctx context.Context, guildID string, timestamp int64) error {
	return s.Guilds.SetLastCheck(ctx, guildID, timestamp)
}

func (s *Stores) SetGuildModCategory(ctx context.Context, guildID, categoryID string) error {
	return s.Guilds.SetModCategory(ctx, guildID, categoryID)
}

func (s *Stores) SetGuildCheckInterval(ctx context.Context, guildID string, seconds int64) error {
	return s.Guilds.SetCheckInterval(ctx, guildID, seconds)
}

func (s *Stores) SetGuildDefaultQuotas(ctx context.Context, guildID string, quotas models.QuotaSet) error {
	return s.Guilds.SetDefaultQuotas(ctx, guildID, quotas)
}

func (s *Stores) Moderator(ctx context.Context, guildID, userID string) (*models.Moderator, error) {
	return s.Moderators.Get(ctx, guildID, userID)
}

func (s *Stores) ActiveModerators(ctx context.Context, guildID string) ([]*models.Moderator, error) {
	return s.Moderators.ListActive(ctx, guildID)
}

func (s *Stores) RegisterModerator(ctx context.Context, guildID, userID string, quotas models.QuotaSet) error {
	return s.Moderators.Register(ctx, guildID, userID, quotas)
}

func (s *Stores) DeregisterModerator(ctx context.Context, guildID, userID string) error {
	return s.Moderators.Deregister(ctx, guildID, userID)
}

func (s *Stores) SetModeratorQuotas(ctx context.Context, guildID, userID string, quotas models.QuotaSet) error {
	return s.Moderators.SetQuotas(ctx, guildID, userID, quotas)
}

func (s *Stores) IncrementStreak(ctx context.Context, guildID, userID string) error {
	return s.Moderators.IncrementStreak(ctx, guildID, userID)
}

func (s *Stores) ResetStreak(ctx context.Context, guildID, userID string) error {
	return s.Moderators.ResetStreak(ctx, guildID, userID)
}

func (s *Stores) AddVacationDays(ctx context.Context, guildID, userID string, days int) error {
	return s.Moderators.AddVacationDays(ctx, guildID, userID, days)
}

func (s *Stores) InsertAction(ctx context.Context, action *models.Action) error {
	return s.Actions.Insert(ctx, action)
}

func (s *Stores) CountActions(ctx context.Context, guildID, userID string, kind models.ActionKind, start, end int64) (int64, error) {
	return s.Actions.CountByKind(ctx, guildID, userID, kind, start, end)
}

func (s *Stores) AddVacationWeek(ctx context.Context, guildID, userID, week string) error {
	return s.Vacations.Add(ctx, guildID, userID, week)
}

func (s *Stores) RemoveVacationWeek(ctx context.Context, guildID, userID, week string) error {
	return s.Vacations.Remove(ctx, guildID, userID, week)
}

func (s *Stores) IsVacationWeek(ctx context.Context, guildID, userID, week string) (bool, error) {
	return s.Vacations.IsVacation(ctx, guildID, userID, week)
}

func (s *Stores) VacationWeeks(ctx context.Context, guildID, userID string) ([]*models.VacationWeek, error) {
	return s.Vacations.ListForModerator(ctx, guildID, userID)
}
