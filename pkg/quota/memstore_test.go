package quota

import (
	"context"
	"sync"

	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/models"
)

// memStore is an in-memory Store used to exercise the engine without a
// database.
type memStore struct {
	mu        sync.Mutex
	guilds    map[string]*models.GuildSettings
	mods      map[string]*models.Moderator // guildID|userID
	actions   []*models.Action
	vacations map[string]bool // guildID|userID|week
}

func newMemStore() *memStore {
	return &memStore{
		guilds:    make(map[string]*models.GuildSettings),
		mods:      make(map[string]*models.Moderator),
		vacations: make(map[string]bool),
	}
}

func key(parts ...string) string {
	k := parts[0]
	for _, p := range parts[1:] {
		k += "|" + p
	}
	return k
}

func (m *memStore) Guild(_ context.Context, guildID string) (*models.GuildSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.guilds[guildID]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (m *memStore) AllGuilds(_ context.Context) ([]*models.GuildSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.GuildSettings
	for _, g := range m.guilds {
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memStore) AddGuild(_ context.Context, settings *models.GuildSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.guilds[settings.GuildID]; ok {
		return database.ErrGuildExists
	}
	cp := *settings
	m.guilds[settings.GuildID] = &cp
	return nil
}

func (m *memStore) SetGuildLastCheck(_ context.Context, guildID string, ts int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.guilds[guildID]
	if !ok {
		return database.ErrNotFound
	}
	g.LastCheck = ts
	return nil
}

func (m *memStore) SetGuildModCategory(_ context.Context, guildID, categoryID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.guilds[guildID]
	if !ok {
		return database.ErrNotFound
	}
	g.ModCategoryID = categoryID
	return nil
}

func (m *memStore) SetGuildCheckInterval(_ context.Context, guildID string, seconds int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.guilds[guildID]
	if !ok {
		return database.ErrNotFound
	}
	g.CheckInterval = seconds
	return nil
}

func (m *memStore) SetGuildDefaultQuotas(_ context.Context, guildID string, quotas models.QuotaSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.guilds[guildID]
	if !ok {
		return database.ErrNotFound
	}
	g.DefaultQuotas = quotas.Serialize()
	return nil
}

func (m *memStore) Moderator(_ context.Context, guildID, userID string) (*models.Moderator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mod, ok := m.mods[key(guildID, userID)]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *mod
	return &cp, nil
}

func (m *memStore) ActiveModerators(_ context.Context, guildID string) ([]*models.Moderator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Moderator
	for _, mod := range m.mods {
		if mod.GuildID == guildID && mod.Active {
			cp := *mod
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memStore) RegisterModerator(_ context.Context, guildID, userID string, quotas models.QuotaSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mod, ok := m.mods[key(guildID, userID)]; ok {
		if mod.Active {
			return database.ErrAlreadyRegistered
		}
		mod.SetQuotas(quotas)
		mod.VacationDays = 0
		mod.Active = true
		return nil
	}
	mod := &models.Moderator{GuildID: guildID, UserID: userID, Active: true}
	mod.SetQuotas(quotas)
	m.mods[key(guildID, userID)] = mod
	return nil
}

func (m *memStore) DeregisterModerator(_ context.Context, guildID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mod, ok := m.mods[key(guildID, userID)]
	if !ok || !mod.Active {
		return database.ErrNotRegistered
	}
	mod.Active = false
	mod.ConsecutiveWeeks = 0
	mod.SetQuotas(models.QuotaSet{})
	return nil
}

func (m *memStore) SetModeratorQuotas(_ context.Context, guildID, userID string, quotas models.QuotaSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mod, ok := m.mods[key(guildID, userID)]
	if !ok {
		return database.ErrNotFound
	}
	mod.SetQuotas(quotas)
	return nil
}

func (m *memStore) IncrementStreak(_ context.Context, guildID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mod, ok := m.mods[key(guildID, userID)]
	if !ok {
		return database.ErrNotFound
	}
	mod.ConsecutiveWeeks++
	return nil
}

func (m *memStore) ResetStreak(_ context.Context, guildID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mod, ok := m.mods[key(guildID, userID)]
	if !ok {
		return database.ErrNotFound
	}
	mod.ConsecutiveWeeks = 0
	return nil
}

func (m *memStore) AddVacationDays(_ context.Context, guildID, userID string, days int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mod, ok := m.mods[key(guildID, userID)]
	if !ok {
		return database.ErrNotFound
	}
	mod.VacationDays += days
	if mod.VacationDays < 0 {
		mod.VacationDays = 0
	}
	return nil
}

func (m *memStore) InsertAction(_ context.Context, action *models.Action) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.mods[key(action.GuildID, action.ModID)]; !ok {
		return database.ErrModeratorMissing
	}
	cp := *action
	m.actions = append(m.actions, &cp)
	return nil
}

func (m *memStore) CountActions(_ context.Context, guildID, userID string, kind models.ActionKind, start, end int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, a := range m.actions {
		if a.GuildID == guildID && a.ModID == userID && a.Kind == kind &&
			a.Timestamp >= start && a.Timestamp <= end {
			n++
		}
	}
	return n, nil
}

func (m *memStore) AddVacationWeek(_ context.Context, guildID, userID, week string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.mods[key(guildID, userID)]; !ok {
		return database.ErrModeratorMissing
	}
	k := key(guildID, userID, week)
	if m.vacations[k] {
		return database.ErrVacationExists
	}
	m.vacations[k] = true
	return nil
}

func (m *memStore) RemoveVacationWeek(_ context.Context, guildID, userID, week string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(guildID, userID, week)
	if !m.vacations[k] {
		return database.ErrNotFound
	}
	delete(m.vacations, k)
	return nil
}

func (m *memStore) IsVacationWeek(_ context.Context, guildID, userID, week string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.vacations[key(guildID, userID, week)], nil
}

func (m *memStore) VacationWeeks(_ context.Context, guildID, userID string) ([]*models.VacationWeek, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.VacationWeek
	for k := range m.vacations {
		var g, u, w string
		// keys are guildID|userID|week
		parts := splitKey(k)
		g, u, w = parts[0], parts[1], parts[2]
		if g == guildID && u == userID {
			out = append(out, &models.VacationWeek{GuildID: g, UserID: u, Week: w})
		}
	}
	return out, nil
}

func splitKey(k string) []string {
	parts := make([]string, 0, 3)
	cur := ""
	for _, r := range k {
		if r == '|' {
			parts = append(parts, cur)
			cur = ""
			continue
		}
		cur += string(r)
	}
	return append(parts, cur)
}

var _ Store = (*memStore)(nil)
