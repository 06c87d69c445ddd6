package quota

import (
	"context"
	"fmt"

	"github.com/BTStudios/ModTrackGo/pkg/models"
)

// ActionCounts is the per-kind tally of a moderator's actions over a window.
type ActionCounts struct {
	Sent    int `json:"sent"`
	Edited  int `json:"edited"`
	Deleted int `json:"deleted"`
}

// String formats the counts for human-facing output.
func (c ActionCounts) String() string {
	return fmt.Sprintf("%d sent / %d edited / %d deleted", c.Sent, c.Edited, c.Deleted)
}

// Meets reports whether every count reaches its quota. All three must pass;
// missing any single quota fails the whole set.
func (c ActionCounts) Meets(q models.QuotaSet) bool {
	return c.Sent >= q.Sent && c.Edited >= q.Edited && c.Deleted >= q.Deleted
}

// CountByType tallies a moderator's actions with timestamps in the inclusive
// range [start, end], partitioned by kind. A moderator with no matching rows
// yields (0,0,0); only a storage failure produces an error. Every stats
// command and every quota check is built on this read.
func (s *Service) CountByType(ctx context.Context, guildID, userID string, start, end int64) (ActionCounts, error) {
	var counts ActionCounts

	sent, err := s.store.CountActions(ctx, guildID, userID, models.ActionSent, start, end)
	if err != nil {
		return ActionCounts{}, err
	}
	edited, err := s.store.CountActions(ctx, guildID, userID, models.ActionEdited, start, end)
	if err != nil {
		return ActionCounts{}, err
	}
	deleted, err := s.store.CountActions(ctx, guildID, userID, models.ActionDeleted, start, end)
	if err != nil {
		return ActionCounts{}, err
	}

	counts.Sent = int(sent)
	counts.Edited = int(edited)
	counts.Deleted = int(deleted)
	return counts, nil
}
