package quota

import (
	"context"

	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/models"
)

// ActionEvent is one inbound moderation event from the gateway. Deleted
// events carry no message id; the message is gone before the event arrives.
type ActionEvent struct {
	Kind       models.ActionKind
	GuildID    string
	ChannelID  string
	CategoryID string // parent category of the channel, "" for none
	MessageID  string
	ActorID    string
	Timestamp  int64
}

// Record appends one action to the ledger, provided the guild is configured,
// the channel does not sit under the guild's exempt moderator category, and
// the actor is an active moderator. When any precondition fails the event is
// skipped without side effects and Record reports recorded=false with a nil
// error; a nil error with recorded=true means the row was durably written.
func (s *Service) Record(ctx context.Context, ev ActionEvent) (bool, error) {
	settings, err := s.store.Guild(ctx, ev.GuildID)
	if err == database.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if settings.ModCategoryID != "" && ev.CategoryID == settings.ModCategoryID {
		return false, nil
	}

	mod, err := s.store.Moderator(ctx, ev.GuildID, ev.ActorID)
	if err == database.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !mod.Active {
		return false, nil
	}

	action, err := models.NewAction(ev.Kind, ev.GuildID, ev.ChannelID, ev.ActorID, ev.MessageID, ev.Timestamp)
	if err != nil {
		return false, err
	}

	if err := s.store.InsertAction(ctx, action); err != nil {
		return false, err
	}
	return true, nil
}
