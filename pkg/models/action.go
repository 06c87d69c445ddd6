package models

import "fmt"

// ActionKind represents the type of moderation action
type ActionKind string

const (
	ActionSent    ActionKind = "sent"
	ActionEdited  ActionKind = "edited"
	ActionDeleted ActionKind = "deleted"
)

// Valid reports whether the kind is one of the known action kinds.
func (k ActionKind) Valid() bool {
	switch k {
	case ActionSent, ActionEdited, ActionDeleted:
		return true
	}
	return false
}

// ParseActionKind converts a raw string into an ActionKind.
func ParseActionKind(s string) (ActionKind, error) {
	k := ActionKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown action kind %q", s)
	}
	return k, nil
}

// Action represents a single recorded moderation action
type Action struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	Kind      ActionKind `bson:"type" json:"type"`
	GuildID   string     `bson:"guildId" json:"guildId"`
	ChannelID string     `bson:"channelId" json:"channelId"`
	MessageID string     `bson:"messageId,omitempty" json:"messageId,omitempty"`
	ModID     string     `bson:"modId" json:"modId"`
	Timestamp int64      `bson:"timestamp" json:"timestamp"`
}

// NewAction builds a validated Action. Deleted actions must not carry a
// message ID because the message no longer exists; sent and edited
// actions must carry one.
func NewAction(kind ActionKind, guildID, channelID, modID, messageID string, timestamp int64) (*Action, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown action kind %q", kind)
	}
	if guildID == "" || channelID == "" || modID == "" {
		return nil, fmt.Errorf("action requires guild, channel and moderator IDs")
	}
	if timestamp <= 0 {
		return nil, fmt.Errorf("action requires a positive timestamp")
	}
	if kind == ActionDeleted && messageID != "" {
		return nil, fmt.Errorf("deleted actions must not reference a message ID")
	}
	if kind != ActionDeleted && messageID == "" {
		return nil, fmt.Errorf("%s actions require a message ID", kind)
	}
	return &Action{
		Kind:      kind,
		GuildID:   guildID,
		ChannelID: channelID,
		MessageID: messageID,
		ModID:     modID,
		Timestamp: timestamp,
	}, nil
}
