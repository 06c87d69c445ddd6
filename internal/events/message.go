// Package events provides event handlers for message events
package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/logger"
	"github.com/BTStudios/ModTrackGo/pkg/models"
	"github.com/BTStudios/ModTrackGo/pkg/quota"
	"github.com/bwmarrin/discordgo"
)

func (h *Handlers) registerMessageEvents() {
	h.client.Session.AddHandler(h.onMessageCreate)
	h.client.Session.AddHandler(h.onMessageUpdate)
	h.client.Session.AddHandler(h.onMessageDelete)
}

// categoryOf resolves the parent category of a channel, preferring the state
// cache over a REST call.
func categoryOf(s *discordgo.Session, channelID string) string {
	ch, err := s.State.Channel(channelID)
	if err != nil {
		ch, err = s.Channel(channelID)
		if err != nil {
			return ""
		}
	}
	return ch.ParentID
}

func (h *Handlers) record(ev quota.ActionEvent) {
	recorded, err := h.svc.Record(context.Background(), ev)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to record %s action for %s in guild %s: %v",
			ev.Kind, ev.ActorID, ev.GuildID, err), "Message")
		return
	}
	if recorded {
		logger.Debug(fmt.Sprintf("Recorded %s action for %s in guild %s", ev.Kind, ev.ActorID, ev.GuildID), "Message")
	}
}

// onMessageCreate is called when a new message is created
func (h *Handlers) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.GuildID == "" {
		return
	}

	if m.Author != nil && !m.Author.Bot {
		h.record(quota.ActionEvent{
			Kind:       models.ActionSent,
			GuildID:    m.GuildID,
			ChannelID:  m.ChannelID,
			CategoryID: categoryOf(s, m.ChannelID),
			MessageID:  m.ID,
			ActorID:    m.Author.ID,
			Timestamp:  m.Timestamp.Unix(),
		})
	}

	h.repostSticky(s, m)
}

// onMessageUpdate is called when a message is edited
func (h *Handlers) onMessageUpdate(s *discordgo.Session, m *discordgo.MessageUpdate) {
	// Embed unfurls and other partial updates arrive without an author.
	if m.GuildID == "" || m.Author == nil || m.Author.Bot {
		return
	}

	ts := time.Now().Unix()
	if m.EditedTimestamp != nil {
		ts = m.EditedTimestamp.Unix()
	}

	h.record(quota.ActionEvent{
		Kind:       models.ActionEdited,
		GuildID:    m.GuildID,
		ChannelID:  m.ChannelID,
		CategoryID: categoryOf(s, m.ChannelID),
		MessageID:  m.ID,
		ActorID:    m.Author.ID,
		Timestamp:  ts,
	})
}

// onMessageDelete is called when a message is deleted. The gateway does not
// say who deleted it, so the action is attributed to the message's author
// when the state cache still has the message; otherwise the event is skipped.
func (h *Handlers) onMessageDelete(s *discordgo.Session, m *discordgo.MessageDelete) {
	if m.GuildID == "" {
		return
	}

	before := m.BeforeDelete
	if before == nil || before.Author == nil || before.Author.Bot {
		return
	}

	h.record(quota.ActionEvent{
		Kind:       models.ActionDeleted,
		GuildID:    m.GuildID,
		ChannelID:  m.ChannelID,
		CategoryID: categoryOf(s, m.ChannelID),
		ActorID:    before.Author.ID,
		Timestamp:  time.Now().Unix(),
	})
}

// repostSticky keeps a channel's sticky message at the bottom: when anyone
// else posts, the previous sticky is deleted and sent again.
func (h *Handlers) repostSticky(s *discordgo.Session, m *discordgo.MessageCreate) {
	ctx := context.Background()

	sticky, err := h.stores.Stickies.Get(ctx, m.ChannelID)
	if errors.Is(err, database.ErrNotFound) {
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load sticky for channel %s: %v", m.ChannelID, err), "Sticky")
		return
	}

	// The repost itself also fires MessageCreate.
	if m.Author != nil && m.Author.ID == s.State.User.ID {
		return
	}

	if sticky.MessageID != "" {
		if err := s.ChannelMessageDelete(m.ChannelID, sticky.MessageID); err != nil {
			logger.Debug(fmt.Sprintf("Could not delete previous sticky %s: %v", sticky.MessageID, err), "Sticky")
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       sticky.Title,
		Description: sticky.Description,
		Color:       0x3498db,
	}
	msg, err := s.ChannelMessageSendEmbed(m.ChannelID, embed)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to repost sticky in channel %s: %v", m.ChannelID, err), "Sticky")
		return
	}

	if err := h.stores.Stickies.UpdateMessageID(ctx, m.ChannelID, msg.ID); err != nil {
		logger.Error(fmt.Sprintf("Failed to save sticky message id for channel %s: %v", m.ChannelID, err), "Sticky")
	}
}
