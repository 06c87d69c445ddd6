// Package events provides event handlers for guild (server) events
package events

import (
	"fmt"
	"time"

	"github.com/BTStudios/ModTrackGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

func (h *Handlers) registerGuildEvents() {
	h.client.Session.AddHandler(h.onGuildCreate)
	h.client.Session.AddHandler(h.onGuildDelete)
}

// onGuildCreate is called when the bot joins a server
func (h *Handlers) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	// GuildCreate also fires for every guild on connect; only greet
	// guilds the bot actually just joined.
	if g.JoinedAt.Compare(time.Now().Add(-10*time.Second)) < 0 {
		return
	}

	logger.Info(fmt.Sprintf("Bot added to guild: %s (ID: %s)", g.Name, g.ID), "Guild")
	logger.Debug(fmt.Sprintf("   Members: %d | Channels: %d", g.MemberCount, len(g.Channels)), "Guild")

	if g.SystemChannelID != "" {
		welcomeEmbed := &discordgo.MessageEmbed{
			Title:       "Thanks for adding me!",
			Description: "I track moderator activity and weekly quotas. An administrator must run `/config setup` before tracking starts.",
			Color:       0x00ff00,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "Setup",
					Value:  "`/config setup` - Configure tracking",
					Inline: true,
				},
				{
					Name:   "Moderators",
					Value:  "`/mod register` - Start tracking a moderator",
					Inline: true,
				},
				{
					Name:   "Help",
					Value:  "`/utils help` - See every command",
					Inline: true,
				},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		if _, err := s.ChannelMessageSendEmbed(g.SystemChannelID, welcomeEmbed); err != nil {
			logger.Error(fmt.Sprintf("Error sending welcome message: %v", err), "Guild")
		}
	}
}

// onGuildDelete is called when the bot is removed from a server
func (h *Handlers) onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	logger.Info(fmt.Sprintf("Bot removed from guild ID: %s", g.ID), "Guild")
}
