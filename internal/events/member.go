// Package events provides event handlers for member events
package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

func (h *Handlers) registerMemberEvents() {
	h.client.Session.AddHandler(h.onGuildMemberAdd)
	h.client.Session.AddHandler(h.onGuildMemberRemove)
}

// onGuildMemberAdd is called when a new member joins the server
func (h *Handlers) onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	logger.Debug(fmt.Sprintf("Member joined guild %s: %s", m.GuildID, m.User.Username), "Member")
	h.updateMemberCount(s, m.GuildID)
}

// onGuildMemberRemove is called when a member leaves the server
func (h *Handlers) onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	logger.Debug(fmt.Sprintf("Member left guild %s: %s", m.GuildID, m.User.Username), "Member")
	h.updateMemberCount(s, m.GuildID)
}

// updateMemberCount renames the guild's counter channel to the current
// member count, if the guild configured one.
func (h *Handlers) updateMemberCount(s *discordgo.Session, guildID string) {
	settings, err := h.svc.GuildSettings(context.Background(), guildID)
	if errors.Is(err, database.ErrNotFound) {
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load settings for guild %s: %v", guildID, err), "Member")
		return
	}
	if settings.MemberCountChannelID == "" {
		return
	}

	guild, err := s.State.Guild(guildID)
	if err != nil {
		logger.Error(fmt.Sprintf("Guild %s not in state cache: %v", guildID, err), "Member")
		return
	}

	name := fmt.Sprintf("Members: %d", guild.MemberCount)
	if _, err := s.ChannelEdit(settings.MemberCountChannelID, &discordgo.ChannelEdit{Name: name}); err != nil {
		logger.Error(fmt.Sprintf("Failed to rename member count channel for guild %s: %v", guildID, err), "Member")
	}
}

// StartMemberCountLoop refreshes every guild's counter channel on a fixed
// interval. Join and leave events keep the counter fresh between passes;
// the loop catches up after downtime and missed events. Returns a stop
// function.
func (h *Handlers) StartMemberCountLoop(interval time.Duration) func() {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	stop := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				guilds, err := h.stores.Guilds.List(context.Background())
				if err != nil {
					logger.Error(fmt.Sprintf("Failed to list guilds for member count pass: %v", err), "Member")
					continue
				}
				for _, settings := range guilds {
					if settings.MemberCountChannelID == "" {
						continue
					}
					h.updateMemberCount(h.client.Session, settings.GuildID)
				}
			case <-stop:
				return
			}
		}
	}()

	return func() { close(stop) }
}
