// Package events provides event handlers for the bot
package events

import (
	"fmt"

	"github.com/BTStudios/ModTrackGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

func (h *Handlers) registerReadyEvents() {
	h.client.Session.AddHandler(h.onReady)
	h.client.Session.AddHandler(onDebug)
}

// onReady is called when the bot successfully connects to Discord
func (h *Handlers) onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Success(fmt.Sprintf("Bot connected: %s#%s", r.User.Username, r.User.Discriminator), "Ready")
	logger.Info(fmt.Sprintf("Connected to %d guilds", len(r.Guilds)), "Ready")

	if err := s.UpdateWatchStatus(0, "moderation activity"); err != nil {
		logger.Error(fmt.Sprintf("Error setting presence: %v", err), "Ready")
		return
	}

	logger.Debug("Bot presence set", "Ready")
}

func onDebug(s *discordgo.Session, log string) {
	logger.Debug(log, "DiscordGO")
}
