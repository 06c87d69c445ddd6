// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (mod, config, sticky,
// utils, dev).
package commands

import (
	"github.com/BTStudios/ModTrackGo/internal/commands/config"
	"github.com/BTStudios/ModTrackGo/internal/commands/dev"
	"github.com/BTStudios/ModTrackGo/internal/commands/mod"
	"github.com/BTStudios/ModTrackGo/internal/commands/sticky"
	"github.com/BTStudios/ModTrackGo/internal/commands/utils"
	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/quota"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient, svc *quota.Service, stores *database.Stores) {
	// Moderator tracking (/mod register, deregister, stats, setquota, vacation)
	mod.RegisterModCommands(client, svc)

	// Guild configuration (/config setup, category, interval, ...)
	config.RegisterConfigCommands(client, svc, stores)

	// Sticky messages (/sticky create, remove)
	sticky.RegisterStickyCommands(client, stores)

	// Utility commands (/utils ping, status, help)
	utils.RegisterUtilsCommands(client)

	// Dev-guild only commands (/dev eval)
	dev.Register(client, svc)
}
