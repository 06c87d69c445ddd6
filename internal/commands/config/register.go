// Package config provides the guild configuration commands organized
// as subcommands under /config. Each command is in its own file.
package config

import (
	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/quota"
)

// RegisterConfigCommands registers all configuration commands as /config subcommands
func RegisterConfigCommands(client *discord.ExtendedClient, svc *quota.Service, stores *database.Stores) {
	configGroup := client.CommandHandler.BuildCommandGroup(
		"config",
		"Guild tracking configuration",
		createSetupCommand(svc),
		createCategoryCommand(svc),
		createIntervalCommand(svc),
		createDefaultQuotasCommand(svc),
		createOutputCommand(stores),
		createMemberCountCommand(stores),
		createShowCommand(svc),
	)

	client.CommandHandler.AddGlobalCommand(configGroup)
}
