// Package utils provides general utility commands organized as
// subcommands under /utils.
package utils

import (
	"github.com/BTStudios/ModTrackGo/pkg/discord"
)

// RegisterUtilsCommands registers all utility commands as /utils subcommands
func RegisterUtilsCommands(client *discord.ExtendedClient) {
	utilsGroup := client.CommandHandler.BuildCommandGroup(
		"utils",
		"Utility commands",
		createPingCommand(),
		createStatusCommand(),
		createStatsCommand(),
		createHelpCommand(),
	)

	client.CommandHandler.AddGlobalCommand(utilsGroup)
}
