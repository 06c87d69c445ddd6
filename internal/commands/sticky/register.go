// Package sticky provides the sticky message commands organized as
// subcommands under /sticky.
package sticky

import (
	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
)

// RegisterStickyCommands registers all sticky commands as /sticky subcommands
func RegisterStickyCommands(client *discord.ExtendedClient, stores *database.Stores) {
	stickyGroup := client.CommandHandler.BuildCommandGroup(
		"sticky",
		"Sticky message management",
		createCreateCommand(client, stores),
		createRemoveCommand(client, stores),
	)

	client.CommandHandler.AddGlobalCommand(stickyGroup)
}
