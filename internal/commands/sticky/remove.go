// Package sticky - /sticky remove command
package sticky

import (
	"context"
	"errors"

	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createRemoveCommand creates the /sticky remove subcommand
func createRemoveCommand(client *discord.ExtendedClient, stores *database.Stores) *discord.Command {
	return discord.NewCommand(
		"remove",
		"Remove the sticky message from this channel",
		"sticky",
		removeHandler(client, stores),
	).WithUserPermissions(discordgo.PermissionManageMessages)
}

// removeHandler handles the /sticky remove command
func removeHandler(client *discord.ExtendedClient, stores *database.Stores) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		channelID := ctx.Interaction.ChannelID
		bg := context.Background()

		sticky, err := stores.Stickies.Get(bg, channelID)
		if errors.Is(err, database.ErrNotFound) {
			return ctx.ReplyEphemeral("This channel has no sticky message.")
		}
		if err != nil {
			return ctx.ReplyEphemeral("Failed to load the sticky message, try again later.")
		}

		if err := stores.Stickies.Delete(bg, channelID); err != nil {
			return ctx.ReplyEphemeral("Failed to remove the sticky message, try again later.")
		}
		// Best effort, the message may already be gone.
		_ = client.Session.ChannelMessageDelete(channelID, sticky.MessageID)

		return ctx.ReplyEphemeral("Sticky message removed.")
	}
}
