// Package sticky - /sticky create command
package sticky

import (
	"context"
	"errors"
	"fmt"

	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createCreateCommand creates the /sticky create subcommand
func createCreateCommand(client *discord.ExtendedClient, stores *database.Stores) *discord.Command {
	return discord.NewCommand(
		"create",
		"Pin an embed to the bottom of this channel",
		"sticky",
		createHandler(client, stores),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "title",
			Description: "Embed title",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "description",
			Description: "Embed description",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages)
}

// createHandler handles the /sticky create command
func createHandler(client *discord.ExtendedClient, stores *database.Stores) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		channelID := ctx.Interaction.ChannelID
		title := ctx.GetStringOption("title")
		description := ctx.GetStringOption("description")

		msg, err := client.Session.ChannelMessageSendEmbed(channelID, &discordgo.MessageEmbed{
			Title:       title,
			Description: description,
			Color:       0x3498db,
		})
		if err != nil {
			return ctx.ReplyEphemeral("Failed to send the sticky message in this channel.")
		}

		err = stores.Stickies.Create(context.Background(), &models.StickyMessage{
			ChannelID:   channelID,
			GuildID:     ctx.Interaction.GuildID,
			MessageID:   msg.ID,
			Title:       title,
			Description: description,
		})
		if errors.Is(err, database.ErrStickyExists) {
			// Roll back the orphaned embed.
			_ = client.Session.ChannelMessageDelete(channelID, msg.ID)
			return ctx.ReplyEphemeral("This channel already has a sticky message. Remove it first with `/sticky remove`.")
		}
		if err != nil {
			_ = client.Session.ChannelMessageDelete(channelID, msg.ID)
			return ctx.ReplyEphemeral("Failed to save the sticky message, try again later.")
		}

		return ctx.ReplyEphemeral(fmt.Sprintf("Sticky **%s** created in this channel.", title))
	}
}
