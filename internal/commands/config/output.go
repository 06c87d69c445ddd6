// Package config - /config output command
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createOutputCommand creates the /config output subcommand
func createOutputCommand(stores *database.Stores) *discord.Command {
	return discord.NewCommand(
		"output",
		"Set the channel where quota check results are posted",
		"config",
		outputHandler(stores),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Text channel for check results (omit to clear)",
			Required:    false,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// outputHandler handles the /config output command
func outputHandler(stores *database.Stores) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		channelID := ""
		if ch := ctx.GetChannelOption("channel"); ch != nil {
			channelID = ch.ID
		}

		err := stores.Guilds.SetOutputChannel(context.Background(), ctx.Interaction.GuildID, channelID)
		if errors.Is(err, database.ErrNotFound) {
			return ctx.ReplyEphemeral("This guild is not configured yet. Run `/config setup` first.")
		}
		if err != nil {
			return ctx.ReplyEphemeral("Failed to update the output channel, try again later.")
		}

		if channelID == "" {
			return ctx.Reply("Output channel cleared, check results are no longer posted.")
		}
		return ctx.Reply(fmt.Sprintf("Quota check results will be posted in <#%s>.", channelID))
	}
}
