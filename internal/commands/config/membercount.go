// Package config - /config membercount command
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createMemberCountCommand creates the /config membercount subcommand
func createMemberCountCommand(stores *database.Stores) *discord.Command {
	return discord.NewCommand(
		"membercount",
		"Set the voice channel renamed with the member count",
		"config",
		memberCountHandler(stores),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Voice channel to rename (omit to disable)",
			Required:    false,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildVoice,
			},
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// memberCountHandler handles the /config membercount command
func memberCountHandler(stores *database.Stores) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		channelID := ""
		if ch := ctx.GetChannelOption("channel"); ch != nil {
			channelID = ch.ID
		}

		err := stores.Guilds.SetMemberCountChannel(context.Background(), ctx.Interaction.GuildID, channelID)
		if errors.Is(err, database.ErrNotFound) {
			return ctx.ReplyEphemeral("This guild is not configured yet. Run `/config setup` first.")
		}
		if err != nil {
			return ctx.ReplyEphemeral("Failed to update the member count channel, try again later.")
		}

		if channelID == "" {
			return ctx.Reply("Member count channel disabled.")
		}
		return ctx.Reply(fmt.Sprintf("<#%s> will now show the member count.", channelID))
	}
}
