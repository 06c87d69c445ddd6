// Package config - /config interval command
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/quota"
	"github.com/bwmarrin/discordgo"
)

// createIntervalCommand creates the /config interval subcommand
func createIntervalCommand(svc *quota.Service) *discord.Command {
	return discord.NewCommand(
		"interval",
		"Change how often quota checks run",
		"config",
		intervalHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "seconds",
			Description: "Seconds between quota checks",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// intervalHandler handles the /config interval command
func intervalHandler(svc *quota.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		seconds := ctx.GetIntOption("seconds")
		if seconds <= 0 {
			return ctx.ReplyEphemeral("The check interval must be a positive number of seconds.")
		}

		err := svc.SetCheckInterval(context.Background(), ctx.Interaction.GuildID, seconds)
		switch {
		case errors.Is(err, database.ErrNotFound):
			return ctx.ReplyEphemeral("This guild is not configured yet. Run `/config setup` first.")
		case err != nil:
			return ctx.ReplyEphemeral("Failed to update the interval, try again later.")
		}

		return ctx.Reply(fmt.Sprintf("Quota checks now run every `%d` seconds.", seconds))
	}
}
