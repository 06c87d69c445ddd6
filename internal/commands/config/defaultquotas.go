// Package config - /config defaultquotas command
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/models"
	"github.com/BTStudios/ModTrackGo/pkg/quota"
	"github.com/bwmarrin/discordgo"
)

// createDefaultQuotasCommand creates the /config defaultquotas subcommand
func createDefaultQuotasCommand(svc *quota.Service) *discord.Command {
	return discord.NewCommand(
		"defaultquotas",
		"Set the quotas seeded into newly registered moderators",
		"config",
		defaultQuotasHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "quotas",
			Description: "Weekly quotas as sent,edited,deleted",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// defaultQuotasHandler handles the /config defaultquotas command
func defaultQuotasHandler(svc *quota.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		quotas, err := models.ParseQuotaSet(ctx.GetStringOption("quotas"))
		if err != nil {
			return ctx.ReplyEphemeral("Invalid quotas. Use three numbers: `sent,edited,deleted`.")
		}

		err = svc.SetDefaultQuotas(context.Background(), ctx.Interaction.GuildID, quotas)
		if errors.Is(err, database.ErrNotFound) {
			return ctx.ReplyEphemeral("This guild is not configured yet. Run `/config setup` first.")
		}
		if err != nil {
			return ctx.ReplyEphemeral("Failed to update the default quotas, try again later.")
		}

		return ctx.Reply(fmt.Sprintf("Default weekly quotas set to `%s`. Existing moderators keep their current quotas.", quotas))
	}
}
