// Package mod - /mod setquota command
package mod

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

// createSetQuotaCommand creates the /mod setquota subcommand
func createSetQuotaCommand(svc *quota.Service) *discord.Command {
	return discord.NewCommand(
		"setquota",
		"Change a moderator's weekly quotas",
		"mod",
		setQuotaHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Moderator to update",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "quotas",
			Description: "Weekly quotas as sent,edited,deleted",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// setQuotaHandler handles the /mod setquota command
func setQuotaHandler(svc *quota.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		user := ctx.GetUserOption("user")
		if user == nil {
			return ctx.ReplyEphemeral("You must specify a user.")
		}

		quotas, err := models.ParseQuotaSet(ctx.GetStringOption("quotas"))
		if err != nil {
			return ctx.ReplyEphemeral("Invalid quotas. Use three numbers: `sent,edited,deleted`.")
		}

		err = svc.SetModeratorQuotas(context.Background(), ctx.Interaction.GuildID, user.ID, quotas)
		if errors.Is(err, database.ErrNotFound) {
			return ctx.ReplyEphemeral(fmt.Sprintf("**%s** is not being tracked.", user.Username))
		}
		if err != nil {
			return ctx.ReplyEphemeral("Failed to update quotas, try again later.")
		}

		return ctx.Reply(fmt.Sprintf("Weekly quotas of **%s** set to `%s`.", user.Username, quotas))
	}
}
