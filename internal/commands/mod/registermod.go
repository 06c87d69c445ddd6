// Package mod - /mod register command
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

// createRegisterCommand creates the /mod register subcommand
func createRegisterCommand(svc *quota.Service) *discord.Command {
	return discord.NewCommand(
		"register",
		"Start tracking a moderator",
		"mod",
		registerHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Moderator to track",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "quotas",
			Description: "Weekly quotas as sent,edited,deleted (defaults to the guild defaults)",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// registerHandler handles the /mod register command
func registerHandler(svc *quota.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		user := ctx.GetUserOption("user")
		if user == nil {
			return ctx.ReplyEphemeral("You must specify a user.")
		}

		bg := context.Background()
		guildID := ctx.Interaction.GuildID

		raw := ctx.GetStringOption("quotas")
		var err error
		if raw == "" {
			err = svc.RegisterModeratorWithDefaults(bg, guildID, user.ID)
		} else {
			var quotas models.QuotaSet
			quotas, err = models.ParseQuotaSet(raw)
			if err != nil {
				return ctx.ReplyEphemeral("Invalid quotas. Use three numbers: `sent,edited,deleted`.")
			}
			err = svc.RegisterModerator(bg, guildID, user.ID, quotas)
		}

		switch {
		case errors.Is(err, database.ErrAlreadyRegistered):
			return ctx.ReplyEphemeral(fmt.Sprintf("**%s** is already being tracked.", user.Username))
		case errors.Is(err, database.ErrNotFound):
			return ctx.ReplyEphemeral("This guild is not configured yet. Run `/config setup` first.")
		case err != nil:
			return ctx.ReplyEphemeral("Failed to register the moderator, try again later.")
		}

		mod, err := svc.Moderator(bg, guildID, user.ID)
		if err != nil {
			return ctx.Reply(fmt.Sprintf("Now tracking **%s**.", user.Username))
		}
		return ctx.Reply(fmt.Sprintf("Now tracking **%s** with weekly quotas `%s`.",
			user.Username, mod.Quotas()))
	}
}
