// Package mod - /mod deregister command
package mod

import (
	"context"
	"errors"
	"fmt"

	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/quota"
	"github.com/bwmarrin/discordgo"
)

// createDeregisterCommand creates the /mod deregister subcommand
func createDeregisterCommand(svc *quota.Service) *discord.Command {
	return discord.NewCommand(
		"deregister",
		"Stop tracking a moderator",
		"mod",
		deregisterHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Moderator to stop tracking",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// deregisterHandler handles the /mod deregister command
func deregisterHandler(svc *quota.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		user := ctx.GetUserOption("user")
		if user == nil {
			return ctx.ReplyEphemeral("You must specify a user.")
		}

		err := svc.DeregisterModerator(context.Background(), ctx.Interaction.GuildID, user.ID)
		if errors.Is(err, database.ErrNotRegistered) {
			return ctx.ReplyEphemeral(fmt.Sprintf("**%s** is not being tracked.", user.Username))
		}
		if err != nil {
			return ctx.ReplyEphemeral("Failed to deregister the moderator, try again later.")
		}

		return ctx.Reply(fmt.Sprintf("Stopped tracking **%s**. Their history is kept.", user.Username))
	}
}
