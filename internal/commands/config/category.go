// Package config - /config category command
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

// createCategoryCommand creates the /config category subcommand
func createCategoryCommand(svc *quota.Service) *discord.Command {
	return discord.NewCommand(
		"category",
		"Set the moderation category excluded from counting",
		"config",
		categoryHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "category",
			Description: "Category to exclude (omit to clear)",
			Required:    false,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildCategory,
			},
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// categoryHandler handles the /config category command
func categoryHandler(svc *quota.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		categoryID := ""
		if cat := ctx.GetChannelOption("category"); cat != nil {
			categoryID = cat.ID
		}

		err := svc.SetModCategory(context.Background(), ctx.Interaction.GuildID, categoryID)
		if errors.Is(err, database.ErrNotFound) {
			return ctx.ReplyEphemeral("This guild is not configured yet. Run `/config setup` first.")
		}
		if err != nil {
			return ctx.ReplyEphemeral("Failed to update the category, try again later.")
		}

		if categoryID == "" {
			return ctx.Reply("Moderation category cleared, messages in every category now count.")
		}
		return ctx.Reply(fmt.Sprintf("Messages under <#%s> are no longer counted.", categoryID))
	}
}
