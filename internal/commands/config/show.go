// Package config - /config show command
package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/quota"
	"github.com/bwmarrin/discordgo"
)

// createShowCommand creates the /config show subcommand
func createShowCommand(svc *quota.Service) *discord.Command {
	return discord.NewCommand(
		"show",
		"Show the current tracking configuration",
		"config",
		showHandler(svc),
	).WithUserPermissions(discordgo.PermissionManageServer)
}

// showHandler handles the /config show command
func showHandler(svc *quota.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		settings, err := svc.GuildSettings(context.Background(), ctx.Interaction.GuildID)
		if errors.Is(err, database.ErrNotFound) {
			return ctx.ReplyEphemeral("This guild is not configured yet. Run `/config setup` first.")
		}
		if err != nil {
			return ctx.ReplyEphemeral("Failed to load the configuration, try again later.")
		}

		category := "none"
		if settings.ModCategoryID != "" {
			category = fmt.Sprintf("<#%s>", settings.ModCategoryID)
		}
		output := "none"
		if settings.OutputChannelID != "" {
			output = fmt.Sprintf("<#%s>", settings.OutputChannelID)
		}
		memberCount := "disabled"
		if settings.MemberCountChannelID != "" {
			memberCount = fmt.Sprintf("<#%s>", settings.MemberCountChannelID)
		}
		lastCheck := "never"
		if settings.LastCheck > 0 {
			lastCheck = time.Unix(settings.LastCheck, 0).UTC().Format(time.RFC1123)
		}
		defaults := settings.DefaultQuotas
		if defaults == "" {
			defaults = "0,0,0"
		}

		embed := &discordgo.MessageEmbed{
			Title: "Tracking configuration",
			Color: 0x5865F2,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Check interval", Value: fmt.Sprintf("`%d` seconds", settings.CheckInterval), Inline: true},
				{Name: "Last check", Value: lastCheck, Inline: true},
				{Name: "Default quotas", Value: fmt.Sprintf("`%s`", defaults), Inline: true},
				{Name: "Moderation category", Value: category, Inline: true},
				{Name: "Output channel", Value: output, Inline: true},
				{Name: "Member count channel", Value: memberCount, Inline: true},
			},
		}
		return ctx.ReplyEmbed(embed)
	}
}
