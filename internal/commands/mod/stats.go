// Package mod - /mod stats command
package mod

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

// createStatsCommand creates the /mod stats subcommand
func createStatsCommand(svc *quota.Service) *discord.Command {
	minDays := float64(1)
	maxDays := float64(90)
	return discord.NewCommand(
		"stats",
		"Show a moderator's activity counts",
		"mod",
		statsHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Moderator to inspect (defaults to you)",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "days",
			Description: "How many days back to count (default 7)",
			Required:    false,
			MinValue:    &minDays,
			MaxValue:    maxDays,
		},
	)
}

// statsHandler handles the /mod stats command
func statsHandler(svc *quota.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		user := ctx.GetUserOption("user")
		if user == nil {
			user = ctx.User()
		}

		days := int(ctx.GetIntOption("days"))
		if days <= 0 {
			days = 7
		}

		bg := context.Background()
		guildID := ctx.Interaction.GuildID

		mod, err := svc.Moderator(bg, guildID, user.ID)
		if errors.Is(err, database.ErrNotFound) {
			return ctx.ReplyEphemeral(fmt.Sprintf("**%s** is not being tracked.", user.Username))
		}
		if err != nil {
			return ctx.ReplyEphemeral("Failed to load the moderator, try again later.")
		}

		start, end := daysWindow(days, time.Now())
		counts, err := svc.CountByType(bg, guildID, user.ID, start, end)
		if err != nil {
			return ctx.ReplyEphemeral("Failed to count actions, try again later.")
		}

		status := "Active"
		if !mod.Active {
			status = "Inactive"
		}

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("Activity of %s (last %d days)", user.Username, days),
			Color: 0x3498db,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Sent", Value: fmt.Sprintf("%d / %d", counts.Sent, mod.SendQuota), Inline: true},
				{Name: "Edited", Value: fmt.Sprintf("%d / %d", counts.Edited, mod.EditQuota), Inline: true},
				{Name: "Deleted", Value: fmt.Sprintf("%d / %d", counts.Deleted, mod.DeleteQuota), Inline: true},
				{Name: "Streak", Value: fmt.Sprintf("%d weeks", mod.ConsecutiveWeeks), Inline: true},
				{Name: "Vacation days", Value: fmt.Sprintf("%d", mod.VacationDays), Inline: true},
				{Name: "Status", Value: status, Inline: true},
			},
			Thumbnail: &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("128")},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		return ctx.ReplyEmbed(embed)
	}
}
