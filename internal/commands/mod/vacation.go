// Package mod - /mod vacation subcommand group
package mod

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/models"
	"github.com/BTStudios/ModTrackGo/pkg/quota"
	"github.com/bwmarrin/discordgo"
)

func vacationUserOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "user",
		Description: "Moderator",
		Required:    true,
	}
}

func vacationWeekOption(required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "week",
		Description: "ISO week as YYYY-WW (defaults to the current week)",
		Required:    required,
	}
}

// createVacationAddCommand creates the /mod vacation add subcommand
func createVacationAddCommand(svc *quota.Service) *discord.Command {
	return discord.NewCommand(
		"add",
		"Mark a week as vacation for a moderator",
		"mod",
		vacationAddHandler(svc),
	).WithOptions(
		vacationUserOption(),
		vacationWeekOption(false),
	).WithUserPermissions(discordgo.PermissionManageServer)
}

func vacationAddHandler(svc *quota.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		user := ctx.GetUserOption("user")
		if user == nil {
			return ctx.ReplyEphemeral("You must specify a user.")
		}

		week := ctx.GetStringOption("week")
		if week == "" {
			week = models.WeekOf(time.Now().UTC())
		}
		if !models.ValidWeek(week) {
			return ctx.ReplyEphemeral("Invalid week. Use the `YYYY-WW` format, e.g. `2026-07`.")
		}

		err := svc.AddVacationWeek(context.Background(), ctx.Interaction.GuildID, user.ID, week)
		switch {
		case errors.Is(err, database.ErrModeratorMissing):
			return ctx.ReplyEphemeral(fmt.Sprintf("**%s** is not being tracked.", user.Username))
		case errors.Is(err, database.ErrVacationExists):
			return ctx.ReplyEphemeral(fmt.Sprintf("Week `%s` is already marked as vacation for **%s**.", week, user.Username))
		case err != nil:
			return ctx.ReplyEphemeral("Failed to add the vacation week, try again later.")
		}

		return ctx.Reply(fmt.Sprintf("Week `%s` marked as vacation for **%s** (+7 vacation days).", week, user.Username))
	}
}

// createVacationRemoveCommand creates the /mod vacation remove subcommand
func createVacationRemoveCommand(svc *quota.Service) *discord.Command {
	return discord.NewCommand(
		"remove",
		"Unmark a vacation week for a moderator",
		"mod",
		vacationRemoveHandler(svc),
	).WithOptions(
		vacationUserOption(),
		vacationWeekOption(true),
	).WithUserPermissions(discordgo.PermissionManageServer)
}

func vacationRemoveHandler(svc *quota.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		user := ctx.GetUserOption("user")
		if user == nil {
			return ctx.ReplyEphemeral("You must specify a user.")
		}

		week := ctx.GetStringOption("week")
		err := svc.RemoveVacationWeek(context.Background(), ctx.Interaction.GuildID, user.ID, week)
		if errors.Is(err, database.ErrNotFound) {
			return ctx.ReplyEphemeral(fmt.Sprintf("Week `%s` is not marked as vacation for **%s**.", week, user.Username))
		}
		if err != nil {
			return ctx.ReplyEphemeral("Failed to remove the vacation week, try again later.")
		}

		return ctx.Reply(fmt.Sprintf("Week `%s` unmarked for **%s** (-7 vacation days).", week, user.Username))
	}
}

// createVacationListCommand creates the /mod vacation list subcommand
func createVacationListCommand(svc *quota.Service) *discord.Command {
	return discord.NewCommand(
		"list",
		"List a moderator's vacation weeks",
		"mod",
		vacationListHandler(svc),
	).WithOptions(
		vacationUserOption(),
	)
}

func vacationListHandler(svc *quota.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		user := ctx.GetUserOption("user")
		if user == nil {
			return ctx.ReplyEphemeral("You must specify a user.")
		}

		weeks, err := svc.VacationWeeks(context.Background(), ctx.Interaction.GuildID, user.ID)
		if err != nil {
			return ctx.ReplyEphemeral("Failed to list vacation weeks, try again later.")
		}
		if len(weeks) == 0 {
			return ctx.Reply(fmt.Sprintf("**%s** has no vacation weeks.", user.Username))
		}

		parts := make([]string, 0, len(weeks))
		for _, w := range weeks {
			parts = append(parts, fmt.Sprintf("`%s`", w.Week))
		}
		return ctx.Reply(fmt.Sprintf("Vacation weeks of **%s**: %s", user.Username, strings.Join(parts, ", ")))
	}
}
