// Package config - /config setup command
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/logger"
	"github.com/BTStudios/ModTrackGo/pkg/models"
	"github.com/BTStudios/ModTrackGo/pkg/quota"
	"github.com/bwmarrin/discordgo"
)

// createSetupCommand creates the /config setup subcommand
func createSetupCommand(svc *quota.Service) *discord.Command {
	return discord.NewCommand(
		"setup",
		"Enable activity tracking for this guild",
		"config",
		setupHandler(svc),
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "interval",
			Description: "Seconds between quota checks (e.g. 604800 for weekly)",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "category",
			Description: "Moderation category whose messages are not counted",
			Required:    false,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildCategory,
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "defaultquotas",
			Description: "Default weekly quotas as sent,edited,deleted",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "output",
			Description: "Text channel where quota check results are posted",
			Required:    false,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "modrole",
			Description: "Everyone with this role is registered with the default quotas",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "membercount",
			Description: "Create a voice channel showing the member count",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// setupHandler handles the /config setup command
func setupHandler(svc *quota.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		interval := ctx.GetIntOption("interval")
		if interval <= 0 {
			return ctx.ReplyEphemeral("The check interval must be a positive number of seconds.")
		}

		guildID := ctx.Interaction.GuildID
		settings := &models.GuildSettings{
			GuildID:       guildID,
			CheckInterval: interval,
		}
		if cat := ctx.GetChannelOption("category"); cat != nil {
			settings.ModCategoryID = cat.ID
		}
		if raw := ctx.GetStringOption("defaultquotas"); raw != "" {
			if _, err := models.ParseQuotaSet(raw); err != nil {
				return ctx.ReplyEphemeral("Invalid quotas. Use three numbers: `sent,edited,deleted`.")
			}
			settings.DefaultQuotas = raw
		}
		if out := ctx.GetChannelOption("output"); out != nil {
			settings.OutputChannelID = out.ID
		}
		if ctx.GetBoolOption("membercount") {
			settings.MemberCountChannelID = createMemberCountChannel(ctx, guildID)
		}

		bg := context.Background()
		err := svc.ConfigureGuild(bg, settings)
		switch {
		case errors.Is(err, database.ErrGuildExists):
			return ctx.ReplyEphemeral("This guild is already configured. Use the other `/config` subcommands to change settings.")
		case err != nil:
			return ctx.ReplyEphemeral("Failed to configure the guild, try again later.")
		}

		registered := 0
		if role := ctx.GetRoleOption("modrole"); role != nil {
			registered = registerRoleMembers(bg, ctx, svc, guildID, role.ID)
		}

		msg := fmt.Sprintf("Tracking enabled. Quota checks run every `%d` seconds.", interval)
		if registered > 0 {
			msg += fmt.Sprintf(" Registered %d moderators with the default quotas.", registered)
		} else {
			msg += " Register moderators with `/mod register`."
		}
		return ctx.Reply(msg)
	}
}

// createMemberCountChannel creates the counter voice channel seeded with the
// current member count. Returns "" when creation fails; the guild can attach
// one later with /config membercount.
func createMemberCountChannel(cmdCtx *discord.CommandContext, guildID string) string {
	count := 0
	if guild, err := cmdCtx.Session.State.Guild(guildID); err == nil {
		count = guild.MemberCount
	}

	ch, err := cmdCtx.Session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name: fmt.Sprintf("Members: %d", count),
		Type: discordgo.ChannelTypeGuildVoice,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to create member count channel in guild %s: %v", guildID, err), "ConfigSetup")
		return ""
	}
	return ch.ID
}

// registerRoleMembers registers every member holding the role, skipping
// already-tracked ones. Returns how many were newly registered.
func registerRoleMembers(ctx context.Context, cmdCtx *discord.CommandContext, svc *quota.Service, guildID, roleID string) int {
	members, err := cmdCtx.Session.GuildMembers(guildID, "", 1000)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to list members of guild %s: %v", guildID, err), "ConfigSetup")
		return 0
	}

	registered := 0
	for _, member := range members {
		if member.User == nil || member.User.Bot {
			continue
		}
		hasRole := false
		for _, r := range member.Roles {
			if r == roleID {
				hasRole = true
				break
			}
		}
		if !hasRole {
			continue
		}

		err := svc.RegisterModeratorWithDefaults(ctx, guildID, member.User.ID)
		if errors.Is(err, database.ErrAlreadyRegistered) {
			continue
		}
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to register %s in guild %s: %v", member.User.ID, guildID, err), "ConfigSetup")
			continue
		}
		registered++
	}
	return registered
}
