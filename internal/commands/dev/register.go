// Package dev provides developer-only commands registered in the dev
// guild instead of globally.
package dev

import (
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/quota"
	"github.com/bwmarrin/discordgo"
)

// Register registers all dev commands as /dev subcommands (only in dev guild)
func Register(client *discord.ExtendedClient, svc *quota.Service) {
	evalCmd := createEvalCommand()
	checkCmd := createCheckCommand(svc)

	devGroup := &discordgo.ApplicationCommand{
		Name:        "dev",
		Description: "Development commands",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        evalCmd.Name,
				Description: evalCmd.Description,
				Options:     evalCmd.Options,
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        checkCmd.Name,
				Description: checkCmd.Description,
				Options:     checkCmd.Options,
			},
		},
	}

	client.Commands.Set("dev.eval", evalCmd)
	client.Commands.Set("dev.check", checkCmd)

	client.CommandHandler.AddDevCommand(devGroup)
}
