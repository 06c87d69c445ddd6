// Package utils - /utils status command
package utils

import (
	"fmt"

	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/errors"
)

// createStatusCommand creates the /utils status subcommand
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Show the bot's status",
		"utils",
		statusHandler,
	)
}

// statusHandler handles the /utils status command
func statusHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		dbStatus, _ := database.Get().GetStatus()

		ctx.Reply(fmt.Sprintf(
			"📊 **Bot status**\n"+
				"• Bot: 🟢 Online\n"+
				"• Database: %s\n"+
				"• Guilds: %d",
			dbStatus,
			ctx.Client.GuildCount(),
		))
	}()
	return nil
}
