// Package utils - /utils help command
package utils

import (
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/errors"
)

// createHelpCommand creates the /utils help subcommand
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Show command help",
		"utils",
		helpHandler,
	)
}

// helpHandler handles the /utils help command
func helpHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		ctx.Reply(
			"📖 **ModTrack help**\n\n" +
				"**Configuration:**\n" +
				"• `/config setup <interval>` - Enable tracking for this guild\n" +
				"• `/config category [category]` - Exclude a moderation category from counting\n" +
				"• `/config interval <seconds>` - Change the check interval\n" +
				"• `/config defaultquotas <sent,edited,deleted>` - Set default quotas\n" +
				"• `/config output [channel]` - Channel for quota check results\n" +
				"• `/config show` - Show the current configuration\n\n" +
				"**Moderator tracking:**\n" +
				"• `/mod register <user> [quotas]` - Start tracking a moderator\n" +
				"• `/mod deregister <user>` - Stop tracking a moderator\n" +
				"• `/mod stats <user> [days]` - Activity counts and quota progress\n" +
				"• `/mod setquota <user> <quotas>` - Change a moderator's quotas\n" +
				"• `/mod vacation add <user> [week]` - Excuse a week from checks\n" +
				"• `/mod vacation remove <user> <week>` - Remove a vacation week\n" +
				"• `/mod vacation list <user>` - List vacation weeks\n\n" +
				"**Misc:**\n" +
				"• `/sticky create <title> <description>` - Pin an embed to a channel\n" +
				"• `/sticky remove` - Remove the channel's sticky\n" +
				"• `/utils ping` - Check latency\n" +
				"• `/utils status` - Bot status\n" +
				"• `/utils stats` - Runtime statistics",
		)
	}()
	return nil
}
