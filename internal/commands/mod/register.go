// Package mod provides the moderator tracking commands organized as
// subcommands under /mod. Each command is in its own file.
package mod

import (
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/quota"
)

// RegisterModCommands registers all tracking commands as /mod subcommands
func RegisterModCommands(client *discord.ExtendedClient, svc *quota.Service) {
	registerCmd := createRegisterCommand(svc)
	deregisterCmd := createDeregisterCommand(svc)
	statsCmd := createStatsCommand(svc)
	setquotaCmd := createSetQuotaCommand(svc)

	vacationGroup := client.CommandHandler.BuildSubcommandGroup(
		"mod",
		"vacation",
		"Vacation week management",
		createVacationAddCommand(svc),
		createVacationRemoveCommand(svc),
		createVacationListCommand(svc),
	)

	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Moderator activity tracking",
		registerCmd,
		deregisterCmd,
		statsCmd,
		setquotaCmd,
	)
	modGroup.Options = append(modGroup.Options, vacationGroup)

	client.CommandHandler.AddGlobalCommand(modGroup)
}
