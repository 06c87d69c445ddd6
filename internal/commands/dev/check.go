// Package dev - /dev check command
package dev

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	pkgerrors "github.com/BTStudios/ModTrackGo/pkg/errors"
	"github.com/BTStudios/ModTrackGo/pkg/quota"
)

// createCheckCommand creates the /dev check command
func createCheckCommand(svc *quota.Service) *discord.Command {
	return discord.NewCommand(
		"check",
		"Run a quota check for this guild right now",
		"dev",
		checkHandler(svc),
	)
}

// checkHandler handles the /dev check command
func checkHandler(svc *quota.Service) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		go func() {
			defer pkgerrors.RecoverMiddleware()()

			if !isDev(ctx.User().ID) {
				ctx.ReplyEphemeral("❌ **Access denied:** this command is for developers only.")
				return
			}
			ctx.Defer()

			bg := context.Background()
			settings, err := svc.GuildSettings(bg, ctx.Interaction.GuildID)
			if errors.Is(err, database.ErrNotFound) {
				ctx.EditReply("This guild is not configured.")
				return
			}
			if err != nil {
				ctx.EditReply(fmt.Sprintf("Failed to load guild settings: %v", err))
				return
			}

			results, err := svc.RunGuildCheck(bg, settings, time.Now().Unix())
			if err != nil {
				ctx.EditReply(fmt.Sprintf("Quota check failed: %v", err))
				return
			}

			if len(results) == 0 {
				ctx.EditReply("Quota check ran, no active moderators.")
				return
			}
			var b strings.Builder
			fmt.Fprintf(&b, "Quota check for week `%s`:\n", results[0].Week)
			for _, r := range results {
				fmt.Fprintf(&b, "• <@%s> — %s (`%s` vs quota `%s`, streak %d)\n",
					r.UserID, r.Outcome, r.Counts, r.Quotas, r.Streak)
			}
			ctx.EditReply(b.String())
		}()
		return nil
	}
}
