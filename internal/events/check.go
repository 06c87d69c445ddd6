// Package events - Discord reporting of quota check results
package events

import (
	"fmt"
	"strings"
	"time"

	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/logger"
	"github.com/BTStudios/ModTrackGo/pkg/models"
	"github.com/BTStudios/ModTrackGo/pkg/quota"
	"github.com/bwmarrin/discordgo"
)

// CheckReporter posts quota check results into the guild's configured
// output channel. Guilds without an output channel are skipped.
type CheckReporter struct {
	client *discord.ExtendedClient
}

// NewCheckReporter creates a CheckReporter bound to the Discord client
func NewCheckReporter(client *discord.ExtendedClient) *CheckReporter {
	return &CheckReporter{client: client}
}

// QuotaCheckCompleted implements quota.Notifier
func (r *CheckReporter) QuotaCheckCompleted(settings *models.GuildSettings, results []quota.EvaluationResult) {
	if settings.OutputChannelID == "" || len(results) == 0 {
		return
	}

	var b strings.Builder
	for _, res := range results {
		switch res.Outcome {
		case quota.OutcomeVacation:
			fmt.Fprintf(&b, "🏖 <@%s> — on vacation\n", res.UserID)
		case quota.OutcomeCompliant:
			fmt.Fprintf(&b, "✅ <@%s> — `%s` vs quota `%s`, streak %d\n", res.UserID, res.Counts, res.Quotas, res.Streak)
		default:
			fmt.Fprintf(&b, "❌ <@%s> — `%s` vs quota `%s`, streak reset\n", res.UserID, res.Counts, res.Quotas)
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Quota check — week %s", results[0].Week),
		Description: b.String(),
		Color:       0x5865F2,
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	if _, err := r.client.Session.ChannelMessageSendEmbed(settings.OutputChannelID, embed); err != nil {
		logger.Error(fmt.Sprintf("Failed to post check results for guild %s: %v", settings.GuildID, err), "CheckReporter")
	}
}

var _ quota.Notifier = (*CheckReporter)(nil)
