// Package utils - /utils stats command
package utils

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/BTStudios/ModTrackGo/pkg/config"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createStatsCommand creates the /utils stats subcommand
func createStatsCommand() *discord.Command {
	return discord.NewCommand(
		"stats",
		"Show runtime statistics",
		"utils",
		statsHandler,
	)
}

// statsHandler handles the /utils stats command
func statsHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		memberCount := 0
		for _, guild := range ctx.Session.State.Guilds {
			memberCount += guild.MemberCount
		}

		embed := &discordgo.MessageEmbed{
			Title: "📊 Bot statistics",
			Color: 0x5865F2,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "🤖 Bot version",
					Value:  config.Version,
					Inline: true,
				},
				{
					Name:   "🐹 Go version",
					Value:  strings.TrimPrefix(runtime.Version(), "go"),
					Inline: true,
				},
				{
					Name:   "📚 DiscordGo version",
					Value:  discordgo.VERSION,
					Inline: true,
				},
				{
					Name:   "🖥 Memory",
					Value:  fmt.Sprintf("%.2f MB", float64(m.Alloc)/1024/1024),
					Inline: true,
				},
				{
					Name:   "⚙️ Runtime",
					Value:  fmt.Sprintf("%d goroutines / %d CPUs", runtime.NumGoroutine(), runtime.NumCPU()),
					Inline: true,
				},
				{
					Name:   "⏱ Uptime",
					Value:  formatDuration(time.Since(ctx.Client.StartTime)),
					Inline: true,
				},
				{
					Name:   "🏠 Guilds",
					Value:  fmt.Sprintf("%d", ctx.Client.GuildCount()),
					Inline: true,
				},
				{
					Name:   "👥 Members",
					Value:  fmt.Sprintf("%d", memberCount),
					Inline: true,
				},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text:    "ModTrack",
				IconURL: ctx.Client.Session.State.User.AvatarURL(""),
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		ctx.ReplyEmbed(embed)
	}()
	return nil
}

// formatDuration formats a time.Duration into a human-readable string
func formatDuration(dur time.Duration) string {
	days := int(dur.Hours() / 24)
	hours := int(dur.Hours()) % 24
	minutes := int(dur.Minutes()) % 60
	seconds := int(dur.Seconds()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))

	return strings.Join(parts, " ")
}
