// Package dev - /dev eval command
package dev

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/BTStudios/ModTrackGo/pkg/config"
	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/errors"
	"github.com/BTStudios/ModTrackGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// createEvalCommand creates the /dev eval command
func createEvalCommand() *discord.Command {
	return discord.NewCommand(
		"eval",
		"Evaluate Go code against the running bot (dangerous)",
		"dev",
		evalHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "code",
			Description: "Go code or expression to evaluate",
			Required:    true,
		},
	)
}

func evalHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		start := time.Now()

		if !isDev(ctx.User().ID) {
			ctx.ReplyEphemeral("❌ **Access denied:** this command is for developers only.")
			return
		}

		// Compiling the script can take a moment.
		ctx.Defer()

		code := ctx.GetStringOption("code")
		code = strings.TrimPrefix(code, "```go")
		code = strings.TrimPrefix(code, "```")
		code = strings.TrimSuffix(code, "```")
		code = strings.TrimSpace(code)

		i := interp.New(interp.Options{})

		if err := i.Use(stdlib.Symbols); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Failed to load stdlib: %v", err))
			return
		}

		// Expose the live bot objects so scripts can poke at them
		// directly as Ctx, Bot, Session, DB and Config.
		botExports := map[string]reflect.Value{
			"Ctx":     reflect.ValueOf(ctx),
			"Bot":     reflect.ValueOf(ctx.Client),
			"Session": reflect.ValueOf(ctx.Session),
			"DB":      reflect.ValueOf(database.Get()),
			"Config":  reflect.ValueOf(config.Get()),
		}

		if err := i.Use(interp.Exports{
			"github.com/BTStudios/ModTrackGo/internal/commands/dev/dev": botExports,
		}); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Failed to register bot symbols: %v", err))
			return
		}

		if _, err := i.Eval(`import . "github.com/BTStudios/ModTrackGo/internal/commands/dev"`); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Failed to import bot symbols: %v", err))
			return
		}

		res, err := i.Eval(code)

		var output string
		if err != nil {
			output = fmt.Sprintf("❌ **Execution error:**\n```go\n%v\n```", err)
		} else {
			var resStr string
			if res.IsValid() {
				resStr = fmt.Sprintf("%#v", res.Interface())
			} else {
				resStr = "nil"
			}
			if len(resStr) > 1900 {
				resStr = resStr[:1900] + "... (truncated)"
			}
			output = fmt.Sprintf("✅ **Result:**\n```go\n%s\n```", resStr)
		}

		logger.Debug(fmt.Sprintf("Eval finished in %s", time.Since(start)), "DevEval")
		ctx.EditReply(output)
	}()
	return nil
}

// isDev checks the caller against the hardcoded developer allowlist
func isDev(userID string) bool {
	return userID == "183712370193678336"
}
