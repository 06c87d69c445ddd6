package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestCommandCreation(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("register", "Register a moderator", "mod", handler)

	if cmd == nil {
		t.Fatal("NewCommand returned nil")
	}
	if cmd.Name != "register" {
		t.Errorf("Name = %v, want %v", cmd.Name, "register")
	}
	if cmd.Description != "Register a moderator" {
		t.Errorf("Description = %v, want %v", cmd.Description, "Register a moderator")
	}
	if cmd.Category != "mod" {
		t.Errorf("Category = %v, want %v", cmd.Category, "mod")
	}
	if cmd.Run == nil {
		t.Error("Run function is nil")
	}
}

func TestCommandWithOptions(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "user",
		Description: "The moderator",
		Required:    true,
	}

	cmd := NewCommand("register", "Register a moderator", "mod", handler).
		WithOptions(option)

	if len(cmd.Options) != 1 {
		t.Fatalf("Options length = %v, want %v", len(cmd.Options), 1)
	}
	if cmd.Options[0].Name != "user" {
		t.Errorf("Option name = %v, want %v", cmd.Options[0].Name, "user")
	}
}

func TestCommandWithPermissions(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("setup", "Set up the guild", "config", handler).
		WithUserPermissions(discordgo.PermissionAdministrator).
		WithBotPermissions(discordgo.PermissionSendMessages)

	if cmd.UserPermissions != discordgo.PermissionAdministrator {
		t.Errorf("UserPermissions = %v, want %v", cmd.UserPermissions, discordgo.PermissionAdministrator)
	}
	if cmd.BotPermissions != discordgo.PermissionSendMessages {
		t.Errorf("BotPermissions = %v, want %v", cmd.BotPermissions, discordgo.PermissionSendMessages)
	}
}

func TestCommandAsDev(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("eval", "Evaluate code", "dev", handler).AsDev()

	if !cmd.IsDev {
		t.Error("IsDev should be true after calling AsDev()")
	}
}

func TestToApplicationCommand(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "quotas",
		Description: "Quota triple",
		Required:    true,
	}

	cmd := NewCommand("defaultquotas", "Set default quotas", "config", handler).
		WithOptions(option)

	appCmd := cmd.ToApplicationCommand()
	if appCmd == nil {
		t.Fatal("ToApplicationCommand returned nil")
	}
	if appCmd.Name != "defaultquotas" {
		t.Errorf("ApplicationCommand Name = %v, want %v", appCmd.Name, "defaultquotas")
	}
	if len(appCmd.Options) != 1 {
		t.Fatalf("ApplicationCommand Options length = %v, want %v", len(appCmd.Options), 1)
	}
}

func TestResolveCommandName(t *testing.T) {
	tests := []struct {
		name string
		data discordgo.ApplicationCommandInteractionData
		want string
	}{
		{
			name: "top level",
			data: discordgo.ApplicationCommandInteractionData{Name: "ping"},
			want: "ping",
		},
		{
			name: "subcommand",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "mod",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "register", Type: discordgo.ApplicationCommandOptionSubCommand},
				},
			},
			want: "mod.register",
		},
		{
			name: "subcommand group",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "mod",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name: "vacation",
						Type: discordgo.ApplicationCommandOptionSubCommandGroup,
						Options: []*discordgo.ApplicationCommandInteractionDataOption{
							{Name: "add", Type: discordgo.ApplicationCommandOptionSubCommand},
						},
					},
				},
			},
			want: "mod.vacation.add",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveCommandName(tt.data); got != tt.want {
				t.Errorf("resolveCommandName() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandCollection(t *testing.T) {
	cc := NewCommandCollection()

	if cc.Size() != 0 {
		t.Errorf("new collection size = %d, want 0", cc.Size())
	}

	cmd := NewCommand("ping", "Ping", "utils", func(ctx *CommandContext) error { return nil })
	cc.Set("ping", cmd)

	got, ok := cc.Get("ping")
	if !ok || got != cmd {
		t.Error("Get should return the stored command")
	}
	if cc.Size() != 1 {
		t.Errorf("collection size = %d, want 1", cc.Size())
	}
	if _, ok := cc.Get("missing"); ok {
		t.Error("Get on a missing name should report false")
	}
}
