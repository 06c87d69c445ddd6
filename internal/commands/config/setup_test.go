package config

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestSetupCommandOptions(t *testing.T) {
	cmd := createSetupCommand(nil)

	if cmd.Name != "setup" {
		t.Errorf("name = %q, want setup", cmd.Name)
	}

	want := map[string]discordgo.ApplicationCommandOptionType{
		"interval":      discordgo.ApplicationCommandOptionInteger,
		"category":      discordgo.ApplicationCommandOptionChannel,
		"defaultquotas": discordgo.ApplicationCommandOptionString,
		"output":        discordgo.ApplicationCommandOptionChannel,
		"modrole":       discordgo.ApplicationCommandOptionRole,
		"membercount":   discordgo.ApplicationCommandOptionBoolean,
	}

	got := make(map[string]discordgo.ApplicationCommandOptionType, len(cmd.Options))
	for _, opt := range cmd.Options {
		got[opt.Name] = opt.Type
	}

	for name, typ := range want {
		if got[name] != typ {
			t.Errorf("option %q type = %v, want %v", name, got[name], typ)
		}
	}
	if len(got) != len(want) {
		t.Errorf("setup has %d options, want %d", len(got), len(want))
	}

	for _, opt := range cmd.Options {
		if opt.Name == "interval" && !opt.Required {
			t.Error("interval option must be required")
		}
		if opt.Name != "interval" && opt.Required {
			t.Errorf("option %q must be optional", opt.Name)
		}
	}
}
