package core

import (
	"strings"

	"vrtex-economy/internal/command"
)

type SettingsPrefixCommand struct{}

func (c *SettingsPrefixCommand) Name() string        { return "settings_prefix" }
func (c *SettingsPrefixCommand) Description() string { return "Change the text-command prefix" }
func (c *SettingsPrefixCommand) Aliases() []string   { return nil }
func (c *SettingsPrefixCommand) Group() string       { return "core" }
func (c *SettingsPrefixCommand) Category() string    { return "ℹ️ Core" }

func (c *SettingsPrefixCommand) Params() []command.Param {
	return []command.Param{
		{Name: "prefix", Description: "New prefix (1-10 characters)", Kind: command.KindString, Required: true},
	}
}

func (c *SettingsPrefixCommand) Run(ctx *command.Context) error {
	if !ctx.Storage.PremiumActive(ctx.GuildID) {
		return ctx.ReplyEphemeral("This server is not VRTEX+. Text prefixes are a premium feature.")
	}

	prefix, ok := ctx.Args.String("prefix")
	if !ok {
		return ctx.ReplyEphemeral("Usage: settings_prefix <prefix>")
	}
	prefix = strings.TrimSpace(prefix)
	if len(prefix) < 1 || len(prefix) > 10 || strings.ContainsAny(prefix, " \t\n") {
		return ctx.ReplyEphemeral("❌ Prefix must be 1-10 characters with no spaces.")
	}

	if err := ctx.Storage.SetPrefix(ctx.GuildID, prefix); err != nil {
		return err
	}
	return ctx.ReplyEphemeralf("✅ Text prefix set to `%s`.", prefix)
}

func init() {
	command.RegisterCommand(&SettingsPrefixCommand{},
		command.WithGuildOnly(),
		command.WithManageServer(),
		command.WithCommandLogger(),
	)
}
