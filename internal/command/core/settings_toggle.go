package core

import (
	"vrtex-economy/internal/command"
)

type SettingsToggleCommand struct{}

func (c *SettingsToggleCommand) Name() string        { return "settings_toggle" }
func (c *SettingsToggleCommand) Description() string { return "Enable or disable a command on this server" }
func (c *SettingsToggleCommand) Aliases() []string   { return nil }
func (c *SettingsToggleCommand) Group() string       { return "core" }
func (c *SettingsToggleCommand) Category() string    { return "ℹ️ Core" }

func (c *SettingsToggleCommand) Params() []command.Param {
	return []command.Param{
		{Name: "command", Description: "Command name or alias", Kind: command.KindString, Required: true},
	}
}

func (c *SettingsToggleCommand) Run(ctx *command.Context) error {
	name, ok := ctx.Args.String("command")
	if !ok {
		return ctx.ReplyEphemeral("Usage: settings_toggle <command>")
	}

	// resolve aliases to the canonical name so the disabled set stays stable
	target, ok := command.Get(name)
	if !ok {
		return ctx.ReplyEphemeralf("❌ Unknown command: `%s`", name)
	}
	canonical := target.Name()
	if canonical == "help" {
		return ctx.ReplyEphemeral("❌ The help command cannot be disabled.")
	}

	nowDisabled, err := ctx.Storage.ToggleCommand(ctx.GuildID, canonical)
	if err != nil {
		return err
	}

	if nowDisabled {
		return ctx.ReplyEphemeralf("✅ Disabled `%s` on this server.", canonical)
	}
	return ctx.ReplyEphemeralf("✅ Enabled `%s` on this server.", canonical)
}

func init() {
	command.RegisterCommand(&SettingsToggleCommand{},
		command.WithGuildOnly(),
		command.WithManageServer(),
		command.WithCommandLogger(),
	)
}
