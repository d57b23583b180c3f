package core

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"vrtex-economy/internal/command"
)

type SettingsCommand struct{}

func (c *SettingsCommand) Name() string        { return "settings" }
func (c *SettingsCommand) Description() string { return "Show this server's bot settings" }
func (c *SettingsCommand) Aliases() []string   { return nil }
func (c *SettingsCommand) Group() string       { return "core" }
func (c *SettingsCommand) Category() string    { return "ℹ️ Core" }

func (c *SettingsCommand) Params() []command.Param { return nil }

func (c *SettingsCommand) Run(ctx *command.Context) error {
	sv, err := ctx.Storage.Server(ctx.GuildID)
	if err != nil {
		return err
	}

	premium := "Inactive"
	if ctx.Storage.PremiumActive(ctx.GuildID) {
		exp, _ := sv.Premium.ExpiresAt()
		premium = fmt.Sprintf("Active until %s", exp.Format(time.DateOnly))
	}

	prefix := "none (premium required)"
	if p := ctx.Storage.ActivePrefix(ctx.GuildID); p != "" {
		prefix = fmt.Sprintf("`%s`", p)
	}

	disabled := "none"
	if len(sv.DisabledCommands) > 0 {
		names := append([]string(nil), sv.DisabledCommands...)
		sort.Strings(names)
		disabled = "`" + strings.Join(names, "`, `") + "`"
	}

	return ctx.ReplyEmbedEphemeral(&discordgo.MessageEmbed{
		Title: "⚙️ Server Settings",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Premium", Value: premium, Inline: true},
			{Name: "Text prefix", Value: prefix, Inline: true},
			{Name: "Disabled commands", Value: disabled},
		},
	})
}

func init() {
	command.RegisterCommand(&SettingsCommand{},
		command.WithGuildOnly(),
		command.WithManageServer(),
		command.WithCommandLogger(),
	)
}
