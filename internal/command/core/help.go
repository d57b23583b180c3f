// Package core implements the help and per-guild settings commands.
package core

import (
	"github.com/bwmarrin/discordgo"

	"vrtex-economy/internal/command"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Show the command overview" }
func (c *HelpCommand) Aliases() []string   { return []string{"vehelp"} }
func (c *HelpCommand) Group() string       { return "core" }
func (c *HelpCommand) Category() string    { return "ℹ️ Core" }

func (c *HelpCommand) Params() []command.Param { return nil }

func (c *HelpCommand) Run(ctx *command.Context) error {
	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       "VRTEX Economy",
		Description: "Earn, spend and build. Slash commands work everywhere; VRTEX+ servers also get text commands with a custom prefix.",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Quick", Value: "`balance` `deposit` `withdraw` `transfer` `leaderboard` `profile`"},
			{Name: "💰 Economy", Value: "Check balances, move money between wallet and bank, send coins to others."},
			{Name: "🎮 Games & Jobs", Value: "`work` `jobs` `applyjob` `quitjob` `promote`. Work every hour, earn XP and level up."},
			{Name: "🏠 Business & Market", Value: "`business list|buy|claim|info` `inventory` `use` `sell`"},
			{Name: "🗺️ Adventure & Quests", Value: "`adventure` `quests` `achievements`"},
			{Name: "💎 Premium perks", Value: "Text-prefix commands, custom prefix via `settings_prefix`, and a 25% work bonus."},
		},
	})
}

func init() {
	command.RegisterCommand(&HelpCommand{}, command.WithCommandLogger())
}
