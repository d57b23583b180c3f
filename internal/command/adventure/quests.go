package adventure

import (
	"github.com/bwmarrin/discordgo"

	"vrtex-economy/internal/command"
)

type QuestsCommand struct{}

func (c *QuestsCommand) Name() string        { return "quests" }
func (c *QuestsCommand) Description() string { return "Show available quests" }
func (c *QuestsCommand) Aliases() []string   { return []string{"vequests"} }
func (c *QuestsCommand) Group() string       { return "adventure" }
func (c *QuestsCommand) Category() string    { return "🗺️ Adventure" }

func (c *QuestsCommand) Params() []command.Param { return nil }

func (c *QuestsCommand) Run(ctx *command.Context) error {
	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title: "📜 Quests",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Daily Grind", Value: "Work 3 times today."},
			{Name: "Treasure Hunter", Value: "Go on 5 adventures."},
			{Name: "Entrepreneur", Value: "Own your first business."},
		},
	})
}

func init() {
	command.RegisterCommand(&QuestsCommand{}, command.WithCommandLogger())
}
