package job

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"vrtex-economy/internal/catalog"
	"vrtex-economy/internal/command"
)

type JobsCommand struct{}

func (c *JobsCommand) Name() string        { return "jobs" }
func (c *JobsCommand) Description() string { return "List available jobs" }
func (c *JobsCommand) Aliases() []string   { return nil }
func (c *JobsCommand) Group() string       { return "job" }
func (c *JobsCommand) Category() string    { return "💼 Jobs" }

func (c *JobsCommand) Params() []command.Param { return nil }

func (c *JobsCommand) Run(ctx *command.Context) error {
	embed := &discordgo.MessageEmbed{Title: "💼 Jobs"}
	for _, name := range catalog.JobNames() {
		info := catalog.Jobs[name]
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  catalog.TitleCase(name),
			Value: fmt.Sprintf("Pay: %d | Promote chance: %d%%", info.Pay, int(info.PromoteChance*100)),
		})
	}
	return ctx.ReplyEmbed(embed)
}

func init() {
	command.RegisterCommand(&JobsCommand{}, command.WithCommandLogger())
}
