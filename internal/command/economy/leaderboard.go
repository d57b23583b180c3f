package economy

import (
	"fmt"
	"sort"

	"github.com/bwmarrin/discordgo"

	"vrtex-economy/internal/command"
)

const leaderboardSize = 10

type LeaderboardCommand struct{}

func (c *LeaderboardCommand) Name() string        { return "leaderboard" }
func (c *LeaderboardCommand) Description() string { return "View the richest users" }
func (c *LeaderboardCommand) Aliases() []string   { return []string{"veleaderboard", "lb"} }
func (c *LeaderboardCommand) Group() string       { return "economy" }
func (c *LeaderboardCommand) Category() string    { return "💰 Economy" }

func (c *LeaderboardCommand) Params() []command.Param { return nil }

func (c *LeaderboardCommand) Run(ctx *command.Context) error {
	type entry struct {
		id    string
		total int
	}
	var ranking []entry
	for id, u := range ctx.Storage.AllUsers() {
		ranking = append(ranking, entry{id: id, total: u.Wallet + u.Bank})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].total != ranking[j].total {
			return ranking[i].total > ranking[j].total
		}
		return ranking[i].id < ranking[j].id
	})

	symbol := ctx.Storage.CurrencySymbol(ctx.GuildID)
	embed := &discordgo.MessageEmbed{Title: "💰 Top Richest Users"}
	for i, e := range ranking {
		if i >= leaderboardSize {
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  ctx.DisplayName(ctx.ResolveUser(e.id)),
			Value: fmt.Sprintf("Total: %d%s", e.total, symbol),
		})
	}
	return ctx.ReplyEmbed(embed)
}

func init() {
	command.RegisterCommand(&LeaderboardCommand{}, command.WithCommandLogger())
}
