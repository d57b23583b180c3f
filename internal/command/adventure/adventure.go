// Package adventure implements the adventure minigame plus the static
// quest and achievement boards.
package adventure

import (
	"fmt"
	"math/rand"

	"vrtex-economy/internal/catalog"
	"vrtex-economy/internal/command"
	"vrtex-economy/internal/storage"
)

type AdventureCommand struct{}

func (c *AdventureCommand) Name() string        { return "adventure" }
func (c *AdventureCommand) Description() string { return "Go on an adventure" }
func (c *AdventureCommand) Aliases() []string   { return []string{"veadventure"} }
func (c *AdventureCommand) Group() string       { return "adventure" }
func (c *AdventureCommand) Category() string    { return "🗺️ Adventure" }

func (c *AdventureCommand) Params() []command.Param { return nil }

func (c *AdventureCommand) Run(ctx *command.Context) error {
	outcome := catalog.AdventureOutcomes[rand.Intn(len(catalog.AdventureOutcomes))]

	_, err := ctx.Storage.UpdateUser(ctx.Actor.ID, func(u *storage.User) error {
		u.Wallet += outcome.Coins
		if u.Wallet < 0 {
			u.Wallet = 0
		}
		if outcome.Item != "" {
			u.Items[outcome.Item]++
		}
		return nil
	})
	if err != nil {
		return err
	}

	return ctx.Replyf("🗺️ %s", describeOutcome(outcome, ctx.Storage.CurrencySymbol(ctx.GuildID)))
}

func describeOutcome(o catalog.AdventureOutcome, symbol string) string {
	switch {
	case o.Item != "":
		return fmt.Sprintf("%s: **%s**", o.Text, o.Item)
	case o.Coins > 0:
		return fmt.Sprintf("%s: +%d%s", o.Text, o.Coins, symbol)
	case o.Coins < 0:
		return fmt.Sprintf("%s: %d%s", o.Text, o.Coins, symbol)
	default:
		return o.Text
	}
}

func init() {
	command.RegisterCommand(&AdventureCommand{}, command.WithCommandLogger())
}
