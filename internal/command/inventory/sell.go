package inventory

import (
	"errors"

	"vrtex-economy/internal/command"
	"vrtex-economy/internal/storage"
)

type SellCommand struct{}

func (c *SellCommand) Name() string        { return "sell" }
func (c *SellCommand) Description() string { return "Sell an item for a price of your choosing" }
func (c *SellCommand) Aliases() []string   { return []string{"vesell"} }
func (c *SellCommand) Group() string       { return "inventory" }
func (c *SellCommand) Category() string    { return "🎒 Inventory" }

func (c *SellCommand) Params() []command.Param {
	return []command.Param{
		{Name: "item", Description: "Item to sell", Kind: command.KindText, Required: true},
		{Name: "price", Description: "Sale price", Kind: command.KindInt, Required: true},
	}
}

func (c *SellCommand) Run(ctx *command.Context) error {
	item, ok := ctx.Args.String("item")
	if !ok {
		return ctx.ReplyEphemeral("Usage: sell <item> <price>")
	}
	price, ok := ctx.Args.Int("price")
	if !ok || price < 0 {
		return ctx.ReplyEphemeral("Usage: sell <item> <price>")
	}

	_, err := ctx.Storage.UpdateUser(ctx.Actor.ID, func(u *storage.User) error {
		if u.Items[item] <= 0 {
			return errNoItem
		}
		u.Items[item]--
		if u.Items[item] == 0 {
			delete(u.Items, item)
		}
		u.Wallet += price
		return nil
	})
	if errors.Is(err, errNoItem) {
		return ctx.ReplyEphemeral("You don't have that item.")
	}
	if err != nil {
		return err
	}

	return ctx.Replyf("✅ Sold **%s** for %d%s.", item, price, ctx.Storage.CurrencySymbol(ctx.GuildID))
}

func init() {
	command.RegisterCommand(&SellCommand{}, command.WithCommandLogger())
}
