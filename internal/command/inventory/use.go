package inventory

import (
	"errors"

	"vrtex-economy/internal/command"
	"vrtex-economy/internal/storage"
)

var errNoItem = errors.New("item not in inventory")

type UseCommand struct{}

func (c *UseCommand) Name() string        { return "use" }
func (c *UseCommand) Description() string { return "Use an item from your inventory" }
func (c *UseCommand) Aliases() []string   { return []string{"veuse"} }
func (c *UseCommand) Group() string       { return "inventory" }
func (c *UseCommand) Category() string    { return "🎒 Inventory" }

func (c *UseCommand) Params() []command.Param {
	return []command.Param{
		{Name: "item", Description: "Item to use", Kind: command.KindText, Required: true},
	}
}

func (c *UseCommand) Run(ctx *command.Context) error {
	item, ok := ctx.Args.String("item")
	if !ok {
		return ctx.ReplyEphemeral("Usage: use <item>")
	}

	_, err := ctx.Storage.UpdateUser(ctx.Actor.ID, func(u *storage.User) error {
		if u.Items[item] <= 0 {
			return errNoItem
		}
		u.Items[item]--
		if u.Items[item] == 0 {
			delete(u.Items, item)
		}
		return nil
	})
	if errors.Is(err, errNoItem) {
		return ctx.ReplyEphemeral("You don't have that item.")
	}
	if err != nil {
		return err
	}

	return ctx.Replyf("You used **%s**.", item)
}

func init() {
	command.RegisterCommand(&UseCommand{}, command.WithCommandLogger())
}
