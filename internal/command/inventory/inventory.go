// Package inventory implements item commands: inventory listing, use and sell.
package inventory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"vrtex-economy/internal/command"
)

type InventoryCommand struct{}

func (c *InventoryCommand) Name() string        { return "inventory" }
func (c *InventoryCommand) Description() string { return "Show your inventory" }
func (c *InventoryCommand) Aliases() []string   { return []string{"inv", "veinventory"} }
func (c *InventoryCommand) Group() string       { return "inventory" }
func (c *InventoryCommand) Category() string    { return "🎒 Inventory" }

func (c *InventoryCommand) Params() []command.Param { return nil }

func (c *InventoryCommand) Run(ctx *command.Context) error {
	u, err := ctx.Storage.User(ctx.Actor.ID)
	if err != nil {
		return err
	}

	if len(u.Items) == 0 {
		return ctx.ReplyEphemeral("Your inventory is empty.")
	}

	names := make([]string, 0, len(u.Items))
	for name := range u.Items {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s x%d\n", name, u.Items[name])
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎒 %s's Inventory", ctx.DisplayName(ctx.Actor)),
		Description: b.String(),
	})
}

func init() {
	command.RegisterCommand(&InventoryCommand{}, command.WithCommandLogger())
}
