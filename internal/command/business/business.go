// Package business implements the business command family: a single
// canonical command routed by sub-action (list, buy, claim, info) on both
// transports.
package business

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"vrtex-economy/internal/catalog"
	"vrtex-economy/internal/command"
	"vrtex-economy/internal/storage"
)

const usage = "Usage: business list | buy <name> | claim | info <name>"

var (
	errAlreadyOwned = errors.New("business already owned")
	errNotEnough    = errors.New("not enough money")
)

type BusinessCommand struct{}

func (c *BusinessCommand) Name() string        { return "business" }
func (c *BusinessCommand) Description() string { return "Business commands" }
func (c *BusinessCommand) Aliases() []string   { return []string{"vebusiness"} }
func (c *BusinessCommand) Group() string       { return "business" }
func (c *BusinessCommand) Category() string    { return "🏠 Business" }

func (c *BusinessCommand) Params() []command.Param {
	return []command.Param{
		{Name: "action", Description: "list | buy | claim | info", Kind: command.KindString, Required: true},
		{Name: "name", Description: "Business name", Kind: command.KindText},
	}
}

// SlashDefinition exposes the family as native subcommands.
func (c *BusinessCommand) SlashDefinition() *discordgo.ApplicationCommand {
	nameOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "name",
		Description: "Business name",
		Required:    true,
	}
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "Show available businesses",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "buy",
				Description: "Buy a business",
				Options:     []*discordgo.ApplicationCommandOption{nameOption},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "claim",
				Description: "Claim profits from your businesses",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "info",
				Description: "Get info on a business",
				Options:     []*discordgo.ApplicationCommandOption{nameOption},
			},
		},
	}
}

func (c *BusinessCommand) Run(ctx *command.Context) error {
	action, _ := ctx.Args.String("action")
	name, _ := ctx.Args.String("name")

	switch action {
	case "list":
		return c.list(ctx)
	case "buy":
		return c.buy(ctx, name)
	case "claim":
		return c.claim(ctx)
	case "info":
		return c.info(ctx, name)
	default:
		return ctx.ReplyEphemeral(usage)
	}
}

func (c *BusinessCommand) list(ctx *command.Context) error {
	embed := &discordgo.MessageEmbed{Title: "🏠 Available Businesses"}
	for _, name := range catalog.BusinessNames() {
		info := catalog.Businesses[name]
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  name,
			Value: fmt.Sprintf("Cost: %d | Profit: %d", info.Cost, info.Profit),
		})
	}
	return ctx.ReplyEmbed(embed)
}

func (c *BusinessCommand) buy(ctx *command.Context, name string) error {
	if name == "" {
		return ctx.ReplyEphemeral(usage)
	}
	name = catalog.TitleCase(name)

	info, ok := catalog.Businesses[name]
	if !ok {
		return ctx.ReplyEphemeral("❌ Business not found.")
	}

	_, err := ctx.Storage.UpdateUser(ctx.Actor.ID, func(u *storage.User) error {
		if _, owned := u.Businesses[name]; owned {
			return errAlreadyOwned
		}
		if u.Wallet < info.Cost {
			return errNotEnough
		}
		u.Wallet -= info.Cost
		// snapshot copy: later catalog changes do not affect owned businesses
		u.Businesses[name] = info
		return nil
	})
	switch {
	case errors.Is(err, errAlreadyOwned):
		return ctx.ReplyEphemeral("❌ You already own this business.")
	case errors.Is(err, errNotEnough):
		return ctx.ReplyEphemeral("❌ Not enough money.")
	case err != nil:
		return err
	}

	return ctx.Replyf("✅ You bought **%s**!", name)
}

func (c *BusinessCommand) claim(ctx *command.Context) error {
	total := 0
	_, err := ctx.Storage.UpdateUser(ctx.Actor.ID, func(u *storage.User) error {
		total = 0
		for _, b := range u.Businesses {
			total += b.Profit
		}
		u.Wallet += total
		return nil
	})
	if err != nil {
		return err
	}
	return ctx.Replyf("✅ Claimed %d%s from your businesses.", total, ctx.Storage.CurrencySymbol(ctx.GuildID))
}

func (c *BusinessCommand) info(ctx *command.Context, name string) error {
	if name == "" {
		return ctx.ReplyEphemeral(usage)
	}
	name = catalog.TitleCase(name)

	info, ok := catalog.Businesses[name]
	if !ok {
		return ctx.ReplyEphemeral("❌ Business not found.")
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s Info", name),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Cost", Value: strconv.Itoa(info.Cost), Inline: true},
			{Name: "Profit", Value: strconv.Itoa(info.Profit), Inline: true},
			{Name: "Tier", Value: strconv.Itoa(info.Tier), Inline: true},
		},
	})
}

func init() {
	command.RegisterCommand(&BusinessCommand{}, command.WithCommandLogger())
}
