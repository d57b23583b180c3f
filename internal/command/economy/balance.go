package economy

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"vrtex-economy/internal/command"
)

type BalanceCommand struct{}

func (c *BalanceCommand) Name() string        { return "balance" }
func (c *BalanceCommand) Description() string { return "Check your wallet & bank" }
func (c *BalanceCommand) Aliases() []string   { return []string{"bal", "vebalance"} }
func (c *BalanceCommand) Group() string       { return "economy" }
func (c *BalanceCommand) Category() string    { return "💰 Economy" }

func (c *BalanceCommand) Params() []command.Param {
	return []command.Param{
		{Name: "member", Description: "Member to check", Kind: command.KindUser},
	}
}

func (c *BalanceCommand) Run(ctx *command.Context) error {
	targetID := ctx.Actor.ID
	if id, ok := ctx.Args.UserID("member"); ok {
		targetID = id
	}
	target := ctx.ResolveUser(targetID)

	user, err := ctx.Storage.User(targetID)
	if err != nil {
		return err
	}

	currency, symbol := "Coins", "$"
	if ctx.GuildID != "" {
		if e, err := ctx.Storage.Economy(ctx.GuildID); err == nil {
			currency, symbol = e.CurrencyName, e.CurrencySymbol
		}
	}

	membership := "Normal"
	if user.Membership {
		membership = "VRTEX+"
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Balance", ctx.DisplayName(target)),
		Fields: []*discordgo.MessageEmbedField{
			{Name: fmt.Sprintf("%s (Wallet)", currency), Value: fmt.Sprintf("%d %s", user.Wallet, symbol), Inline: true},
			{Name: fmt.Sprintf("%s (Bank)", currency), Value: fmt.Sprintf("%d %s", user.Bank, symbol), Inline: true},
			{Name: "Membership", Value: membership},
		},
	})
}

func init() {
	command.RegisterCommand(&BalanceCommand{}, command.WithCommandLogger())
}
