package economy

import (
	"errors"

	"vrtex-economy/internal/command"
	"vrtex-economy/internal/storage"
)

var errBadTransfer = errors.New("invalid transfer")

type TransferCommand struct{}

func (c *TransferCommand) Name() string        { return "transfer" }
func (c *TransferCommand) Description() string { return "Send money to another user" }
func (c *TransferCommand) Aliases() []string   { return nil }
func (c *TransferCommand) Group() string       { return "economy" }
func (c *TransferCommand) Category() string    { return "💰 Economy" }

func (c *TransferCommand) Params() []command.Param {
	return []command.Param{
		{Name: "member", Description: "Recipient", Kind: command.KindUser, Required: true},
		{Name: "amount", Description: "Amount to send", Kind: command.KindInt, Required: true},
	}
}

func (c *TransferCommand) Run(ctx *command.Context) error {
	recipientID, _ := ctx.Args.UserID("member")
	amount, _ := ctx.Args.Int("amount")

	if recipientID == ctx.Actor.ID {
		return ctx.ReplyEphemeral("❌ You cannot transfer to yourself.")
	}

	// both wallets move inside one users-namespace update
	err := ctx.Storage.UpdateUserPair(ctx.Actor.ID, recipientID, func(sender, recipient *storage.User) error {
		if amount <= 0 || amount > sender.Wallet {
			return errBadTransfer
		}
		sender.Wallet -= amount
		recipient.Wallet += amount
		return nil
	})
	if errors.Is(err, errBadTransfer) {
		return ctx.ReplyEphemeral("❌ Invalid transfer amount or insufficient balance.")
	}
	if err != nil {
		return err
	}

	return ctx.Replyf("✅ Transferred %d%s to <@%s>!", amount, ctx.Storage.CurrencySymbol(ctx.GuildID), recipientID)
}

func init() {
	command.RegisterCommand(&TransferCommand{}, command.WithCommandLogger())
}
