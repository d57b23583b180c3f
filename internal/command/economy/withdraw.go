package economy

import (
	"errors"

	"vrtex-economy/internal/command"
	"vrtex-economy/internal/storage"
)

var errBadWithdraw = errors.New("invalid withdraw")

type WithdrawCommand struct{}

func (c *WithdrawCommand) Name() string        { return "withdraw" }
func (c *WithdrawCommand) Description() string { return "Withdraw money from your bank" }
func (c *WithdrawCommand) Aliases() []string   { return nil }
func (c *WithdrawCommand) Group() string       { return "economy" }
func (c *WithdrawCommand) Category() string    { return "💰 Economy" }

func (c *WithdrawCommand) Params() []command.Param {
	return []command.Param{
		{Name: "amount", Description: "Amount to withdraw", Kind: command.KindInt, Required: true},
	}
}

func (c *WithdrawCommand) Run(ctx *command.Context) error {
	amount, _ := ctx.Args.Int("amount")

	_, err := ctx.Storage.UpdateUser(ctx.Actor.ID, func(u *storage.User) error {
		if amount <= 0 || amount > u.Bank {
			return errBadWithdraw
		}
		u.Bank -= amount
		u.Wallet += amount
		return nil
	})
	if errors.Is(err, errBadWithdraw) {
		return ctx.ReplyEphemeral("❌ Invalid withdraw amount or insufficient bank funds.")
	}
	if err != nil {
		return err
	}

	return ctx.Replyf("✅ Withdrawn %d%s to your wallet.", amount, ctx.Storage.CurrencySymbol(ctx.GuildID))
}

func init() {
	command.RegisterCommand(&WithdrawCommand{}, command.WithCommandLogger())
}
