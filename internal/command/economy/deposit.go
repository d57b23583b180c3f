package economy

import (
	"errors"

	"vrtex-economy/internal/command"
	"vrtex-economy/internal/storage"
)

var errBadDeposit = errors.New("invalid deposit")

type DepositCommand struct{}

func (c *DepositCommand) Name() string        { return "deposit" }
func (c *DepositCommand) Description() string { return "Deposit money into your bank" }
func (c *DepositCommand) Aliases() []string   { return nil }
func (c *DepositCommand) Group() string       { return "economy" }
func (c *DepositCommand) Category() string    { return "💰 Economy" }

func (c *DepositCommand) Params() []command.Param {
	return []command.Param{
		{Name: "amount", Description: "Amount to deposit", Kind: command.KindInt, Required: true},
	}
}

func (c *DepositCommand) Run(ctx *command.Context) error {
	amount, _ := ctx.Args.Int("amount")

	_, err := ctx.Storage.UpdateUser(ctx.Actor.ID, func(u *storage.User) error {
		if amount <= 0 || amount > u.Wallet {
			return errBadDeposit
		}
		u.Wallet -= amount
		u.Bank += amount
		return nil
	})
	if errors.Is(err, errBadDeposit) {
		return ctx.ReplyEphemeral("❌ Invalid deposit amount or insufficient wallet funds.")
	}
	if err != nil {
		return err
	}

	return ctx.Replyf("✅ Deposited %d%s into your bank.", amount, ctx.Storage.CurrencySymbol(ctx.GuildID))
}

func init() {
	command.RegisterCommand(&DepositCommand{}, command.WithCommandLogger())
}
