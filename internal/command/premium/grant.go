package premium

import (
	"vrtex-economy/internal/command"
)

type GrantCommand struct{}

func (c *GrantCommand) Name() string        { return "premium_grant" }
func (c *GrantCommand) Description() string { return "Grant premium to a server" }
func (c *GrantCommand) Aliases() []string   { return nil }
func (c *GrantCommand) Group() string       { return "premium" }
func (c *GrantCommand) Category() string    { return "💎 Premium" }

func (c *GrantCommand) Params() []command.Param {
	return []command.Param{
		{Name: "guild_id", Description: "Target server id", Kind: command.KindString, Required: true},
		{Name: "months", Description: "Months of premium", Kind: command.KindInt},
	}
}

func (c *GrantCommand) Run(ctx *command.Context) error {
	guildID, ok := ctx.Args.String("guild_id")
	if !ok {
		return ctx.ReplyEphemeral("Usage: premium_grant <guild_id> [months]")
	}
	months, ok := ctx.Args.Int("months")
	if !ok || months < 1 {
		months = 1
	}

	prem, err := ctx.Storage.GrantPremium(guildID, ctx.Actor.ID, months)
	if err != nil {
		return err
	}

	exp, _ := prem.ExpiresAt()
	return ctx.ReplyEphemeralf("✅ Premium granted to %s until %s.", guildID, exp.Format("2006-01-02"))
}

func init() {
	command.RegisterCommand(&GrantCommand{}, command.WithOwnerOnly(), command.WithCommandLogger())
}
