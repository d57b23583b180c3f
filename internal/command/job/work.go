package job

import (
	"errors"
	"time"

	"vrtex-economy/internal/command"
	"vrtex-economy/internal/storage"
	"vrtex-economy/pkg/util"
)

const (
	workCooldown      = time.Hour
	workBaseReward    = 1000
	workPremiumFactor = 1.25
	workXP            = 20
)

var errOnCooldown = errors.New("work cooldown not elapsed")

type WorkCommand struct{}

func (c *WorkCommand) Name() string        { return "work" }
func (c *WorkCommand) Description() string { return "Work to earn coins (1-hour cooldown)" }
func (c *WorkCommand) Aliases() []string   { return []string{"vework"} }
func (c *WorkCommand) Group() string       { return "job" }
func (c *WorkCommand) Category() string    { return "💼 Jobs" }

func (c *WorkCommand) Params() []command.Param { return nil }

func (c *WorkCommand) Run(ctx *command.Context) error {
	var (
		reward    int
		remaining time.Duration
	)

	_, err := ctx.Storage.UpdateUser(ctx.Actor.ID, func(u *storage.User) error {
		now := time.Now()
		if last, ok := u.LastWork(ctx.GuildID); ok {
			if elapsed := now.Sub(last); elapsed < workCooldown {
				remaining = workCooldown - elapsed
				return errOnCooldown
			}
		}
		reward = workBaseReward
		if u.Membership {
			reward = int(float64(workBaseReward) * workPremiumFactor)
		}
		u.Wallet += reward
		u.SetLastWork(ctx.GuildID, now)
		return nil
	})
	if errors.Is(err, errOnCooldown) {
		return ctx.ReplyEphemeralf("❌ You can work again in **%s**", util.HumanDuration(remaining))
	}
	if err != nil {
		return err
	}

	leveled, err := ctx.Storage.AddXP(ctx.Actor.ID, workXP)
	if err != nil {
		return err
	}

	msg := ""
	if leveled {
		msg = "\n🎉 You leveled up!"
	}
	return ctx.Replyf("✅ You worked and earned **%d%s**!%s", reward, ctx.Storage.CurrencySymbol(ctx.GuildID), msg)
}

func init() {
	command.RegisterCommand(&WorkCommand{},
		command.WithCommandLogger(),
		command.WithGuildOnly(),
	)
}
