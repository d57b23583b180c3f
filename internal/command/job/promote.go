package job

import (
	"math/rand"

	"vrtex-economy/internal/catalog"
	"vrtex-economy/internal/command"
	"vrtex-economy/internal/storage"
)

// fallback when a stored job no longer exists in the catalog
const defaultPromoteChance = 0.1

type PromoteCommand struct{}

func (c *PromoteCommand) Name() string        { return "promote" }
func (c *PromoteCommand) Description() string { return "Attempt an automatic promotion" }
func (c *PromoteCommand) Aliases() []string   { return nil }
func (c *PromoteCommand) Group() string       { return "job" }
func (c *PromoteCommand) Category() string    { return "💼 Jobs" }

func (c *PromoteCommand) Params() []command.Param { return nil }

func (c *PromoteCommand) Run(ctx *command.Context) error {
	user, err := ctx.Storage.User(ctx.Actor.ID)
	if err != nil {
		return err
	}
	if user.Job == "" {
		return ctx.ReplyEphemeral("You have no job.")
	}

	chance := defaultPromoteChance
	if info, ok := catalog.Jobs[user.Job]; ok {
		chance = info.PromoteChance
	}

	if rand.Float64() >= chance {
		return ctx.Reply("No promotion this time. Keep working!")
	}

	rank := 0
	_, err = ctx.Storage.UpdateUser(ctx.Actor.ID, func(u *storage.User) error {
		if u.JobRank == 0 {
			u.JobRank = 1
		}
		u.JobRank++
		rank = u.JobRank
		return nil
	})
	if err != nil {
		return err
	}
	return ctx.Replyf("🎉 Congratulations, you were promoted! New rank: %d", rank)
}

func init() {
	command.RegisterCommand(&PromoteCommand{}, command.WithCommandLogger())
}
