package job

import (
	"errors"

	"vrtex-economy/internal/command"
	"vrtex-economy/internal/storage"
)

var errNoJob = errors.New("no job")

type QuitJobCommand struct{}

func (c *QuitJobCommand) Name() string        { return "quitjob" }
func (c *QuitJobCommand) Description() string { return "Leave your current job" }
func (c *QuitJobCommand) Aliases() []string   { return nil }
func (c *QuitJobCommand) Group() string       { return "job" }
func (c *QuitJobCommand) Category() string    { return "💼 Jobs" }

func (c *QuitJobCommand) Params() []command.Param { return nil }

func (c *QuitJobCommand) Run(ctx *command.Context) error {
	_, err := ctx.Storage.UpdateUser(ctx.Actor.ID, func(u *storage.User) error {
		if u.Job == "" {
			return errNoJob
		}
		u.Job = ""
		u.JobStreak = 0
		return nil
	})
	if errors.Is(err, errNoJob) {
		return ctx.ReplyEphemeral("You don't have a job.")
	}
	if err != nil {
		return err
	}
	return ctx.Reply("You left your job.")
}

func init() {
	command.RegisterCommand(&QuitJobCommand{}, command.WithCommandLogger())
}
