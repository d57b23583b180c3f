package job

import (
	"strings"

	"vrtex-economy/internal/catalog"
	"vrtex-economy/internal/command"
	"vrtex-economy/internal/storage"
)

type ApplyJobCommand struct{}

func (c *ApplyJobCommand) Name() string        { return "applyjob" }
func (c *ApplyJobCommand) Description() string { return "Apply for a job" }
func (c *ApplyJobCommand) Aliases() []string   { return nil }
func (c *ApplyJobCommand) Group() string       { return "job" }
func (c *ApplyJobCommand) Category() string    { return "💼 Jobs" }

func (c *ApplyJobCommand) Params() []command.Param {
	return []command.Param{
		{Name: "job_name", Description: "Job name", Kind: command.KindString, Required: true},
	}
}

func (c *ApplyJobCommand) Run(ctx *command.Context) error {
	name, _ := ctx.Args.String("job_name")
	name = strings.ToLower(strings.TrimSpace(name))

	if _, ok := catalog.Jobs[name]; !ok {
		return ctx.ReplyEphemeral("❌ Job not found.")
	}

	_, err := ctx.Storage.UpdateUser(ctx.Actor.ID, func(u *storage.User) error {
		u.Job = name
		u.JobStreak = 0
		return nil
	})
	if err != nil {
		return err
	}

	return ctx.Replyf("✅ You are now employed as **%s**.", catalog.TitleCase(name))
}

func init() {
	command.RegisterCommand(&ApplyJobCommand{}, command.WithCommandLogger())
}
