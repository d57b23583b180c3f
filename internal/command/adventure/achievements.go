package adventure

import (
	"vrtex-economy/internal/command"
)

type AchievementsCommand struct{}

func (c *AchievementsCommand) Name() string        { return "achievements" }
func (c *AchievementsCommand) Description() string { return "Show your achievements" }
func (c *AchievementsCommand) Aliases() []string   { return []string{"veachievements"} }
func (c *AchievementsCommand) Group() string       { return "adventure" }
func (c *AchievementsCommand) Category() string    { return "🗺️ Adventure" }

func (c *AchievementsCommand) Params() []command.Param { return nil }

func (c *AchievementsCommand) Run(ctx *command.Context) error {
	return ctx.Reply("🏆 Achievements: Beginner, Worker, Explorer")
}

func init() {
	command.RegisterCommand(&AchievementsCommand{}, command.WithCommandLogger())
}
