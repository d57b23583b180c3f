package economy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"vrtex-economy/internal/command"
)

type ProfileCommand struct{}

func (c *ProfileCommand) Name() string        { return "profile" }
func (c *ProfileCommand) Description() string { return "View your or another user's profile" }
func (c *ProfileCommand) Aliases() []string   { return []string{"veprofile"} }
func (c *ProfileCommand) Group() string       { return "economy" }
func (c *ProfileCommand) Category() string    { return "💰 Economy" }

func (c *ProfileCommand) Params() []command.Param {
	return []command.Param{
		{Name: "member", Description: "Member to view", Kind: command.KindUser},
	}
}

func (c *ProfileCommand) Run(ctx *command.Context) error {
	targetID := ctx.Actor.ID
	if id, ok := ctx.Args.UserID("member"); ok {
		targetID = id
	}
	target := ctx.ResolveUser(targetID)

	user, err := ctx.Storage.User(targetID)
	if err != nil {
		return err
	}

	job := user.Job
	if job == "" {
		job = "Unemployed"
	}

	var businesses []string
	for name := range user.Businesses {
		businesses = append(businesses, name)
	}
	sort.Strings(businesses)
	owned := strings.Join(businesses, ", ")
	if owned == "" {
		owned = "None"
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Profile", ctx.DisplayName(target)),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Balance", Value: fmt.Sprintf("%d%s", user.Wallet+user.Bank, ctx.Storage.CurrencySymbol(ctx.GuildID))},
			{Name: "Level & XP", Value: fmt.Sprintf("Level %d (XP: %d)", user.Level, user.XP)},
			{Name: "Job", Value: job},
			{Name: "Businesses", Value: owned},
		},
	})
}

func init() {
	command.RegisterCommand(&ProfileCommand{}, command.WithCommandLogger())
}
