// Package premium implements the server premium flow: simulated purchase,
// key activation, status info, and the owner-only grant.
package premium

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"vrtex-economy/internal/command"
	"vrtex-economy/internal/storage"
	"vrtex-economy/pkg/util"
)

type premiumAction int

const (
	actionUnknown premiumAction = iota
	actionPurchase
	actionActivate
	actionInfo
)

func parseAction(s string) premiumAction {
	switch s {
	case "purchase":
		return actionPurchase
	case "activate":
		return actionActivate
	case "info":
		return actionInfo
	default:
		return actionUnknown
	}
}

type PremiumCommand struct{}

func (c *PremiumCommand) Name() string        { return "premium" }
func (c *PremiumCommand) Description() string { return "Server premium purchase and activation" }
func (c *PremiumCommand) Aliases() []string   { return []string{"vepremium"} }
func (c *PremiumCommand) Group() string       { return "premium" }
func (c *PremiumCommand) Category() string    { return "💎 Premium" }

func (c *PremiumCommand) Params() []command.Param {
	return []command.Param{
		{Name: "action", Description: "purchase | activate | info", Kind: command.KindString, Required: true},
		{Name: "key", Description: "Activation key", Kind: command.KindString},
	}
}

// SlashDefinition exposes purchase, activate and info as native subcommands.
func (c *PremiumCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "purchase",
				Description: "Purchase a premium key for this server",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "activate",
				Description: "Activate a premium key",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "key",
						Description: "Activation key",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "info",
				Description: "Show this server's premium status",
			},
		},
	}
}

func (c *PremiumCommand) Run(ctx *command.Context) error {
	action, _ := ctx.Args.String("action")

	switch parseAction(action) {
	case actionPurchase:
		return c.purchase(ctx)
	case actionActivate:
		return c.activate(ctx)
	case actionInfo:
		return c.info(ctx)
	default:
		return ctx.ReplyEphemeral("Invalid premium action. Use `purchase`, `activate` or `info`.")
	}
}

func (c *PremiumCommand) purchase(ctx *command.Context) error {
	if !command.HasManageServer(ctx) {
		return ctx.ReplyEphemeral("❌ You need the Manage Server permission to purchase premium.")
	}

	key, err := ctx.Storage.CreatePendingKey(ctx.GuildID, ctx.Actor.ID, 1)
	if err != nil {
		return err
	}

	c.deliverKey(ctx, key)

	return ctx.ReplyEphemeral("✅ Payment processed (simulated). Your activation key has been sent via DM. Use `premium activate <key>` to enable VRTEX+ on this server.")
}

// deliverKey DMs the activation key to the purchaser. Delivery is best
// effort: users with closed DMs still get the confirmation reply.
func (c *PremiumCommand) deliverKey(ctx *command.Context, key string) {
	if ctx.Session == nil {
		return
	}
	ch, err := ctx.Session.UserChannelCreate(ctx.Actor.ID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", ctx.Actor.ID).Msg("premium: cannot open DM channel")
		return
	}
	msg := fmt.Sprintf("🔑 Your VRTEX+ activation key: `%s`\nRun `premium activate %s` in your server to enable it.", key, key)
	if _, err := ctx.Session.ChannelMessageSend(ch.ID, msg); err != nil {
		log.Warn().Err(err).Str("user_id", ctx.Actor.ID).Msg("premium: cannot DM activation key")
	}
}

func (c *PremiumCommand) activate(ctx *command.Context) error {
	key, ok := ctx.Args.String("key")
	if !ok {
		return ctx.ReplyEphemeral("Usage: premium activate <key>")
	}

	prem, err := ctx.Storage.ActivateKey(ctx.GuildID, key)
	if errors.Is(err, storage.ErrInvalidKey) {
		return ctx.ReplyEphemeral("❌ Invalid or already-used key.")
	}
	if err != nil {
		return err
	}

	exp, _ := prem.ExpiresAt()
	return ctx.Replyf("🎉 Server premium activated! Expires: %s. Text commands now work with the `%s` prefix.",
		exp.Format("2006-01-02"), storage.DefaultPrefix)
}

func (c *PremiumCommand) info(ctx *command.Context) error {
	sv, err := ctx.Storage.Server(ctx.GuildID)
	if err != nil {
		return err
	}

	if !ctx.Storage.PremiumActive(ctx.GuildID) {
		return ctx.ReplyEphemeral("This server is not VRTEX+. Use `premium purchase` to get a key.")
	}

	exp, _ := sv.Premium.ExpiresAt()
	prefix := sv.Prefix
	if prefix == "" {
		prefix = storage.DefaultPrefix
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title: "💎 VRTEX+ Status",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Status", Value: "Active", Inline: true},
			{Name: "Expires", Value: exp.Format("2006-01-02"), Inline: true},
			{Name: "Remaining", Value: util.HumanDuration(time.Until(exp)), Inline: true},
			{Name: "Prefix", Value: fmt.Sprintf("`%s`", prefix), Inline: true},
		},
	})
}

func init() {
	command.RegisterCommand(&PremiumCommand{}, command.WithGuildOnly(), command.WithCommandLogger())
}
