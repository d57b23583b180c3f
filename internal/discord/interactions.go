package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"vrtex-economy/internal/command"
)

// onInteractionCreate routes slash invocations through the shared dispatch
// path. Options are bound into the neutral Args form first; a single
// subcommand level maps onto the "action" parameter.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	cmd, ok := command.Get(data.Name)
	if !ok {
		log.Warn().Str("command", data.Name).Msg("Unknown slash command")
		return
	}

	ctx := command.NewContext(func(r *command.Reply) error {
		return respondInteraction(s, i.Interaction, r)
	})
	ctx.Session = s
	ctx.Storage = b.storage
	ctx.Config = b.cfg
	ctx.GuildID = i.GuildID
	ctx.ChannelID = i.ChannelID
	ctx.Member = i.Member
	if i.Member != nil {
		ctx.Actor = i.Member.User
	} else {
		ctx.Actor = i.User
	}
	bindOptions(ctx.Args, data.Options)

	dispatchCommand(ctx, cmd, func(msg string) {
		_ = respondInteraction(s, i.Interaction, &command.Reply{Content: msg, Ephemeral: true})
	})
}

// bindOptions flattens interaction options into Args. A subcommand becomes
// the "action" argument with its own options bound alongside.
func bindOptions(args command.Args, opts []*discordgo.ApplicationCommandInteractionDataOption) {
	for _, opt := range opts {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionSubCommand:
			args["action"] = opt.Name
			bindOptions(args, opt.Options)
		case discordgo.ApplicationCommandOptionInteger:
			args[opt.Name] = int(opt.IntValue())
		case discordgo.ApplicationCommandOptionUser:
			if id, ok := opt.Value.(string); ok {
				args[opt.Name] = id
			}
		default:
			if s, ok := opt.Value.(string); ok {
				args[opt.Name] = s
			}
		}
	}
}

func respondInteraction(s *discordgo.Session, i *discordgo.Interaction, r *command.Reply) error {
	resp := &discordgo.InteractionResponseData{Content: r.Content}
	if r.Embed != nil {
		resp.Embeds = []*discordgo.MessageEmbed{r.Embed}
	}
	if r.Ephemeral {
		resp.Flags = discordgo.MessageFlagsEphemeral
	}
	return s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: resp,
	})
}
