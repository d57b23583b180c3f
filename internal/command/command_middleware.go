package command

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

type Middleware func(Command) Command

type wrappedCommand struct {
	Command
	wrap func(ctx *Context) error
}

func (w *wrappedCommand) Run(ctx *Context) error {
	return w.wrap(ctx)
}

// SlashDefinition exposes the inner command's definition through the wrapper.
func (w *wrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

// ApplyMiddlewares wraps cmd; the first middleware in the list is outermost.
func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for i := len(mws) - 1; i >= 0; i-- {
		cmd = mws[i](cmd)
	}
	return cmd
}

// WithGuildOnly rejects invocations outside a guild.
func WithGuildOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{Command: cmd, wrap: func(ctx *Context) error {
			if ctx.GuildID == "" {
				return ctx.ReplyEphemeral("This command must be used in a server.")
			}
			return cmd.Run(ctx)
		}}
	}
}

// WithManageServer requires Manage Server permission, guild ownership, or
// configured owner/team membership.
func WithManageServer() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{Command: cmd, wrap: func(ctx *Context) error {
			if !HasManageServer(ctx) {
				return ctx.ReplyEphemeral("You need Manage Server permission (or owner) to use this command.")
			}
			return cmd.Run(ctx)
		}}
	}
}

// WithOwnerOnly restricts a command to the configured bot owner.
func WithOwnerOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{Command: cmd, wrap: func(ctx *Context) error {
			if ctx.Config == nil || ctx.Actor == nil || !ctx.Config.IsOwner(ctx.Actor.ID) {
				return ctx.ReplyEphemeral("Only the bot owner can use this.")
			}
			return cmd.Run(ctx)
		}}
	}
}

// WithCommandLogger logs every execution.
func WithCommandLogger() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{Command: cmd, wrap: func(ctx *Context) error {
			actor := ""
			if ctx.Actor != nil {
				actor = ctx.Actor.ID
			}
			log.Info().
				Str("command", cmd.Name()).
				Str("guild", ctx.GuildID).
				Str("user", actor).
				Msg("Command invoked")
			return cmd.Run(ctx)
		}}
	}
}

// HasManageServer reports whether the acting user may administer guild
// settings: configured owner/team, guild owner, or a member with Manage
// Server or Administrator permission.
func HasManageServer(ctx *Context) bool {
	if ctx.Actor == nil {
		return false
	}
	if ctx.Config != nil && ctx.Config.IsTeam(ctx.Actor.ID) {
		return true
	}
	if ctx.GuildID == "" {
		return false
	}

	const manage = discordgo.PermissionManageGuild | discordgo.PermissionAdministrator
	if ctx.Member != nil && ctx.Member.Permissions&manage != 0 {
		return true
	}

	if ctx.Session != nil {
		if g, err := ctx.Session.State.Guild(ctx.GuildID); err == nil && g.OwnerID == ctx.Actor.ID {
			return true
		}
		if perms, err := ctx.Session.UserChannelPermissions(ctx.Actor.ID, ctx.ChannelID); err == nil && perms&manage != 0 {
			return true
		}
	}
	return false
}
