package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"vrtex-economy/internal/config"
	"vrtex-economy/internal/storage"
)

const EmbedColor = 0x222530

// Reply is the single outbound action a handler produces. Ephemeral is
// honored by the interaction transport and ignored by the text transport.
type Reply struct {
	Content   string
	Embed     *discordgo.MessageEmbed
	Ephemeral bool
}

// Context is the neutral invocation bundle both adapters construct: acting
// user, optional guild, bound arguments, and the reply sink. Handlers reply
// at most once; extra replies are dropped.
type Context struct {
	Session *discordgo.Session
	Storage *storage.Storage
	Config  *config.Config

	GuildID   string
	ChannelID string
	Actor     *discordgo.User
	Member    *discordgo.Member
	Args      Args

	send    func(*Reply) error
	replied bool
}

// NewContext builds a Context with the given reply sink.
func NewContext(send func(*Reply) error) *Context {
	return &Context{Args: Args{}, send: send}
}

// Replied reports whether the handler already produced its reply.
func (c *Context) Replied() bool { return c.replied }

func (c *Context) reply(r *Reply) error {
	if c.replied || c.send == nil {
		return nil
	}
	c.replied = true
	return c.send(r)
}

// Reply sends a public text reply.
func (c *Context) Reply(content string) error {
	return c.reply(&Reply{Content: content})
}

// Replyf sends a public formatted text reply.
func (c *Context) Replyf(format string, args ...any) error {
	return c.Reply(fmt.Sprintf(format, args...))
}

// ReplyEphemeral sends a reply only the actor should see, where the
// transport supports it.
func (c *Context) ReplyEphemeral(content string) error {
	return c.reply(&Reply{Content: content, Ephemeral: true})
}

// ReplyEphemeralf sends a formatted ephemeral reply.
func (c *Context) ReplyEphemeralf(format string, args ...any) error {
	return c.ReplyEphemeral(fmt.Sprintf(format, args...))
}

// ReplyEmbed sends a public embed reply.
func (c *Context) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	if embed.Color == 0 {
		embed.Color = EmbedColor
	}
	return c.reply(&Reply{Embed: embed})
}

// ReplyEmbedEphemeral sends an ephemeral embed reply.
func (c *Context) ReplyEmbedEphemeral(embed *discordgo.MessageEmbed) error {
	if embed.Color == 0 {
		embed.Color = EmbedColor
	}
	return c.reply(&Reply{Embed: embed, Ephemeral: true})
}

// ResolveUser fetches a user by id for display purposes, preferring session
// state. Without a session it returns a bare user carrying just the id.
func (c *Context) ResolveUser(userID string) *discordgo.User {
	if c.Session != nil {
		if c.GuildID != "" {
			if m, err := c.Session.State.Member(c.GuildID, userID); err == nil && m.User != nil {
				return m.User
			}
			if m, err := c.Session.GuildMember(c.GuildID, userID); err == nil && m.User != nil {
				return m.User
			}
		}
		if u, err := c.Session.User(userID); err == nil {
			return u
		}
	}
	return &discordgo.User{ID: userID, Username: "User " + userID}
}

// DisplayName returns the best human-readable name for a user in this guild.
func (c *Context) DisplayName(u *discordgo.User) string {
	if c.Session != nil && c.GuildID != "" {
		if m, err := c.Session.State.Member(c.GuildID, u.ID); err == nil && m.Nick != "" {
			return m.Nick
		}
	}
	if u.GlobalName != "" {
		return u.GlobalName
	}
	if u.Username != "" {
		return u.Username
	}
	return "User " + u.ID
}
