package discord

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"vrtex-economy/internal/command"
)

var mentionPattern = regexp.MustCompile(`^<@!?(\d+)>$`)

// onMessageCreate is the text-command adapter: active only in guilds whose
// premium grants a prefix. Anything that does not parse as a known command
// is ignored silently so normal chat stays untouched.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Author.ID == s.State.User.ID {
		return
	}
	if m.GuildID == "" {
		return
	}

	cmd, prefix, tokens, ok := b.matchTextCommand(m.GuildID, m.Content)
	if !ok {
		return
	}

	args, err := bindTokens(cmd.Params(), tokens)
	if err != nil {
		_, _ = s.ChannelMessageSend(m.ChannelID, usageFor(prefix, cmd))
		return
	}
	if id, bad := unresolvedUserArg(cmd.Params(), args, func(id string) bool {
		return isGuildMember(s, m.GuildID, id)
	}); bad {
		_, _ = s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("❌ Could not find user `%s` on this server.", id))
		return
	}

	ctx := command.NewContext(func(r *command.Reply) error {
		return sendReply(s, m.ChannelID, r)
	})
	ctx.Session = s
	ctx.Storage = b.storage
	ctx.Config = b.cfg
	ctx.GuildID = m.GuildID
	ctx.ChannelID = m.ChannelID
	ctx.Actor = m.Author
	ctx.Member = m.Member
	ctx.Args = args

	dispatchCommand(ctx, cmd, func(msg string) {
		_, _ = s.ChannelMessageSend(m.ChannelID, msg)
	})
}

// matchTextCommand is the dispatch decision: a guild with no active prefix
// (not premium) never dispatches, and neither does content that is not
// prefix + known command name or alias.
func (b *Bot) matchTextCommand(guildID, content string) (cmd command.Command, prefix string, tokens []string, ok bool) {
	prefix = b.storage.ActivePrefix(guildID)
	if prefix == "" {
		return nil, "", nil, false
	}
	name, tokens, ok := splitInvocation(content, prefix)
	if !ok {
		return nil, "", nil, false
	}
	cmd, ok = command.Get(name)
	if !ok {
		return nil, "", nil, false
	}
	return cmd, prefix, tokens, true
}

// splitInvocation strips the guild prefix and tokenizes. The prefix may be
// glued to the command name ("vework") or separated by whitespace
// ("ve work").
func splitInvocation(content, prefix string) (name string, tokens []string, ok bool) {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	rest := strings.TrimSpace(content[len(prefix):])
	if rest == "" {
		return "", nil, false
	}
	fields := strings.Fields(rest)
	return strings.ToLower(fields[0]), fields[1:], true
}

// bindTokens coerces positional tokens against the declared schema. A text
// parameter consumes the remaining tokens, minus however many the
// parameters declared after it still need from the tail.
func bindTokens(params []command.Param, tokens []string) (command.Args, error) {
	args := command.Args{}

	textIdx := -1
	for i, p := range params {
		if p.Kind == command.KindText {
			textIdx = i
			break
		}
	}

	if textIdx >= 0 {
		tail := params[textIdx+1:]
		head := params[:textIdx]

		for i, p := range head {
			if i >= len(tokens) {
				return bindMissing(args, p)
			}
			if err := coerceToken(args, p, tokens[i]); err != nil {
				return nil, err
			}
		}

		remaining := tokens[min(textIdx, len(tokens)):]
		cut := len(remaining) - len(tail)
		if cut < 0 {
			cut = 0
		}
		text := strings.Join(remaining[:cut], " ")
		if text == "" && params[textIdx].Required {
			return nil, fmt.Errorf("missing %s", params[textIdx].Name)
		}
		if text != "" {
			args[params[textIdx].Name] = text
		}

		for i, p := range tail {
			if cut+i >= len(remaining) {
				return bindMissing(args, p)
			}
			if err := coerceToken(args, p, remaining[cut+i]); err != nil {
				return nil, err
			}
		}
		return args, nil
	}

	for i, p := range params {
		if i >= len(tokens) {
			if p.Required {
				return nil, fmt.Errorf("missing %s", p.Name)
			}
			continue
		}
		if err := coerceToken(args, p, tokens[i]); err != nil {
			return nil, err
		}
	}
	return args, nil
}

func bindMissing(args command.Args, p command.Param) (command.Args, error) {
	if p.Required {
		return nil, fmt.Errorf("missing %s", p.Name)
	}
	return args, nil
}

func coerceToken(args command.Args, p command.Param, token string) error {
	switch p.Kind {
	case command.KindInt:
		n, err := strconv.Atoi(token)
		if err != nil {
			return fmt.Errorf("%s must be a number", p.Name)
		}
		args[p.Name] = n
	case command.KindUser:
		if m := mentionPattern.FindStringSubmatch(token); m != nil {
			args[p.Name] = m[1]
			return nil
		}
		if _, err := strconv.ParseUint(token, 10, 64); err != nil {
			return fmt.Errorf("%s must be a user mention or id", p.Name)
		}
		args[p.Name] = token
	default:
		args[p.Name] = token
	}
	return nil
}

// unresolvedUserArg returns the first bound user-reference argument that
// does not name a member of the guild. Dispatching with an unresolvable id
// would create ghost account records out of typos.
func unresolvedUserArg(params []command.Param, args command.Args, isMember func(id string) bool) (string, bool) {
	for _, p := range params {
		if p.Kind != command.KindUser {
			continue
		}
		id, ok := args.UserID(p.Name)
		if !ok {
			continue
		}
		if !isMember(id) {
			return id, true
		}
	}
	return "", false
}

func isGuildMember(s *discordgo.Session, guildID, userID string) bool {
	if _, err := s.State.Member(guildID, userID); err == nil {
		return true
	}
	m, err := s.GuildMember(guildID, userID)
	return err == nil && m != nil
}

// usageFor renders a one-line usage string from the declared schema.
func usageFor(prefix string, cmd command.Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: `%s %s", prefix, cmd.Name())
	for _, p := range cmd.Params() {
		if p.Required {
			fmt.Fprintf(&b, " <%s>", p.Name)
		} else {
			fmt.Fprintf(&b, " [%s]", p.Name)
		}
	}
	b.WriteString("`")
	return b.String()
}

func sendReply(s *discordgo.Session, channelID string, r *command.Reply) error {
	msg := &discordgo.MessageSend{Content: r.Content}
	if r.Embed != nil {
		msg.Embeds = []*discordgo.MessageEmbed{r.Embed}
	}
	_, err := s.ChannelMessageSendComplex(channelID, msg)
	return err
}
