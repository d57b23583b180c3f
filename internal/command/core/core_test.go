package core

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "vrtex-economy/internal/command/economy"

	"vrtex-economy/internal/command"
	"vrtex-economy/internal/storage"
)

func newTestContext(t *testing.T, userID string) (*command.Context, *[]command.Reply) {
	t.Helper()
	var replies []command.Reply
	ctx := command.NewContext(func(r *command.Reply) error {
		replies = append(replies, *r)
		return nil
	})
	s, err := storage.New(t.TempDir())
	require.NoError(t, err)
	ctx.Storage = s
	ctx.GuildID = "g1"
	ctx.Actor = &discordgo.User{ID: userID, Username: "tester"}
	return ctx, &replies
}

func TestToggleResolvesAliasToCanonicalName(t *testing.T) {
	ctx, replies := newTestContext(t, "1")

	ctx.Args["command"] = "bal"
	require.NoError(t, (&SettingsToggleCommand{}).Run(ctx))

	require.Len(t, *replies, 1)
	assert.Contains(t, (*replies)[0].Content, "`balance`")
	assert.True(t, ctx.Storage.IsCommandDisabled("g1", "balance"))
}

func TestToggleReenablesCommand(t *testing.T) {
	ctx, _ := newTestContext(t, "1")

	ctx.Args["command"] = "balance"
	require.NoError(t, (&SettingsToggleCommand{}).Run(ctx))
	assert.True(t, ctx.Storage.IsCommandDisabled("g1", "balance"))

	ctx2, replies := newTestContext(t, "1")
	ctx2.Storage = ctx.Storage
	ctx2.Args["command"] = "balance"
	require.NoError(t, (&SettingsToggleCommand{}).Run(ctx2))
	assert.False(t, ctx.Storage.IsCommandDisabled("g1", "balance"))
	assert.Contains(t, (*replies)[0].Content, "Enabled")
}

func TestToggleRejectsHelp(t *testing.T) {
	ctx, replies := newTestContext(t, "1")

	ctx.Args["command"] = "help"
	require.NoError(t, (&SettingsToggleCommand{}).Run(ctx))

	require.Len(t, *replies, 1)
	assert.Contains(t, (*replies)[0].Content, "cannot be disabled")
}

func TestToggleRejectsUnknownCommand(t *testing.T) {
	ctx, replies := newTestContext(t, "1")

	ctx.Args["command"] = "frobnicate"
	require.NoError(t, (&SettingsToggleCommand{}).Run(ctx))

	require.Len(t, *replies, 1)
	assert.Contains(t, (*replies)[0].Content, "Unknown command")
}

func TestSettingsPrefixRequiresPremium(t *testing.T) {
	ctx, replies := newTestContext(t, "1")

	ctx.Args["prefix"] = "!!"
	require.NoError(t, (&SettingsPrefixCommand{}).Run(ctx))

	require.Len(t, *replies, 1)
	assert.Contains(t, (*replies)[0].Content, "not VRTEX+")
	assert.Empty(t, ctx.Storage.ActivePrefix("g1"))
}

func TestSettingsPrefixUpdatesActivePrefix(t *testing.T) {
	ctx, _ := newTestContext(t, "1")
	_, err := ctx.Storage.GrantPremium("g1", "1", 1)
	require.NoError(t, err)

	ctx.Args["prefix"] = "!!"
	require.NoError(t, (&SettingsPrefixCommand{}).Run(ctx))

	assert.Equal(t, "!!", ctx.Storage.ActivePrefix("g1"))
}

func TestSettingsPrefixRejectsOverlongPrefix(t *testing.T) {
	ctx, replies := newTestContext(t, "1")
	_, err := ctx.Storage.GrantPremium("g1", "1", 1)
	require.NoError(t, err)

	ctx.Args["prefix"] = "wayTooLongPrefix"
	require.NoError(t, (&SettingsPrefixCommand{}).Run(ctx))

	require.Len(t, *replies, 1)
	assert.Contains(t, (*replies)[0].Content, "1-10 characters")
	assert.Equal(t, storage.DefaultPrefix, ctx.Storage.ActivePrefix("g1"))
}
