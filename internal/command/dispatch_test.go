package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vrtex-economy/internal/storage"
)

type fakeCommand struct {
	name    string
	aliases []string
	runs    int
}

func (f *fakeCommand) Name() string        { return f.name }
func (f *fakeCommand) Description() string { return "fake" }
func (f *fakeCommand) Aliases() []string   { return f.aliases }
func (f *fakeCommand) Group() string       { return "test" }
func (f *fakeCommand) Category() string    { return "test" }
func (f *fakeCommand) Params() []Param     { return nil }
func (f *fakeCommand) Run(ctx *Context) error {
	f.runs++
	return ctx.Reply("ran")
}

func newTestContext(t *testing.T) (*Context, *[]Reply) {
	t.Helper()
	var replies []Reply
	ctx := NewContext(func(r *Reply) error {
		replies = append(replies, *r)
		return nil
	})
	s, err := storage.New(t.TempDir())
	require.NoError(t, err)
	ctx.Storage = s
	return ctx, &replies
}

func TestDispatchRunsEnabledCommand(t *testing.T) {
	ctx, replies := newTestContext(t)
	ctx.GuildID = "g1"

	cmd := &fakeCommand{name: "ping"}
	require.NoError(t, Dispatch(ctx, cmd))
	assert.Equal(t, 1, cmd.runs)
	require.Len(t, *replies, 1)
	assert.Equal(t, "ran", (*replies)[0].Content)
}

func TestDispatchShortCircuitsDisabledCommand(t *testing.T) {
	ctx, replies := newTestContext(t)
	ctx.GuildID = "g1"

	_, err := ctx.Storage.ToggleCommand("g1", "ping")
	require.NoError(t, err)

	cmd := &fakeCommand{name: "ping"}
	require.NoError(t, Dispatch(ctx, cmd))

	// handler must never have been invoked
	assert.Equal(t, 0, cmd.runs)
	require.Len(t, *replies, 1)
	assert.True(t, (*replies)[0].Ephemeral)
	assert.Contains(t, (*replies)[0].Content, "disabled")
}

func TestDispatchDisabledOnlyAffectsThatGuild(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.GuildID = "g2"

	_, err := ctx.Storage.ToggleCommand("g1", "ping")
	require.NoError(t, err)

	cmd := &fakeCommand{name: "ping"}
	require.NoError(t, Dispatch(ctx, cmd))
	assert.Equal(t, 1, cmd.runs)
}

func TestDispatchHelpCannotBeDisabled(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.GuildID = "g1"

	_, err := ctx.Storage.ToggleCommand("g1", "help")
	require.NoError(t, err)

	cmd := &fakeCommand{name: "help"}
	require.NoError(t, Dispatch(ctx, cmd))
	assert.Equal(t, 1, cmd.runs)
}

func TestContextRepliesAtMostOnce(t *testing.T) {
	ctx, replies := newTestContext(t)

	require.NoError(t, ctx.Reply("first"))
	require.NoError(t, ctx.Reply("second"))

	require.Len(t, *replies, 1)
	assert.Equal(t, "first", (*replies)[0].Content)
	assert.True(t, ctx.Replied())
}

func TestGuildOnlyMiddlewareBlocksDMs(t *testing.T) {
	ctx, replies := newTestContext(t)

	inner := &fakeCommand{name: "work"}
	cmd := ApplyMiddlewares(inner, WithGuildOnly())

	require.NoError(t, cmd.Run(ctx))
	assert.Equal(t, 0, inner.runs)
	require.Len(t, *replies, 1)
	assert.Contains(t, (*replies)[0].Content, "server")
}

func TestMiddlewareOrderFirstListedIsOutermost(t *testing.T) {
	var order []string
	mw := func(tag string) Middleware {
		return func(cmd Command) Command {
			return &wrappedCommand{Command: cmd, wrap: func(ctx *Context) error {
				order = append(order, tag)
				return cmd.Run(ctx)
			}}
		}
	}

	ctx, _ := newTestContext(t)
	cmd := ApplyMiddlewares(&fakeCommand{name: "x"}, mw("outer"), mw("inner"))
	require.NoError(t, cmd.Run(ctx))
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestArgsAccessors(t *testing.T) {
	args := Args{"amount": 42, "member": "123", "empty": ""}

	n, ok := args.Int("amount")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = args.Int("missing")
	assert.False(t, ok)

	id, ok := args.UserID("member")
	assert.True(t, ok)
	assert.Equal(t, "123", id)

	_, ok = args.String("empty")
	assert.False(t, ok)
}
