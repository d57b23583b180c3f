package economy

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestDepositMovesWalletToBank(t *testing.T) {
	ctx, replies := newTestContext(t, "1")
	_, err := ctx.Storage.UpdateUser("1", func(u *storage.User) error {
		u.Wallet = 1000
		return nil
	})
	require.NoError(t, err)

	ctx.Args["amount"] = 400
	require.NoError(t, (&DepositCommand{}).Run(ctx))

	u, err := ctx.Storage.User("1")
	require.NoError(t, err)
	assert.Equal(t, 600, u.Wallet)
	assert.Equal(t, 400, u.Bank)
	require.Len(t, *replies, 1)
	assert.Contains(t, (*replies)[0].Content, "Deposited 400")
}

func TestDepositRejectsOverdraw(t *testing.T) {
	ctx, replies := newTestContext(t, "1")
	_, err := ctx.Storage.UpdateUser("1", func(u *storage.User) error {
		u.Wallet = 100
		return nil
	})
	require.NoError(t, err)

	ctx.Args["amount"] = 500
	require.NoError(t, (&DepositCommand{}).Run(ctx))

	u, err := ctx.Storage.User("1")
	require.NoError(t, err)
	assert.Equal(t, 100, u.Wallet)
	assert.Equal(t, 0, u.Bank)
	require.Len(t, *replies, 1)
	assert.True(t, (*replies)[0].Ephemeral)
}

func TestWithdrawMirrorsDeposit(t *testing.T) {
	ctx, _ := newTestContext(t, "1")
	_, err := ctx.Storage.UpdateUser("1", func(u *storage.User) error {
		u.Bank = 700
		return nil
	})
	require.NoError(t, err)

	ctx.Args["amount"] = 300
	require.NoError(t, (&WithdrawCommand{}).Run(ctx))

	u, err := ctx.Storage.User("1")
	require.NoError(t, err)
	assert.Equal(t, 300, u.Wallet)
	assert.Equal(t, 400, u.Bank)
}

func TestTransferConservesTotal(t *testing.T) {
	ctx, replies := newTestContext(t, "a")
	_, err := ctx.Storage.UpdateUser("a", func(u *storage.User) error {
		u.Wallet = 500
		return nil
	})
	require.NoError(t, err)

	ctx.Args["member"] = "b"
	ctx.Args["amount"] = 200
	require.NoError(t, (&TransferCommand{}).Run(ctx))

	a, err := ctx.Storage.User("a")
	require.NoError(t, err)
	b, err := ctx.Storage.User("b")
	require.NoError(t, err)
	assert.Equal(t, 300, a.Wallet)
	assert.Equal(t, 200, b.Wallet)
	require.Len(t, *replies, 1)
	assert.Contains(t, (*replies)[0].Content, "Transferred 200")
}

func TestTransferToSelfRejected(t *testing.T) {
	ctx, replies := newTestContext(t, "a")
	_, err := ctx.Storage.UpdateUser("a", func(u *storage.User) error {
		u.Wallet = 500
		return nil
	})
	require.NoError(t, err)

	ctx.Args["member"] = "a"
	ctx.Args["amount"] = 100
	require.NoError(t, (&TransferCommand{}).Run(ctx))

	a, err := ctx.Storage.User("a")
	require.NoError(t, err)
	assert.Equal(t, 500, a.Wallet)
	require.Len(t, *replies, 1)
	assert.Contains(t, (*replies)[0].Content, "yourself")
}

func TestTransferInsufficientFundsLeavesBothUntouched(t *testing.T) {
	ctx, _ := newTestContext(t, "a")

	ctx.Args["member"] = "b"
	ctx.Args["amount"] = 50
	require.NoError(t, (&TransferCommand{}).Run(ctx))

	a, err := ctx.Storage.User("a")
	require.NoError(t, err)
	b, err := ctx.Storage.User("b")
	require.NoError(t, err)
	assert.Equal(t, 0, a.Wallet)
	assert.Equal(t, 0, b.Wallet)
}
