package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestUserCreatedWithDefaults(t *testing.T) {
	s := newTestStorage(t)

	u, err := s.User("100")
	require.NoError(t, err)
	assert.Equal(t, 0, u.Wallet)
	assert.Equal(t, 0, u.Bank)
	assert.Equal(t, 1, u.Level)
	assert.False(t, u.Membership)
	assert.NotNil(t, u.Items)
	assert.NotNil(t, u.Businesses)

	// the default record must have been persisted
	users := s.AllUsers()
	assert.Contains(t, users, "100")
}

func TestUpdateUserAbortLeavesStateUntouched(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.UpdateUser("1", func(u *User) error {
		u.Wallet = 500
		return nil
	})
	require.NoError(t, err)

	_, err = s.UpdateUser("1", func(u *User) error {
		u.Wallet = 0
		return assert.AnError
	})
	assert.Error(t, err)

	u, err := s.User("1")
	require.NoError(t, err)
	assert.Equal(t, 500, u.Wallet)
}

func TestUpdateUserPairConservesTotal(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.UpdateUser("a", func(u *User) error { u.Wallet = 300; return nil })
	require.NoError(t, err)

	err = s.UpdateUserPair("a", "b", func(a, b *User) error {
		a.Wallet -= 120
		b.Wallet += 120
		return nil
	})
	require.NoError(t, err)

	a, err := s.User("a")
	require.NoError(t, err)
	b, err := s.User("b")
	require.NoError(t, err)
	assert.Equal(t, 180, a.Wallet)
	assert.Equal(t, 120, b.Wallet)
	assert.Equal(t, 300, a.Wallet+b.Wallet)
}

func TestUpdateUserPairAbortTouchesNeitherAccount(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.UpdateUser("a", func(u *User) error { u.Wallet = 50; return nil })
	require.NoError(t, err)

	err = s.UpdateUserPair("a", "b", func(a, b *User) error {
		a.Wallet -= 50
		b.Wallet += 50
		return assert.AnError
	})
	assert.Error(t, err)

	a, err := s.User("a")
	require.NoError(t, err)
	b, err := s.User("b")
	require.NoError(t, err)
	assert.Equal(t, 50, a.Wallet)
	assert.Equal(t, 0, b.Wallet)
}

func TestAddXPExactThresholdLevelsOnce(t *testing.T) {
	s := newTestStorage(t)

	leveled, err := s.AddXP("1", 100) // level 1 threshold is exactly 100
	require.NoError(t, err)
	assert.True(t, leveled)

	u, err := s.User("1")
	require.NoError(t, err)
	assert.Equal(t, 2, u.Level)
	assert.Equal(t, 0, u.XP)
}

func TestAddXPDoubleThresholdStillLevelsOnce(t *testing.T) {
	s := newTestStorage(t)

	// 200 xp clears the level-1 threshold twice over, but only one level is
	// drained per grant.
	leveled, err := s.AddXP("1", 200)
	require.NoError(t, err)
	assert.True(t, leveled)

	u, err := s.User("1")
	require.NoError(t, err)
	assert.Equal(t, 2, u.Level)
	assert.Equal(t, 100, u.XP)
}

func TestPremiumActiveAndPrefixGating(t *testing.T) {
	s := newTestStorage(t)

	assert.False(t, s.PremiumActive("g1"))
	assert.Equal(t, "", s.ActivePrefix("g1"))

	_, err := s.GrantPremium("g1", "owner", 1)
	require.NoError(t, err)
	assert.True(t, s.PremiumActive("g1"))
	assert.Equal(t, DefaultPrefix, s.ActivePrefix("g1"))

	// expire the premium; the stored prefix survives but must not be served
	_, err = s.UpdateServer("g1", func(sv *Server) error {
		sv.Premium.Expires = time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
		return nil
	})
	require.NoError(t, err)

	sv, err := s.Server("g1")
	require.NoError(t, err)
	assert.Equal(t, DefaultPrefix, sv.Prefix)
	assert.False(t, s.PremiumActive("g1"))
	assert.Equal(t, "", s.ActivePrefix("g1"))
}

func TestPremiumUnparsableExpiryFailsClosed(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.UpdateServer("g1", func(sv *Server) error {
		sv.Premium = &Premium{Expires: "not-a-timestamp", OwnerID: "x"}
		sv.Prefix = "ve"
		return nil
	})
	require.NoError(t, err)

	assert.False(t, s.PremiumActive("g1"))
	assert.Equal(t, "", s.ActivePrefix("g1"))
}

func TestActivationKeySingleUse(t *testing.T) {
	s := newTestStorage(t)

	key, err := s.CreatePendingKey("g1", "buyer", 2)
	require.NoError(t, err)
	require.Len(t, key, 10)

	prem, err := s.ActivateKey("g1", key)
	require.NoError(t, err)
	assert.Equal(t, "buyer", prem.OwnerID)

	exp, ok := prem.ExpiresAt()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(60*24*time.Hour), exp, time.Minute)

	assert.True(t, s.PremiumActive("g1"))
	assert.Equal(t, DefaultPrefix, s.ActivePrefix("g1"))

	_, err = s.ActivateKey("g1", key)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestActivationKeyIsGuildScoped(t *testing.T) {
	s := newTestStorage(t)
	key, err := s.CreatePendingKey("g1", "buyer", 1)
	require.NoError(t, err)

	_, err = s.ActivateKey("g2", key)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestToggleCommand(t *testing.T) {
	s := newTestStorage(t)

	disabled, err := s.ToggleCommand("g1", "work")
	require.NoError(t, err)
	assert.True(t, disabled)
	assert.True(t, s.IsCommandDisabled("g1", "work"))
	assert.False(t, s.IsCommandDisabled("g2", "work"))

	disabled, err = s.ToggleCommand("g1", "work")
	require.NoError(t, err)
	assert.False(t, disabled)
	assert.False(t, s.IsCommandDisabled("g1", "work"))
}

func TestHelpIsNeverDisabled(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.ToggleCommand("g1", "help")
	require.NoError(t, err)
	assert.False(t, s.IsCommandDisabled("g1", "help"))
}

func TestPruneStaleKeys(t *testing.T) {
	s := newTestStorage(t)
	fresh, err := s.CreatePendingKey("g1", "buyer", 1)
	require.NoError(t, err)

	_, err = s.UpdateServer("g1", func(sv *Server) error {
		sv.PendingKeys["OLDKEY2345"] = PendingKey{
			Purchaser: "buyer",
			Months:    1,
			Created:   time.Now().UTC().Add(-31 * 24 * time.Hour),
		}
		return nil
	})
	require.NoError(t, err)

	n, err := s.PruneStaleKeys(30 * 24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	sv, err := s.Server("g1")
	require.NoError(t, err)
	assert.Contains(t, sv.PendingKeys, fresh)
	assert.NotContains(t, sv.PendingKeys, "OLDKEY2345")
}

func TestEconomyDefaultsAndBackfill(t *testing.T) {
	s := newTestStorage(t)

	e, err := s.Economy("g1")
	require.NoError(t, err)
	assert.Equal(t, "Coins", e.CurrencyName)
	assert.Equal(t, "$", e.CurrencySymbol)

	_, err = s.UpdateEconomy("g1", func(e *Economy) error {
		e.CurrencySymbol = "€"
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, s.EnsureEconomies([]string{"g1", "g2"}))

	e1, err := s.Economy("g1")
	require.NoError(t, err)
	assert.Equal(t, "€", e1.CurrencySymbol, "backfill must not clobber existing settings")

	e2, err := s.Economy("g2")
	require.NoError(t, err)
	assert.Equal(t, "$", e2.CurrencySymbol)
}

func TestNewActivationKeyAlphabet(t *testing.T) {
	for i := 0; i < 50; i++ {
		key := NewActivationKey()
		require.Len(t, key, 10)
		for _, r := range key {
			assert.Contains(t, keyAlphabet, string(r))
		}
	}
}
