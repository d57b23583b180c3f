package datastore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestLoadMissingNamespace(t *testing.T) {
	s := newTestStore(t)

	data := s.Load("users")
	assert.Empty(t, data)

	// the reset must have been persisted
	raw, err := os.ReadFile(filepath.Join(s.dir, "users.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(raw))
}

func TestLoadCorruptNamespaceSelfHeals(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(s.dir, "users.json")

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	assert.Empty(t, s.Load("users"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(raw))
}

func TestLoadNonObjectNamespaceSelfHeals(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(s.dir, "users.json")

	require.NoError(t, os.WriteFile(path, []byte(`[1, 2, 3]`), 0644))
	assert.Empty(t, s.Load("users"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(raw))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := map[string]json.RawMessage{
		"42": json.RawMessage(`{"wallet":100}`),
	}
	require.NoError(t, s.Save("users", in))

	out := s.Load("users")
	require.Contains(t, out, "42")
	assert.JSONEq(t, `{"wallet":100}`, string(out["42"]))
}

func TestUpdateAbortsOnError(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("users", map[string]json.RawMessage{
		"1": json.RawMessage(`{"wallet":5}`),
	}))

	err := s.Update("users", func(data map[string]json.RawMessage) error {
		data["1"] = json.RawMessage(`{"wallet":0}`)
		return assert.AnError
	})
	assert.Error(t, err)

	out := s.Load("users")
	assert.JSONEq(t, `{"wallet":5}`, string(out["1"]))
}

func TestConcurrentUpdatesDoNotLoseWrites(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("counters", map[string]json.RawMessage{
		"n": json.RawMessage(`0`),
	}))

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Update("counters", func(data map[string]json.RawMessage) error {
				var n int
				if err := json.Unmarshal(data["n"], &n); err != nil {
					return err
				}
				raw, err := json.Marshal(n + 1)
				if err != nil {
					return err
				}
				data["n"] = raw
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var n int
	require.NoError(t, json.Unmarshal(s.Load("counters")["n"], &n))
	assert.Equal(t, workers, n)
}

func TestEnsureCreatesEmptyFiles(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Ensure("users", "servers", "economy"))

	for _, ns := range []string{"users", "servers", "economy"} {
		raw, err := os.ReadFile(filepath.Join(s.dir, ns+".json"))
		require.NoError(t, err)
		assert.JSONEq(t, "{}", string(raw))
	}
}
