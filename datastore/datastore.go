// Package datastore persists namespaced JSON documents on disk. Each
// namespace is one file holding a single JSON object keyed by entity id.
// Documents are loaded and saved wholesale; writers within a namespace are
// serialized through Update, readers see a point-in-time snapshot.
package datastore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

type Store struct {
	dir   string
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("datastore dir cannot be empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create datastore dir: %w", err)
	}
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

// Ensure creates empty backing files for the given namespaces if absent.
func (s *Store) Ensure(namespaces ...string) error {
	for _, ns := range namespaces {
		path := s.path(ns)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := s.writeFileAtomic(path, []byte("{}\n")); err != nil {
				return err
			}
		} else if err != nil {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}
	}
	return nil
}

// Load returns the namespace document. A missing, unreadable, corrupt, or
// non-object backing file is reset to an empty object, persisted, and an
// empty map returned; Load never fails upward.
func (s *Store) Load(ns string) map[string]json.RawMessage {
	raw, err := os.ReadFile(s.path(ns))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("namespace", ns).Msg("Unreadable namespace file, resetting")
		}
		s.reset(ns)
		return map[string]json.RawMessage{}
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Warn().Err(err).Str("namespace", ns).Msg("Corrupt namespace file, resetting")
		s.reset(ns)
		return map[string]json.RawMessage{}
	}
	if data == nil {
		data = map[string]json.RawMessage{}
	}
	return data
}

// Save writes the namespace document to disk atomically.
func (s *Store) Save(ns string, data map[string]json.RawMessage) error {
	if data == nil {
		data = map[string]json.RawMessage{}
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal namespace %s: %w", ns, err)
	}
	return s.writeFileAtomic(s.path(ns), raw)
}

// Update runs fn on the namespace document under the namespace's exclusive
// lock and persists the result if fn succeeds. Returning an error from fn
// aborts the update without touching disk.
func (s *Store) Update(ns string, fn func(data map[string]json.RawMessage) error) error {
	mu := s.lock(ns)
	mu.Lock()
	defer mu.Unlock()

	data := s.Load(ns)
	if err := fn(data); err != nil {
		return err
	}
	return s.Save(ns, data)
}

func (s *Store) lock(ns string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	mu, ok := s.locks[ns]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[ns] = mu
	}
	return mu
}

func (s *Store) path(ns string) string {
	return filepath.Join(s.dir, ns+".json")
}

func (s *Store) reset(ns string) {
	if err := s.writeFileAtomic(s.path(ns), []byte("{}\n")); err != nil {
		log.Error().Err(err).Str("namespace", ns).Msg("Failed to reset namespace file")
	}
}

// writeFileAtomic writes via a temp file, fsync, and rename so a crash never
// leaves a half-written namespace behind.
func (s *Store) writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	f, err := os.OpenFile(tmp, os.O_RDWR, 0644)
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to open temp file for sync: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	f.Close()

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
