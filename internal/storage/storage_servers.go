package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"
)

// DefaultPrefix is assigned when premium is activated; admins may change it
// afterwards while premium is active.
const DefaultPrefix = "ve"

// Activation keys use an unambiguous alphabet (no 0/O, 1/I).
const (
	keyAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	keyLength   = 10
)

// ErrInvalidKey is returned when an activation key is unknown for the guild
// or was already consumed.
var ErrInvalidKey = errors.New("invalid or already-used key")

type Premium struct {
	Expires string `json:"expires"` // RFC3339; unparsable values read as not active
	OwnerID string `json:"owner_id"`
}

// ExpiresAt parses the stored expiry. ok is false on parse failure, which
// callers must treat as not-active.
func (p *Premium) ExpiresAt() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, p.Expires)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type PendingKey struct {
	Purchaser string    `json:"purchaser"`
	Months    int       `json:"months"`
	Created   time.Time `json:"created"`
}

type Server struct {
	Premium          *Premium              `json:"premium,omitempty"`
	Prefix           string                `json:"prefix,omitempty"`
	DisabledCommands []string              `json:"disabled_commands"`
	PendingKeys      map[string]PendingKey `json:"pending_keys"`
}

func defaultServer() *Server {
	return &Server{
		DisabledCommands: []string{},
		PendingKeys:      map[string]PendingKey{},
	}
}

func (sv *Server) normalize() {
	if sv.DisabledCommands == nil {
		sv.DisabledCommands = []string{}
	}
	if sv.PendingKeys == nil {
		sv.PendingKeys = map[string]PendingKey{}
	}
}

func decodeServer(raw json.RawMessage) (*Server, error) {
	var sv Server
	if err := json.Unmarshal(raw, &sv); err != nil {
		return nil, fmt.Errorf("error unmarshalling server: %w", err)
	}
	sv.normalize()
	return &sv, nil
}

// Server returns the guild's configuration, creating and persisting an
// all-empty default on first lookup.
func (s *Storage) Server(guildID string) (*Server, error) {
	if raw, ok := s.ds.Load(nsServers)[guildID]; ok {
		return decodeServer(raw)
	}

	sv := defaultServer()
	err := s.ds.Update(nsServers, func(data map[string]json.RawMessage) error {
		if raw, ok := data[guildID]; ok {
			stored, err := decodeServer(raw)
			if err != nil {
				return err
			}
			sv = stored
			return nil
		}
		raw, err := json.Marshal(sv)
		if err != nil {
			return err
		}
		data[guildID] = raw
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sv, nil
}

// UpdateServer mutates the guild's configuration inside the servers-namespace
// lock. fn errors abort without saving.
func (s *Storage) UpdateServer(guildID string, fn func(sv *Server) error) (*Server, error) {
	var out *Server
	err := s.ds.Update(nsServers, func(data map[string]json.RawMessage) error {
		sv := defaultServer()
		if raw, ok := data[guildID]; ok {
			stored, err := decodeServer(raw)
			if err != nil {
				return err
			}
			sv = stored
		}
		if err := fn(sv); err != nil {
			return err
		}
		raw, err := json.Marshal(sv)
		if err != nil {
			return err
		}
		data[guildID] = raw
		out = sv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// --- Guild policy gate. Evaluated fresh on every dispatch, no caching. ---

// PremiumActive reports whether the guild has a premium record whose expiry
// is strictly in the future. Any stored-expiry parse failure reads as not
// active.
func (s *Storage) PremiumActive(guildID string) bool {
	sv, err := s.Server(guildID)
	if err != nil || sv.Premium == nil {
		return false
	}
	exp, ok := sv.Premium.ExpiresAt()
	return ok && exp.After(time.Now())
}

// ActivePrefix returns the text-command prefix iff premium is active, else
// "". An expired premium keeps its stored prefix, but it is never served.
func (s *Storage) ActivePrefix(guildID string) string {
	if !s.PremiumActive(guildID) {
		return ""
	}
	sv, err := s.Server(guildID)
	if err != nil {
		return ""
	}
	return sv.Prefix
}

// IsCommandDisabled reports whether the canonical command name is disabled
// on the guild. "help" is always exempt and never blockable.
func (s *Storage) IsCommandDisabled(guildID, name string) bool {
	if name == "help" {
		return false
	}
	sv, err := s.Server(guildID)
	if err != nil {
		return false
	}
	return slices.Contains(sv.DisabledCommands, name)
}

// ToggleCommand flips the command's membership in the guild's disabled set
// and reports whether it is now disabled.
func (s *Storage) ToggleCommand(guildID, name string) (bool, error) {
	disabled := false
	_, err := s.UpdateServer(guildID, func(sv *Server) error {
		if i := slices.Index(sv.DisabledCommands, name); i >= 0 {
			sv.DisabledCommands = slices.Delete(sv.DisabledCommands, i, i+1)
		} else {
			sv.DisabledCommands = append(sv.DisabledCommands, name)
			disabled = true
		}
		return nil
	})
	return disabled, err
}

// SetPrefix overwrites the stored prefix. Callers gate on PremiumActive and
// permissions.
func (s *Storage) SetPrefix(guildID, prefix string) error {
	_, err := s.UpdateServer(guildID, func(sv *Server) error {
		sv.Prefix = prefix
		return nil
	})
	return err
}

// --- Premium purchase and activation ---

// NewActivationKey returns a fresh random key.
func NewActivationKey() string {
	b := make([]byte, keyLength)
	for i := range b {
		b[i] = keyAlphabet[rand.Intn(len(keyAlphabet))]
	}
	return string(b)
}

// CreatePendingKey generates a single-use activation key for the guild and
// stores it with the purchaser id and month count.
func (s *Storage) CreatePendingKey(guildID, purchaserID string, months int) (string, error) {
	key := NewActivationKey()
	_, err := s.UpdateServer(guildID, func(sv *Server) error {
		sv.PendingKeys[key] = PendingKey{
			Purchaser: purchaserID,
			Months:    months,
			Created:   time.Now().UTC(),
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// ActivateKey consumes a pending key: sets the guild's premium record to
// expire 30*months days from now, assigns the default prefix, and removes
// the key so a second activation attempt fails with ErrInvalidKey.
func (s *Storage) ActivateKey(guildID, key string) (*Premium, error) {
	var prem *Premium
	_, err := s.UpdateServer(guildID, func(sv *Server) error {
		kinfo, ok := sv.PendingKeys[key]
		if !ok {
			return ErrInvalidKey
		}
		months := kinfo.Months
		if months < 1 {
			months = 1
		}
		prem = &Premium{
			Expires: time.Now().UTC().Add(time.Duration(30*months) * 24 * time.Hour).Format(time.RFC3339),
			OwnerID: kinfo.Purchaser,
		}
		sv.Premium = prem
		sv.Prefix = DefaultPrefix
		delete(sv.PendingKeys, key)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prem, nil
}

// GrantPremium sets premium directly, bypassing the key flow. Owner-only at
// the command layer.
func (s *Storage) GrantPremium(guildID, grantorID string, months int) (*Premium, error) {
	if months < 1 {
		months = 1
	}
	prem := &Premium{
		Expires: time.Now().UTC().Add(time.Duration(30*months) * 24 * time.Hour).Format(time.RFC3339),
		OwnerID: grantorID,
	}
	_, err := s.UpdateServer(guildID, func(sv *Server) error {
		sv.Premium = prem
		sv.Prefix = DefaultPrefix
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prem, nil
}

// PruneStaleKeys removes pending activation keys older than maxAge across
// all guilds and returns how many were dropped.
func (s *Storage) PruneStaleKeys(maxAge time.Duration) (int, error) {
	pruned := 0
	cutoff := time.Now().Add(-maxAge)
	err := s.ds.Update(nsServers, func(data map[string]json.RawMessage) error {
		for guildID, raw := range data {
			sv, err := decodeServer(raw)
			if err != nil {
				continue
			}
			changed := false
			for key, kinfo := range sv.PendingKeys {
				if kinfo.Created.Before(cutoff) {
					delete(sv.PendingKeys, key)
					pruned++
					changed = true
				}
			}
			if changed {
				out, err := json.Marshal(sv)
				if err != nil {
					return err
				}
				data[guildID] = out
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return pruned, nil
}
