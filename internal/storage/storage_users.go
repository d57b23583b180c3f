package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"vrtex-economy/internal/catalog"
)

type User struct {
	Wallet       int                         `json:"wallet"`
	Bank         int                         `json:"bank"`
	DailyClaimed *time.Time                  `json:"daily_claimed,omitempty"`
	WorkClaims   map[string]string           `json:"work_claims"` // guild id -> RFC3339 of last work
	Membership   bool                        `json:"membership"`
	XP           int                         `json:"xp"`
	Level        int                         `json:"level"`
	Job          string                      `json:"job,omitempty"`
	JobStreak    int                         `json:"job_streak"`
	JobRank      int                         `json:"job_rank,omitempty"`
	Items        map[string]int              `json:"items"`
	Businesses   map[string]catalog.Business `json:"businesses"` // snapshot of the catalog entry at purchase time
}

func defaultUser() *User {
	return &User{
		Level:      1,
		WorkClaims: map[string]string{},
		Items:      map[string]int{},
		Businesses: map[string]catalog.Business{},
	}
}

func (u *User) normalize() {
	if u.Level < 1 {
		u.Level = 1
	}
	if u.WorkClaims == nil {
		u.WorkClaims = map[string]string{}
	}
	if u.Items == nil {
		u.Items = map[string]int{}
	}
	if u.Businesses == nil {
		u.Businesses = map[string]catalog.Business{}
	}
}

// LastWork returns the last successful work time in guildID. An absent or
// unparsable stamp reads as "never worked".
func (u *User) LastWork(guildID string) (time.Time, bool) {
	raw, ok := u.WorkClaims[guildID]
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SetLastWork stamps the work claim for guildID.
func (u *User) SetLastWork(guildID string, t time.Time) {
	u.WorkClaims[guildID] = t.UTC().Format(time.RFC3339)
}

func decodeUser(raw json.RawMessage) (*User, error) {
	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("error unmarshalling user: %w", err)
	}
	u.normalize()
	return &u, nil
}

// User returns the user, creating and persisting a default record on first
// lookup.
func (s *Storage) User(userID string) (*User, error) {
	if raw, ok := s.ds.Load(nsUsers)[userID]; ok {
		return decodeUser(raw)
	}

	u := defaultUser()
	err := s.ds.Update(nsUsers, func(data map[string]json.RawMessage) error {
		if raw, ok := data[userID]; ok {
			// created concurrently, keep the stored record
			stored, err := decodeUser(raw)
			if err != nil {
				return err
			}
			u = stored
			return nil
		}
		raw, err := json.Marshal(u)
		if err != nil {
			return err
		}
		data[userID] = raw
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateUser mutates the user inside the users-namespace lock and persists
// the result. If fn returns an error nothing is saved; the error is passed
// through so handlers can report it.
func (s *Storage) UpdateUser(userID string, fn func(u *User) error) (*User, error) {
	var out *User
	err := s.ds.Update(nsUsers, func(data map[string]json.RawMessage) error {
		u := defaultUser()
		if raw, ok := data[userID]; ok {
			stored, err := decodeUser(raw)
			if err != nil {
				return err
			}
			u = stored
		}
		if err := fn(u); err != nil {
			return err
		}
		raw, err := json.Marshal(u)
		if err != nil {
			return err
		}
		data[userID] = raw
		out = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateUserPair mutates two users inside one users-namespace update, so
// cross-account movements (transfers) are all-or-nothing.
func (s *Storage) UpdateUserPair(aID, bID string, fn func(a, b *User) error) error {
	if aID == bID {
		return fmt.Errorf("user pair update requires two distinct users")
	}
	return s.ds.Update(nsUsers, func(data map[string]json.RawMessage) error {
		load := func(id string) (*User, error) {
			if raw, ok := data[id]; ok {
				return decodeUser(raw)
			}
			return defaultUser(), nil
		}
		a, err := load(aID)
		if err != nil {
			return err
		}
		b, err := load(bID)
		if err != nil {
			return err
		}
		if err := fn(a, b); err != nil {
			return err
		}
		for id, u := range map[string]*User{aID: a, bID: b} {
			raw, err := json.Marshal(u)
			if err != nil {
				return err
			}
			data[id] = raw
		}
		return nil
	})
}

// AllUsers returns every stored user keyed by id. Undecodable records are
// skipped rather than failing the whole listing.
func (s *Storage) AllUsers() map[string]*User {
	data := s.ds.Load(nsUsers)
	users := make(map[string]*User, len(data))
	for id, raw := range data {
		u, err := decodeUser(raw)
		if err != nil {
			continue
		}
		users[id] = u
	}
	return users
}

// AddXP grants xp and applies at most one level-up: when xp reaches
// level*100 the threshold is subtracted and the level incremented once, even
// if the remaining xp still clears the next threshold. This mirrors the
// game's observed single-step behavior.
func (s *Storage) AddXP(userID string, amount int) (bool, error) {
	leveled := false
	_, err := s.UpdateUser(userID, func(u *User) error {
		u.XP += amount
		if u.XP >= u.Level*100 {
			u.XP -= u.Level * 100
			u.Level++
			leveled = true
		}
		return nil
	})
	return leveled, err
}
