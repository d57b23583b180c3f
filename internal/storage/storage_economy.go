package storage

import (
	"encoding/json"
	"fmt"
)

type Economy struct {
	CurrencyName    string `json:"currency_name"`
	CurrencySymbol  string `json:"currency_symbol"`
	StartingBalance int    `json:"starting_balance"`
	TaxRate         int    `json:"tax_rate"`
}

func defaultEconomy() *Economy {
	return &Economy{
		CurrencyName:   "Coins",
		CurrencySymbol: "$",
	}
}

func decodeEconomy(raw json.RawMessage) (*Economy, error) {
	var e Economy
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("error unmarshalling economy: %w", err)
	}
	return &e, nil
}

// Economy returns the guild's economy settings, creating defaults on first
// access.
func (s *Storage) Economy(guildID string) (*Economy, error) {
	if raw, ok := s.ds.Load(nsEconomy)[guildID]; ok {
		return decodeEconomy(raw)
	}

	e := defaultEconomy()
	err := s.ds.Update(nsEconomy, func(data map[string]json.RawMessage) error {
		if raw, ok := data[guildID]; ok {
			stored, err := decodeEconomy(raw)
			if err != nil {
				return err
			}
			e = stored
			return nil
		}
		raw, err := json.Marshal(e)
		if err != nil {
			return err
		}
		data[guildID] = raw
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateEconomy mutates the guild's economy settings.
func (s *Storage) UpdateEconomy(guildID string, fn func(e *Economy) error) (*Economy, error) {
	var out *Economy
	err := s.ds.Update(nsEconomy, func(data map[string]json.RawMessage) error {
		e := defaultEconomy()
		if raw, ok := data[guildID]; ok {
			stored, err := decodeEconomy(raw)
			if err != nil {
				return err
			}
			e = stored
		}
		if err := fn(e); err != nil {
			return err
		}
		raw, err := json.Marshal(e)
		if err != nil {
			return err
		}
		data[guildID] = raw
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureEconomies backfills default economy settings for every guild the bot
// currently sits in. Called on startup reconciliation.
func (s *Storage) EnsureEconomies(guildIDs []string) error {
	return s.ds.Update(nsEconomy, func(data map[string]json.RawMessage) error {
		for _, guildID := range guildIDs {
			if _, ok := data[guildID]; ok {
				continue
			}
			raw, err := json.Marshal(defaultEconomy())
			if err != nil {
				return err
			}
			data[guildID] = raw
		}
		return nil
	})
}

// CurrencySymbol is a convenience for reply formatting; it falls back to "$"
// when the guild is unknown or unreadable.
func (s *Storage) CurrencySymbol(guildID string) string {
	if guildID == "" {
		return "$"
	}
	e, err := s.Economy(guildID)
	if err != nil {
		return "$"
	}
	return e.CurrencySymbol
}
