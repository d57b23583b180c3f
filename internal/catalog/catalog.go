// Package catalog holds the static game configuration: jobs, businesses,
// and adventure outcomes. Loaded once at process start as package data and
// never mutated at runtime.
package catalog

import (
	"sort"
	"strings"
)

type Job struct {
	Pay           int
	PromoteChance float64
}

// Jobs is keyed by lower-case job name.
var Jobs = map[string]Job{
	"cashier":   {Pay: 500, PromoteChance: 0.2},
	"developer": {Pay: 1200, PromoteChance: 0.12},
	"miner":     {Pay: 900, PromoteChance: 0.15},
}

// JobNames returns the job names sorted alphabetically.
func JobNames() []string {
	names := make([]string, 0, len(Jobs))
	for name := range Jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Business struct {
	Cost   int `json:"cost"`
	Profit int `json:"profit"`
	Upkeep int `json:"upkeep"`
	Tier   int `json:"tier"`
}

// Businesses is keyed by title-case business name.
var Businesses = map[string]Business{
	"Bakery": {Cost: 5000, Profit: 500, Upkeep: 50, Tier: 1},
	"Mine":   {Cost: 10000, Profit: 1200, Upkeep: 150, Tier: 2},
	"Shop":   {Cost: 20000, Profit: 2500, Upkeep: 300, Tier: 3},
}

// BusinessNames returns the business names sorted alphabetically.
func BusinessNames() []string {
	names := make([]string, 0, len(Businesses))
	for name := range Businesses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TitleCase normalizes user input to the catalog's title-case key form
// ("black market" -> "Black Market").
func TitleCase(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

type AdventureOutcome struct {
	Text  string
	Coins int    // applied to the wallet, may be negative
	Item  string // granted instead of coins when non-empty
}

var AdventureOutcomes = []AdventureOutcome{
	{Text: "Found coins", Coins: 500},
	{Text: "Found nothing", Coins: 0},
	{Text: "Found item", Item: "mysterious_gem"},
	{Text: "Ambushed and lost coins", Coins: -200},
}
