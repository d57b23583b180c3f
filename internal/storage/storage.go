// Package storage is the typed persistence layer: repositories for users,
// server configuration, and per-guild economy settings over the namespaced
// JSON datastore. Entities are created lazily with defaults on first access
// and persisted immediately; mutations run inside the datastore's
// per-namespace exclusive update so concurrent handlers cannot lose writes.
package storage

import (
	"vrtex-economy/datastore"
)

const (
	nsUsers      = "users"
	nsServers    = "servers"
	nsBusinesses = "businesses"
	nsItems      = "items"
	nsJobs       = "jobs"
	nsMarket     = "market"
	nsQuests     = "quests"
	nsEconomy    = "economy"
)

type Storage struct {
	ds *datastore.Store
}

// New opens the storage at dir and makes sure every namespace has a backing
// file, including the reserved catalog namespaces.
func New(dir string) (*Storage, error) {
	ds, err := datastore.New(dir)
	if err != nil {
		return nil, err
	}
	if err := ds.Ensure(nsUsers, nsServers, nsBusinesses, nsItems, nsJobs, nsMarket, nsQuests, nsEconomy); err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}
