package storage

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	keyCleanerInterval = time.Hour
	pendingKeyMaxAge   = 30 * 24 * time.Hour
)

// RunKeyCleaner runs a background loop that prunes pending activation keys
// which were purchased but never redeemed, until ctx is done. Call from main.
func RunKeyCleaner(ctx context.Context, store *Storage) {
	ticker := time.NewTicker(keyCleanerInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.PruneStaleKeys(pendingKeyMaxAge)
			if err != nil {
				log.Error().Err(err).Msg("Error pruning stale activation keys")
				continue
			}
			if n > 0 {
				log.Info().Int("pruned", n).Msg("Pruned stale activation keys")
			}
		}
	}
}
