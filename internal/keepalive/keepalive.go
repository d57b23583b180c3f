// Package keepalive runs a minimal HTTP endpoint so container platforms'
// health probes see the process as alive.
package keepalive

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Run serves "OK" on addr until ctx is cancelled.
func Run(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", addr).Msg("Keepalive server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("Keepalive server failed")
	}
}
