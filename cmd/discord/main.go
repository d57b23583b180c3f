package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	_ "vrtex-economy/internal/command/adventure"
	_ "vrtex-economy/internal/command/business"
	_ "vrtex-economy/internal/command/core"
	_ "vrtex-economy/internal/command/economy"
	_ "vrtex-economy/internal/command/inventory"
	_ "vrtex-economy/internal/command/job"
	_ "vrtex-economy/internal/command/premium"

	"vrtex-economy/internal/config"
	"vrtex-economy/internal/discord"
	"vrtex-economy/internal/keepalive"
	"vrtex-economy/internal/logging"
	"vrtex-economy/internal/storage"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Config error")
	}
	logging.Setup(cfg.LogFile)

	log.Info().Msg("Starting VRTEX Economy bot")

	store, err := storage.New(cfg.StorageDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Storage error")
	}

	go storage.RunKeyCleaner(ctx, store)
	if cfg.KeepAliveAddr != "" {
		go keepalive.Run(ctx, cfg.KeepAliveAddr)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- discord.StartBot(ctx, cfg, store)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("Shutting down")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("Discord bot error")
		}
		cancel()
	}

	log.Info().Msg("Discord bot exited cleanly")
}
