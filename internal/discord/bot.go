// Package discord hosts the gateway session and the two command adapters:
// slash interactions and premium text-prefix messages. Both feed the shared
// registry through the same dispatch path.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"vrtex-economy/internal/config"
	"vrtex-economy/internal/storage"
)

type Bot struct {
	dg              *discordgo.Session
	storage         *storage.Storage
	cfg             *config.Config
	registerLimiter *rate.Limiter
	ctx             context.Context
}

// StartBot opens the gateway session and blocks until ctx is cancelled.
func StartBot(ctx context.Context, cfg *config.Config, store *storage.Storage) error {
	b := &Bot{
		cfg:             cfg,
		storage:         store,
		registerLimiter: newRegisterLimiter(),
		ctx:             ctx,
	}
	if err := b.run(ctx, cfg.DiscordToken); err != nil {
		return fmt.Errorf("bot run error: %w", err)
	}
	return nil
}

func (b *Bot) run(ctx context.Context, token string) error {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, closing session")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	guildIDs := make([]string, 0, len(r.Guilds))
	for _, g := range r.Guilds {
		guildIDs = append(guildIDs, g.ID)
	}
	if err := b.storage.EnsureEconomies(guildIDs); err != nil {
		log.Error().Err(err).Msg("Economy backfill failed")
	}

	if b.cfg.InitSlashCommands {
		for _, g := range r.Guilds {
			if err := b.syncCommands(b.ctx, g.ID); err != nil {
				log.Error().Err(err).Str("guild", g.ID).Msg("Slash command sync failed")
			}
		}
	} else {
		log.Info().Msg("Slash command registration skipped")
	}

	log.Info().Str("username", s.State.User.Username).Int("guilds", len(r.Guilds)).Msg("Bot is running")
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Info().Str("guild", g.ID).Str("name", g.Name).Msg("Guild available")

	if err := b.storage.EnsureEconomies([]string{g.ID}); err != nil {
		log.Error().Err(err).Str("guild", g.ID).Msg("Economy backfill failed")
	}
	if b.cfg.InitSlashCommands {
		if err := b.syncCommands(b.ctx, g.ID); err != nil {
			log.Error().Err(err).Str("guild", g.ID).Msg("Slash command sync failed")
		}
	}
}
