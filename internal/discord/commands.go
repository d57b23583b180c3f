package discord

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"vrtex-economy/internal/command"
)

// buildDefinition produces the slash definition for a command: either its
// own SlashDefinition, or one generated from the declared parameter schema.
func buildDefinition(cmd command.Command) *discordgo.ApplicationCommand {
	if sp, ok := cmd.(command.SlashProvider); ok {
		if def := sp.SlashDefinition(); def != nil {
			if def.Type == 0 {
				def.Type = discordgo.ChatApplicationCommand
			}
			return def
		}
	}

	def := &discordgo.ApplicationCommand{
		Name:        cmd.Name(),
		Description: cmd.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
	for _, p := range cmd.Params() {
		def.Options = append(def.Options, &discordgo.ApplicationCommandOption{
			Type:        optionType(p.Kind),
			Name:        p.Name,
			Description: p.Description,
			Required:    p.Required,
		})
	}
	return def
}

func optionType(kind command.ParamKind) discordgo.ApplicationCommandOptionType {
	switch kind {
	case command.KindInt:
		return discordgo.ApplicationCommandOptionInteger
	case command.KindUser:
		return discordgo.ApplicationCommandOptionUser
	default:
		return discordgo.ApplicationCommandOptionString
	}
}

// syncCommands reconciles the guild's registered slash commands with the
// local registry: deletes obsolete ones, then creates or updates only the
// definitions whose hash differs from the cached value.
func (b *Bot) syncCommands(ctx context.Context, guildID string) error {
	appID := b.dg.State.User.ID
	if appID == "" {
		user, err := b.dg.User("@me")
		if err != nil {
			return err
		}
		appID = user.ID
	}

	existing, _ := b.dg.ApplicationCommands(appID, guildID)
	cached := b.loadCommandHashes(guildID)

	wanted := make(map[string]*discordgo.ApplicationCommand)
	wantedHashes := make(map[string]string)
	for _, cmd := range command.All() {
		def := buildDefinition(cmd)
		wanted[def.Name] = def
		wantedHashes[def.Name] = hashDefinition(def)
	}

	for _, old := range existing {
		if _, ok := wanted[old.Name]; ok {
			continue
		}
		log.Info().Str("guild", guildID).Str("command", old.Name).Msg("Deleting obsolete slash command")
		if err := b.dg.ApplicationCommandDelete(appID, guildID, old.ID); err != nil {
			log.Error().Err(err).Str("guild", guildID).Str("command", old.Name).Msg("Delete failed")
		}
		delete(cached, old.Name)
	}

	changed := 0
	for name, def := range wanted {
		if cached[name] == wantedHashes[name] {
			continue
		}
		if err := b.registerLimiter.Wait(ctx); err != nil {
			return err
		}
		if _, err := b.dg.ApplicationCommandCreate(appID, guildID, def); err != nil {
			log.Error().Err(err).Str("guild", guildID).Str("command", name).Msg("Create failed")
			continue
		}
		cached[name] = wantedHashes[name]
		changed++
	}
	if changed > 0 {
		log.Info().Str("guild", guildID).Int("count", changed).Msg("Slash commands updated")
	}

	b.saveCommandHashes(guildID, cached)
	return nil
}

func (b *Bot) commandCachePath(guildID string) string {
	return filepath.Join(b.cfg.StorageDir, "commands", guildID+".json")
}

func (b *Bot) loadCommandHashes(guildID string) map[string]string {
	hashes := make(map[string]string)
	if data, err := os.ReadFile(b.commandCachePath(guildID)); err == nil {
		_ = json.Unmarshal(data, &hashes)
	}
	return hashes
}

func (b *Bot) saveCommandHashes(guildID string, hashes map[string]string) {
	path := b.commandCachePath(guildID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	data, _ := json.MarshalIndent(hashes, "", "  ")
	_ = os.WriteFile(path, data, 0o644)
}

// newRegisterLimiter paces command registration under Discord's global
// request budget.
func newRegisterLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Limit(40), 1)
}
