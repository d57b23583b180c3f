package config

import (
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	DiscordToken      string   `env:"DISCORD_TOKEN,required"`
	OwnerID           string   `env:"OWNER_ID"`
	TeamIDs           []string `env:"TEAM_IDS" envSeparator:","`
	StorageDir        string   `env:"STORAGE_DIR" envDefault:"data"`
	KeepAliveAddr     string   `env:"KEEPALIVE_ADDR" envDefault:":8080"`
	InitSlashCommands bool     `env:"INIT_SLASH_COMMANDS" envDefault:"true"`
	LogFile           string   `env:"LOG_FILE"`
}

// New parses configuration from the environment. A missing DISCORD_TOKEN is
// the only fatal startup condition in the whole system.
func New() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsOwner reports whether userID is the configured bot owner.
func (c *Config) IsOwner(userID string) bool {
	return c.OwnerID != "" && userID == c.OwnerID
}

// IsTeam reports whether userID is the owner or one of the team ids with
// elevated settings access.
func (c *Config) IsTeam(userID string) bool {
	return c.IsOwner(userID) || slices.Contains(c.TeamIDs, userID)
}
