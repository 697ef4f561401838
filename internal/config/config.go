// /internal/config/config.go
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the bot's startup configuration, read once in main.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	StoragePath  string `env:"STORAGE_PATH" envDefault:"datastore.json"`

	// BotOwners are user IDs resolved to the highest permission level.
	BotOwners []string `env:"BOT_OWNERS" envSeparator:","`

	// DisabledCommands are disabled everywhere, regardless of guild
	// settings.
	DisabledCommands []string `env:"DISABLED_COMMANDS" envSeparator:","`

	PermissionCacheTTL time.Duration `env:"PERMISSION_CACHE_TTL" envDefault:"5m"`
	SettingsCacheTTL   time.Duration `env:"SETTINGS_CACHE_TTL" envDefault:"5m"`
	SweepInterval      time.Duration `env:"SWEEP_INTERVAL" envDefault:"5m"`
}

// New loads configuration from .env (if present) and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// IsOwner reports whether the user ID is a configured bot owner.
func (c *Config) IsOwner(userID string) bool {
	for _, id := range c.BotOwners {
		if id == userID {
			return true
		}
	}
	return false
}
