package models

// GuildSettings holds per-guild configuration.
type GuildSettings struct {
	GuildID          string   `json:"guild_id"`
	Prefix           string   `json:"prefix"`
	Language         string   `json:"language"`
	WelcomeChannel   string   `json:"welcome_channel"`
	WelcomeMessage   string   `json:"welcome_message"`
	LogChannel       string   `json:"log_channel"`
	AutoRole         string   `json:"auto_role"`
	DisabledCommands []string `json:"disabled_commands"`
}

// NewGuildSettings returns the defaults applied on first access for a
// guild with no stored settings.
func NewGuildSettings(guildID string) GuildSettings {
	return GuildSettings{
		GuildID:          guildID,
		Language:         "en-US",
		WelcomeMessage:   "Welcome {user} to {server}!",
		DisabledCommands: []string{},
	}
}
