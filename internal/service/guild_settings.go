// Package service exposes typed operations over the document
// repositories for use by commands and the dispatcher.
package service

import (
	"slices"

	"server-warden/internal/models"
	"server-warden/internal/repository"
)

// GuildSettingsService reads and updates per-guild settings.
type GuildSettingsService struct {
	repo repository.Repository[models.GuildSettings]
}

func NewGuildSettings(repo repository.Repository[models.GuildSettings]) *GuildSettingsService {
	return &GuildSettingsService{repo: repo}
}

// Settings returns the guild's settings, seeding defaults on first use.
func (s *GuildSettingsService) Settings(guildID string) (models.GuildSettings, error) {
	return s.repo.Get(guildID)
}

// DisabledCommands returns the commands disabled in the guild.
func (s *GuildSettingsService) DisabledCommands(guildID string) ([]string, error) {
	settings, err := s.repo.Get(guildID)
	if err != nil {
		return nil, err
	}
	return settings.DisabledCommands, nil
}

// DisableCommand adds a command to the guild's disabled list.
func (s *GuildSettingsService) DisableCommand(guildID, name string) error {
	settings, err := s.repo.Get(guildID)
	if err != nil {
		return err
	}
	if slices.Contains(settings.DisabledCommands, name) {
		return nil
	}
	disabled := append(slices.Clone(settings.DisabledCommands), name)
	_, err = s.repo.Update(guildID, map[string]any{"disabled_commands": disabled})
	return err
}

// EnableCommand removes a command from the guild's disabled list.
func (s *GuildSettingsService) EnableCommand(guildID, name string) error {
	settings, err := s.repo.Get(guildID)
	if err != nil {
		return err
	}
	disabled := slices.DeleteFunc(slices.Clone(settings.DisabledCommands), func(c string) bool {
		return c == name
	})
	if len(disabled) == len(settings.DisabledCommands) {
		return nil
	}
	_, err = s.repo.Update(guildID, map[string]any{"disabled_commands": disabled})
	return err
}

// SetLanguage sets the guild's language tag.
func (s *GuildSettingsService) SetLanguage(guildID, language string) error {
	_, err := s.repo.Update(guildID, map[string]any{"language": language})
	return err
}

// SetWelcome sets the welcome channel and message.
func (s *GuildSettingsService) SetWelcome(guildID, channelID, message string) error {
	_, err := s.repo.Update(guildID, map[string]any{
		"welcome_channel": channelID,
		"welcome_message": message,
	})
	return err
}

// SetAutoRole sets the role granted to new members.
func (s *GuildSettingsService) SetAutoRole(guildID, roleID string) error {
	_, err := s.repo.Update(guildID, map[string]any{"auto_role": roleID})
	return err
}

// Refresh drops any cached copy of the guild's settings.
func (s *GuildSettingsService) Refresh(guildID string) {
	s.repo.Invalidate(guildID)
}

// Forget deletes the guild's settings entirely, e.g. on guild leave.
func (s *GuildSettingsService) Forget(guildID string) error {
	return s.repo.Delete(guildID)
}
