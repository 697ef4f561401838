package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"server-warden/internal/models"
	"server-warden/internal/repository"
)

func newGuildService() *GuildSettingsService {
	return NewGuildSettings(repository.NewMemory(models.NewGuildSettings))
}

func TestDisableEnableCommand(t *testing.T) {
	s := newGuildService()

	require.NoError(t, s.DisableCommand("g1", "daily"))
	require.NoError(t, s.DisableCommand("g1", "daily")) // idempotent
	require.NoError(t, s.DisableCommand("g1", "ping"))

	disabled, err := s.DisabledCommands("g1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"daily", "ping"}, disabled)

	// Other guilds are untouched.
	disabled, err = s.DisabledCommands("g2")
	require.NoError(t, err)
	assert.Empty(t, disabled)

	require.NoError(t, s.EnableCommand("g1", "daily"))
	disabled, err = s.DisabledCommands("g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ping"}, disabled)
}

func TestSetLanguage(t *testing.T) {
	s := newGuildService()

	require.NoError(t, s.SetLanguage("g1", "de-DE"))
	settings, err := s.Settings("g1")
	require.NoError(t, err)
	assert.Equal(t, "de-DE", settings.Language)
	// Defaults from first access survive the partial update.
	assert.Equal(t, "Welcome {user} to {server}!", settings.WelcomeMessage)
}

func TestSetWelcome(t *testing.T) {
	s := newGuildService()

	require.NoError(t, s.SetWelcome("g1", "chan1", "Hi {user}!"))
	settings, err := s.Settings("g1")
	require.NoError(t, err)
	assert.Equal(t, "chan1", settings.WelcomeChannel)
	assert.Equal(t, "Hi {user}!", settings.WelcomeMessage)
}

func TestSetAutoRole(t *testing.T) {
	s := newGuildService()

	require.NoError(t, s.SetAutoRole("g1", "r1"))
	settings, err := s.Settings("g1")
	require.NoError(t, err)
	assert.Equal(t, "r1", settings.AutoRole)
}

func TestForget(t *testing.T) {
	s := newGuildService()

	require.NoError(t, s.SetLanguage("g1", "de-DE"))
	require.NoError(t, s.Forget("g1"))

	// The next access reseeds defaults.
	settings, err := s.Settings("g1")
	require.NoError(t, err)
	assert.Equal(t, "en-US", settings.Language)
}

func TestGrantDaily(t *testing.T) {
	s := NewUserProfiles(repository.NewMemory(models.NewUserProfile))

	before := time.Now().Add(-time.Second)
	profile, err := s.GrantDaily("u1")
	require.NoError(t, err)
	assert.Equal(t, DailyReward, profile.Balance)
	assert.True(t, profile.LastDaily.After(before))

	profile, err = s.GrantDaily("u1")
	require.NoError(t, err)
	assert.Equal(t, 2*DailyReward, profile.Balance)
}

func TestSetBio(t *testing.T) {
	s := NewUserProfiles(repository.NewMemory(models.NewUserProfile))

	require.NoError(t, s.SetBio("u1", "tinkerer"))
	profile, err := s.Profile("u1")
	require.NoError(t, err)
	assert.Equal(t, "tinkerer", profile.Bio)
}
