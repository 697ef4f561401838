package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"server-warden/internal/command"
	"server-warden/internal/cooldown"
	"server-warden/internal/models"
	"server-warden/internal/permissions"
	"server-warden/internal/repository"
	"server-warden/internal/service"
)

// newAdminContext builds a command context backed by in-memory
// repositories and captures every reply.
func newAdminContext(opts map[string]string) (*command.Context, *[]string) {
	replies := &[]string{}
	ctx := &command.Context{
		Caller:  &permissions.Caller{UserID: "u1", GuildID: "g1", Administrator: true},
		Options: opts,
		Services: &command.Services{
			Guilds:    service.NewGuildSettings(repository.NewMemory(models.NewGuildSettings)),
			Users:     service.NewUserProfiles(repository.NewMemory(models.NewUserProfile)),
			Cooldowns: cooldown.NewTracker(),
			Gate:      permissions.NewGate(0),
		},
	}
	reply := func(msg string) error {
		*replies = append(*replies, msg)
		return nil
	}
	ctx.Reply = reply
	ctx.ReplyEphemeral = reply
	return ctx, replies
}

func TestSettingsWelcome(t *testing.T) {
	ctx, replies := newAdminContext(map[string]string{
		"action":  "welcome",
		"channel": "chan1",
		"message": "Hi {user}!",
	})
	require.NoError(t, settingsRun(ctx))

	settings, err := ctx.Services.Guilds.Settings("g1")
	require.NoError(t, err)
	assert.Equal(t, "chan1", settings.WelcomeChannel)
	assert.Equal(t, "Hi {user}!", settings.WelcomeMessage)
	require.Len(t, *replies, 1)
	assert.Contains(t, (*replies)[0], "<#chan1>")
}

func TestSettingsWelcomeRequiresChannelAndMessage(t *testing.T) {
	ctx, replies := newAdminContext(map[string]string{"action": "welcome", "message": "Hi"})
	require.NoError(t, settingsRun(ctx))
	assert.Contains(t, (*replies)[0], "Provide a welcome channel")

	ctx, replies = newAdminContext(map[string]string{"action": "welcome", "channel": "chan1"})
	require.NoError(t, settingsRun(ctx))
	assert.Contains(t, (*replies)[0], "Provide a welcome message")

	settings, err := ctx.Services.Guilds.Settings("g1")
	require.NoError(t, err)
	assert.Empty(t, settings.WelcomeChannel, "nothing is written on a refused action")
}

func TestSettingsAutoRole(t *testing.T) {
	ctx, replies := newAdminContext(map[string]string{"action": "autorole", "role": "r1"})
	require.NoError(t, settingsRun(ctx))

	settings, err := ctx.Services.Guilds.Settings("g1")
	require.NoError(t, err)
	assert.Equal(t, "r1", settings.AutoRole)
	assert.Contains(t, (*replies)[0], "<@&r1>")
}

func TestSettingsDisableEnableRoundTrip(t *testing.T) {
	ctx, _ := newAdminContext(map[string]string{"action": "disable", "value": "cooldown"})
	require.NoError(t, settingsRun(ctx))

	disabled, err := ctx.Services.Guilds.DisabledCommands("g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"cooldown"}, disabled)

	ctx.Options = map[string]string{"action": "enable", "value": "cooldown"}
	require.NoError(t, settingsRun(ctx))

	disabled, err = ctx.Services.Guilds.DisabledCommands("g1")
	require.NoError(t, err)
	assert.Empty(t, disabled)
}

func TestSettingsEnableUnknownCommand(t *testing.T) {
	for _, value := range []string{"bogus", ""} {
		ctx, replies := newAdminContext(map[string]string{"action": "enable", "value": value})
		require.NoError(t, settingsRun(ctx))
		require.Len(t, *replies, 1)
		assert.Contains(t, (*replies)[0], "Unknown command")
	}
}

func TestSettingsDisableUnknownCommand(t *testing.T) {
	ctx, replies := newAdminContext(map[string]string{"action": "disable", "value": "bogus"})
	require.NoError(t, settingsRun(ctx))
	assert.Contains(t, (*replies)[0], "Unknown command")

	disabled, err := ctx.Services.Guilds.DisabledCommands("g1")
	require.NoError(t, err)
	assert.Empty(t, disabled)
}

func TestSettingsViewShowsWelcomeAndAutoRole(t *testing.T) {
	ctx, replies := newAdminContext(map[string]string{"action": "view"})
	require.NoError(t, settingsRun(ctx))
	assert.Contains(t, (*replies)[0], "Welcome: off")
	assert.Contains(t, (*replies)[0], "Auto-role: none")

	require.NoError(t, ctx.Services.Guilds.SetWelcome("g1", "chan1", "Hello"))
	require.NoError(t, ctx.Services.Guilds.SetAutoRole("g1", "r1"))

	ctx.Options = map[string]string{"action": "view"}
	*replies = nil
	require.NoError(t, settingsRun(ctx))
	assert.Contains(t, (*replies)[0], "<#chan1>")
	assert.Contains(t, (*replies)[0], "<@&r1>")
}
