package command

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/cooldown"
	"server-warden/internal/permissions"
	"server-warden/internal/service"
)

// Cooldowns declares per-scope cooldown durations for a command. Zero
// means the scope is not configured. Roles maps role IDs to durations;
// a role cooldown applies to every member holding that role.
type Cooldowns struct {
	Global  time.Duration
	User    time.Duration
	Channel time.Duration
	Roles   map[string]time.Duration
}

// Command is a registered command definition. The body runs only after
// the dispatcher clears every admission gate.
type Command struct {
	Name          string
	Description   string
	Category      string
	RequiredLevel permissions.Level
	Cooldowns     Cooldowns
	Options       []*discordgo.ApplicationCommandOption

	Run func(ctx *Context) error
}

// Services bundles the handles command bodies may need. Administrative
// commands use the tracker and gate directly.
type Services struct {
	Guilds    *service.GuildSettingsService
	Users     *service.UserProfileService
	Cooldowns *cooldown.Tracker
	Gate      *permissions.Gate
}

// Context is what a command body receives. Reply funcs are provided by
// the platform adapter; the body never touches platform objects through
// the pipeline.
type Context struct {
	Caller   *permissions.Caller
	Options  map[string]string
	Services *Services

	// Latency is the platform heartbeat latency at dispatch time.
	Latency time.Duration

	Reply          func(msg string) error
	ReplyEphemeral func(msg string) error
}

// Option returns a named option value, or "" when absent.
func (c *Context) Option(name string) string {
	return c.Options[name]
}
