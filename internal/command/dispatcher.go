// /internal/command/dispatcher.go
package command

import (
	"errors"
	"log"
	"slices"

	"server-warden/internal/cooldown"
	"server-warden/internal/permissions"
	"server-warden/internal/repository"
)

// GuildSettingsSource is the slice of the settings service the
// dispatcher needs for the per-guild disablement check.
type GuildSettingsSource interface {
	DisabledCommands(guildID string) ([]string, error)
}

// Dispatcher runs the admission pipeline for every inbound request:
// disablement checks, the permission gate, then cooldown checks in
// fixed scope order. Only a fully cleared request reaches the body.
type Dispatcher struct {
	gate      *permissions.Gate
	cooldowns *cooldown.Tracker
	guilds    GuildSettingsSource
	disabled  map[string]bool
}

// NewDispatcher wires the dispatcher. globallyDisabled is the static
// disabled-command list from configuration.
func NewDispatcher(gate *permissions.Gate, tracker *cooldown.Tracker, guilds GuildSettingsSource, globallyDisabled []string) *Dispatcher {
	disabled := make(map[string]bool, len(globallyDisabled))
	for _, name := range globallyDisabled {
		disabled[name] = true
	}
	return &Dispatcher{
		gate:      gate,
		cooldowns: tracker,
		guilds:    guilds,
		disabled:  disabled,
	}
}

// Dispatch admits and runs the named command for the caller. A nil
// return means the body completed; otherwise the rejection says why it
// never ran, or that it ran and failed. Admission rejections are
// ordinary outcomes and are not logged as errors.
func (d *Dispatcher) Dispatch(name string, caller *permissions.Caller, ctx *Context) *Rejection {
	cmd, ok := Get(name)
	if !ok {
		return reject(ReasonUnknownCommand)
	}

	if d.disabled[cmd.Name] {
		return reject(ReasonDisabledGlobally)
	}

	if caller.GuildID != "" {
		guildDisabled, err := d.guilds.DisabledCommands(caller.GuildID)
		if err != nil {
			log.Printf("[ERR] Disablement lookup failed for guild %s: %v", caller.GuildID, err)
			return &Rejection{Reason: ReasonStoreUnavailable, Err: err}
		}
		if slices.Contains(guildDisabled, cmd.Name) {
			return reject(ReasonDisabledInGuild)
		}
	}

	if !d.gate.HasLevel(caller, cmd.RequiredLevel) {
		return reject(ReasonNoPermission)
	}

	if rej := d.checkCooldowns(cmd, caller); rej != nil {
		return rej
	}
	// Every scope is clear: arm them all before running the body. A
	// partially blocked attempt arms nothing.
	d.armCooldowns(cmd, caller)

	if err := cmd.Run(ctx); err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			log.Printf("[ERR] Command %s hit unavailable store: %v", cmd.Name, err)
			return &Rejection{Reason: ReasonStoreUnavailable, Err: err}
		}
		log.Printf("[ERR] Command %s failed: %v", cmd.Name, err)
		return &Rejection{Reason: ReasonExecutionFailed, Err: err}
	}
	return nil
}

// checkCooldowns evaluates scopes in fixed order: global, user,
// channel, role. The first active cooldown rejects; later scopes are
// not evaluated.
func (d *Dispatcher) checkCooldowns(cmd *Command, caller *permissions.Caller) *Rejection {
	if cmd.Cooldowns.Global > 0 {
		if remaining, active := d.cooldowns.Check(cmd.Name, "", cooldown.ScopeGlobal); active {
			return &Rejection{Reason: ReasonOnCooldown, Scope: cooldown.ScopeGlobal, Remaining: remaining}
		}
	}
	if cmd.Cooldowns.User > 0 {
		if remaining, active := d.cooldowns.Check(cmd.Name, caller.UserID, cooldown.ScopeUser); active {
			return &Rejection{Reason: ReasonOnCooldown, Scope: cooldown.ScopeUser, Remaining: remaining}
		}
	}
	if cmd.Cooldowns.Channel > 0 && caller.ChannelID != "" {
		if remaining, active := d.cooldowns.Check(cmd.Name, caller.ChannelID, cooldown.ScopeChannel); active {
			return &Rejection{Reason: ReasonOnCooldown, Scope: cooldown.ScopeChannel, Remaining: remaining}
		}
	}
	for _, roleID := range caller.RoleIDs {
		if cmd.Cooldowns.Roles[roleID] <= 0 {
			continue
		}
		if remaining, active := d.cooldowns.Check(cmd.Name, roleID, cooldown.ScopeRole); active {
			return &Rejection{Reason: ReasonOnCooldown, Scope: cooldown.ScopeRole, Remaining: remaining}
		}
	}
	return nil
}

func (d *Dispatcher) armCooldowns(cmd *Command, caller *permissions.Caller) {
	if cmd.Cooldowns.Global > 0 {
		d.cooldowns.Set(cmd.Name, "", cmd.Cooldowns.Global, cooldown.ScopeGlobal)
	}
	if cmd.Cooldowns.User > 0 {
		d.cooldowns.Set(cmd.Name, caller.UserID, cmd.Cooldowns.User, cooldown.ScopeUser)
	}
	if cmd.Cooldowns.Channel > 0 && caller.ChannelID != "" {
		d.cooldowns.Set(cmd.Name, caller.ChannelID, cmd.Cooldowns.Channel, cooldown.ScopeChannel)
	}
	for _, roleID := range caller.RoleIDs {
		if ttl := cmd.Cooldowns.Roles[roleID]; ttl > 0 {
			d.cooldowns.Set(cmd.Name, roleID, ttl, cooldown.ScopeRole)
		}
	}
}
