package command

import (
	"time"

	"server-warden/internal/cooldown"
)

// Reason identifies why the dispatcher refused to run a command body.
type Reason string

const (
	ReasonUnknownCommand   Reason = "unknown_command"
	ReasonDisabledGlobally Reason = "disabled_globally"
	ReasonDisabledInGuild  Reason = "disabled_in_guild"
	ReasonNoPermission     Reason = "insufficient_permission"
	ReasonOnCooldown       Reason = "on_cooldown"
	ReasonStoreUnavailable Reason = "store_unavailable"
	ReasonExecutionFailed  Reason = "execution_failed"
)

// Rejection is the typed outcome of a refused dispatch. The adapter
// turns it into a user-facing notice; the pipeline never formats text.
type Rejection struct {
	Reason Reason

	// Scope and Remaining are set for ReasonOnCooldown.
	Scope     cooldown.Scope
	Remaining time.Duration

	// Err carries the underlying error for ReasonStoreUnavailable and
	// ReasonExecutionFailed. Not meant to be shown to the caller.
	Err error
}

func reject(reason Reason) *Rejection {
	return &Rejection{Reason: reason}
}
