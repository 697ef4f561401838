// /internal/cooldown/cooldown.go
package cooldown

import (
	"context"
	"strings"
	"time"

	"server-warden/pkg/ttlstore"
)

// Scope is the dimension a cooldown applies to.
type Scope string

const (
	ScopeGlobal  Scope = "global"
	ScopeUser    Scope = "user"
	ScopeChannel Scope = "channel"
	ScopeRole    Scope = "role"
)

// Tracker keeps independent cooldown windows per scope. Each scope has
// its own store; entries hold their expiry instant so remaining time
// can be reported precisely.
type Tracker struct {
	global  *ttlstore.Store[time.Time]
	user    *ttlstore.Store[time.Time]
	channel *ttlstore.Store[time.Time]
	role    *ttlstore.Store[time.Time]
}

// NewTracker creates a Tracker with empty scopes. Start Run to sweep
// expired entries in the background.
func NewTracker() *Tracker {
	return &Tracker{
		global:  ttlstore.New[time.Time](),
		user:    ttlstore.New[time.Time](),
		channel: ttlstore.New[time.Time](),
		role:    ttlstore.New[time.Time](),
	}
}

func (t *Tracker) store(scope Scope) *ttlstore.Store[time.Time] {
	switch scope {
	case ScopeUser:
		return t.user
	case ScopeChannel:
		return t.channel
	case ScopeRole:
		return t.role
	default:
		return t.global
	}
}

// key composes the store key within a scope. The global scope has a
// single shared timer per command, so the subject is dropped there.
func key(scope Scope, commandID, subjectID string) string {
	if scope == ScopeGlobal {
		return commandID
	}
	return commandID + ":" + subjectID
}

// Set arms a cooldown of the given duration for the command and subject
// in the given scope.
func (t *Tracker) Set(commandID, subjectID string, d time.Duration, scope Scope) {
	if d <= 0 {
		return
	}
	t.store(scope).Set(key(scope, commandID, subjectID), time.Now().Add(d), d)
}

// Check reports the time remaining on an active cooldown. The second
// return is false when no cooldown is active and the caller may proceed.
func (t *Tracker) Check(commandID, subjectID string, scope Scope) (time.Duration, bool) {
	expiresAt, ok := t.store(scope).Get(key(scope, commandID, subjectID))
	if !ok {
		return 0, false
	}
	remaining := time.Until(expiresAt)
	if remaining <= 0 {
		// Expiry raced between the store read and now.
		t.store(scope).Delete(key(scope, commandID, subjectID))
		return 0, false
	}
	return remaining, true
}

// ClearCommand removes every cooldown for the command across all
// scopes. Administrative override, not reachable by ordinary callers.
func (t *Tracker) ClearCommand(commandID string) int {
	prefix := commandID + ":"
	removed := 0
	for _, s := range []*ttlstore.Store[time.Time]{t.user, t.channel, t.role} {
		removed += s.DeleteFunc(func(k string) bool {
			return strings.HasPrefix(k, prefix)
		})
	}
	removed += t.global.DeleteFunc(func(k string) bool {
		return k == commandID
	})
	return removed
}

// ClearUser removes every user-scope cooldown for the subject.
func (t *Tracker) ClearUser(userID string) int {
	suffix := ":" + userID
	return t.user.DeleteFunc(func(k string) bool {
		return strings.HasSuffix(k, suffix)
	})
}

// Run sweeps all scopes on the given interval until ctx is done.
func (t *Tracker) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = ttlstore.DefaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.global.Sweep()
			t.user.Sweep()
			t.channel.Sweep()
			t.role.Sweep()
		}
	}
}
