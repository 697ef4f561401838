// /internal/permissions/permissions.go
package permissions

import (
	"context"
	"time"

	"server-warden/pkg/ttlstore"
)

// Level is an ordered permission level. Comparisons are numeric: a
// caller passes a requirement when its level is >= the required one.
type Level int

const (
	Everyone Level = iota
	Member
	Moderator
	Administrator
	ServerOwner
	BotOwner
)

func (l Level) String() string {
	switch l {
	case Everyone:
		return "Everyone"
	case Member:
		return "Member"
	case Moderator:
		return "Moderator"
	case Administrator:
		return "Administrator"
	case ServerOwner:
		return "Server Owner"
	case BotOwner:
		return "Bot Owner"
	default:
		return "Unknown"
	}
}

// Capability is a platform-neutral name for a permission the caller
// holds, filled in by the platform adapter.
type Capability string

const (
	CapManageMessages  Capability = "manage_messages"
	CapKickMembers     Capability = "kick_members"
	CapBanMembers      Capability = "ban_members"
	CapModerateMembers Capability = "moderate_members"
)

// moderationCaps is the fixed set that grants Moderator.
var moderationCaps = map[Capability]bool{
	CapManageMessages:  true,
	CapKickMembers:     true,
	CapBanMembers:      true,
	CapModerateMembers: true,
}

// Caller is the normalized view of whoever issued a request. The
// pipeline never inspects platform objects; the adapter produces this.
type Caller struct {
	UserID    string
	GuildID   string
	ChannelID string
	RoleIDs   []string

	Operator      bool // configured bot owner
	GuildOwner    bool
	Administrator bool
	Moderation    []Capability
}

// DefaultCacheTTL is how long a resolved level stays cached.
const DefaultCacheTTL = 5 * time.Minute

// Gate resolves callers to levels and gates execution on them. Results
// are cached per guild and user for a short TTL; Invalidate forces a
// re-derivation after a role change.
type Gate struct {
	cache *ttlstore.Store[Level]
	ttl   time.Duration
}

// NewGate creates a Gate with the given decision cache TTL. A
// non-positive TTL falls back to DefaultCacheTTL.
func NewGate(ttl time.Duration) *Gate {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Gate{
		cache: ttlstore.New[Level](),
		ttl:   ttl,
	}
}

func cacheKey(guildID, userID string) string {
	return guildID + ":" + userID
}

// Resolve returns the caller's level, first match wins: bot owner,
// guild owner, administrator, any moderation capability, member.
func (g *Gate) Resolve(c *Caller) Level {
	key := cacheKey(c.GuildID, c.UserID)
	if level, ok := g.cache.Get(key); ok {
		return level
	}

	level := Member
	switch {
	case c.Operator:
		level = BotOwner
	case c.GuildOwner:
		level = ServerOwner
	case c.Administrator:
		level = Administrator
	default:
		for _, capability := range c.Moderation {
			if moderationCaps[capability] {
				level = Moderator
				break
			}
		}
	}

	g.cache.Set(key, level, g.ttl)
	return level
}

// HasLevel reports whether the caller meets the required level. Ties
// pass.
func (g *Gate) HasLevel(c *Caller, required Level) bool {
	return g.Resolve(c) >= required
}

// Invalidate drops the cached decision for one caller in one guild.
func (g *Gate) Invalidate(guildID, userID string) {
	g.cache.Delete(cacheKey(guildID, userID))
}

// InvalidateAll drops every cached decision.
func (g *Gate) InvalidateAll() {
	g.cache.Flush()
}

// Run sweeps the decision cache until ctx is done.
func (g *Gate) Run(ctx context.Context, interval time.Duration) {
	g.cache.Run(ctx, interval)
}
