package cooldown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBeforeAndAfterExpiry(t *testing.T) {
	tr := NewTracker()

	tr.Set("daily", "user1", 100*time.Millisecond, ScopeUser)

	remaining, active := tr.Check("daily", "user1", ScopeUser)
	require.True(t, active)
	assert.Greater(t, remaining, time.Duration(0))
	assert.LessOrEqual(t, remaining, 100*time.Millisecond)

	time.Sleep(120 * time.Millisecond)

	_, active = tr.Check("daily", "user1", ScopeUser)
	assert.False(t, active)
	assert.Equal(t, 0, tr.user.Len(), "expired entry must be gone from the store")
}

func TestCheckWithoutSetIsClear(t *testing.T) {
	tr := NewTracker()
	_, active := tr.Check("daily", "user1", ScopeUser)
	assert.False(t, active)
}

func TestScopesAreIndependent(t *testing.T) {
	tr := NewTracker()

	tr.Set("daily", "id1", time.Minute, ScopeUser)

	_, active := tr.Check("daily", "id1", ScopeChannel)
	assert.False(t, active)
	_, active = tr.Check("daily", "id1", ScopeRole)
	assert.False(t, active)
	_, active = tr.Check("daily", "id1", ScopeUser)
	assert.True(t, active)
}

func TestGlobalScopeSharedAcrossSubjects(t *testing.T) {
	tr := NewTracker()

	tr.Set("announce", "user1", time.Minute, ScopeGlobal)

	// Any subject hits the same shared timer.
	_, active := tr.Check("announce", "user2", ScopeGlobal)
	assert.True(t, active)
	_, active = tr.Check("announce", "", ScopeGlobal)
	assert.True(t, active)
}

func TestClearCommand(t *testing.T) {
	tr := NewTracker()

	tr.Set("daily", "user1", time.Minute, ScopeUser)
	tr.Set("daily", "chan1", time.Minute, ScopeChannel)
	tr.Set("daily", "role1", time.Minute, ScopeRole)
	tr.Set("daily", "", time.Minute, ScopeGlobal)
	tr.Set("weekly", "user1", time.Minute, ScopeUser)

	removed := tr.ClearCommand("daily")
	assert.Equal(t, 4, removed)

	for _, scope := range []Scope{ScopeUser, ScopeChannel, ScopeRole, ScopeGlobal} {
		_, active := tr.Check("daily", "user1", scope)
		assert.False(t, active, "scope %s should be cleared", scope)
	}

	_, active := tr.Check("weekly", "user1", ScopeUser)
	assert.True(t, active, "other commands must be untouched")
}

func TestClearUser(t *testing.T) {
	tr := NewTracker()

	tr.Set("daily", "user1", time.Minute, ScopeUser)
	tr.Set("weekly", "user1", time.Minute, ScopeUser)
	tr.Set("daily", "user2", time.Minute, ScopeUser)
	tr.Set("daily", "user1", time.Minute, ScopeChannel)

	removed := tr.ClearUser("user1")
	assert.Equal(t, 2, removed)

	_, active := tr.Check("daily", "user1", ScopeUser)
	assert.False(t, active)
	_, active = tr.Check("daily", "user2", ScopeUser)
	assert.True(t, active)
	_, active = tr.Check("daily", "user1", ScopeChannel)
	assert.True(t, active, "only the user scope is targeted")
}
