package progress

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	byKey map[string][]uint
	calls int
	err   error
}

func (s *fakeSource) CorrectQuestionIDs(identity Identity) ([]uint, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.byKey[identity.CacheKey()], nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestAttemptCache_ColdReadHitsSource(t *testing.T) {
	source := &fakeSource{byKey: map[string][]uint{"user:1": {1, 2, 2}}}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	cache := NewAttemptCache(30*time.Second, clock.Now, source)

	cleared, err := cache.ClearedQuestionIDs(ForUser(1))
	require.NoError(t, err)

	// Duplicate correct attempts collapse into the set
	assert.Len(t, cleared, 2)
	assert.Contains(t, cleared, uint(1))
	assert.Contains(t, cleared, uint(2))
	assert.Equal(t, 1, source.calls)
}

func TestAttemptCache_ServesCachedEntryWithinTTL(t *testing.T) {
	source := &fakeSource{byKey: map[string][]uint{"user:1": {1}}}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	cache := NewAttemptCache(30*time.Second, clock.Now, source)

	_, err := cache.ClearedQuestionIDs(ForUser(1))
	require.NoError(t, err)

	clock.Advance(29 * time.Second)
	_, err = cache.ClearedQuestionIDs(ForUser(1))
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls)
}

func TestAttemptCache_ExpiredEntryIsRefetched(t *testing.T) {
	source := &fakeSource{byKey: map[string][]uint{"user:1": {1}}}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	cache := NewAttemptCache(30*time.Second, clock.Now, source)

	_, err := cache.ClearedQuestionIDs(ForUser(1))
	require.NoError(t, err)

	clock.Advance(30 * time.Second)
	source.byKey["user:1"] = []uint{1, 5}

	cleared, err := cache.ClearedQuestionIDs(ForUser(1))
	require.NoError(t, err)

	assert.Equal(t, 2, source.calls)
	assert.Contains(t, cleared, uint(5))
}

func TestAttemptCache_InvalidateForcesMissWithinTTL(t *testing.T) {
	source := &fakeSource{byKey: map[string][]uint{"session:abc": {}}}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	cache := NewAttemptCache(30*time.Second, clock.Now, source)

	identity := ForSession("abc")

	cleared, err := cache.ClearedQuestionIDs(identity)
	require.NoError(t, err)
	assert.Empty(t, cleared)

	// A new correct submission lands, then invalidation; the next read
	// must see it even though the old entry was still fresh
	source.byKey["session:abc"] = []uint{7}
	cache.Invalidate(identity)

	clock.Advance(1 * time.Second)
	cleared, err = cache.ClearedQuestionIDs(identity)
	require.NoError(t, err)

	assert.Contains(t, cleared, uint(7))
	assert.Equal(t, 2, source.calls)
}

func TestAttemptCache_UserAndSessionKeysNeverCollide(t *testing.T) {
	source := &fakeSource{byKey: map[string][]uint{
		"user:42":    {1},
		"session:42": {2},
	}}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	cache := NewAttemptCache(30*time.Second, clock.Now, source)

	userCleared, err := cache.ClearedQuestionIDs(ForUser(42))
	require.NoError(t, err)
	sessionCleared, err := cache.ClearedQuestionIDs(ForSession("42"))
	require.NoError(t, err)

	assert.Contains(t, userCleared, uint(1))
	assert.NotContains(t, userCleared, uint(2))
	assert.Contains(t, sessionCleared, uint(2))
	assert.NotContains(t, sessionCleared, uint(1))
}

func TestAttemptCache_SourceErrorIsNotCached(t *testing.T) {
	source := &fakeSource{err: errors.New("db down")}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	cache := NewAttemptCache(30*time.Second, clock.Now, source)

	_, err := cache.ClearedQuestionIDs(ForUser(1))
	require.Error(t, err)

	source.err = nil
	source.byKey = map[string][]uint{"user:1": {3}}

	cleared, err := cache.ClearedQuestionIDs(ForUser(1))
	require.NoError(t, err)
	assert.Contains(t, cleared, uint(3))
}

func TestAttemptCache_Flush(t *testing.T) {
	source := &fakeSource{byKey: map[string][]uint{"user:1": {1}}}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	cache := NewAttemptCache(30*time.Second, clock.Now, source)

	_, err := cache.ClearedQuestionIDs(ForUser(1))
	require.NoError(t, err)

	cache.Flush()

	_, err = cache.ClearedQuestionIDs(ForUser(1))
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestIdentity_CacheKey(t *testing.T) {
	assert.Equal(t, "user:42", ForUser(42).CacheKey())
	assert.Equal(t, "session:abc-123", ForSession("abc-123").CacheKey())
	assert.True(t, ForSession("abc-123").IsGuest())
	assert.False(t, ForUser(42).IsGuest())
}
