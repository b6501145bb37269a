package progress

import (
	"sync"
	"time"

	"kabulearn/models"

	"gorm.io/gorm"
)

// AttemptSource yields the ids of all questions an identity has answered
// correctly at least once.
type AttemptSource interface {
	CorrectQuestionIDs(identity Identity) ([]uint, error)
}

type cacheEntry struct {
	questionIDs map[uint]struct{}
	capturedAt  time.Time
}

// AttemptCache is a read-through TTL cache over correct-attempt lookups.
// Entries expire a fixed duration after capture; a submission for an
// identity must call Invalidate so the learner sees their own write
// immediately instead of waiting out the TTL.
type AttemptCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	source  AttemptSource
	entries map[string]cacheEntry
}

// NewAttemptCache builds a cache around source. now is injectable so tests
// can drive expiry with a fake clock; pass time.Now in production.
func NewAttemptCache(ttl time.Duration, now func() time.Time, source AttemptSource) *AttemptCache {
	return &AttemptCache{
		ttl:     ttl,
		now:     now,
		source:  source,
		entries: make(map[string]cacheEntry),
	}
}

// ClearedQuestionIDs returns the set of question ids the identity has
// cleared. A cached entry is served while it is younger than the TTL;
// otherwise the source is queried and the result cached with a fresh
// timestamp. Callers must not mutate the returned set.
func (c *AttemptCache) ClearedQuestionIDs(identity Identity) (map[uint]struct{}, error) {
	key := identity.CacheKey()
	now := c.now()

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && now.Sub(entry.capturedAt) < c.ttl {
		c.mu.Unlock()
		return entry.questionIDs, nil
	}
	c.mu.Unlock()

	ids, err := c.source.CorrectQuestionIDs(identity)
	if err != nil {
		return nil, err
	}

	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{questionIDs: set, capturedAt: now}
	c.mu.Unlock()

	return set, nil
}

// Invalidate drops the identity's entry so the next read is a forced miss.
// Call it only after the attempt row was actually written; a stale entry
// is still accurate, an invalidated one for a failed write is not.
func (c *AttemptCache) Invalidate(identity Identity) {
	c.mu.Lock()
	delete(c.entries, identity.CacheKey())
	c.mu.Unlock()
}

// Flush drops every entry. Used after bulk progress resets, where
// per-identity invalidation would have to enumerate all keys anyway.
func (c *AttemptCache) Flush() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// GormAttemptSource reads correct attempts from the database.
type GormAttemptSource struct {
	DB *gorm.DB
}

// CorrectQuestionIDs returns the distinct question ids with at least one
// correct attempt by the identity.
func (s GormAttemptSource) CorrectQuestionIDs(identity Identity) ([]uint, error) {
	query := s.DB.Model(&models.QuizAttempt{}).Where("is_correct = ?", true)
	if identity.UserID != 0 {
		query = query.Where("user_id = ?", identity.UserID)
	} else {
		query = query.Where("session_id = ?", identity.SessionID)
	}

	var ids []uint
	if err := query.Distinct("question_id").Pluck("question_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Cache is the process-wide attempt cache, constructed once in main.
var Cache *AttemptCache
