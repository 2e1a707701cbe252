package logic_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"notify_relay/logic"
	"notify_relay/shared"
	"notify_relay/test/mocks"
)

func setupCacheTest(t *testing.T, ttlSec, maxEntries int) (*gomock.Controller, *time.Time, logic.IEnrichCache) {

	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockILogger(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	stubLogger(mockLogger)
	stubMetrics(mockMetrics)

	cfg := &shared.Config{Cache: shared.CacheLimits{TtlSec: ttlSec, MaxEntries: maxEntries}}
	now := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	cache := logic.NewEnrichCacheWithClock(cfg, mockLogger, mockMetrics, func() time.Time { return now })

	return ctrl, &now, cache
}

func Test_Cache_Returns_Stored_Entry(t *testing.T) {
	ctrl, _, cache := setupCacheTest(t, 300, 100)
	defer ctrl.Finish()

	cache.Set("alice", "my-post", "A fine excerpt")
	entry := cache.Get("alice", "my-post")

	assert.NotNil(t, entry)
	assert.False(t, entry.Missing)
	assert.Equal(t, "A fine excerpt", entry.Excerpt)
}

func Test_Cache_Entry_Expires_After_Ttl(t *testing.T) {
	ctrl, now, cache := setupCacheTest(t, 300, 100)
	defer ctrl.Finish()

	cache.Set("alice", "my-post", "A fine excerpt")

	*now = now.Add(299 * time.Second)
	assert.NotNil(t, cache.Get("alice", "my-post"))

	*now = now.Add(2 * time.Second)
	assert.Nil(t, cache.Get("alice", "my-post"))
}

func Test_Cache_Negative_Entries_Cached(t *testing.T) {
	ctrl, _, cache := setupCacheTest(t, 300, 100)
	defer ctrl.Finish()

	cache.SetMissing("alice", "gone-post")
	entry := cache.Get("alice", "gone-post")

	assert.NotNil(t, entry)
	assert.True(t, entry.Missing)
}

func Test_Cache_Maintain_Purges_Expired(t *testing.T) {
	ctrl, now, cache := setupCacheTest(t, 300, 100)
	defer ctrl.Finish()

	cache.Set("alice", "post-1", "one")
	*now = now.Add(200 * time.Second)
	cache.Set("alice", "post-2", "two")
	*now = now.Add(150 * time.Second)

	cache.Maintain()

	assert.Equal(t, 1, cache.EntryCount())
	assert.Nil(t, cache.Get("alice", "post-1"))
	assert.NotNil(t, cache.Get("alice", "post-2"))
}

func Test_Cache_Maintain_Evicts_Oldest_Beyond_Size(t *testing.T) {
	ctrl, now, cache := setupCacheTest(t, 3600, 2)
	defer ctrl.Finish()

	cache.Set("alice", "post-1", "one")
	*now = now.Add(time.Second)
	cache.Set("alice", "post-2", "two")
	*now = now.Add(time.Second)
	cache.Set("alice", "post-3", "three")

	cache.Maintain()

	assert.Equal(t, 2, cache.EntryCount())
	assert.Nil(t, cache.Get("alice", "post-1"))
	assert.NotNil(t, cache.Get("alice", "post-2"))
	assert.NotNil(t, cache.Get("alice", "post-3"))
}
