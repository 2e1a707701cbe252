package logic

import (
	"sort"
	"sync"
	"time"

	"notify_relay/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_enrich_cache.go -package mocks notify_relay/logic IEnrichCache

const (
	defaultCacheTtlSec     = 300
	defaultCacheMaxEntries = 1000
)

// CacheEntry holds the cleaned-up excerpt of one piece of ledger content.
// Missing entries record a failed lookup so we don't hammer the ledger API
// retrying content that isn't there.
type CacheEntry struct {
	Excerpt string
	Missing bool
	Stamp   time.Time
}

type IEnrichCache interface {
	Get(author, contentId string) *CacheEntry
	Set(author, contentId, excerpt string)
	SetMissing(author, contentId string)
	// Maintain evicts expired entries, then the oldest entries beyond the
	// size cap. Called before each conversion batch.
	Maintain()
	EntryCount() int
}

type enrichCache struct {
	logger     shared.ILogger
	metrics    IMetrics
	clock      func() time.Time
	ttl        time.Duration
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*CacheEntry
}

func NewEnrichCache(cfg *shared.Config, logger shared.ILogger, metrics IMetrics) IEnrichCache {
	return NewEnrichCacheWithClock(cfg, logger, metrics, time.Now)
}

func NewEnrichCacheWithClock(cfg *shared.Config, logger shared.ILogger, metrics IMetrics,
	clock func() time.Time) IEnrichCache {

	ttlSec := cfg.Cache.TtlSec
	if ttlSec <= 0 {
		ttlSec = defaultCacheTtlSec
	}
	maxEntries := cfg.Cache.MaxEntries
	if maxEntries <= 0 {
		maxEntries = defaultCacheMaxEntries
	}
	return &enrichCache{
		logger:     logger,
		metrics:    metrics,
		clock:      clock,
		ttl:        time.Duration(ttlSec) * time.Second,
		maxEntries: maxEntries,
		entries:    make(map[string]*CacheEntry),
	}
}

func cacheKey(author, contentId string) string {
	return author + "/" + contentId
}

func (ec *enrichCache) Get(author, contentId string) *CacheEntry {

	ec.mu.Lock()
	defer ec.mu.Unlock()

	entry := ec.entries[cacheKey(author, contentId)]
	if entry == nil {
		ec.metrics.EnrichLookup("miss")
		return nil
	}
	if ec.clock().Sub(entry.Stamp) > ec.ttl {
		delete(ec.entries, cacheKey(author, contentId))
		ec.metrics.EnrichLookup("expired")
		return nil
	}
	if entry.Missing {
		ec.metrics.EnrichLookup("hit_missing")
	} else {
		ec.metrics.EnrichLookup("hit")
	}
	cp := *entry
	return &cp
}

func (ec *enrichCache) Set(author, contentId, excerpt string) {
	ec.store(author, contentId, &CacheEntry{Excerpt: excerpt, Stamp: ec.clock()})
}

func (ec *enrichCache) SetMissing(author, contentId string) {
	ec.store(author, contentId, &CacheEntry{Missing: true, Stamp: ec.clock()})
}

func (ec *enrichCache) store(author, contentId string, entry *CacheEntry) {

	ec.mu.Lock()
	defer ec.mu.Unlock()

	ec.entries[cacheKey(author, contentId)] = entry
	ec.metrics.CacheEntryCount(len(ec.entries))
}

func (ec *enrichCache) Maintain() {

	ec.mu.Lock()
	defer ec.mu.Unlock()

	now := ec.clock()
	for key, entry := range ec.entries {
		if now.Sub(entry.Stamp) > ec.ttl {
			delete(ec.entries, key)
		}
	}

	if len(ec.entries) > ec.maxEntries {
		type keyedEntry struct {
			key   string
			stamp time.Time
		}
		all := make([]keyedEntry, 0, len(ec.entries))
		for key, entry := range ec.entries {
			all = append(all, keyedEntry{key, entry.Stamp})
		}
		sort.Slice(all, func(i, j int) bool { return all[i].stamp.Before(all[j].stamp) })
		evictCount := len(ec.entries) - ec.maxEntries
		for i := 0; i < evictCount; i++ {
			delete(ec.entries, all[i].key)
		}
		ec.logger.Debugf("Enrich cache over size limit; evicted %d oldest entries", evictCount)
	}

	ec.metrics.CacheEntryCount(len(ec.entries))
}

func (ec *enrichCache) EntryCount() int {

	ec.mu.Lock()
	defer ec.mu.Unlock()

	return len(ec.entries)
}
