package cache

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/terryso/binance-dashboard/model"
)

const keyPrefix = "binance_dashboard_"

// Entry is one cached value with its creation time and time-to-live.
// Entries are only ever replaced whole, never mutated in place.
type Entry struct {
	Value     any
	Timestamp time.Time
	TTL       time.Duration
}

func (e Entry) expired(now time.Time) bool {
	return now.Sub(e.Timestamp) >= e.TTL
}

// Cache memoizes expensive producer calls per logical key with a
// time-to-live. Expired entries are not swept in the background, they are
// evicted lazily on the next read or by an explicit Clear.
type Cache struct {
	defaultTTL time.Duration
	entries    *model.ThreadSafeMap[string, Entry]
}

func New(defaultTTL time.Duration) *Cache {
	if defaultTTL <= 0 {
		defaultTTL = time.Minute
	}
	return &Cache{
		defaultTTL: defaultTTL,
		entries:    model.NewThreadSafeMap[string, Entry](),
	}
}

// Key derives the storage key for a dataset name. Arguments are stringified,
// sorted and fingerprinted so the key stays stable regardless of call-site
// argument order without growing with the argument values.
func (c *Cache) Key(name string, args ...any) string {
	if len(args) == 0 {
		return keyPrefix + name
	}
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, fmt.Sprintf("%v", arg))
	}
	sort.Strings(parts)
	sum := md5.Sum([]byte(strings.Join(parts, ",")))
	return keyPrefix + name + "_" + hex.EncodeToString(sum[:])[:8]
}

// Get returns the value stored under a derived key while it is still inside
// its time-to-live window. A stale entry is evicted as a side effect.
func (c *Cache) Get(key string) (any, bool) {
	entry, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	if entry.expired(time.Now()) {
		c.entries.Delete(key)
		return nil, false
	}
	return entry.Value, true
}

// Set stores a value under a derived key, overwriting unconditionally.
// A non-positive ttl falls back to the cache default.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	c.entries.Set(key, Entry{
		Value:     value,
		Timestamp: time.Now(),
		TTL:       ttl,
	})
}

// IsExpired reports whether a key needs recomputation. A missing key is
// indistinguishable from a stale one.
func (c *Cache) IsExpired(key string) bool {
	entry, ok := c.entries.Get(key)
	if !ok {
		return true
	}
	return entry.expired(time.Now())
}

// GetOrCompute returns the cached value for name (qualified by args) when it
// is still fresh, otherwise it invokes producer, stores the result and
// returns it. Freshness is checked against the same argument-qualified key
// the result is stored under. Producer errors propagate unchanged and leave
// the cache untouched. Concurrent callers observing a miss each invoke the
// producer independently, duplicate idempotent reads are accepted.
func (c *Cache) GetOrCompute(name string, producer func() (any, error), ttl time.Duration, args ...any) (any, error) {
	key := c.Key(name, args...)

	if value, ok := c.Get(key); ok {
		return value, nil
	}

	value, err := producer()
	if err != nil {
		return nil, err
	}

	c.Set(key, value, ttl)
	return value, nil
}

// Clear removes the named entries, including their argument-qualified
// variants. Without names it empties the whole namespace.
func (c *Cache) Clear(names ...string) {
	if len(names) == 0 {
		for _, key := range c.entries.Keys() {
			c.entries.Delete(key)
		}
		return
	}
	for _, name := range names {
		base := c.Key(name)
		for _, key := range c.entries.Keys() {
			if key == base || strings.HasPrefix(key, base+"_") {
				c.entries.Delete(key)
			}
		}
	}
}

// Stats is a diagnostic snapshot of the cache contents.
type Stats struct {
	TotalEntries   int     `json:"total_entries"`
	ExpiredEntries int     `json:"expired_entries"`
	ValidEntries   int     `json:"valid_entries"`
	SizeBytes      int64   `json:"total_size_bytes"`
	SizeMB         float64 `json:"total_size_mb"`
}

// GetStats counts entries without evicting them, so entries past their
// window but not yet read are reported as expired.
func (c *Cache) GetStats() Stats {
	stats := Stats{}
	now := time.Now()
	c.entries.Range(func(_ string, entry Entry) bool {
		stats.TotalEntries++
		if entry.expired(now) {
			stats.ExpiredEntries++
		}
		if raw, err := json.Marshal(entry.Value); err == nil {
			stats.SizeBytes += int64(len(raw))
		}
		return true
	})
	stats.ValidEntries = stats.TotalEntries - stats.ExpiredEntries
	stats.SizeMB = math.Round(float64(stats.SizeBytes)/(1024*1024)*100) / 100
	return stats
}
