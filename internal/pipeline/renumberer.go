package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgallion1/outlinefix/internal/outline"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Renumberer wraps outline.Map with a result cache and latency stats. It is
// safe for concurrent use.
type Renumberer struct {
	cache *lru.Cache[string, []outline.Change]
	stats *LatencyStats

	hits   atomic.Int64
	misses atomic.Int64
}

// CacheStats reports result cache effectiveness.
type CacheStats struct {
	Size   int   `json:"size"`
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

func NewRenumberer(cacheSize int, statsWindow time.Duration) (*Renumberer, error) {
	cache, err := lru.New[string, []outline.Change](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create result cache: %w", err)
	}
	return &Renumberer{
		cache: cache,
		stats: NewLatencyStats(statsWindow),
	}, nil
}

// Map returns the old/new pair for each label. Only successful results are
// cached; the returned slice is owned by the caller.
func (r *Renumberer) Map(labels []string) ([]outline.Change, error) {
	if labels == nil {
		return outline.Map(nil)
	}
	key := labelsKey(labels)
	if changes, ok := r.cache.Get(key); ok {
		r.hits.Add(1)
		return slices.Clone(changes), nil
	}
	r.misses.Add(1)

	start := time.Now()
	changes, err := outline.Map(labels)
	r.stats.Record(time.Since(start), len(labels))
	if err != nil {
		return nil, err
	}
	r.cache.Add(key, slices.Clone(changes))
	return changes, nil
}

// BatchResult is the outcome for one list of a batch.
type BatchResult struct {
	Changes []outline.Change
	Err     error
}

// MapBatch renumbers independent lists with at most concurrency in flight.
// Results are positional. Lists not started before ctx is done get ctx.Err().
func (r *Renumberer) MapBatch(ctx context.Context, lists [][]string, concurrency int) []BatchResult {
	if concurrency <= 0 {
		concurrency = 1
	}
	results := make([]BatchResult, len(lists))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, labels := range lists {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			for j := i; j < len(lists); j++ {
				results[j] = BatchResult{Err: ctx.Err()}
			}
			wg.Wait()
			return results
		}
		wg.Add(1)
		go func(i int, labels []string) {
			defer wg.Done()
			defer func() { <-sem }()
			changes, err := r.Map(labels)
			results[i] = BatchResult{Changes: changes, Err: err}
		}(i, labels)
	}
	wg.Wait()
	return results
}

// Latency returns the rolling latency aggregate of uncached calls.
func (r *Renumberer) Latency() StatsSnapshot {
	return r.stats.Snapshot()
}

// CacheStats returns cache size and hit counters.
func (r *Renumberer) CacheStats() CacheStats {
	return CacheStats{
		Size:   r.cache.Len(),
		Hits:   r.hits.Load(),
		Misses: r.misses.Load(),
	}
}

// labelsKey hashes a label list. Each label is length-prefixed so that no two
// different lists share a key.
func labelsKey(labels []string) string {
	h := sha256.New()
	var n [8]byte
	for _, l := range labels {
		binary.BigEndian.PutUint64(n[:], uint64(len(l)))
		h.Write(n[:])
		h.Write([]byte(l))
	}
	return fmt.Sprintf("%d:%x", len(labels), h.Sum(nil))
}
