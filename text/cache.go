package text

import (
	"container/list"
	"hash/fnv"
	"math"
	"sync"
	"sync/atomic"
)

const (
	// advanceShards must be a power of 2 for fast modulo via bitwise AND.
	advanceShards = 8

	// DefaultAdvanceCapacity is the default maximum entries per shard.
	DefaultAdvanceCapacity = 256
)

// advanceKey identifies a shaped string at a given size.
type advanceKey struct {
	size float64
	text string
}

func (k advanceKey) hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	bits := math.Float64bits(k.size)
	for i := range buf {
		buf[i] = byte(bits >> (8 * i))
	}
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(k.text))
	return h.Sum64()
}

// advanceCache is a sharded LRU of shaped advances, shared by all faces of
// a FontSource.
type advanceCache struct {
	shards   [advanceShards]advanceShard
	capacity int

	hits   atomic.Uint64
	misses atomic.Uint64
}

type advanceShard struct {
	mu      sync.Mutex
	entries map[advanceKey]*list.Element
	lru     list.List
}

type advanceEntry struct {
	key     advanceKey
	advance float64
}

func newAdvanceCache(capacity int) *advanceCache {
	if capacity <= 0 {
		capacity = DefaultAdvanceCapacity
	}
	c := &advanceCache{capacity: capacity}
	for i := range c.shards {
		c.shards[i].entries = make(map[advanceKey]*list.Element)
	}
	return c
}

// getOrCreate returns the cached advance for key or computes it with
// create. create runs with the shard lock held.
func (c *advanceCache) getOrCreate(key advanceKey, create func() float64) float64 {
	shard := &c.shards[key.hash()&(advanceShards-1)]
	shard.mu.Lock()
	defer shard.mu.Unlock()

	if elem, ok := shard.entries[key]; ok {
		shard.lru.MoveToFront(elem)
		c.hits.Add(1)
		return elem.Value.(*advanceEntry).advance
	}
	c.misses.Add(1)

	advance := create()
	for shard.lru.Len() >= c.capacity {
		oldest := shard.lru.Back()
		shard.lru.Remove(oldest)
		delete(shard.entries, oldest.Value.(*advanceEntry).key)
	}
	shard.entries[key] = shard.lru.PushFront(&advanceEntry{key: key, advance: advance})
	return advance
}

func (c *advanceCache) len() int {
	total := 0
	for i := range c.shards {
		c.shards[i].mu.Lock()
		total += len(c.shards[i].entries)
		c.shards[i].mu.Unlock()
	}
	return total
}

// CacheStats reports the advance cache usage of a FontSource.
type CacheStats struct {
	Len     int
	Hits    uint64
	Misses  uint64
	HitRate float64
}

// CacheStats returns the advance cache statistics.
func (s *FontSource) CacheStats() CacheStats {
	s.copyCheck()
	hits := s.advances.hits.Load()
	misses := s.advances.misses.Load()
	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return CacheStats{
		Len:     s.advances.len(),
		Hits:    hits,
		Misses:  misses,
		HitRate: rate,
	}
}
