package text

import (
	"strconv"
	"testing"
)

func TestAdvanceCacheHits(t *testing.T) {
	src, err := NewFontSource(Default().Data())
	if err != nil {
		t.Fatal(err)
	}
	face := src.Face(10)
	first := face.Advance("12.5")
	second := src.Face(10).Advance("12.5")
	if first != second {
		t.Errorf("cached advance = %v, want %v", second, first)
	}

	stats := src.CacheStats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Len != 1 {
		t.Errorf("CacheStats() = %+v, want 1 hit, 1 miss, 1 entry", stats)
	}

	// Another size is another entry.
	src.Face(20).Advance("12.5")
	if got := src.CacheStats().Len; got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
}

func TestAdvanceCacheEviction(t *testing.T) {
	c := newAdvanceCache(2)
	calls := 0
	create := func() float64 {
		calls++
		return float64(calls)
	}
	for i := 0; i < 10*advanceShards; i++ {
		c.getOrCreate(advanceKey{size: 1, text: strconv.Itoa(i)}, create)
	}
	if got := c.len(); got > 2*advanceShards {
		t.Errorf("len = %d, want at most %d", got, 2*advanceShards)
	}
	if calls != 10*advanceShards {
		t.Errorf("create called %d times, want %d", calls, 10*advanceShards)
	}
}

func TestAdvanceKeyHash(t *testing.T) {
	a := advanceKey{size: 10, text: "x"}
	if a.hash() != (advanceKey{size: 10, text: "x"}).hash() {
		t.Error("equal keys hash differently")
	}
	if a.hash() == (advanceKey{size: 11, text: "x"}).hash() {
		t.Error("size does not change the hash")
	}
}
