package perf

import (
	"testing"
	"time"
)

// TestCollector_RecordAndSnapshot tests aggregation over recorded entries.
func TestCollector_RecordAndSnapshot(t *testing.T) {
	c := NewCollector(16)
	now := time.Now()

	c.Record(Entry{Kind: KindRequest, Path: "GET /api/player-data", DurationMs: 10, Timestamp: now})
	c.Record(Entry{Kind: KindRequest, Path: "GET /api/player-data", DurationMs: 30, Timestamp: now})
	c.Record(Entry{Kind: KindQuery, Path: "ExecContext", DurationMs: 5, Timestamp: now})

	stats := c.Snapshot(now.Add(-time.Minute), 5)
	if stats.TotalRecorded != 3 {
		t.Errorf("got total %d, want 3", stats.TotalRecorded)
	}
	if len(stats.SlowestPaths) != 1 {
		t.Fatalf("got %d paths, want 1", len(stats.SlowestPaths))
	}
	p := stats.SlowestPaths[0]
	if p.Count != 2 || p.AvgMs != 20 || p.MaxMs != 30 {
		t.Errorf("unexpected path stat: %+v", p)
	}
	if len(stats.SlowestQueries) != 1 {
		t.Errorf("got %d queries, want 1", len(stats.SlowestQueries))
	}
}

// TestCollector_RingOverwrite tests that old entries are overwritten.
func TestCollector_RingOverwrite(t *testing.T) {
	c := NewCollector(2)
	now := time.Now()
	for i := 0; i < 5; i++ {
		c.Record(Entry{Kind: KindRequest, Path: "GET /", DurationMs: float64(i), Timestamp: now})
	}
	stats := c.Snapshot(now.Add(-time.Minute), 5)
	if stats.TotalRecorded != 5 {
		t.Errorf("got total %d, want 5", stats.TotalRecorded)
	}
	if stats.SlowestPaths[0].Count != 2 {
		t.Errorf("ring should hold 2 entries, got %d", stats.SlowestPaths[0].Count)
	}
}

// TestCollector_SinceFilter tests that entries before the cutoff are ignored.
func TestCollector_SinceFilter(t *testing.T) {
	c := NewCollector(8)
	old := time.Now().Add(-time.Hour)
	c.Record(Entry{Kind: KindRequest, Path: "GET /", DurationMs: 1, Timestamp: old})

	stats := c.Snapshot(time.Now().Add(-time.Minute), 5)
	if len(stats.SlowestPaths) != 0 {
		t.Errorf("expected no paths, got %+v", stats.SlowestPaths)
	}
}
