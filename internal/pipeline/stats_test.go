package pipeline

import (
	"math"
	"testing"
	"time"
)

func TestLatencyStatsSnapshotPercentiles(t *testing.T) {
	stats := NewLatencyStats(time.Hour)
	for _, us := range []int64{100, 200, 300, 400, 500} {
		stats.Record(time.Duration(us)*time.Microsecond, 10)
	}

	snap := stats.Snapshot()
	if snap.Count != 5 {
		t.Fatalf("expected count=5, got %d", snap.Count)
	}
	if snap.MinUs != 100 || snap.MaxUs != 500 {
		t.Fatalf("expected min=100 max=500, got min=%d max=%d", snap.MinUs, snap.MaxUs)
	}
	if snap.AvgUs != 300 {
		t.Fatalf("expected avg=300, got %f", snap.AvgUs)
	}
	if snap.P50Us != 300 {
		t.Fatalf("expected p50=300, got %f", snap.P50Us)
	}
	if math.Abs(snap.P95Us-480) > 1e-6 {
		t.Fatalf("expected p95=480, got %f", snap.P95Us)
	}
	if math.Abs(snap.P99Us-496) > 1e-6 {
		t.Fatalf("expected p99=496, got %f", snap.P99Us)
	}
}

func TestLatencyStatsPrunesExpiredSamples(t *testing.T) {
	stats := NewLatencyStats(10 * time.Millisecond)
	stats.Record(time.Millisecond, 1)
	time.Sleep(25 * time.Millisecond)

	if snap := stats.Snapshot(); snap.Count != 0 {
		t.Fatalf("expected count=0 after prune, got %d", snap.Count)
	}

	stats.Record(2*time.Millisecond, 4)
	snap := stats.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected count=1 for fresh sample, got %d", snap.Count)
	}
	if snap.MinUs != 2000 || snap.MaxUs != 2000 {
		t.Fatalf("expected min=max=2000, got min=%d max=%d", snap.MinUs, snap.MaxUs)
	}
}

func TestLatencyStatsClampsNegativeDuration(t *testing.T) {
	stats := NewLatencyStats(time.Hour)
	stats.Record(-time.Second, -3)
	snap := stats.Snapshot()
	if snap.MinUs != 0 {
		t.Fatalf("expected clamped 0, got %d", snap.MinUs)
	}
	if snap.Labels != 0 || snap.UsPerLabel != 0 {
		t.Fatalf("expected clamped label count, got labels=%d per=%f", snap.Labels, snap.UsPerLabel)
	}
}

func TestLatencyStatsLabelCounts(t *testing.T) {
	stats := NewLatencyStats(time.Hour)
	stats.Record(300*time.Microsecond, 3)
	stats.Record(900*time.Microsecond, 9)

	snap := stats.Snapshot()
	if snap.Labels != 12 {
		t.Fatalf("expected 12 labels, got %d", snap.Labels)
	}
	if snap.MaxLabels != 9 {
		t.Fatalf("expected max_labels=9, got %d", snap.MaxLabels)
	}
	if math.Abs(snap.UsPerLabel-100) > 1e-9 {
		t.Fatalf("expected 100us per label, got %f", snap.UsPerLabel)
	}
}
