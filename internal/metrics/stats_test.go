package metrics

import (
	"math"
	"testing"
	"time"
)

func TestWindowSnapshot(t *testing.T) {
	var w Window
	w.Record(1000, 20*time.Millisecond, 1.2)
	w.Record(1000, 30*time.Millisecond, 0.8)

	snap := w.Snapshot()
	if math.Abs(snap.SamplesPerSec-40000) > 1 {
		t.Fatalf("unexpected throughput %.2f", snap.SamplesPerSec)
	}
	if math.Abs(snap.AvgEpochMS-25) > 0.01 {
		t.Fatalf("unexpected epoch time %.2f", snap.AvgEpochMS)
	}
	if snap.LastLoss != 0.8 {
		t.Fatalf("expected last loss 0.8, got %.2f", snap.LastLoss)
	}
	if w.samples != 0 || w.epochs != 0 {
		t.Fatalf("window was not reset")
	}
}

func TestWindowEmptySnapshot(t *testing.T) {
	var w Window
	snap := w.Snapshot()
	if snap.SamplesPerSec != 0 || snap.AvgEpochMS != 0 || snap.LastLoss != 0 {
		t.Fatalf("empty window should produce zero snapshot, got %+v", snap)
	}
}
