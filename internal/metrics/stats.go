// Package metrics accumulates training throughput and loss statistics.
package metrics

import "time"

// Window accumulates stats across multiple epochs.
type Window struct {
	samples  int
	compute  time.Duration
	epochs   int
	lastLoss float64
}

// Record adds one epoch's measurement to the window.
func (w *Window) Record(samples int, computeTime time.Duration, loss float64) {
	w.samples += samples
	w.compute += computeTime
	w.epochs++
	w.lastLoss = loss
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{}
	if w.compute > 0 {
		snap.SamplesPerSec = float64(w.samples) / w.compute.Seconds()
	}
	if w.epochs > 0 {
		snap.AvgEpochMS = (w.compute.Seconds() * 1000) / float64(w.epochs)
	}
	snap.LastLoss = w.lastLoss

	w.samples = 0
	w.compute = 0
	w.epochs = 0
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	SamplesPerSec float64
	AvgEpochMS    float64
	LastLoss      float64
}
