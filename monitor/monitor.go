// Package monitor is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

// Package monitor is an optional, entirely out-of-band observability layer:
// it serves a live statsview dashboard (runtime goroutines/heap, the way the
// teacher wires statsview for its CPU core) and periodically samples a few
// engine-level gauges through the control thread, logging them via package
// logger. Nothing here ever touches the device lock or the mixer hot path;
// the Sampler is called on a timer from a background goroutine that Start
// launches, not from the goroutine that calls engine.Update.
package monitor

import (
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/loopstack/soundstage/logger"
)

// Snapshot is a point-in-time readout of engine state cheap enough to take
// under the device lock: active channel counts and the pending table depth
// (spec.md §4.5 describes both tables; a growing pending depth with no
// Update calls draining it is the one actionable signal an operator needs).
type Snapshot struct {
	PlayingChannels int
	PendingChannels int
}

// Sampler produces a Snapshot of the engine at the moment it is called.
type Sampler func() Snapshot

// Monitor owns a statsview dashboard manager and a background sampling
// ticker.
type Monitor struct {
	mgr    *statsview.Manager
	ticker *time.Ticker
	done   chan struct{}
}

// Start opens a statsview dashboard on addr (e.g. "localhost:18081") and
// begins sampling sample every interval, logging the result. Start returns
// immediately; the dashboard and sampler both run in background goroutines.
// Call Stop to shut both down.
func Start(addr string, interval time.Duration, sample Sampler) *Monitor {
	mgr := statsview.New(viewer.WithAddr(addr))

	m := &Monitor{
		mgr:    mgr,
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}

	go func() {
		if err := mgr.Start(); err != nil {
			logger.Logf(logger.Allow, "monitor", "statsview dashboard stopped: %v", err)
		}
	}()

	go m.run(sample)

	logger.Logf(logger.Allow, "monitor", "dashboard listening on %s", addr)
	return m
}

func (m *Monitor) run(sample Sampler) {
	for {
		select {
		case <-m.ticker.C:
			s := sample()
			logger.Logf(logger.Allow, "monitor", "playing=%d pending=%d", s.PlayingChannels, s.PendingChannels)
		case <-m.done:
			return
		}
	}
}

// Stop halts the sampling ticker and the statsview dashboard.
func (m *Monitor) Stop() {
	m.ticker.Stop()
	close(m.done)
	m.mgr.Stop()
}
