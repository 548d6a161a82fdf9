package editor

import (
	"sync/atomic"
	"time"
)

// Metrics counts editor activity. It is safe for concurrent reads while
// the editor runs.
type Metrics struct {
	keysTotal      atomic.Uint64
	actionsTotal   atomic.Uint64
	unboundKeys    atomic.Uint64
	searchesTotal  atomic.Uint64
	searchMisses   atomic.Uint64
	searchAborts   atomic.Uint64
	linesAccepted  atomic.Uint64
	peakKeyLatency atomic.Int64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordKey records a processed key and how long it took.
func (m *Metrics) RecordKey(latency time.Duration) {
	m.keysTotal.Add(1)

	ns := latency.Nanoseconds()
	for {
		current := m.peakKeyLatency.Load()
		if ns <= current {
			break
		}
		if m.peakKeyLatency.CompareAndSwap(current, ns) {
			break
		}
	}
}

// RecordAction records a dispatched command.
func (m *Metrics) RecordAction() { m.actionsTotal.Add(1) }

// RecordUnbound records a key with no binding.
func (m *Metrics) RecordUnbound() { m.unboundKeys.Add(1) }

// RecordSearch records a search and its outcome.
func (m *Metrics) RecordSearch(miss, aborted bool) {
	m.searchesTotal.Add(1)
	switch {
	case aborted:
		m.searchAborts.Add(1)
	case miss:
		m.searchMisses.Add(1)
	}
}

// RecordAccept records an accepted line.
func (m *Metrics) RecordAccept() { m.linesAccepted.Add(1) }

// Stats is a point-in-time copy of the counters.
type Stats struct {
	Keys           uint64
	Actions        uint64
	UnboundKeys    uint64
	Searches       uint64
	SearchMisses   uint64
	SearchAborts   uint64
	LinesAccepted  uint64
	PeakKeyLatency time.Duration
	Uptime         time.Duration
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() Stats {
	return Stats{
		Keys:           m.keysTotal.Load(),
		Actions:        m.actionsTotal.Load(),
		UnboundKeys:    m.unboundKeys.Load(),
		Searches:       m.searchesTotal.Load(),
		SearchMisses:   m.searchMisses.Load(),
		SearchAborts:   m.searchAborts.Load(),
		LinesAccepted:  m.linesAccepted.Load(),
		PeakKeyLatency: time.Duration(m.peakKeyLatency.Load()),
		Uptime:         time.Since(m.startTime),
	}
}
