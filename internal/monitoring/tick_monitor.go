package monitoring

import (
	"sync"
	"sync/atomic"
	"time"
)

// TickMonitor tracks camera rig tick timing and frustum recomputations.
// A nil *TickMonitor is valid and records nothing.
type TickMonitor struct {
	tickCount   atomic.Uint64
	lastTick    atomic.Uint64 // nanoseconds
	totalTick   atomic.Uint64 // nanoseconds
	peakTick    atomic.Uint64 // nanoseconds
	projections atomic.Uint64

	mutex     sync.RWMutex
	startTime time.Time
	budget    time.Duration
}

// NewTickMonitor creates a monitor. budget is the tick duration above which an
// alert is raised; zero uses one 60Hz frame.
func NewTickMonitor(budget time.Duration) *TickMonitor {
	if budget <= 0 {
		budget = time.Second / 60
	}
	return &TickMonitor{
		startTime: time.Now(),
		budget:    budget,
	}
}

// TickTimer measures one controller tick
type TickTimer struct {
	monitor   *TickMonitor
	startTime time.Time
}

// StartTick begins tick timing
func (tm *TickMonitor) StartTick() *TickTimer {
	return &TickTimer{
		monitor:   tm,
		startTime: time.Now(),
	}
}

// EndTick completes tick timing
func (tt *TickTimer) EndTick() {
	if tt == nil || tt.monitor == nil {
		return
	}
	tt.monitor.RecordTick(time.Since(tt.startTime))
}

// RecordTick stores one tick duration
func (tm *TickMonitor) RecordTick(d time.Duration) {
	if tm == nil {
		return
	}
	ns := uint64(d.Nanoseconds())
	tm.lastTick.Store(ns)
	tm.totalTick.Add(ns)
	tm.tickCount.Add(1)
	for {
		peak := tm.peakTick.Load()
		if ns <= peak || tm.peakTick.CompareAndSwap(peak, ns) {
			break
		}
	}
}

// RecordProjection counts one frustum recomputation
func (tm *TickMonitor) RecordProjection() {
	if tm == nil {
		return
	}
	tm.projections.Add(1)
}

// TickMetrics is a point-in-time copy of the counters
type TickMetrics struct {
	Ticks              uint64
	Projections        uint64
	LastTick           time.Duration
	AverageTick        time.Duration
	PeakTick           time.Duration
	ProjectionsPerTick float64
	Uptime             time.Duration
}

// Snapshot returns current metrics
func (tm *TickMonitor) Snapshot() TickMetrics {
	if tm == nil {
		return TickMetrics{}
	}
	tm.mutex.RLock()
	start := tm.startTime
	tm.mutex.RUnlock()

	ticks := tm.tickCount.Load()
	projections := tm.projections.Load()
	m := TickMetrics{
		Ticks:       ticks,
		Projections: projections,
		LastTick:    time.Duration(tm.lastTick.Load()),
		PeakTick:    time.Duration(tm.peakTick.Load()),
		Uptime:      time.Since(start),
	}
	if ticks > 0 {
		m.AverageTick = time.Duration(tm.totalTick.Load() / ticks)
		m.ProjectionsPerTick = float64(projections) / float64(ticks)
	}
	return m
}

// Alert represents a tick budget warning
type Alert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckAlerts reports slow ticks and excessive recomputation
func (tm *TickMonitor) CheckAlerts() []Alert {
	alerts := make([]Alert, 0)
	if tm == nil {
		return alerts
	}
	now := time.Now()
	m := tm.Snapshot()

	tm.mutex.RLock()
	budget := tm.budget
	tm.mutex.RUnlock()

	if m.LastTick > budget {
		alerts = append(alerts, Alert{
			Type:      "slow_tick",
			Message:   "Camera tick exceeded its frame budget",
			Value:     float64(m.LastTick) / float64(time.Millisecond),
			Threshold: float64(budget) / float64(time.Millisecond),
			Timestamp: now,
		})
	}

	// Every mutating stage may reproject; more than a handful per tick means a feedback loop.
	if m.Ticks >= 60 && m.ProjectionsPerTick > 4 {
		alerts = append(alerts, Alert{
			Type:      "projection_storm",
			Message:   "Frustum recomputed more than 4 times per tick on average",
			Value:     m.ProjectionsPerTick,
			Threshold: 4,
			Timestamp: now,
		})
	}
	return alerts
}

// Reset resets all counters
func (tm *TickMonitor) Reset() {
	if tm == nil {
		return
	}
	tm.tickCount.Store(0)
	tm.lastTick.Store(0)
	tm.totalTick.Store(0)
	tm.peakTick.Store(0)
	tm.projections.Store(0)

	tm.mutex.Lock()
	tm.startTime = time.Now()
	tm.mutex.Unlock()
}

// ProfiledFunction wraps a function with tick timing
func (tm *TickMonitor) ProfiledFunction(fn func()) time.Duration {
	start := time.Now()
	fn()
	duration := time.Since(start)
	tm.RecordTick(duration)
	return duration
}
