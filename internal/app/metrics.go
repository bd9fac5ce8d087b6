package app

import (
	"time"
)

// Metrics counts what a session processed.
type Metrics struct {
	lines    uint64
	commands uint64
	unknown  uint64
	failures uint64
	execNs   int64

	startTime time.Time
}

// MetricsSnapshot is a point-in-time copy of session metrics.
type MetricsSnapshot struct {
	// Lines is the number of input lines read.
	Lines uint64
	// Commands is the number of lines that parsed as commands.
	Commands uint64
	// Unknown is the number of lines rejected by the parser.
	Unknown uint64
	// Failures is the number of commands that reported an error.
	Failures uint64
	// ExecTime is the total time spent executing commands.
	ExecTime time.Duration
	// Uptime is the time since the metrics were created.
	Uptime time.Duration
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordLine records one input line and how it ended.
func (m *Metrics) RecordLine(parsed bool, err error, duration time.Duration) {
	m.lines++
	if !parsed {
		m.unknown++
		return
	}
	m.commands++
	m.execNs += duration.Nanoseconds()
	if err != nil {
		m.failures++
	}
}

// Snapshot returns the current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Lines:    m.lines,
		Commands: m.commands,
		Unknown:  m.unknown,
		Failures: m.failures,
		ExecTime: time.Duration(m.execNs),
		Uptime:   time.Since(m.startTime),
	}
}

// Fields returns the snapshot as log fields.
func (s MetricsSnapshot) Fields() map[string]any {
	return map[string]any{
		"lines":    s.Lines,
		"commands": s.Commands,
		"unknown":  s.Unknown,
		"failures": s.Failures,
		"execTime": s.ExecTime.Round(time.Microsecond),
	}
}

// Timer measures elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer starts a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
