package handler

import (
	"sync/atomic"

	"github.com/philipp01105/ilog/core"
)

// Stats tracks handler statistics
type Stats struct {
	// ProcessedTotal counts records written
	ProcessedTotal uint64
	// FailedTotal counts records the sink could not write
	FailedTotal uint64
	// FatalTotal counts records written at FATAL
	FatalTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// Record counts the outcome of one Handle call
func (s *Stats) Record(level core.Level, err error) {
	if err != nil {
		atomic.AddUint64(&s.FailedTotal, 1)
		return
	}
	atomic.AddUint64(&s.ProcessedTotal, 1)
	if level >= core.FatalLevel {
		atomic.AddUint64(&s.FatalTotal, 1)
	}
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return atomic.LoadUint64(&s.ProcessedTotal)
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.ProcessedTotal, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
	atomic.StoreUint64(&s.FatalTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	ProcessedTotal uint64
	FailedTotal    uint64
	FatalTotal     uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: s.GetProcessed(),
		FailedTotal:    s.GetFailed(),
		FatalTotal:     atomic.LoadUint64(&s.FatalTotal),
	}
}
