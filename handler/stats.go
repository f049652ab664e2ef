package handler

import (
	"sync/atomic"

	"github.com/philipp01105/tinylog/core"
)

// levelCount is the number of defined levels, LevelNone included
const levelCount = int(core.CriticalLevel) + 1

// Stats tracks sink statistics
type Stats struct {
	// Separate atomic counters per level
	dropped [levelCount]atomic.Uint64
	// written counts records written in full
	written atomic.Uint64
	// rotations counts triggered file rotations
	rotations atomic.Uint64
	// truncated counts prefixes cut short by the fixed buffer
	truncated atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter for a level.
// Unknown levels are counted as LevelNone.
func (s *Stats) IncrementDropped(level core.Level) {
	s.dropped[levelIndex(level)].Add(1)
}

// IncrementWritten atomically increments the written counter
func (s *Stats) IncrementWritten() {
	s.written.Add(1)
}

// IncrementRotations atomically increments the rotation counter
func (s *Stats) IncrementRotations() {
	s.rotations.Add(1)
}

// IncrementTruncated atomically increments the truncation counter
func (s *Stats) IncrementTruncated() {
	s.truncated.Add(1)
}

// GetDropped returns the dropped count for a level
func (s *Stats) GetDropped(level core.Level) uint64 {
	return s.dropped[levelIndex(level)].Load()
}

// GetTotalDropped returns the total dropped across all levels
func (s *Stats) GetTotalDropped() uint64 {
	var total uint64
	for i := range s.dropped {
		total += s.dropped[i].Load()
	}
	return total
}

// GetWritten returns the written count
func (s *Stats) GetWritten() uint64 {
	return s.written.Load()
}

// GetRotations returns the rotation count
func (s *Stats) GetRotations() uint64 {
	return s.rotations.Load()
}

// GetTruncated returns the truncation count
func (s *Stats) GetTruncated() uint64 {
	return s.truncated.Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.dropped {
		s.dropped[i].Store(0)
	}
	s.written.Store(0)
	s.rotations.Store(0)
	s.truncated.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Dropped   map[core.Level]uint64
	Written   uint64
	Rotations uint64
	Truncated uint64
}

// TotalDropped sums the per-level dropped counts
func (s Snapshot) TotalDropped() uint64 {
	var total uint64
	for _, n := range s.Dropped {
		total += n
	}
	return total
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	dropped := make(map[core.Level]uint64, levelCount)
	for i := range s.dropped {
		dropped[core.Level(i)] = s.dropped[i].Load()
	}
	return Snapshot{
		Dropped:   dropped,
		Written:   s.GetWritten(),
		Rotations: s.GetRotations(),
		Truncated: s.GetTruncated(),
	}
}

func levelIndex(level core.Level) int {
	if level < core.LevelNone || int(level) >= levelCount {
		return int(core.LevelNone)
	}
	return int(level)
}
