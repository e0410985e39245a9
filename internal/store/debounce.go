package store

import (
	"log/slog"
	"time"
)

// DefaultDebounce is the quiet period a geometry change must survive
// before it is written to disk.
const DefaultDebounce = 1000 * time.Millisecond

// SaveFunc performs the actual write.
type SaveFunc func() error

// Saver coalesces bursts of geometry changes into single writes. It is
// driven from the frame loop: NotifyChanged on every change, Tick once
// per frame, Flush at shutdown. There is no internal timer and no
// goroutine; time arrives as an argument so tests can steer it.
type Saver struct {
	interval time.Duration
	save     SaveFunc
	logger   *slog.Logger

	pending    bool
	lastChange time.Time
}

// NewSaver creates a saver with the given quiet interval. An interval
// of zero or less falls back to DefaultDebounce.
func NewSaver(interval time.Duration, save SaveFunc, logger *slog.Logger) *Saver {
	if interval <= 0 {
		interval = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Saver{
		interval: interval,
		save:     save,
		logger:   logger,
	}
}

// NotifyChanged records that the geometry is dirty. Repeated calls
// within the quiet interval coalesce into one eventual write.
func (s *Saver) NotifyChanged(now time.Time) {
	s.pending = true
	s.lastChange = now
}

// Pending reports whether a write is still owed.
func (s *Saver) Pending() bool {
	return s.pending
}

// Tick performs the pending write once the quiet interval has elapsed.
// A failed write stays pending and is retried after another full
// interval; a save failure must never take the frame loop down.
func (s *Saver) Tick(now time.Time) bool {
	if !s.pending || now.Sub(s.lastChange) < s.interval {
		return false
	}

	if err := s.save(); err != nil {
		s.logger.Warn("geometry save failed, will retry", "error", err)
		s.lastChange = now
		return false
	}

	s.pending = false
	return true
}

// Flush writes immediately if a save is pending, regardless of the
// quiet interval. Called at shutdown so a pending change is never
// silently lost.
func (s *Saver) Flush() {
	if !s.pending {
		return
	}
	if err := s.save(); err != nil {
		s.logger.Error("final geometry save failed", "error", err)
		return
	}
	s.pending = false
}
