// Package loop drives a tetris.Session frame by frame. A Scheduler owns the
// session, runs registered systems in order each frame, and is the boundary
// between one writer and any number of readers: input may be pushed from any
// goroutine and renderers read copies through Snapshot.
package loop

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Frames          int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler manages a session and executes systems against it in order.
type Scheduler struct {
	mu          sync.RWMutex
	session     *tetris.Session
	commands    *Commands
	systems     []System
	systemStats []*systemStatsInternal
	frames      int64
	quit        bool
}

// NewScheduler creates a scheduler for the given session with no systems.
func NewScheduler(session *tetris.Session) *Scheduler {
	return &Scheduler{
		session:  session,
		commands: newCommands(),
		systems:  make([]System, 0),
	}
}

// NewGameScheduler creates a scheduler that applies all queued input and
// then advances gravity once per frame.
func NewGameScheduler(session *tetris.Session) *Scheduler {
	s := NewScheduler(session)
	s.Register(&InputSystem{})
	s.Register(&GravitySystem{})
	return s
}

// Register appends a system to the frame.
func (s *Scheduler) Register(system System) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Push queues a command for the next frame. Safe for concurrent use.
func (s *Scheduler) Push(cmd tetris.Command) {
	s.commands.Push(cmd)
}

// Once executes all registered systems once with the given delta time in
// seconds, then runs the functions deferred during the frame.
func (s *Scheduler) Once(dt float64) {
	s.mu.Lock()
	frame := newUpdateFrame(dt, s.commands, s.session)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.frames++
	if frame.quit {
		s.quit = true
	}
	s.mu.Unlock()

	// Deferred functions usually render, so they run unlocked and may read
	// snapshots.
	s.commands.Flush()
}

// Run executes frames at the given interval until the context is cancelled
// or a Quit command was processed.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
			if s.Quit() {
				return
			}
		}
	}
}

// Snapshot returns a copy of the session state.
func (s *Scheduler) Snapshot() tetris.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Snapshot()
}

// Reset starts a new game and drops any input queued for the old one.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Reset()
	s.commands.Drain()
}

// Quit reports whether a Quit command has been processed.
func (s *Scheduler) Quit() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quit
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
