// Package tetris implements the game state of a single-player falling-block
// puzzle: the occupancy grid, the active and next pieces, collision and
// rotation, line clearing, scoring, and the gravity and lock state machine.
//
// A Session is not safe for concurrent use. Drive it from one goroutine and
// hand Snapshots to renderers, or use the loop package which does both.
package tetris

import (
	"fmt"
	"slices"
	"time"
)

const (
	DefaultWidth        = 10
	DefaultHeight       = 20
	DefaultFallInterval = time.Second
	DefaultLineScore    = 100

	minWidth  = maxShapeSide
	minHeight = 2
)

// Option configures a Session.
type Option func(*Session)

// WithSize sets the grid dimensions.
func WithSize(width, height int) Option {
	return func(s *Session) {
		s.width = width
		s.height = height
	}
}

// WithFallInterval sets how much time must pass before gravity moves the
// active piece down one row.
func WithFallInterval(d time.Duration) Option {
	return func(s *Session) {
		s.fallInterval = d
	}
}

// WithLineScore sets the points awarded per cleared line.
func WithLineScore(points int) Option {
	return func(s *Session) {
		s.lineScore = points
	}
}

// WithRandomizer sets the piece source.
func WithRandomizer(r Randomizer) Option {
	return func(s *Session) {
		s.randomizer = r
	}
}

// WithSeed uses a uniform randomizer seeded with seed, making the piece
// sequence reproducible.
func WithSeed(seed uint64) Option {
	return WithRandomizer(NewUniformRandomizer(seed))
}

// WithListener registers a receiver for lock and game-over events. It may be
// given more than once; listeners are called in registration order.
func WithListener(l Listener) Option {
	return func(s *Session) {
		s.listeners = append(s.listeners, l)
	}
}

// WithGrid starts the first game on a copy of g instead of an empty grid.
// The session takes its dimensions from g, overriding WithSize in any order.
// Games started by Reset use an empty grid of the same size.
func WithGrid(g *Grid) Option {
	return func(s *Session) {
		s.preset = g.Clone()
	}
}

// Session is one game: the grid, the active and next pieces, the score and
// the gravity timer.
type Session struct {
	width        int
	height       int
	fallInterval time.Duration
	lineScore    int
	randomizer   Randomizer
	listeners    []Listener
	preset       *Grid

	grid        *Grid
	active      Piece
	next        Piece
	score       int
	fallElapsed time.Duration
	ended       bool
	stats       counters
}

// NewSession creates a running game. It panics if the grid is narrower than
// four columns or shorter than two rows.
func NewSession(opts ...Option) *Session {
	s := &Session{
		width:        DefaultWidth,
		height:       DefaultHeight,
		fallInterval: DefaultFallInterval,
		lineScore:    DefaultLineScore,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.preset != nil {
		s.width = s.preset.width
		s.height = s.preset.height
	}

	if s.width < minWidth || s.height < minHeight {
		panic(fmt.Sprintf("tetris: grid must be at least %dx%d, got %dx%d", minWidth, minHeight, s.width, s.height))
	}
	if s.randomizer == nil {
		s.randomizer = NewUniformRandomizer(uint64(time.Now().UnixNano()))
	}

	s.start()
	return s
}

func (s *Session) start() {
	if s.preset != nil {
		s.grid = s.preset
		s.preset = nil
	} else {
		s.grid = NewGrid(s.width, s.height)
	}

	s.score = 0
	s.fallElapsed = 0
	s.ended = false
	s.stats = newCounters()

	s.active = s.spawn()
	s.next = s.spawn()
	if s.active.Collides(s.grid, 0, 0) {
		s.end()
	}
}

// Reset discards the current game and starts a new one on an empty grid.
func (s *Session) Reset() {
	s.start()
}

func (s *Session) spawn() Piece {
	t := s.randomizer.Next()
	s.stats.recordSpawn(t)
	return NewPiece(t, s.width)
}

// Apply performs one player command and reports whether it changed the game.
// Moves that would collide are rejected. Commands are ignored once the game
// has ended, and Quit is always ignored.
func (s *Session) Apply(cmd Command) bool {
	if s.ended {
		return false
	}

	switch cmd {
	case MoveLeft:
		return s.shift(-1, 0)
	case MoveRight:
		return s.shift(1, 0)
	case SoftDrop:
		return s.shift(0, 1)
	case Rotate:
		return s.active.Rotate(s.grid)
	case HardDrop:
		s.hardDrop()
		return true
	}
	return false
}

func (s *Session) shift(dx, dy int) bool {
	if s.active.Collides(s.grid, dx, dy) {
		return false
	}
	s.active.Translate(dx, dy)
	return true
}

func (s *Session) hardDrop() {
	for !s.active.Collides(s.grid, 0, 1) {
		s.active.Translate(0, 1)
	}
	s.lock()
	s.fallElapsed = 0
}

// Advance feeds elapsed time to the gravity timer. Once the accumulated time
// exceeds the fall interval the active piece moves down one row, or locks if
// it cannot, and the timer restarts from zero. At most one row is dropped per
// call.
func (s *Session) Advance(elapsed time.Duration) {
	if s.ended || elapsed < 0 {
		return
	}

	s.fallElapsed += elapsed
	if s.fallElapsed <= s.fallInterval {
		return
	}
	s.fallElapsed = 0

	if !s.shift(0, 1) {
		s.lock()
	}
}

func (s *Session) lock() {
	locked := s.active
	s.grid.Place(&locked)
	lines := s.grid.ClearCompletedLines()
	s.score += lines * s.lineScore
	s.stats.recordLock(lines)
	s.emit(Event{Kind: EventLocked, Piece: locked.Type, Lines: lines, Score: s.score})

	s.active = s.next
	s.next = s.spawn()
	if s.active.Collides(s.grid, 0, 0) {
		s.end()
	}
}

func (s *Session) end() {
	s.ended = true
	s.emit(Event{Kind: EventGameOver, Score: s.score})
}

func (s *Session) emit(e Event) {
	for _, l := range s.listeners {
		l.OnEvent(e)
	}
}

func (s *Session) IsEnded() bool               { return s.ended }
func (s *Session) Score() int                  { return s.score }
func (s *Session) Active() Piece               { return s.active }
func (s *Session) Next() Piece                 { return s.next }
func (s *Session) Width() int                  { return s.width }
func (s *Session) Height() int                 { return s.height }
func (s *Session) FallInterval() time.Duration { return s.fallInterval }
func (s *Session) Stats() Stats                { return s.stats.snapshot() }

// Cell returns the locked cell at (x, y). The active piece is not included.
func (s *Session) Cell(x, y int) Cell { return s.grid.At(x, y) }

// Snapshot is a read-only copy of a session, safe to keep and read from any
// goroutine.
type Snapshot struct {
	Width  int
	Height int
	// Cells holds the locked cells in row-major order, top row first.
	Cells  []Cell
	Active Piece
	Next   Piece
	Score  int
	Ended  bool
	Stats  Stats
}

// At returns the locked cell at (x, y), or an empty cell outside the grid.
func (s Snapshot) At(x, y int) Cell {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return Cell{}
	}
	return s.Cells[y*s.Width+x]
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Width:  s.width,
		Height: s.height,
		Cells:  slices.Clone(s.grid.cells),
		Active: s.active,
		Next:   s.next,
		Score:  s.score,
		Ended:  s.ended,
		Stats:  s.stats.snapshot(),
	}
}
