package tetris

// EventKind identifies what happened in a session.
type EventKind uint8

const (
	// EventLocked fires after a piece was written into the grid and completed
	// lines were cleared.
	EventLocked EventKind = iota + 1
	// EventGameOver fires once, when a spawned piece collides.
	EventGameOver
)

// Event describes a lock or the end of a game. Piece and Lines are only set
// for EventLocked. Score is the score after the event.
type Event struct {
	Kind  EventKind
	Piece ShapeType
	Lines int
	Score int
}

// Listener receives session events synchronously, on the goroutine that
// drives the session.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }
