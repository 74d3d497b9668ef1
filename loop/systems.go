package loop

import "github.com/plus3/blockfall/tetris"

// InputSystem applies every queued command to the session. A Quit command
// stops the scheduler instead.
type InputSystem struct {
	Applied  int64
	Rejected int64
}

func (s *InputSystem) Execute(frame *UpdateFrame) {
	for _, cmd := range frame.Commands.Drain() {
		if cmd == tetris.Quit {
			frame.RequestQuit()
			continue
		}
		if frame.Session.Apply(cmd) {
			s.Applied++
		} else {
			s.Rejected++
		}
	}
}

// GravitySystem feeds the frame time to the session's gravity timer.
type GravitySystem struct{}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	frame.Session.Advance(frame.Elapsed())
}
