package loop

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// UpdateFrame is handed to every system during one scheduler pass.
type UpdateFrame struct {
	// DeltaTime is the time since the previous frame, in seconds.
	DeltaTime float64
	Commands  *Commands
	Session   *tetris.Session

	quit bool
}

func newUpdateFrame(dt float64, commands *Commands, session *tetris.Session) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  commands,
		Session:   session,
	}
}

// Elapsed returns DeltaTime as a duration.
func (f *UpdateFrame) Elapsed() time.Duration {
	return time.Duration(f.DeltaTime * float64(time.Second))
}

// RequestQuit marks the scheduler as finished once the frame completes.
func (f *UpdateFrame) RequestQuit() {
	f.quit = true
}
