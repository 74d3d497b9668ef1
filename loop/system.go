package loop

// System is one step of a frame. Systems run in registration order and may
// keep their own state between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
