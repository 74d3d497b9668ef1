// Package debugui renders Dear ImGui debug windows for a running game. Items
// are deferred to the end of each scheduler frame so they draw outside the
// scheduler lock and read the game through snapshots.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Frontends should not forward keys to the game while it is.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render functions of its items every frame and
// records the current input capture state.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
	Hidden     bool
}

// Add appends an item. Call it before the system is registered.
func (i *ImguiSystem) Add(item ImguiItem) {
	i.Items = append(i.Items, item)
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *loop.UpdateFrame) {
	i.InputState.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	if i.Hidden {
		return
	}
	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}
