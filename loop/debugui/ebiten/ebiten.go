// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. The imgui.ini file is
// disabled so debug window layout never leaks into the working directory.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

// Frame runs one scheduler frame inside an ImGui frame so deferred debug
// windows are recorded for the next Draw.
func (b *ImguiBackend) Frame(scheduler *loop.Scheduler, dt float64) {
	b.BeginFrame()
	scheduler.Once(dt)
	b.EndFrame()
}
