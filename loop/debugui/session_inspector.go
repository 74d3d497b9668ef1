package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

const inspectorCellSize = 8

// SessionInspector shows the live board, the falling and next pieces and
// the per-session statistics, and offers buttons that inject commands.
type SessionInspector struct {
	scheduler *loop.Scheduler
}

func NewSessionInspector(scheduler *loop.Scheduler) *SessionInspector {
	return &SessionInspector{scheduler: scheduler}
}

// Item wraps the inspector for an ImguiSystem.
func (si *SessionInspector) Item() ImguiItem {
	return ImguiItem{Render: si.Render}
}

func (si *SessionInspector) Render() {
	snap := si.scheduler.Snapshot()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 460), imgui.CondOnce)

	if !imgui.BeginV("Session Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	if snap.Ended {
		imgui.PushStyleColorVec4(imgui.ColText, imgui.NewVec4(1, 0.3, 0.3, 1))
		imgui.Text("GAME OVER")
		imgui.PopStyleColor()
	}
	imgui.Text(fmt.Sprintf("Active: %s at (%d, %d) %s", snap.Active.Type, snap.Active.X, snap.Active.Y, snap.Active.Shape))
	imgui.Text(fmt.Sprintf("Next: %s", snap.Next.Type))
	imgui.Separator()

	renderBoard(snap)

	if imgui.TreeNodeStr("Statistics") {
		renderStats(snap.Stats)
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Controls") {
		for _, cmd := range []tetris.Command{tetris.MoveLeft, tetris.MoveRight, tetris.Rotate, tetris.SoftDrop, tetris.HardDrop} {
			if imgui.Button(cmd.String()) {
				si.scheduler.Push(cmd)
			}
			imgui.SameLine()
		}
		imgui.NewLine()
		if imgui.Button("Reset") {
			si.scheduler.Reset()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func renderBoard(snap tetris.Snapshot) {
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()

	cell := func(x, y int, c tetris.Color) {
		pos := imgui.NewVec2(origin.X+float32(x*inspectorCellSize), origin.Y+float32(y*inspectorCellSize))
		end := imgui.NewVec2(pos.X+inspectorCellSize-1, pos.Y+inspectorCellSize-1)
		drawList.AddRectFilled(pos, end, imgui.ColorU32Vec4(colorVec4(c)))
	}

	background := tetris.Color{R: 30, G: 30, B: 30}
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			if c := snap.At(x, y); c.Filled {
				cell(x, y, c.Color)
			} else {
				cell(x, y, background)
			}
		}
	}
	for x, y := range snap.Active.Cells() {
		if y >= 0 {
			cell(x, y, snap.Active.Color)
		}
	}

	imgui.Dummy(imgui.NewVec2(float32(snap.Width*inspectorCellSize), float32(snap.Height*inspectorCellSize)))
}

func renderStats(stats tetris.Stats) {
	imgui.Text(fmt.Sprintf("Locked: %d", stats.Locked))
	imgui.Text(fmt.Sprintf("Lines: %d", stats.Lines))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Piece")
		imgui.TableSetupColumn("Spawned")
		imgui.TableHeadersRow()

		for t := range tetris.ShapeType(tetris.ShapeCount) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.PushStyleColorVec4(imgui.ColText, colorVec4(t.Color()))
			imgui.Text(t.String())
			imgui.PopStyleColor()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", stats.Spawned[t]))
		}
		imgui.EndTable()
	}

	for lines, n := range stats.Clears {
		if lines == 0 {
			continue
		}
		imgui.BulletText(fmt.Sprintf("%d-line clears: %d", lines, n))
	}
}

func colorVec4(c tetris.Color) imgui.Vec4 {
	return imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1)
}
