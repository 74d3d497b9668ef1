package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
	count   int
}

func NewFrameHistory(size int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, size)}
}

// Push records a frame time given in seconds.
func (h *FrameHistory) Push(seconds float64) {
	h.samples[h.index] = float32(seconds * 1000)
	h.index = (h.index + 1) % len(h.samples)
	h.count = min(h.count+1, len(h.samples))
}

// Average returns the mean of the recorded frame times, or 0 before any
// frame was recorded.
func (h *FrameHistory) Average() float32 {
	if h.count == 0 {
		return 0
	}
	var total float32
	for _, s := range h.samples {
		total += s
	}
	return total / float32(h.count)
}

// PerformanceStats shows scheduler timings and a frame time graph.
type PerformanceStats struct {
	scheduler *loop.Scheduler
	history   *FrameHistory
}

func NewPerformanceStats(scheduler *loop.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler: scheduler,
		history:   NewFrameHistory(historyFrames),
	}
}

// Record adds one frame time in seconds to the graph.
func (ps *PerformanceStats) Record(dt float64) {
	ps.history.Push(dt)
}

// Item wraps the window for an ImguiSystem.
func (ps *PerformanceStats) Item() ImguiItem {
	return ImguiItem{Render: ps.Render}
}

func (ps *PerformanceStats) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(300, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 300), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.scheduler.GetStats()
	avgFrameTime := ps.history.Average()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.history.samples[0], int32(len(ps.history.samples)))

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
