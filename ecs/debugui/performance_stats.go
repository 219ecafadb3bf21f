package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/chronos/ecs"
)

// StatsPanel shows entity counts, capacity and a frame time graph.
type StatsPanel struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewStatsPanel(historyFrames int) *StatsPanel {
	historyFrames = max(historyFrames, 1)
	return &StatsPanel{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// record stores a frame time in milliseconds and returns the average.
func (ps *StatsPanel) record(deltaTime float32) float32 {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	return avgFrameTime / float32(ps.historyFrames)
}

func (ps *StatsPanel) Render(stats ecs.Stats, deltaTime float32) {
	if !imgui.BeginV("Entity Manager", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := ps.record(deltaTime)

	imgui.Text(fmt.Sprintf("Live Entities: %d", stats.EntityCount))
	imgui.Text(fmt.Sprintf("Issued Ids: %d (%d free)", stats.IssuedIds, stats.FreeIds))
	imgui.Text(fmt.Sprintf("Capacity: %d", stats.Capacity))
	imgui.Text(fmt.Sprintf("Columns: %d", len(stats.Columns)))

	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Free Id Pool") {
		imgui.BulletText(fmt.Sprintf("%d ids waiting for reuse", stats.FreeIds))
		if stats.IssuedIds > 0 {
			imgui.BulletText(fmt.Sprintf("%.1f%% of issued ids free", 100*float32(stats.FreeIds)/float32(stats.IssuedIds)))
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
