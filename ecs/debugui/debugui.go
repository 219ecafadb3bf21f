// Package debugui draws Dear ImGui panels that inspect an ecs.EntityManager.
// Call Render between the backend's BeginFrame and EndFrame.
package debugui

import "github.com/plus3/chronos/ecs"

// Inspector groups the debug panels for one entity manager.
type Inspector struct {
	Stats   *StatsPanel
	Columns *ColumnViewer
	timer   *FrameTimer
}

// NewInspector creates the panels with historyFrames of frame time history.
func NewInspector(historyFrames int) *Inspector {
	return &Inspector{
		Stats:   NewStatsPanel(historyFrames),
		Columns: NewColumnViewer(),
		timer:   NewFrameTimer(),
	}
}

// Render draws every panel for the current frame.
func (i *Inspector) Render(manager *ecs.EntityManager) {
	stats := manager.Stats()
	i.Stats.Render(stats, i.timer.GetDeltaTime())
	i.Columns.Render(stats)
}
