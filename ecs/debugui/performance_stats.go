package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/shapeshow/ecs"
)

// StatsWindow shows frame time history, world counts and per-system timings.
type StatsWindow struct {
	title        string
	frameHistory []float32
	frameIndex   int
	recorded     int
}

func NewStatsWindow(title string, historyFrames int) *StatsWindow {
	return &StatsWindow{
		title:        title,
		frameHistory: make([]float32, max(historyFrames, 1)),
	}
}

// Record pushes one frame's delta, in seconds, into the history ring.
func (w *StatsWindow) Record(deltaSeconds float32) {
	w.frameHistory[w.frameIndex] = deltaSeconds * 1000.0
	w.frameIndex = (w.frameIndex + 1) % len(w.frameHistory)
	w.recorded = min(w.recorded+1, len(w.frameHistory))
}

// AverageFrameTime returns the mean recorded frame time in milliseconds.
func (w *StatsWindow) AverageFrameTime() float32 {
	if w.recorded == 0 {
		return 0
	}
	var total float32
	for _, ft := range w.frameHistory {
		total += ft
	}
	return total / float32(w.recorded)
}

// Render draws the window. extra, when set, draws additional lines under
// the world counts.
func (w *StatsWindow) Render(storage *ecs.Storage, sched *ecs.SchedulerStats, extra func()) {
	if !imgui.BeginV(w.title, nil, imgui.WindowFlagsAlwaysAutoResize) {
		imgui.End()
		return
	}

	stats := storage.CollectStats()

	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))
	if extra != nil {
		extra()
	}

	if avg := w.AverageFrameTime(); avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &w.frameHistory[0], int32(len(w.frameHistory)))

	if sched != nil && imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableHeadersRow()

			for _, sys := range sched.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Archetype Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ArchStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Archetype ID")
			imgui.TableSetupColumn("Components")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, arch := range stats.ArchetypeBreakdown {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("0x%X", arch.ID))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", len(arch.ComponentTypes)))
				if imgui.IsItemHovered() {
					imgui.SetTooltip(fmt.Sprint(arch.ComponentTypes))
				}
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singleton Details") {
		for _, singletonType := range stats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}

	imgui.End()
}
