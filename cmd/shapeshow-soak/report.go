package main

import (
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/shapeshow/ecs"
)

// Report collects everything a soak run measured.
type Report struct {
	Duration       time.Duration
	SwapEvery      int
	ReleaseOrphans bool
	GCPauseMetrics bool

	Frames        int64
	Elapsed       time.Duration
	Swaps         int
	Violations    int
	LiveMaterials int
	LiveMeshes    int
	FrameTimes    FrameTimes
	Scheduler     *ecs.SchedulerStats

	memBefore runtime.MemStats
	memAfter  runtime.MemStats
}

// FrameTimes summarizes per-frame update durations.
type FrameTimes struct {
	Samples []time.Duration

	Min, Median, P99, Max, Mean time.Duration
}

// Add records one frame's update duration.
func (f *FrameTimes) Add(d time.Duration) {
	f.Samples = append(f.Samples, d)
}

// Summarize fills the order statistics from Samples.
func (f *FrameTimes) Summarize() {
	n := len(f.Samples)
	if n == 0 {
		return
	}

	sorted := slices.Clone(f.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	f.Min = sorted[0]
	f.Max = sorted[n-1]
	f.Median = sorted[n/2]
	f.P99 = sorted[(n-1)*99/100]
	f.Mean = total / time.Duration(n)
}

// Begin snapshots memory before the run.
func (r *Report) Begin() {
	runtime.ReadMemStats(&r.memBefore)
}

// End summarizes frame times and snapshots memory after the run.
func (r *Report) End() {
	r.FrameTimes.Summarize()
	runtime.ReadMemStats(&r.memAfter)
}

// HeapGrowth is the signed change in live heap bytes across the run.
func (r *Report) HeapGrowth() int64 {
	return int64(r.memAfter.HeapAlloc) - int64(r.memBefore.HeapAlloc)
}

// Allocated is the number of bytes allocated during the run.
func (r *Report) Allocated() uint64 {
	return r.memAfter.TotalAlloc - r.memBefore.TotalAlloc
}

// GCCycles is the number of collections that completed during the run.
func (r *Report) GCCycles() uint32 {
	return r.memAfter.NumGC - r.memBefore.NumGC
}

// GCPause is the total stop-the-world pause time during the run.
func (r *Report) GCPause() time.Duration {
	return time.Duration(r.memAfter.PauseTotalNs - r.memBefore.PauseTotalNs)
}

var reportTemplate = template.Must(template.New("report").Parse(`
# Shapeshow Soak Report

## Run
- **Duration:** {{.Duration}} (measured {{.Elapsed}})
- **Swap Every:** {{.SwapEvery}} frames
- **Release Orphans:** {{.ReleaseOrphans}}

## Scene
- **Frames:** {{.Frames}}
- **Swaps:** {{.Swaps}}
- **Invariant Violations:** {{.Violations}}
- **Live Materials:** {{.LiveMaterials}}
- **Live Meshes:** {{.LiveMeshes}}

## Frame Time
| min | median | p99 | max | mean |
|-----|--------|-----|-----|------|
| {{.FrameTimes.Min}} | {{.FrameTimes.Median}} | {{.FrameTimes.P99}} | {{.FrameTimes.Max}} | {{.FrameTimes.Mean}} |
{{with .Scheduler}}
## Systems
{{range .Systems}}- {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{end}}{{end}}
## Memory
- **Heap Growth:** {{.HeapGrowth}} bytes
- **Allocated:** {{.Allocated}} bytes
- **GC Cycles:** {{.GCCycles}}
{{- if .GCPauseMetrics}}
- **GC Pause:** {{.GCPause}}
{{- end}}
`))

// Generate writes the report as markdown.
func (r *Report) Generate(w io.Writer) error {
	return reportTemplate.Execute(w, r)
}
