package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/pkg/errors"
	"github.com/plus3/chronos/ecs"
)

// Report collects everything printed at the end of a stress run.
type Report struct {
	Duration        time.Duration
	Entities        int
	Churn           int
	InitialCapacity int

	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     FrameTimings
	Replaced       int64
	Drawn          int64
	Errors         int64
	Final          ecs.Stats
	Process        ProcessStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// FrameTimings summarizes per-frame update durations.
type FrameTimings struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P50     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

// Finalize computes the summary from Samples. Samples are left sorted.
func (f *FrameTimings) Finalize() {
	if len(f.Samples) == 0 {
		return
	}
	slices.Sort(f.Samples)

	var total time.Duration
	for _, sample := range f.Samples {
		total += sample
	}

	n := len(f.Samples)
	f.Min = f.Samples[0]
	f.Max = f.Samples[n-1]
	f.Avg = total / time.Duration(n)
	f.P50 = f.Samples[n/2]
	f.P99 = f.Samples[min(n-1, n*99/100)]
}

// UpdatesPerSecond is the frame throughput over the whole run.
func (r *Report) UpdatesPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.TotalUpdates) / r.TotalTime.Seconds()
}

const reportTemplate = `
# Entity Manager Stress Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Initial Entities:** {{.Entities}}
- **Churn Per Frame:** {{.Churn}}
- **Initial Capacity:** {{.InitialCapacity}}

## Throughput
- **Total Updates:** {{.TotalUpdates}} in {{.TotalTime}} ({{printf "%.0f" .UpdatesPerSecond}}/s)
- **Frame Time:** avg {{.UpdateTime.Avg}}, p50 {{.UpdateTime.P50}}, p99 {{.UpdateTime.P99}}, min {{.UpdateTime.Min}}, max {{.UpdateTime.Max}}
- **Entities Replaced:** {{.Replaced}}
- **Shapes Drawn:** {{.Drawn}}
- **Rejected Removals:** {{.Errors}}

## Entity Manager
- **Live Entities:** {{.Final.EntityCount}}
- **Issued Ids:** {{.Final.IssuedIds}} ({{.Final.FreeIds}} free)
- **Capacity:** {{.Final.Capacity}}
{{range .Final.Columns}}- {{.Type}}: {{.Count}}
{{end}}
## Process
- RSS: {{mib .Process.RSS}} MiB
- VMS: {{mib .Process.VMS}} MiB
- CPU: {{printf "%.1f" .Process.CPUPercent}}%

## Go Heap
- Heap Alloc:  {{mib .MemStatsStart.HeapAlloc}} -> {{mib .MemStatsEnd.HeapAlloc}} MiB
- Total Alloc: {{mib (delta .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}} MiB during run
- Num GC:      {{gcs .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}- GC Pause:    {{pause .MemStatsEnd.PauseTotalNs .MemStatsStart.PauseTotalNs}}
{{end}}`

var reportFuncs = template.FuncMap{
	"mib": func(v uint64) string {
		return fmt.Sprintf("%.2f", float64(v)/1024/1024)
	},
	"delta": func(end, start uint64) uint64 {
		if end < start {
			return 0
		}
		return end - start
	},
	"gcs": func(end, start uint32) uint32 {
		return end - start
	},
	"pause": func(end, start uint64) string {
		return time.Duration(end - start).String()
	},
}

// Generate renders the report as markdown.
func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return errors.Wrap(err, "parse report template")
	}
	return errors.Wrap(tmpl.Execute(w, r), "render report")
}
