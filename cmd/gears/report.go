package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/gears/ecs"
	"github.com/plus3/gears/sim"
)

type Report struct {
	// Configuration
	FrameDuration time.Duration
	Entities      int

	// Results
	Run           sim.RunReport
	Scheduler     *ecs.SchedulerStats
	World         ecs.WorldStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

const reportTemplate = `
# Simulation Report

## Configuration
- **Frame Duration:** {{.FrameDuration}}
- **Seeded Entities:** {{.Entities}}

## Loop
- **Iterations:** {{.Run.Iterations}}
- **Slow Frames:** {{.Run.SlowFrames}}
- **Slept:** {{.Run.Slept}}
- **Wall Time:** {{.Run.Elapsed}}

## Systems
{{range .Scheduler.Systems}}- **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, min {{.MinDuration}}, max {{.MaxDuration}}
{{end}}
## World
- **Archetypes:** {{.World.ArchetypeCount}}
- **Entities:** {{.World.TotalEntityCount}}
{{range .World.ArchetypeBreakdown}}  - {{.ID}} {{.ComponentTypes}}: {{.EntityCount}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

var reportFuncs = template.FuncMap{
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
