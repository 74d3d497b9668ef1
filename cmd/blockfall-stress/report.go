package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Sessions int
	Width    int
	Height   int
	Seed     uint64
	Bag      bool

	// Results
	Games          int
	Unfinished     int
	TotalFrames    int64
	TotalTime      time.Duration
	Locked         int
	Lines          int
	Clears         [tetris.MaxLinesPerLock + 1]int
	BestScore      int
	Applied        int64
	Rejected       int64
	UpdateTime     Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Add merges one worker's results into the report.
func (r *Report) Add(w WorkerResult) {
	r.Games += w.Games
	r.Unfinished += w.Unfinished
	r.TotalFrames += w.Frames
	r.Locked += w.Locked
	r.Lines += w.Lines
	for n, c := range w.Clears {
		r.Clears[n] += c
	}
	r.BestScore = max(r.BestScore, w.BestScore)
	r.Applied += w.Applied
	r.Rejected += w.Rejected
	r.UpdateTime.Samples = append(r.UpdateTime.Samples, w.UpdateTime...)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Parallel Sessions:** {{.Sessions}}
- **Grid:** {{.Width}}x{{.Height}}
- **Seed:** {{.Seed}}{{if .Bag}} (bag randomizer){{end}}

## Game Results
- **Games Finished:** {{.Games}}
- **Games Unfinished at Deadline:** {{.Unfinished}}
- **Pieces Locked:** {{.Locked}}
- **Lines Cleared:** {{.Lines}}
{{- range $n, $count := .Clears}}{{if $n}}
  - **{{$n}}-line clears:** {{$count}}{{end}}{{end}}
- **Best Score:** {{.BestScore}}
- **Commands:** {{.Applied}} applied, {{.Rejected}} rejected

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Frames per Second:** {{fps .TotalFrames .TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"fps": func(frames int64, d time.Duration) string {
			if d <= 0 {
				return "N/A"
			}
			return fmt.Sprintf("%.0f", float64(frames)/d.Seconds())
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
