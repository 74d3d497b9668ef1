// Command blockfall-stress plays many headless games with random input and
// reports frame timing, game statistics and memory use.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Commands a random player picks from. Hard drops are rarer so pieces
// spend some time falling.
var playerCommands = []tetris.Command{
	tetris.MoveLeft, tetris.MoveLeft,
	tetris.MoveRight, tetris.MoveRight,
	tetris.Rotate, tetris.Rotate,
	tetris.SoftDrop, tetris.SoftDrop,
	tetris.HardDrop,
}

func main() {
	log.SetPrefix("[STRESS] ")

	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	workers := flag.Int("sessions", runtime.GOMAXPROCS(0), "The number of games played in parallel.")
	inputsPerFrame := flag.Int("inputs", 2, "The maximum number of random commands pushed per frame.")
	frameStep := flag.Duration("frame-step", 50*time.Millisecond, "The simulated time advanced per frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")

	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}
	if err := checkFlags(*workers, *inputsPerFrame, *frameStep); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	report := &Report{
		Duration:       *duration,
		Sessions:       *workers,
		Width:          cfg.Width,
		Height:         cfg.Height,
		Seed:           cfg.Seed,
		Bag:            cfg.Bag,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d sessions for %s...", *workers, *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	results := make([]WorkerResult, *workers)
	startTime := time.Now()

	var wg sync.WaitGroup
	for i := range *workers {
		workerCfg := cfg
		workerCfg.Seed = cfg.Seed + uint64(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = play(ctx, workerCfg, *inputsPerFrame, *frameStep)
		}()
	}
	wg.Wait()

	report.TotalTime = time.Since(startTime)
	for _, r := range results {
		report.Add(r)
	}
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

func checkFlags(sessions, inputs int, frameStep time.Duration) error {
	var errs []error
	if sessions < 1 {
		errs = append(errs, fmt.Errorf("sessions must be at least 1, got %d", sessions))
	}
	if inputs < 0 {
		errs = append(errs, fmt.Errorf("inputs must not be negative, got %d", inputs))
	}
	if frameStep <= 0 {
		errs = append(errs, fmt.Errorf("frame-step must be positive, got %s", frameStep))
	}
	return errors.Join(errs...)
}

// WorkerResult is what one worker observed over all of its games. Games
// counts finished games only; the game still running at the deadline adds
// to Unfinished and to the piece and line totals.
type WorkerResult struct {
	Games      int
	Unfinished int
	Frames     int64
	Locked     int
	Lines      int
	Clears     [tetris.MaxLinesPerLock + 1]int
	BestScore  int
	Applied    int64
	Rejected   int64
	UpdateTime []time.Duration
}

func (w *WorkerResult) record(snap tetris.Snapshot) {
	if snap.Ended {
		w.Games++
	} else {
		w.Unfinished++
	}
	w.Locked += snap.Stats.Locked
	w.Lines += snap.Stats.Lines
	for n, c := range snap.Stats.Clears {
		w.Clears[n] += c
	}
	w.BestScore = max(w.BestScore, snap.Score)
}

// play runs back-to-back games with random input until ctx is done.
func play(ctx context.Context, cfg config.Config, inputsPerFrame int, step time.Duration) WorkerResult {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed>>1|1))
	scheduler := loop.NewScheduler(tetris.NewSession(cfg.SessionOptions()...))
	input := &loop.InputSystem{}
	scheduler.Register(input)
	scheduler.Register(&loop.GravitySystem{})

	var result WorkerResult
	dt := step.Seconds()

	for ctx.Err() == nil {
		for range rng.IntN(inputsPerFrame + 1) {
			scheduler.Push(playerCommands[rng.IntN(len(playerCommands))])
		}

		start := time.Now()
		scheduler.Once(dt)
		result.UpdateTime = append(result.UpdateTime, time.Since(start))

		if snap := scheduler.Snapshot(); snap.Ended {
			result.record(snap)
			scheduler.Reset()
		}
	}

	result.record(scheduler.Snapshot())
	result.Frames = scheduler.GetStats().Frames
	result.Applied = input.Applied
	result.Rejected = input.Rejected
	return result
}
