// Command akari is the CLI façade over the solving, hinting, and generation
// entry points: `akari solve`, `akari hint`, `akari generate`. Grounded on
// the teacher's cmd/server/main.go (startup/config wiring) and
// cmd/generate/main.go (worker-pool batch generation).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/cuzdav/akari/internal/generator"
	"github.com/cuzdav/akari/internal/levelfmt"
	"github.com/cuzdav/akari/internal/model"
	"github.com/cuzdav/akari/internal/rng"
	"github.com/cuzdav/akari/internal/solver"
	"github.com/cuzdav/akari/pkg/config"
	"github.com/cuzdav/akari/pkg/logging"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogPath)

	var cmdErr error
	switch os.Args[1] {
	case "solve":
		cmdErr = runSolve(os.Args[2:], cfg)
	case "hint":
		cmdErr = runHint(os.Args[2:])
	case "generate":
		cmdErr = runGenerate(os.Args[2:], logger)
	default:
		usage()
		os.Exit(2)
	}
	if cmdErr != nil {
		fmt.Fprintln(os.Stderr, cmdErr)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: akari <solve|hint|generate> [flags]")
}

func loadLevel(path string) (*model.BasicBoard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level file %s: %w", path, err)
	}
	return levelfmt.ParseASCIIString(string(data))
}

func runSolve(args []string, cfg *config.Config) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	levelFile := fs.String("level", "", "path to an ASCII level file")
	fs.Parse(args)
	if *levelFile == "" {
		return fmt.Errorf("solve: -level is required")
	}

	board, err := loadLevel(*levelFile)
	if err != nil {
		return err
	}

	sol := solver.SolveWithMaxSteps(board, cfg.MaxSolveSteps)
	fmt.Printf("status: %v (steps=%d errors=%d)\n", sol.Status, sol.StepCount, sol.ErrorCount)
	fmt.Println(levelfmt.FormatASCII(sol.Position.Board()))
	return nil
}

func runHint(args []string) error {
	fs := flag.NewFlagSet("hint", flag.ExitOnError)
	levelFile := fs.String("level", "", "path to an ASCII level file")
	fs.Parse(args)
	if *levelFile == "" {
		return fmt.Errorf("hint: -level is required")
	}

	board, err := loadLevel(*levelFile)
	if err != nil {
		return err
	}

	hint := solver.Create(board)
	if hint.Empty() {
		fmt.Println("no hint available")
		return nil
	}
	fmt.Printf("reason: %v\n", hint.Reason)
	for _, m := range hint.NextStep.Moves {
		fmt.Printf("  %v\n", m)
	}
	for i, step := range hint.ExplainSteps {
		fmt.Printf("explain step %d:\n", i)
		for _, m := range step.Moves {
			fmt.Printf("  %v\n", m)
		}
	}
	return nil
}

func runGenerate(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	height := fs.Int("h", 7, "board height")
	width := fs.Int("w", 7, "board width")
	count := fs.Int("n", 1, "number of puzzles to generate")
	out := fs.String("o", "", "output YAML level pack path (stdout if empty)")
	seed := fs.Int64("seed", 1, "base RNG seed")
	workers := fs.Int("workers", 4, "worker goroutines")
	fs.Parse(args)

	type job struct {
		idx  int
		seed int64
	}
	jobs := make(chan job, *count)
	for i := 0; i < *count; i++ {
		jobs <- job{idx: i, seed: *seed + int64(i)}
	}
	close(jobs)

	results := make([]levelfmt.Level, *count)
	var done atomic.Int64
	var wg sync.WaitGroup
	var seenMu sync.Mutex
	seen := make(map[string]bool)

	start := time.Now()
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	tickerDone := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				n := done.Load()
				elapsed := time.Since(start)
				rate := float64(n) / (elapsed.Seconds() + 0.001)
				logger.Info("generating",
					"done", n,
					"total", *count,
					"elapsed", humanize.RelTime(start, time.Now(), "", ""),
					"rate_per_sec", fmt.Sprintf("%.1f", rate))
			case <-tickerDone:
				return
			}
		}
	}()

	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				board, err := generator.Generate(rng.New(j.seed), generator.DefaultOptions(*height, *width))
				if err != nil {
					logger.Info("generation attempt failed", "seed", j.seed, "err", err.Error())
					continue
				}
				fp := generator.Fingerprint(board)
				seenMu.Lock()
				duplicate := seen[fp]
				seen[fp] = true
				seenMu.Unlock()
				if duplicate {
					logger.Info("skipping duplicate puzzle", "seed", j.seed, "fingerprint", fp)
					continue
				}
				results[j.idx] = levelfmt.Level{
					Name: uuid.NewString(),
					Rows: strings.Split(levelfmt.FormatASCII(board), "\n"),
				}
				done.Add(1)
			}
		}()
	}
	wg.Wait()
	close(tickerDone)

	var levels []levelfmt.Level
	for _, lvl := range results {
		if lvl.Name != "" {
			levels = append(levels, lvl)
		}
	}
	pack := &levelfmt.LevelPack{Version: 1, Levels: levels}

	if *out == "" {
		for _, lvl := range pack.Levels {
			fmt.Printf("# %s\n%s\n\n", lvl.Name, strings.Join(lvl.Rows, "\n"))
		}
		return nil
	}
	return pack.Save(*out)
}
