// Command flowangle analyzes a single flow shape, or sweeps the handle angle
// and flow factor of shapes with a fixed side count.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/irfansharif/flowangle/internal/engine"
	"github.com/irfansharif/flowangle/internal/explore"
	"github.com/irfansharif/flowangle/internal/gen"
)

const logFlags = log.Ltime | log.Lshortfile

var runtimeLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	log.SetFlags(logFlags)

	if os.Getenv("FLOWANGLE_DEBUG_RUNTIME") == "1" {
		runtimeLogger = log.New(os.Stdout, "[runtime] ", log.Ltime|log.Lmsgprefix)
	}
}

var (
	sides      = flag.Int("sides", 6, "number of vertices and curves")
	angle      = flag.Float64("angle", 90, "handle angle in degrees, in (0, 180)")
	flow       = flag.Float64("flow", -1, "flow factor")
	rotation   = flag.Float64("rotation", 0, "rotation of the first vertex in degrees")
	size       = flag.Float64("size", 600, "canvas size")
	resolution = flag.Int("resolution", 0, "segments per sampled curve (0 for the default)")
	sweep      = flag.Bool("sweep", false, "sweep handle angle and flow factor for -sides")
	config     = flag.String("config", "", "TOML file with sweep options")
	workers    = flag.Int("workers", -1, "parallel analyses during a sweep (0 for GOMAXPROCS, overrides FLOWANGLE_WORKERS)")
)

func main() {
	flag.Parse()

	if *sweep {
		runSweep()
		return
	}

	cfg := gen.Config{
		Sides:       *sides,
		HandleAngle: *angle,
		FlowFactor:  *flow,
		Rotation:    *rotation,
		CanvasSize:  *size,
		Resolution:  *resolution,
	}
	res, err := engine.Analyze(cfg)
	if err != nil {
		log.Fatalf("Failed to analyze shape: %v", err)
	}
	writeSummary(os.Stdout, res, explore.ComputeMetrics(res))
}

func runSweep() {
	opts := explore.DefaultOptions()
	if *config != "" {
		var err error
		if opts, err = explore.LoadOptions(*config); err != nil {
			log.Fatalf("Failed to load sweep options: %v", err)
		}
	}
	opts = applyFlags(opts, passedFlags())
	if w, ok := workerCount(); ok {
		opts.Workers = w
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	explorer := explore.NewExplorer()
	c, err := explorer.Explore(ctx, *sides, opts)
	if err != nil {
		log.Fatalf("Sweep failed: %v", err)
	}
	runtimeLogger.Printf("Swept %d configurations for n=%d in %s", c.Explored, *sides, time.Since(start))

	fmt.Print(explorer.Report(*sides))
	novel, _ := explorer.Novel(*sides)
	writeNovel(os.Stdout, novel)
}

// passedFlags returns the names of the flags set on the command line.
func passedFlags() map[string]bool {
	passed := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { passed[f.Name] = true })
	return passed
}

// applyFlags overrides the sweep options with the shape flags in passed,
// leaving values from the defaults or the options file alone otherwise.
func applyFlags(opts explore.Options, passed map[string]bool) explore.Options {
	if passed["rotation"] {
		opts.Rotation = *rotation
	}
	if passed["size"] {
		opts.CanvasSize = *size
	}
	if passed["resolution"] {
		opts.Resolution = *resolution
	}
	return opts
}

// workerCount returns the sweep parallelism from -workers, falling back to
// FLOWANGLE_WORKERS. It reports false if neither is set.
func workerCount() (int, bool) {
	if *workers >= 0 {
		return *workers, true
	}
	workersStr := os.Getenv("FLOWANGLE_WORKERS")
	if workersStr == "" {
		return 0, false
	}
	w, err := strconv.Atoi(workersStr)
	if err != nil || w < 0 {
		log.Fatalf("Invalid FLOWANGLE_WORKERS value '%s': want a non-negative integer", workersStr)
	}
	return w, true
}
