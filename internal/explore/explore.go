// Package explore sweeps the (handle angle, flow factor) parameter space of
// flow shapes with a fixed side count. Every configuration is analyzed,
// measured, checked for degeneracy and classified into extremes and
// archetypes that are worth a closer look.
package explore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/irfansharif/flowangle/internal/engine"
	"github.com/irfansharif/flowangle/internal/gen"
)

var sweepLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("FLOWANGLE_DEBUG_SWEEP") == "1" {
		sweepLogger = log.New(os.Stdout, "[sweep] ", log.Ltime|log.Lmsgprefix)
	}
}

// Explorer runs sweeps and remembers the latest classification per side
// count. It is safe for concurrent use.
type Explorer struct {
	mu          sync.Mutex
	discoveries map[int]*Classification // keyed by side count
}

// NewExplorer creates an explorer with no discoveries.
func NewExplorer() *Explorer {
	return &Explorer{discoveries: make(map[int]*Classification)}
}

// Explore analyzes every configuration of the options' grid for the given
// side count, drops degenerate ones and classifies the rest. The
// classification replaces any earlier one for the same side count.
func (e *Explorer) Explore(ctx context.Context, sides int, opts Options) (*Classification, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if sides < 3 {
		return nil, fmt.Errorf("%w: got %d", gen.ErrTooFewSides, sides)
	}

	start := time.Now()
	cfgs := opts.Configs(sides)
	metrics := make([]Metrics, len(cfgs))

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, cfg := range cfgs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := engine.Analyze(cfg)
			if errors.Is(err, gen.ErrDegenerateChord) {
				metrics[i] = Metrics{Degenerate: DegenerateChord}
				return nil
			}
			if err != nil {
				return fmt.Errorf("analyzing angle=%g flow=%g: %w", cfg.HandleAngle, cfg.FlowFactor, err)
			}
			metrics[i] = ComputeMetrics(res)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var usable []Configuration
	skipped := make(map[DegenerateReason]int)
	for i, m := range metrics {
		if m.IsDegenerate() {
			skipped[m.Degenerate]++
			continue
		}
		usable = append(usable, Configuration{Config: cfgs[i], Metrics: m})
	}

	c := Classify(sides, usable)
	c.Explored = len(cfgs)
	c.Skipped = skipped
	sweepLogger.Printf("sides=%d: %d configurations, %d classified, %d skipped in %s",
		sides, len(cfgs), len(usable), len(cfgs)-len(usable), time.Since(start))

	e.mu.Lock()
	defer e.mu.Unlock()
	e.discoveries[sides] = c
	return c, nil
}

// Discoveries returns the latest classification for the side count.
func (e *Explorer) Discoveries(sides int) (*Classification, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, ok := e.discoveries[sides]
	return c, ok
}

// Sides returns the side counts explored so far, ascending.
func (e *Explorer) Sides() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	sides := make([]int, 0, len(e.discoveries))
	for n := range e.discoveries {
		sides = append(sides, n)
	}
	sort.Ints(sides)
	return sides
}

// Novel returns the discoveries worth a closer look for the side count, or
// false if it was never explored.
func (e *Explorer) Novel(sides int) ([]Discovery, bool) {
	c, ok := e.Discoveries(sides)
	if !ok {
		return nil, false
	}
	return c.Novel(), true
}

// Report renders a plain-text summary of the side count's classification.
func (e *Explorer) Report(sides int) string {
	c, ok := e.Discoveries(sides)
	if !ok {
		return fmt.Sprintf("no discoveries for n=%d\n", sides)
	}
	return c.Report()
}
