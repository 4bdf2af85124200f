// Package engine analyzes flow shapes: it finds where a shape's curves cross,
// decomposes the figure into outer, center and petal regions, and fits the
// largest ellipse and rectangle inside each region.
//
// The engine keeps no state between calls. Analyze builds everything it
// returns from its input alone, so concurrent calls are safe.
package engine

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/irfansharif/flowangle/internal/gen"
)

var engineLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("FLOWANGLE_DEBUG_ENGINE") == "1" {
		engineLogger = log.New(os.Stdout, "[engine] ", log.Ltime|log.Lmsgprefix)
	}
}

// Result is the outcome of analyzing one configuration.
type Result struct {
	Config        gen.Config
	Curves        []gen.Curve
	Intersections []Intersection
	Regions       []Region
}

// Analyze generates the shape described by cfg and decomposes it. Invalid
// configurations are reported as errors; degenerate geometry is not, it
// simply yields fewer regions or regions without inscribed shapes.
func Analyze(cfg gen.Config) (Result, error) {
	start := time.Now()

	shape, err := gen.Generate(cfg)
	if err != nil {
		return Result{}, err
	}
	intersections := FindIntersections(shape.Curves)
	regions := Decompose(shape.Curves, intersections)

	engineLogger.Printf("sides=%d angle=%g flow=%g: %d intersections, %d regions in %s",
		cfg.Sides, cfg.HandleAngle, cfg.FlowFactor, len(intersections), len(regions), time.Since(start))

	return Result{
		Config:        cfg,
		Curves:        shape.Curves,
		Intersections: intersections,
		Regions:       regions,
	}, nil
}

// TotalArea sums the areas of every region.
func (r Result) TotalArea() float64 {
	var total float64
	for _, reg := range r.Regions {
		total += reg.Common().Area
	}
	return total
}

// Center returns the center region, if one was found.
func (r Result) Center() (*Center, bool) {
	for _, reg := range r.Regions {
		if c, ok := reg.(*Center); ok {
			return c, true
		}
	}
	return nil, false
}

// Petals returns the petal regions in curve order.
func (r Result) Petals() []*Petal {
	var petals []*Petal
	for _, reg := range r.Regions {
		if p, ok := reg.(*Petal); ok {
			petals = append(petals, p)
		}
	}
	return petals
}
