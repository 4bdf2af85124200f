// Package gen builds flow shapes: N cubic Bézier "petal" curves joining the
// vertices of a regular polygon.
//
// Generation works in two stages:
//   - Place the polygon vertices evenly on a circle of radius canvas/sides.
//   - For every side, raise an apex over the chord as the tip of an isosceles
//     triangle with the configured handle angle, and pull the curve's control
//     points from the chord endpoints towards (or past) that apex by the flow
//     factor.
//
// Every curve is sampled into a fixed-resolution polyline that downstream
// geometry (intersections, regions, inscribed shapes) works on.
package gen

import (
	"errors"
	"fmt"
	"math"

	"github.com/irfansharif/flowangle/internal/geom"
)

// DefaultResolution is the number of segments each curve is sampled into.
const DefaultResolution = 100

// minChordLength is the shortest chord a curve can be raised over.
const minChordLength = 1e-12

var (
	ErrTooFewSides     = errors.New("flow shape needs at least 3 sides")
	ErrCanvasSize      = errors.New("canvas size must be positive and finite")
	ErrHandleAngle     = errors.New("handle angle must lie strictly between 0 and 180 degrees")
	ErrFlowFactor      = errors.New("flow factor must be finite")
	ErrDegenerateChord = errors.New("degenerate chord between consecutive vertices")
)

// Config describes a single flow shape.
type Config struct {
	Sides       int     // number of vertices and curves, >= 3
	HandleAngle float64 // apex angle in degrees, in (0, 180)
	FlowFactor  float64 // control point pull towards the apex; may be negative or > 1
	Rotation    float64 // rotation of the first vertex in degrees
	CanvasSize  float64 // side of the square canvas the shape is centered in
	Resolution  int     // segments per sampled curve, DefaultResolution if zero
}

// Validate reports whether the configuration can produce a shape.
func (c Config) Validate() error {
	if c.Sides < 3 {
		return fmt.Errorf("%w: got %d", ErrTooFewSides, c.Sides)
	}
	if !(c.CanvasSize > 0) || math.IsInf(c.CanvasSize, 0) {
		return fmt.Errorf("%w: got %g", ErrCanvasSize, c.CanvasSize)
	}
	if !(c.HandleAngle > 0 && c.HandleAngle < 180) {
		return fmt.Errorf("%w: got %g", ErrHandleAngle, c.HandleAngle)
	}
	if math.IsNaN(c.FlowFactor) || math.IsInf(c.FlowFactor, 0) {
		return fmt.Errorf("%w: got %g", ErrFlowFactor, c.FlowFactor)
	}
	return nil
}

func (c Config) resolution() int {
	if c.Resolution <= 0 {
		return DefaultResolution
	}
	return c.Resolution
}

// Center returns the canvas center the shape is built around.
func (c Config) Center() geom.Point { return geom.MakePoint(c.CanvasSize/2, c.CanvasSize/2) }

// Radius returns the radius of the circle the vertices lie on.
func (c Config) Radius() float64 { return c.CanvasSize / float64(c.Sides) }

// Curve is one side of a flow shape: a cubic Bézier from Start to End with
// control points Ctrl1 and Ctrl2, sampled into Samples.
type Curve struct {
	Index   int
	Start   geom.Point
	End     geom.Point
	Apex    geom.Point // tip of the isosceles triangle raised over the chord
	Ctrl1   geom.Point
	Ctrl2   geom.Point
	Samples []Sample
}

// Points returns the sampled polyline of the curve.
func (c Curve) Points() []geom.Point {
	pts := make([]geom.Point, len(c.Samples))
	for i, s := range c.Samples {
		pts[i] = s.Point
	}
	return pts
}

// Shape carries the generated vertices and curves.
type Shape struct {
	Config   Config
	Vertices []geom.Point
	Curves   []Curve
}

// Vertices returns the polygon vertices for the configuration.
func Vertices(cfg Config) []geom.Point {
	center, radius := cfg.Center(), cfg.Radius()
	step := 2 * math.Pi / float64(cfg.Sides)
	rot := cfg.Rotation * math.Pi / 180

	vertices := make([]geom.Point, cfg.Sides)
	for i := range vertices {
		s, c := math.Sincos(rot + float64(i)*step)
		vertices[i] = center.Add(geom.MakePoint(c, s).Scale(radius))
	}
	return vertices
}

// Generate builds and samples every curve of the shape described by cfg.
func Generate(cfg Config) (Shape, error) {
	if err := cfg.Validate(); err != nil {
		return Shape{}, err
	}

	vertices := Vertices(cfg)
	halfAngle := cfg.HandleAngle * math.Pi / 360
	curves := make([]Curve, cfg.Sides)
	for i := range curves {
		start, end := vertices[i], vertices[(i+1)%cfg.Sides]
		apex, err := raiseApex(start, end, halfAngle)
		if err != nil {
			return Shape{}, fmt.Errorf("side %d: %w", i, err)
		}

		c := Curve{
			Index: i,
			Start: start,
			End:   end,
			Apex:  apex,
			Ctrl1: start.Lerp(apex, cfg.FlowFactor),
			Ctrl2: end.Lerp(apex, cfg.FlowFactor),
		}
		c.Samples = SampleCubic(c.Start, c.Ctrl1, c.Ctrl2, c.End, cfg.resolution())
		curves[i] = c
	}

	return Shape{Config: cfg, Vertices: vertices, Curves: curves}, nil
}

// raiseApex returns the tip of the isosceles triangle over chord v1-v2 whose
// apex angle is 2*halfAngle, on the outward side of the chord.
func raiseApex(v1, v2 geom.Point, halfAngle float64) (geom.Point, error) {
	d := v2.Sub(v1)
	chord := d.Len()
	if chord < minChordLength || math.IsNaN(chord) {
		return geom.Point{}, fmt.Errorf("%w: %v -> %v", ErrDegenerateChord, v1, v2)
	}

	perp := geom.MakePoint(d.Y, -d.X).Scale(1 / chord)
	height := (chord / 2) / math.Tan(halfAngle)
	return v1.Midpoint(v2).Add(perp.Scale(height)), nil
}
