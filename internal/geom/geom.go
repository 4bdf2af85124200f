// Package geom provides the 2D primitives the flow-shape engine is built on:
//   - Point arithmetic and vector operations
//   - Axis-aligned bounding boxes
//   - 2D affine transformations (translation, rotation, scaling)
//   - Polygon measures, containment, convex hulls and triangulation
package geom

import (
	"fmt"
	"math"
)

// Point represents a 2D point or vector in Cartesian coordinates.
type Point struct {
	X float64
	Y float64
}

// Box represents an axis-aligned rectangle.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

// Affine represents a 2D affine transform in row-major form:
// [ a b c ]
// [ d e f ]
// where (x', y') = (a*x + b*y + c, d*x + e*y + f)
type Affine struct {
	A float64
	B float64
	C float64
	D float64
	E float64
	F float64
}

func MakePoint(x, y float64) Point               { return Point{X: x, Y: y} }
func MakeBox(x, y, w, h float64) Box             { return Box{X: x, Y: y, W: w, H: h} }
func MakeAffine(a, b, c, d, e, f float64) Affine { return Affine{A: a, B: b, C: c, D: d, E: e, F: f} }

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Len returns the magnitude of p taken as a vector.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Lerp linearly interpolates from p towards q. Values of t outside [0,1]
// extrapolate along the same line.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{0.5 * (p.X + q.X), 0.5 * (p.Y + q.Y)}
}

func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

func Dot(p, q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of the cross product p × q.
func Cross(p, q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Orient returns the cross product of (a-o) and (b-o). It is positive when
// o->a->b turns counter-clockwise in a y-up frame, zero when collinear.
func Orient(o, a, b Point) float64 { return Cross(a.Sub(o), b.Sub(o)) }

func Dist(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Area returns the area of the box.
func (b Box) Area() float64 { return b.W * b.H }

// Center returns the center point of the box.
func (b Box) Center() Point { return Point{b.X + 0.5*b.W, b.Y + 0.5*b.H} }

// Corners returns the four corners of the box, starting at (X, Y) and
// continuing along the x axis.
func (b Box) Corners() [4]Point {
	return [4]Point{
		{b.X, b.Y},
		{b.X + b.W, b.Y},
		{b.X + b.W, b.Y + b.H},
		{b.X, b.Y + b.H},
	}
}

// Translate returns a transform that moves points by (dx, dy).
func Translate(dx, dy float64) Affine { return MakeAffine(1, 0, dx, 0, 1, dy) }

// Rotate returns a transform rotating points by theta radians about the origin.
func Rotate(theta float64) Affine {
	s, c := math.Sincos(theta)
	return MakeAffine(c, -s, 0, s, c, 0)
}

// ScaleXY returns a transform scaling x by sx and y by sy.
func ScaleXY(sx, sy float64) Affine { return MakeAffine(sx, 0, 0, 0, sy, 0) }

// MulPoint applies the affine transform to a point.
func (t Affine) MulPoint(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// Mul composes two affine transforms (applies u then t).
func (t Affine) Mul(u Affine) Affine {
	return MakeAffine(
		t.A*u.A+t.B*u.D,
		t.A*u.B+t.B*u.E,
		t.A*u.C+t.B*u.F+t.C,
		t.D*u.A+t.E*u.D,
		t.D*u.B+t.E*u.E,
		t.D*u.C+t.E*u.F+t.F,
	)
}
