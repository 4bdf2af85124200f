// Package inscribe searches for the largest ellipse and the largest
// axis-aligned rectangle that fit inside a polygon.
//
// Both searches are coarse grid searches centered on the polygon's vertex
// centroid. A candidate is accepted only when every probe point on its
// outline passes the polygon's ray-casting containment test, so the result is
// the largest accepted grid point, not a global optimum.
package inscribe

import (
	"math"

	"github.com/irfansharif/flowangle/internal/geom"
)

// Search grid configuration. Ratios are expressed as integer steps over a
// denominator so the end points are hit exactly.
const (
	ellipseRatioMin   = 2 // 0.2
	ellipseRatioMax   = 10
	ellipseRatioDenom = 10
	ellipseRotations  = 8 // steps of π/8 over [0, π)
	ellipseProbes     = 16

	rectRatioMin   = 2 // 0.10
	rectRatioMax   = 20
	rectRatioDenom = 20
)

// Ellipse is an ellipse fitted inside a region. SemiMajor is the radius along
// the ellipse's own (rotated) x axis and SemiMinor the radius along its y
// axis; SemiMajor is not necessarily the longer of the two.
type Ellipse struct {
	Center    geom.Point
	SemiMajor float64
	SemiMinor float64
	Rotation  float64 // radians, in [0, π)
	Area      float64
}

// Rectangle is an axis-aligned rectangle fitted inside a region. Min is the
// corner with the smallest coordinates, the top-left one on a y-down canvas.
type Rectangle struct {
	Min    geom.Point
	Width  float64
	Height float64
	Area   float64
}

// Box returns the rectangle as a geom.Box.
func (r Rectangle) Box() geom.Box { return geom.MakeBox(r.Min.X, r.Min.Y, r.Width, r.Height) }

// transform maps the unit circle onto the ellipse outline.
func (e Ellipse) transform() geom.Affine {
	return geom.Translate(e.Center.X, e.Center.Y).
		Mul(geom.Rotate(e.Rotation)).
		Mul(geom.ScaleXY(e.SemiMajor, e.SemiMinor))
}

// Outline returns n evenly spaced points on the ellipse.
func (e Ellipse) Outline(n int) []geom.Point {
	aff := e.transform()
	pts := make([]geom.Point, n)
	for i := range pts {
		s, c := math.Sincos(float64(i) / float64(n) * 2 * math.Pi)
		pts[i] = aff.MulPoint(geom.MakePoint(c, s))
	}
	return pts
}

// LargestEllipse returns the largest accepted ellipse, or nil when the
// boundary has fewer than three points or no candidate fits.
func LargestEllipse(boundary []geom.Point) *Ellipse {
	if len(boundary) < 3 {
		return nil
	}
	center := geom.Mean(boundary)
	bounds := geom.Bounds(boundary)

	var best *Ellipse
	var bestArea float64
	for wi := ellipseRatioMin; wi <= ellipseRatioMax; wi++ {
		for hi := ellipseRatioMin; hi <= ellipseRatioMax; hi++ {
			a := bounds.W / 2 * float64(wi) / ellipseRatioDenom
			b := bounds.H / 2 * float64(hi) / ellipseRatioDenom
			area := math.Pi * a * b
			for k := range ellipseRotations {
				e := Ellipse{
					Center:    center,
					SemiMajor: a,
					SemiMinor: b,
					Rotation:  float64(k) * math.Pi / ellipseRotations,
					Area:      area,
				}
				if area > bestArea && geom.ContainsAll(boundary, e.Outline(ellipseProbes)...) {
					best, bestArea = &e, area
				}
			}
		}
	}
	return best
}

// LargestRectangle returns the largest accepted axis-aligned rectangle, or nil
// when the boundary has fewer than three points or no candidate fits.
func LargestRectangle(boundary []geom.Point) *Rectangle {
	if len(boundary) < 3 {
		return nil
	}
	center := geom.Mean(boundary)
	bounds := geom.Bounds(boundary)

	var best *Rectangle
	var bestArea float64
	for wi := rectRatioMin; wi <= rectRatioMax; wi++ {
		for hi := rectRatioMin; hi <= rectRatioMax; hi++ {
			w := bounds.W * float64(wi) / rectRatioDenom
			h := bounds.H * float64(hi) / rectRatioDenom
			r := Rectangle{
				Min:    geom.MakePoint(center.X-w/2, center.Y-h/2),
				Width:  w,
				Height: h,
				Area:   w * h,
			}
			if r.Area <= bestArea {
				continue
			}
			if corners := r.Box().Corners(); geom.ContainsAll(boundary, corners[:]...) {
				best, bestArea = &r, r.Area
			}
		}
	}
	return best
}
