package engine

import (
	"github.com/irfansharif/flowangle/internal/gen"
	"github.com/irfansharif/flowangle/internal/geom"
)

// Decomposition parameters.
const (
	centerGridSteps = 50   // lattice steps per axis when probing the center region
	petalStride     = 5    // every petalStride-th curve sample seeds a petal point
	petalInset      = 20.0 // distance petal points are pushed inwards from the curve
	minHullInput    = 4    // fewest points worth taking a hull of
)

// Decompose partitions a sampled shape into regions. A shape without
// crossings is a single outer region; otherwise it is split heuristically
// into a center region and one petal per curve, either of which may be
// missing when too few points qualify. Every region gets its inscribed
// shapes fitted.
//
// This is an approximation built from grid sampling and convex hulls, not an
// exact planar subdivision.
func Decompose(curves []gen.Curve, intersections []Intersection) []Region {
	outline := Outline(curves)

	var regions []Region
	if len(intersections) == 0 {
		regions = append(regions, &Outer{Base: newBase(0, outline)})
	} else {
		figureCentroid := geom.Mean(outline)
		if c := extractCenter(curves, figureCentroid); c != nil {
			regions = append(regions, c)
		}
		for i := range curves {
			if p := extractPetal(curves[i], figureCentroid); p != nil {
				regions = append(regions, p)
			}
		}
	}

	for _, r := range regions {
		r.Common().inscribe()
	}
	return regions
}

// Outline concatenates the curves' samples, dropping each curve's last
// sample since it repeats the next curve's first.
func Outline(curves []gen.Curve) []geom.Point {
	var pts []geom.Point
	for _, c := range curves {
		for _, s := range c.Samples[:max(len(c.Samples)-1, 0)] {
			pts = append(pts, s.Point)
		}
	}
	return pts
}

// extractCenter probes a lattice over the first curve's bounding box and
// hulls the points that fall inside the polygon traced by every curve.
func extractCenter(curves []gen.Curve, figureCentroid geom.Point) *Center {
	var traced []geom.Point
	for _, c := range curves {
		traced = append(traced, c.Points()...)
	}

	bounds := geom.Bounds(curves[0].Points())
	if bounds.W <= 0 || bounds.H <= 0 {
		return nil
	}

	var inside []geom.Point
	for yi := 0; yi <= centerGridSteps; yi++ {
		y := bounds.Y + bounds.H*float64(yi)/centerGridSteps
		for xi := 0; xi <= centerGridSteps; xi++ {
			p := geom.MakePoint(bounds.X+bounds.W*float64(xi)/centerGridSteps, y)
			if geom.Contains(traced, p) {
				inside = append(inside, p)
			}
		}
	}
	if len(inside) < minHullInput {
		return nil
	}

	hull := geom.ConvexHull(inside)
	if len(hull) < 3 {
		return nil
	}
	c := &Center{Base: newBase(0, hull)}
	c.Centroid = figureCentroid
	return c
}

// extractPetal pushes every petalStride-th sample of the curve inwards, towards
// the figure centroid, and hulls the result.
func extractPetal(c gen.Curve, figureCentroid geom.Point) *Petal {
	var pts []geom.Point
	last := len(c.Samples) - 1
	for k := 0; k <= last; k += petalStride {
		p := c.Samples[k].Point
		tangent := c.Samples[min(k+1, last)].Point.Sub(p)
		l := tangent.Len()
		if l == 0 {
			continue
		}
		normal := geom.MakePoint(-tangent.Y/l, tangent.X/l)
		if geom.Dot(normal, figureCentroid.Sub(p)) <= 0 {
			normal = normal.Scale(-1)
		}
		pts = append(pts, p.Add(normal.Scale(petalInset)))
	}
	if len(pts) < minHullInput {
		return nil
	}

	hull := geom.ConvexHull(pts)
	if len(hull) < 3 {
		return nil
	}
	return &Petal{Base: newBase(c.Index+1, hull), PetalIndex: c.Index}
}
