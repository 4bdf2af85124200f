package gen

import "github.com/irfansharif/flowangle/internal/geom"

// Sample is a point on a curve together with its curve parameter.
type Sample struct {
	geom.Point
	T float64
}

// EvalCubic evaluates the cubic Bézier p0,p1,p2,p3 at t using the Bernstein
// basis.
func EvalCubic(p0, p1, p2, p3 geom.Point, t float64) geom.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return geom.MakePoint(
		a*p0.X+b*p1.X+c*p2.X+d*p3.X,
		a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y,
	)
}

// SampleCubic evaluates the cubic at segments+1 uniformly spaced parameters,
// both endpoints included. The first and last samples are exactly p0 and p3.
func SampleCubic(p0, p1, p2, p3 geom.Point, segments int) []Sample {
	segments = max(segments, 1)
	samples := make([]Sample, segments+1)
	for i := range samples {
		t := float64(i) / float64(segments)
		samples[i] = Sample{Point: EvalCubic(p0, p1, p2, p3, t), T: t}
	}
	samples[0].Point = p0
	samples[segments].Point = p3
	return samples
}
