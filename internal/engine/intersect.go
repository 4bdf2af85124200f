package engine

import (
	"github.com/irfansharif/flowangle/internal/gen"
	"github.com/irfansharif/flowangle/internal/geom"
)

const (
	// DedupThreshold is the distance below which two crossings are taken to
	// be the same one.
	DedupThreshold = 3.0

	// vertexTolerance is how close a hit may be to the vertex shared by two
	// adjacent curves before it counts as the curves touching rather than
	// crossing.
	vertexTolerance = 1e-6
)

// Intersection is a crossing between two curves.
type Intersection struct {
	geom.Point
	Curves [2]int // indices of the crossing curves, ascending
}

// intersectionSet accumulates crossings, dropping any that fall within
// DedupThreshold of one already kept. The first one found wins.
type intersectionSet struct {
	kept []Intersection
}

func (s *intersectionSet) add(x Intersection) bool {
	for _, k := range s.kept {
		if geom.Dist(k.Point, x.Point) < DedupThreshold {
			return false
		}
	}
	s.kept = append(s.kept, x)
	return true
}

// Dedupe returns the crossings in order, dropping every crossing that lies
// within DedupThreshold of an earlier kept one.
func Dedupe(xs []Intersection) []Intersection {
	var s intersectionSet
	for _, x := range xs {
		s.add(x)
	}
	return s.kept
}

// FindIntersections returns the deduplicated crossings between every pair of
// sampled curves. Curves are compared segment by segment, so the cost is
// quadratic in both the number of curves and the sampling resolution.
func FindIntersections(curves []gen.Curve) []Intersection {
	var s intersectionSet
	for i := range curves {
		for j := i + 1; j < len(curves); j++ {
			findPairIntersections(&s, curves[i], curves[j])
		}
	}
	return s.kept
}

func findPairIntersections(s *intersectionSet, c1, c2 gen.Curve) {
	shared, adjacent := sharedVertex(c1, c2)
	for a := 0; a+1 < len(c1.Samples); a++ {
		p1, p2 := c1.Samples[a].Point, c1.Samples[a+1].Point
		for b := 0; b+1 < len(c2.Samples); b++ {
			p3, p4 := c2.Samples[b].Point, c2.Samples[b+1].Point
			hit, ok := geom.SegmentIntersection(p1, p2, p3, p4)
			if !ok {
				continue
			}
			if adjacent && geom.Dist(hit, shared) < vertexTolerance {
				continue
			}
			s.add(Intersection{Point: hit, Curves: [2]int{c1.Index, c2.Index}})
		}
	}
}

// sharedVertex returns the vertex two neighbouring curves meet at.
func sharedVertex(c1, c2 gen.Curve) (geom.Point, bool) {
	switch {
	case c1.End == c2.Start:
		return c1.End, true
	case c2.End == c1.Start:
		return c2.End, true
	}
	return geom.Point{}, false
}
