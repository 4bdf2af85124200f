package geom

import "math"

// ParallelEpsilon is the determinant magnitude below which two segments are
// treated as parallel and therefore non-intersecting.
const ParallelEpsilon = 1e-10

// SegmentIntersection returns the point where segment p1-p2 crosses segment
// p3-p4. Both segment parameters must lie in [0,1], endpoints included.
// Parallel, near-parallel and collinear segments never intersect.
func SegmentIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	denom := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if math.Abs(denom) < ParallelEpsilon {
		return Point{}, false
	}

	t := ((p1.X-p3.X)*(p3.Y-p4.Y) - (p1.Y-p3.Y)*(p3.X-p4.X)) / denom
	u := -((p1.X-p2.X)*(p1.Y-p3.Y) - (p1.Y-p2.Y)*(p1.X-p3.X)) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return p1.Lerp(p2, t), true
}
