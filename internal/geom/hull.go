package geom

import "sort"

// ConvexHull returns the convex hull of pts using a Graham scan.
//
// The pivot is the point with the smallest Y, ties broken by the smallest X.
// The remaining points are ordered by polar angle around the pivot, and for
// points sharing a ray only the farthest is kept. The sweep pops while the
// last three points make a non-left turn, so the hull is returned in
// counter-clockwise order (y-up) with a strictly positive cross product at
// every vertex and no collinear vertices.
//
// Fewer than three distinct input points are returned as they are (after
// removing duplicates of the pivot); callers that need a polygon must check
// the length of the result.
func ConvexHull(pts []Point) []Point {
	if len(pts) == 0 {
		return nil
	}

	pivot := pts[0]
	for _, p := range pts[1:] {
		if p.Y < pivot.Y || (p.Y == pivot.Y && p.X < pivot.X) {
			pivot = p
		}
	}

	rest := make([]Point, 0, len(pts))
	for _, p := range pts {
		if p != pivot {
			rest = append(rest, p)
		}
	}
	// Every point lies in the half plane above the pivot (or to its right on
	// the same row), so the orientation test is a strict weak ordering by
	// polar angle.
	sort.SliceStable(rest, func(i, j int) bool {
		o := Orient(pivot, rest[i], rest[j])
		if o != 0 {
			return o > 0
		}
		return Dist(pivot, rest[i]) < Dist(pivot, rest[j])
	})

	// Keep only the farthest point of every ray out of the pivot.
	rays := rest[:0]
	for i, p := range rest {
		if i+1 < len(rest) && Orient(pivot, p, rest[i+1]) == 0 {
			continue
		}
		rays = append(rays, p)
	}

	hull := make([]Point, 0, len(rays)+1)
	hull = append(hull, pivot)
	for _, p := range rays {
		for len(hull) > 1 && Orient(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull
}
