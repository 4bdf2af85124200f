package geom

import (
	"math"

	jgeom "github.com/jbeda/geom"
)

// SignedArea returns the shoelace area of the closed polygon. It is positive
// for counter-clockwise vertex order in a y-up frame. Polygons with fewer
// than three vertices have zero area.
func SignedArea(poly []Point) float64 {
	if len(poly) < 3 {
		return 0
	}
	var sum float64
	for i := range poly {
		j := (i + 1) % len(poly)
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return sum / 2
}

// Area returns the absolute shoelace area of the closed polygon.
func Area(poly []Point) float64 { return math.Abs(SignedArea(poly)) }

// Mean returns the arithmetic mean of the points, or the origin for an empty
// slice. For a polygon this is the vertex centroid, not the area centroid
// (see AreaCentroid).
func Mean(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(pts)))
}

// Contains reports whether p lies inside the polygon using the even-odd ray
// casting rule. Points exactly on an edge may fall either way.
func Contains(poly []Point, p Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

// ContainsAll reports whether every point in pts lies inside the polygon.
func ContainsAll(poly []Point, pts ...Point) bool {
	for _, p := range pts {
		if !Contains(poly, p) {
			return false
		}
	}
	return true
}

// Bounds returns the axis-aligned bounding box of the points. An empty slice
// yields the zero box.
func Bounds(pts []Point) Box {
	if len(pts) == 0 {
		return Box{}
	}
	first := jgeom.Coord{X: pts[0].X, Y: pts[0].Y}
	r := jgeom.Rect{Min: first, Max: first}
	for _, p := range pts[1:] {
		r.ExpandToContainCoord(jgeom.Coord{X: p.X, Y: p.Y})
	}
	return MakeBox(r.Min.X, r.Min.Y, r.Max.X-r.Min.X, r.Max.Y-r.Min.Y)
}
