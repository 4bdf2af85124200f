package geom

import (
	"fmt"

	"github.com/rclancey/earcut"
)

// Triangulate splits a simple polygon into triangles using the earcut
// algorithm. The polygon may be given in either orientation.
func Triangulate(poly []Point) ([][3]Point, error) {
	if len(poly) < 3 {
		return nil, fmt.Errorf("degenerate polygon (%d vertices < 3)", len(poly))
	}

	// Format: [x0, y0, x1, y1, ..., xn, yn]
	coords := make([]float64, len(poly)*2)
	for i, p := range poly {
		coords[i*2] = p.X
		coords[i*2+1] = p.Y
	}

	indices, err := earcut.Earcut(coords, nil /* holeIndices */, 2 /* dim */)
	if err != nil {
		return nil, fmt.Errorf("triangulating %d-vertex polygon: %w", len(poly), err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("invalid triangle index count %d (not divisible by 3)", len(indices))
	}

	triangles := make([][3]Point, len(indices)/3)
	for i := range triangles {
		base := i * 3
		triangles[i] = [3]Point{poly[indices[base]], poly[indices[base+1]], poly[indices[base+2]]}
	}
	return triangles, nil
}

// AreaCentroid returns the area-weighted centroid of a simple polygon along
// with its area, computed from its triangulation. Unlike Mean it does not
// depend on how densely the boundary is sampled.
func AreaCentroid(poly []Point) (Point, float64, error) {
	triangles, err := Triangulate(poly)
	if err != nil {
		return Point{}, 0, err
	}

	var total float64
	var weighted Point
	for _, tri := range triangles {
		a := Area(tri[:])
		total += a
		weighted = weighted.Add(tri[0].Add(tri[1]).Add(tri[2]).Scale(a / 3))
	}
	if total == 0 {
		return Point{}, 0, fmt.Errorf("polygon has zero area")
	}
	return weighted.Scale(1 / total), total, nil
}
