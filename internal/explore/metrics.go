package explore

import (
	"math"

	"github.com/irfansharif/flowangle/internal/engine"
	"github.com/irfansharif/flowangle/internal/gen"
	"github.com/irfansharif/flowangle/internal/geom"
)

// DegenerateReason explains why a configuration was dropped from a sweep.
// The empty reason means the configuration is usable.
type DegenerateReason string

const (
	Collapsed       DegenerateReason = "collapsed"
	Exploded        DegenerateReason = "exploded"
	NoRegions       DegenerateReason = "no_regions"
	InfiniteFolding DegenerateReason = "infinite_folding"
	DegenerateChord DegenerateReason = "degenerate_chord" // the shape could not be generated
)

// Degeneracy thresholds, relative to the canvas area or the side count.
const (
	collapsedAreaRatio   = 0.01
	explodedAreaRatio    = 2.0
	foldingFlowFactor    = -2.5
	foldingCrossingRatio = 3
)

// Metrics summarizes one analysis result.
type Metrics struct {
	CurveCount        int
	IntersectionCount int
	RegionCount       int

	TotalArea         float64
	CenterArea        float64
	PetalAreas        []float64
	LargestPetalArea  float64
	SmallestPetalArea float64
	PetalAreaVariance float64

	CenterInscribedRatio float64 // inscribed rectangle area over center area
	CenterDominance      float64 // center area over total area
	CenterOffset         float64 // distance from the center region's area centroid to the canvas center

	Roundness  float64 // 1/(1+cv) of boundary point distances from their mean
	Regularity float64 // 1/(1+σ/largest) over petal areas

	Complexity float64
	Simplicity float64

	Degenerate DegenerateReason
}

// IsDegenerate reports whether the configuration should be skipped.
func (m Metrics) IsDegenerate() bool { return m.Degenerate != "" }

// ComputeMetrics derives the sweep metrics from an analysis result.
func ComputeMetrics(res engine.Result) Metrics {
	cfg := res.Config
	m := Metrics{
		CurveCount:        len(res.Curves),
		IntersectionCount: len(res.Intersections),
		RegionCount:       len(res.Regions),
	}

	for _, reg := range res.Regions {
		switch r := reg.(type) {
		case *engine.Outer:
			m.TotalArea += r.Area
		case *engine.Center:
			m.TotalArea += r.Area
			m.CenterArea = r.Area
			if r.Rectangle != nil && r.Area > 0 {
				m.CenterInscribedRatio = r.Rectangle.Area / r.Area
			}
			m.CenterOffset = centerOffset(cfg, r)
		case *engine.Petal:
			m.TotalArea += r.Area
			m.PetalAreas = append(m.PetalAreas, r.Area)
		default:
			sweepLogger.Printf("sides=%d angle=%g flow=%g: skipping unknown region %T", cfg.Sides, cfg.HandleAngle, cfg.FlowFactor, reg)
		}
	}

	if len(m.PetalAreas) > 0 {
		m.SmallestPetalArea = math.Inf(1)
		var sum float64
		for _, a := range m.PetalAreas {
			m.LargestPetalArea = max(m.LargestPetalArea, a)
			m.SmallestPetalArea = min(m.SmallestPetalArea, a)
			sum += a
		}
		if len(m.PetalAreas) > 1 {
			mean := sum / float64(len(m.PetalAreas))
			for _, a := range m.PetalAreas {
				m.PetalAreaVariance += (a - mean) * (a - mean)
			}
			m.PetalAreaVariance /= float64(len(m.PetalAreas))
		}
		if m.LargestPetalArea > 0 {
			m.Regularity = 1 / (1 + math.Sqrt(m.PetalAreaVariance)/m.LargestPetalArea)
		}
	}

	if m.TotalArea > 0 {
		m.CenterDominance = m.CenterArea / m.TotalArea
	}
	m.Roundness = roundness(res.Regions)

	sides := float64(cfg.Sides)
	m.Complexity = 0.4*float64(m.IntersectionCount)/sides +
		0.3*float64(m.RegionCount)/(sides+1) +
		0.3*(1-m.Regularity)
	m.Simplicity = 0.4*m.CenterDominance +
		0.3*m.Regularity +
		0.3*m.CenterInscribedRatio

	m.Degenerate = CheckDegenerate(cfg, m)
	return m
}

// CheckDegenerate returns why a configuration with the given metrics is
// unusable, or the empty reason.
func CheckDegenerate(cfg gen.Config, m Metrics) DegenerateReason {
	canvasArea := cfg.CanvasSize * cfg.CanvasSize
	switch {
	case m.TotalArea < canvasArea*collapsedAreaRatio:
		return Collapsed
	case m.TotalArea > canvasArea*explodedAreaRatio:
		return Exploded
	case m.RegionCount == 0:
		return NoRegions
	case cfg.FlowFactor < foldingFlowFactor && m.IntersectionCount > cfg.Sides*foldingCrossingRatio:
		return InfiniteFolding
	}
	return ""
}

// roundness measures how evenly every region boundary point sits around
// their common mean.
func roundness(regions []engine.Region) float64 {
	var pts []geom.Point
	for _, r := range regions {
		pts = append(pts, r.Common().Boundary...)
	}
	if len(pts) < 3 {
		return 0
	}

	c := geom.Mean(pts)
	dists := make([]float64, len(pts))
	var sum float64
	for i, p := range pts {
		dists[i] = geom.Dist(p, c)
		sum += dists[i]
	}
	mean := sum / float64(len(dists))
	if mean == 0 {
		return 0
	}
	var variance float64
	for _, d := range dists {
		variance += (d - mean) * (d - mean)
	}
	variance /= float64(len(dists))
	return 1 / (1 + math.Sqrt(variance)/mean)
}

// centerOffset is the distance between the center region's area centroid and
// the canvas center; zero when the region cannot be triangulated.
func centerOffset(cfg gen.Config, c *engine.Center) float64 {
	centroid, _, err := geom.AreaCentroid(c.Boundary)
	if err != nil {
		sweepLogger.Printf("sides=%d angle=%g flow=%g: center offset: %v", cfg.Sides, cfg.HandleAngle, cfg.FlowFactor, err)
		return 0
	}
	return geom.Dist(centroid, cfg.Center())
}
