package main

import (
	"fmt"
	"io"

	"github.com/irfansharif/flowangle/internal/engine"
	"github.com/irfansharif/flowangle/internal/explore"
)

func writeSummary(w io.Writer, res engine.Result, m explore.Metrics) {
	cfg := res.Config
	fmt.Fprintf(w, "flow shape: n=%d, handle angle %g°, flow factor %g, rotation %g°, canvas %g\n",
		cfg.Sides, cfg.HandleAngle, cfg.FlowFactor, cfg.Rotation, cfg.CanvasSize)
	fmt.Fprintf(w, "curves: %d, intersections: %d, regions: %d, total area: %.2f\n",
		m.CurveCount, m.IntersectionCount, m.RegionCount, m.TotalArea)

	for _, reg := range res.Regions {
		b := reg.Common()
		fmt.Fprintf(w, "  %s %d", reg.Kind(), b.ID)
		if p, ok := reg.(*engine.Petal); ok {
			fmt.Fprintf(w, " (curve %d)", p.PetalIndex)
		}
		fmt.Fprintf(w, ": area %.2f, centroid %v, %d boundary points\n", b.Area, b.Centroid, len(b.Boundary))
		if e := b.Ellipse; e != nil {
			fmt.Fprintf(w, "    ellipse: center %v, radii %.2f × %.2f, rotation %.3f rad, area %.2f\n",
				e.Center, e.SemiMajor, e.SemiMinor, e.Rotation, e.Area)
		}
		if r := b.Rectangle; r != nil {
			fmt.Fprintf(w, "    rectangle: min %v, %.2f × %.2f, area %.2f\n", r.Min, r.Width, r.Height, r.Area)
		}
	}

	fmt.Fprintf(w, "complexity %.3f, simplicity %.3f, center dominance %.3f, roundness %.3f, regularity %.3f\n",
		m.Complexity, m.Simplicity, m.CenterDominance, m.Roundness, m.Regularity)
	if m.IsDegenerate() {
		fmt.Fprintf(w, "degenerate: %s\n", m.Degenerate)
	}
}

func writeNovel(w io.Writer, novel []explore.Discovery) {
	if len(novel) == 0 {
		return
	}
	fmt.Fprintf(w, "\nnovel configurations:\n")
	for _, d := range novel {
		fmt.Fprintf(w, "  %-22s handle angle %6g°, flow factor %5g: %s\n",
			d.Kind, d.Config.HandleAngle, d.Config.FlowFactor, d.Reason)
	}
}
