package explore

import (
	"fmt"
	"strings"
)

// Report renders the classification as plain text: totals, skipped
// configurations by reason, every extreme and the size and best entry of
// every archetype.
func (c *Classification) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parameter space exploration: n=%d\n", c.Sides)
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", 60))
	fmt.Fprintf(&b, "configurations analyzed: %d\n", c.Explored)
	fmt.Fprintf(&b, "configurations classified: %d\n", c.Total)
	for _, r := range []DegenerateReason{Collapsed, Exploded, NoRegions, InfiniteFolding, DegenerateChord} {
		if n := c.Skipped[r]; n > 0 {
			fmt.Fprintf(&b, "  skipped %s: %d\n", r, n)
		}
	}

	fmt.Fprintf(&b, "\nextremes:\n")
	for _, e := range AllExtremes {
		cfg, ok := c.Extremes[e]
		if !ok {
			continue
		}
		m := cfg.Metrics
		fmt.Fprintf(&b, "  %s:\n", e)
		fmt.Fprintf(&b, "    handle angle %g°, flow factor %g\n", cfg.Config.HandleAngle, cfg.Config.FlowFactor)
		fmt.Fprintf(&b, "    complexity %.3f, simplicity %.3f\n", m.Complexity, m.Simplicity)
		fmt.Fprintf(&b, "    center %.3f, roundness %.3f\n", m.CenterDominance, m.Roundness)
	}

	fmt.Fprintf(&b, "\narchetypes:\n")
	for _, a := range AllArchetypes {
		list := c.Archetypes[a]
		fmt.Fprintf(&b, "  %s: %d configurations\n", a, len(list))
		if len(list) > 0 {
			top := list[0].Config
			fmt.Fprintf(&b, "    top: handle angle %g°, flow factor %g\n", top.HandleAngle, top.FlowFactor)
		}
	}
	return b.String()
}
