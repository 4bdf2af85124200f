package explore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irfansharif/flowangle/internal/gen"
)

func config(angle, flow float64, m Metrics) Configuration {
	return Configuration{
		Config:  gen.Config{Sides: 4, HandleAngle: angle, FlowFactor: flow, CanvasSize: 600},
		Metrics: m,
	}
}

func angles(cfgs []Configuration) []float64 {
	var out []float64
	for _, c := range cfgs {
		out = append(out, c.Config.HandleAngle)
	}
	return out
}

func TestClassifyArchetypes(t *testing.T) {
	bloom := Metrics{Complexity: 0.9, IntersectionCount: 12}
	grid := Metrics{Simplicity: 0.7, CenterInscribedRatio: 0.6, CenterDominance: 0.4}
	petal := Metrics{CenterDominance: 0.1, Regularity: 0.85, PetalAreas: []float64{1, 1, 1, 1}}
	round := Metrics{Roundness: 0.9, Regularity: 0.95, CenterDominance: 0.6}
	balanced := Metrics{Complexity: 0.5, CenterDominance: 0.35, Regularity: 0.7}
	plain := Metrics{Complexity: 0.1}

	c := Classify(4, []Configuration{
		config(10, 0, bloom),
		config(20, 0, grid),
		config(30, 0, petal),
		config(40, 0, round),
		config(50, 0, balanced),
		config(60, 0, plain),
	})
	diff(t, 4, c.Sides)
	diff(t, 6, c.Total)

	diff(t, []float64{10}, angles(c.Archetypes[FractalBloom]))
	diff(t, []float64{20}, angles(c.Archetypes[GridAligned]))
	diff(t, []float64{30}, angles(c.Archetypes[PetalDominant]))
	diff(t, []float64{40}, angles(c.Archetypes[RoundTransition]))
	diff(t, []float64{50}, angles(c.Archetypes[Balanced]))
}

func TestClassifyArchetypeBoundaries(t *testing.T) {
	c := Classify(4, []Configuration{
		// Six crossings on four sides is exactly 1.5n, not more.
		config(10, 0, Metrics{Complexity: 0.9, IntersectionCount: 6}),
		// Three petals on four sides.
		config(20, 0, Metrics{CenterDominance: 0.1, Regularity: 0.85, PetalAreas: []float64{1, 1, 1}}),
		// Complexity bounds are exclusive.
		config(30, 0, Metrics{Complexity: 0.7, CenterDominance: 0.35, Regularity: 0.7}),
	})
	require.Empty(t, c.Archetypes[FractalBloom])
	require.Empty(t, c.Archetypes[PetalDominant])
	require.Empty(t, c.Archetypes[Balanced])
}

func TestClassifyOrderAndLimit(t *testing.T) {
	var cfgs []Configuration
	for i := range 15 {
		cfgs = append(cfgs, config(float64(10+i), 0, Metrics{Complexity: 0.71 + 0.01*float64(i%5), IntersectionCount: 10}))
	}
	c := Classify(4, cfgs)

	// Highest complexity first, ties in input order, ten kept.
	diff(t, []float64{14, 19, 24, 13, 18, 23, 12, 17, 22, 11}, angles(c.Archetypes[FractalBloom]))

	c = Classify(4, []Configuration{
		config(10, 0, Metrics{Complexity: 0.6, CenterDominance: 0.3, Regularity: 0.7}),
		config(20, 0, Metrics{Complexity: 0.5, CenterDominance: 0.35, Regularity: 0.7}),
		config(30, 0, Metrics{Complexity: 0.45, CenterDominance: 0.4, Regularity: 0.7}),
	})
	// Closest to complexity 0.5 and dominance 0.35 first.
	diff(t, []float64{20, 30, 10}, angles(c.Archetypes[Balanced]))
}

func TestClassifyExtremes(t *testing.T) {
	c := Classify(4, []Configuration{
		config(10, 0, Metrics{Complexity: 0.5, Simplicity: 0.2, CenterDominance: 0.3, Roundness: 0.8, Regularity: 0.9}),
		config(20, 0, Metrics{Complexity: 0.9, Simplicity: 0.2, CenterDominance: 0.1, Roundness: 0.7, Regularity: 0.9}),
		config(30, 0, Metrics{Complexity: 0.1, Simplicity: 0.8, CenterDominance: 0.6, Roundness: 0.8, Regularity: 0.5}),
	})
	got := make(map[Extreme]float64)
	for e, cfg := range c.Extremes {
		got[e] = cfg.Config.HandleAngle
	}
	diff(t, map[Extreme]float64{
		MaxComplexity:      20,
		MaxSimplicity:      30,
		MaxCenterDominance: 30,
		MinCenterDominance: 20,
		MaxRoundness:       10, // tie with 30, first wins
		MaxRegularity:      10, // tie with 20, first wins
	}, got)
}

func TestClassifyEmpty(t *testing.T) {
	c := Classify(5, nil)
	diff(t, 0, c.Total)
	require.Empty(t, c.Extremes)
	require.Empty(t, c.Archetypes)
	require.Empty(t, c.Novel())
}

func TestNovel(t *testing.T) {
	bloom := config(10, -2, Metrics{Complexity: 0.9, IntersectionCount: 12})
	c := Classify(4, []Configuration{bloom})

	novel := c.Novel()
	require.Len(t, novel, len(AllExtremes)+1)
	for i, e := range AllExtremes {
		diff(t, string(e), novel[i].Kind)
		require.NotEmpty(t, novel[i].Reason)
	}
	last := novel[len(novel)-1]
	diff(t, string(FractalBloom), last.Kind)
	diff(t, bloom, last.Configuration)
}
