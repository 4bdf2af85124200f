package explore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irfansharif/flowangle/internal/engine"
	"github.com/irfansharif/flowangle/internal/gen"
)

func analyze(t *testing.T, cfg gen.Config) Metrics {
	t.Helper()
	res, err := engine.Analyze(cfg)
	require.NoError(t, err)
	return ComputeMetrics(res)
}

func TestMetricsStraightHexagon(t *testing.T) {
	m := analyze(t, gen.Config{Sides: 6, HandleAngle: 90, FlowFactor: 0, CanvasSize: 600})

	diff(t, 6, m.CurveCount)
	diff(t, 0, m.IntersectionCount)
	diff(t, 1, m.RegionCount)
	diff(t, 3*math.Sqrt(3)/2*100*100, m.TotalArea, approx)
	require.Empty(t, m.PetalAreas)
	diff(t, 0.0, m.CenterArea)
	diff(t, 0.0, m.CenterDominance)
	diff(t, 0.0, m.CenterInscribedRatio)
	diff(t, 0.0, m.Regularity)
	diff(t, 0.3/7+0.3, m.Complexity, approx)
	diff(t, 0.0, m.Simplicity)

	// Boundary points on a hexagon sit between the apothem and the
	// circumradius from its center.
	require.Greater(t, m.Roundness, 0.9)
	require.Less(t, m.Roundness, 1.0)
	require.False(t, m.IsDegenerate())
}

func TestMetricsFolded(t *testing.T) {
	m := analyze(t, gen.Config{Sides: 5, HandleAngle: 60, FlowFactor: -1.5, CanvasSize: 600})

	diff(t, 15, m.IntersectionCount)
	diff(t, 6, m.RegionCount)
	require.Len(t, m.PetalAreas, 5)
	require.Greater(t, m.CenterArea, 0.0)

	var petals float64
	for _, a := range m.PetalAreas {
		petals += a
	}
	diff(t, m.CenterArea+petals, m.TotalArea, approx)
	diff(t, m.CenterArea/m.TotalArea, m.CenterDominance, approx)

	// The petals are rotated copies of one another.
	require.InDelta(t, 1, m.Regularity, 1e-9)
	require.InDelta(t, m.LargestPetalArea, m.SmallestPetalArea, 1e-6)
	require.InDelta(t, 0, m.PetalAreaVariance, 1e-6)

	require.InDelta(t, 0.4*15.0/5+0.3*6.0/6, m.Complexity, 1e-9)
	require.InDelta(t, 0.4*m.CenterDominance+0.3*m.Regularity+0.3*m.CenterInscribedRatio, m.Simplicity, 1e-12)
	require.Greater(t, m.CenterInscribedRatio, 0.0)
	require.Less(t, m.CenterInscribedRatio, 1.0)
	require.GreaterOrEqual(t, m.CenterOffset, 0.0)
	require.Less(t, m.CenterOffset, 100.0)
	require.False(t, m.IsDegenerate())
}

func TestCheckDegenerate(t *testing.T) {
	cfg := gen.Config{Sides: 5, HandleAngle: 60, FlowFactor: -1, CanvasSize: 600}
	folding := cfg
	folding.FlowFactor = -2.6

	for _, tc := range []struct {
		name string
		cfg  gen.Config
		m    Metrics
		want DegenerateReason
	}{
		{"usable", cfg, Metrics{TotalArea: 50000, RegionCount: 6, IntersectionCount: 15}, ""},
		{"collapsed", cfg, Metrics{TotalArea: 1000, RegionCount: 6}, Collapsed},
		{"collapsed before no regions", cfg, Metrics{}, Collapsed},
		{"exploded", cfg, Metrics{TotalArea: 720001, RegionCount: 6}, Exploded},
		{"no regions", cfg, Metrics{TotalArea: 50000}, NoRegions},
		{"infinite folding", folding, Metrics{TotalArea: 50000, RegionCount: 6, IntersectionCount: 16}, InfiniteFolding},
		{"folding at the crossing limit", folding, Metrics{TotalArea: 50000, RegionCount: 6, IntersectionCount: 15}, ""},
		{"many crossings with mild flow", cfg, Metrics{TotalArea: 50000, RegionCount: 6, IntersectionCount: 40}, ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			diff(t, tc.want, CheckDegenerate(tc.cfg, tc.m))
		})
	}
}

func TestMetricsSkipsUnknownRegions(t *testing.T) {
	res := engine.Result{
		Config: gen.Config{Sides: 4, HandleAngle: 90, FlowFactor: -1, CanvasSize: 600},
		Regions: []engine.Region{
			nil,
			&engine.Petal{Base: engine.Base{Area: 10}},
			&engine.Petal{Base: engine.Base{ID: 1, Area: 30}},
		},
	}
	var m Metrics
	require.NotPanics(t, func() { m = ComputeMetrics(res) })
	diff(t, 3, m.RegionCount)
	diff(t, 40.0, m.TotalArea)
	diff(t, []float64{10, 30}, m.PetalAreas)
}
