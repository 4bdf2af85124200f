package explore

import (
	"math"
	"sort"

	"github.com/irfansharif/flowangle/internal/gen"
)

// Archetype names a family of visually similar configurations.
type Archetype string

const (
	FractalBloom    Archetype = "fractal_bloom"
	GridAligned     Archetype = "grid_aligned"
	PetalDominant   Archetype = "petal_dominant"
	RoundTransition Archetype = "round_transition"
	Balanced        Archetype = "balanced"
)

// AllArchetypes lists every archetype in report order.
var AllArchetypes = []Archetype{FractalBloom, GridAligned, PetalDominant, RoundTransition, Balanced}

// Extreme names a configuration that maximizes or minimizes one metric.
type Extreme string

const (
	MaxComplexity      Extreme = "max_complexity"
	MaxSimplicity      Extreme = "max_simplicity"
	MaxCenterDominance Extreme = "max_center_dominance"
	MinCenterDominance Extreme = "min_center_dominance"
	MaxRoundness       Extreme = "max_roundness"
	MaxRegularity      Extreme = "max_regularity"
)

// AllExtremes lists every extreme in report order.
var AllExtremes = []Extreme{
	MaxComplexity, MaxSimplicity, MaxCenterDominance, MinCenterDominance, MaxRoundness, MaxRegularity,
}

// archetypeLimit is how many configurations are kept per archetype.
const archetypeLimit = 10

// Configuration is one analyzed, non-degenerate point of the sweep grid.
type Configuration struct {
	Config  gen.Config
	Metrics Metrics
}

// Classification groups the configurations of one sweep.
type Classification struct {
	Sides      int
	Explored   int                           // configurations analyzed, degenerate ones included
	Skipped    map[DegenerateReason]int      // degenerate configurations by reason
	Total      int                           // configurations classified
	Extremes   map[Extreme]Configuration     // absent when nothing was classified
	Archetypes map[Archetype][]Configuration // best first, at most ten each
}

// Classify sorts configurations into extremes and archetypes. Ties keep the
// configuration that comes first in cfgs.
func Classify(sides int, cfgs []Configuration) *Classification {
	c := &Classification{
		Sides:      sides,
		Total:      len(cfgs),
		Skipped:    make(map[DegenerateReason]int),
		Extremes:   make(map[Extreme]Configuration),
		Archetypes: make(map[Archetype][]Configuration),
	}

	better := map[Extreme]func(a, b Metrics) bool{
		MaxComplexity:      func(a, b Metrics) bool { return a.Complexity > b.Complexity },
		MaxSimplicity:      func(a, b Metrics) bool { return a.Simplicity > b.Simplicity },
		MaxCenterDominance: func(a, b Metrics) bool { return a.CenterDominance > b.CenterDominance },
		MinCenterDominance: func(a, b Metrics) bool { return a.CenterDominance < b.CenterDominance },
		MaxRoundness:       func(a, b Metrics) bool { return a.Roundness > b.Roundness },
		MaxRegularity:      func(a, b Metrics) bool { return a.Regularity > b.Regularity },
	}
	for _, cfg := range cfgs {
		for _, e := range AllExtremes {
			cur, ok := c.Extremes[e]
			if !ok || better[e](cfg.Metrics, cur.Metrics) {
				c.Extremes[e] = cfg
			}
		}
		for _, a := range AllArchetypes {
			if matches(a, sides, cfg.Metrics) {
				c.Archetypes[a] = append(c.Archetypes[a], cfg)
			}
		}
	}

	for a, list := range c.Archetypes {
		sort.SliceStable(list, func(i, j int) bool {
			return rank(a, list[i].Metrics) > rank(a, list[j].Metrics)
		})
		if len(list) > archetypeLimit {
			list = list[:archetypeLimit]
		}
		c.Archetypes[a] = list
	}
	return c
}

func matches(a Archetype, sides int, m Metrics) bool {
	n := float64(sides)
	switch a {
	case FractalBloom:
		return m.Complexity > 0.7 && float64(m.IntersectionCount) > 1.5*n
	case GridAligned:
		return m.Simplicity > 0.6 && m.CenterInscribedRatio > 0.5 && m.CenterDominance > 0.3
	case PetalDominant:
		return m.CenterDominance < 0.2 && m.Regularity > 0.8 && len(m.PetalAreas) == sides
	case RoundTransition:
		return m.Roundness > 0.8 && m.Regularity > 0.9
	case Balanced:
		return m.Complexity > 0.3 && m.Complexity < 0.7 &&
			m.CenterDominance > 0.2 && m.CenterDominance < 0.5 &&
			m.Regularity > 0.6
	}
	return false
}

// rank is the archetype's defining metric; higher is better.
func rank(a Archetype, m Metrics) float64 {
	switch a {
	case FractalBloom:
		return m.Complexity
	case GridAligned:
		return m.Simplicity
	case PetalDominant:
		return m.Regularity
	case RoundTransition:
		return m.Roundness
	case Balanced:
		return -(math.Abs(0.5-m.Complexity) + math.Abs(0.35-m.CenterDominance))
	}
	return 0
}

// Discovery is a configuration worth a closer look.
type Discovery struct {
	Configuration
	Kind   string // the Extreme or Archetype it was picked for
	Reason string
}

var extremeReasons = map[Extreme]string{
	MaxComplexity:      "maximum fractal complexity",
	MaxSimplicity:      "maximum simplicity and grid alignment",
	MaxCenterDominance: "largest center region",
	MinCenterDominance: "smallest center region, petal dominant",
	MaxRoundness:       "most circular form",
	MaxRegularity:      "most regular petal distribution",
}

var archetypeReasons = map[Archetype]string{
	FractalBloom:    "full fractal bloom with maximal visual complexity",
	GridAligned:     "grid aligned with a large center",
	PetalDominant:   "petal dominant with a minimal center",
	RoundTransition: "round and featureless",
	Balanced:        "balanced features",
}

// Novel returns every extreme followed by the best configuration of each
// non-empty archetype.
func (c *Classification) Novel() []Discovery {
	var ds []Discovery
	for _, e := range AllExtremes {
		if cfg, ok := c.Extremes[e]; ok {
			ds = append(ds, Discovery{Configuration: cfg, Kind: string(e), Reason: extremeReasons[e]})
		}
	}
	for _, a := range AllArchetypes {
		if list := c.Archetypes[a]; len(list) > 0 {
			ds = append(ds, Discovery{Configuration: list[0], Kind: string(a), Reason: archetypeReasons[a]})
		}
	}
	return ds
}
