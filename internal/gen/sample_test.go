package gen

import (
	"math/rand"
	"testing"

	"github.com/irfansharif/flowangle/internal/geom"
)

func TestSampleCubicEndpoints(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pt := func() geom.Point { return geom.MakePoint(rng.Float64()*1000-500, rng.Float64()*1000-500) }
	for range 100 {
		p0, p1, p2, p3 := pt(), pt(), pt(), pt()
		samples := SampleCubic(p0, p1, p2, p3, 100)
		if len(samples) != 101 {
			t.Fatalf("got %d samples, want 101", len(samples))
		}
		first, last := samples[0], samples[len(samples)-1]
		if geom.Dist(first.Point, p0) > 1e-9 || first.T != 0 {
			t.Errorf("first sample %v (t=%g), want %v at t=0", first.Point, first.T, p0)
		}
		if geom.Dist(last.Point, p3) > 1e-9 || last.T != 1 {
			t.Errorf("last sample %v (t=%g), want %v at t=1", last.Point, last.T, p3)
		}
		for i := 1; i < len(samples); i++ {
			if samples[i].T <= samples[i-1].T {
				t.Fatalf("parameters not increasing at %d", i)
			}
		}
	}
}

func TestEvalCubic(t *testing.T) {
	// y = x^2 on [0, 1].
	p0, p1, p2, p3 := geom.MakePoint(0, 0), geom.MakePoint(1.0/3, 0), geom.MakePoint(2.0/3, 1.0/3), geom.MakePoint(1, 1)
	for i := range 11 {
		x := float64(i) / 10
		diff(t, geom.MakePoint(x, x*x), EvalCubic(p0, p1, p2, p3, x), approx)
	}
}

func TestSampleCubicStraight(t *testing.T) {
	// Control points on the endpoints: every sample lies on the chord.
	a, b := geom.MakePoint(0, 0), geom.MakePoint(10, 5)
	for _, s := range SampleCubic(a, a, b, b, 10) {
		if o := geom.Orient(a, b, s.Point); o > 1e-9 || o < -1e-9 {
			t.Errorf("sample %v off the chord (cross %g)", s.Point, o)
		}
	}
	diff(t, 2, len(SampleCubic(a, a, b, b, 0)))
}
