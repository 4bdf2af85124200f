package explore

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/irfansharif/flowangle/internal/gen"
)

// Options bound the parameter grid a sweep walks.
type Options struct {
	HandleAngleMin  float64 `toml:"handle_angle_min"`
	HandleAngleMax  float64 `toml:"handle_angle_max"`
	HandleAngleStep float64 `toml:"handle_angle_step"`
	FlowFactorMin   float64 `toml:"flow_factor_min"`
	FlowFactorMax   float64 `toml:"flow_factor_max"`
	FlowFactorStep  float64 `toml:"flow_factor_step"`
	Rotation        float64 `toml:"rotation"`
	CanvasSize      float64 `toml:"canvas_size"`
	Resolution      int     `toml:"resolution"` // curve sampling; gen.DefaultResolution if zero
	Workers         int     `toml:"workers"`    // parallel analyses; GOMAXPROCS if zero
}

// DefaultOptions returns the grid used when nothing else is configured.
func DefaultOptions() Options {
	return Options{
		HandleAngleMin:  10,
		HandleAngleMax:  170,
		HandleAngleStep: 5,
		FlowFactorMin:   -3,
		FlowFactorMax:   1,
		FlowFactorStep:  0.1,
		Rotation:        0,
		CanvasSize:      600,
	}
}

// DecodeOptions reads TOML options from r on top of the defaults. Unknown
// keys are rejected.
func DecodeOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&opts); err != nil {
		return Options{}, fmt.Errorf("decoding options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// LoadOptions reads TOML options from the named file.
func LoadOptions(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, err
	}
	defer f.Close()
	return DecodeOptions(f)
}

// Validate reports whether the options describe a non-empty grid.
func (o Options) Validate() error {
	if !(o.HandleAngleStep > 0) || !(o.FlowFactorStep > 0) {
		return fmt.Errorf("grid steps must be positive (handle angle %g, flow factor %g)", o.HandleAngleStep, o.FlowFactorStep)
	}
	if !(o.HandleAngleMin > 0) || !(o.HandleAngleMax < 180) {
		return fmt.Errorf("handle angles must lie strictly between 0 and 180 degrees: [%g, %g]", o.HandleAngleMin, o.HandleAngleMax)
	}
	if o.HandleAngleMin > o.HandleAngleMax {
		return fmt.Errorf("handle angle range is empty: [%g, %g]", o.HandleAngleMin, o.HandleAngleMax)
	}
	if o.FlowFactorMin > o.FlowFactorMax {
		return fmt.Errorf("flow factor range is empty: [%g, %g]", o.FlowFactorMin, o.FlowFactorMax)
	}
	if o.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", o.Workers)
	}
	return nil
}

// steps returns min, min+step, ... up to and including max, each rounded to
// the given number of decimals. Stepping is by index so floating point drift
// does not add or drop the last value.
func steps(lo, hi, step float64, decimals int) []float64 {
	scale := math.Pow(10, float64(decimals))
	n := int(math.Floor((hi-lo)/step+1e-9)) + 1
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = math.Round((lo+float64(i)*step)*scale) / scale
	}
	return vals
}

// Configs returns every configuration in the grid for the given side count,
// handle angle major, flow factor minor.
func (o Options) Configs(sides int) []gen.Config {
	var cfgs []gen.Config
	for _, angle := range steps(o.HandleAngleMin, o.HandleAngleMax, o.HandleAngleStep, 6) {
		for _, flow := range steps(o.FlowFactorMin, o.FlowFactorMax, o.FlowFactorStep, 2) {
			cfgs = append(cfgs, gen.Config{
				Sides:       sides,
				HandleAngle: angle,
				FlowFactor:  flow,
				Rotation:    o.Rotation,
				CanvasSize:  o.CanvasSize,
				Resolution:  o.Resolution,
			})
		}
	}
	return cfgs
}
