package cloud

import (
	"math"

	"github.com/charmbracelet/log"
)

const (
	// DefaultSpiralRadius is the involute base radius in layout units.
	DefaultSpiralRadius = 1.0

	// DefaultSpiralStep is the angle increment between spiral candidates.
	DefaultSpiralStep = math.Pi / 20

	// DefaultFirstPressStep is the step length of the diagonal compaction pass.
	DefaultFirstPressStep = 2.0

	// DefaultPressStep is the step length of the axis-aligned compaction passes.
	DefaultPressStep = 1.0

	// DefaultMaxSpiralSteps bounds the spiral search. With the default radius
	// and angle step it covers offsets of roughly 160,000 units.
	DefaultMaxSpiralSteps = 1 << 20

	// DefaultMaxPressSteps bounds a single compaction pass.
	DefaultMaxPressSteps = 1 << 20
)

// Options holds the placement parameters of a [Layouter].
type Options struct {
	SpiralRadius   float64
	SpiralStep     float64
	FirstPressStep float64
	PressStep      float64
	MaxSpiralSteps int
	MaxPressSteps  int

	// Logger receives one debug line per placement. Nil disables logging.
	Logger *log.Logger
}

// DefaultOptions returns the parameters used when no options are given.
func DefaultOptions() Options {
	return Options{
		SpiralRadius:   DefaultSpiralRadius,
		SpiralStep:     DefaultSpiralStep,
		FirstPressStep: DefaultFirstPressStep,
		PressStep:      DefaultPressStep,
		MaxSpiralSteps: DefaultMaxSpiralSteps,
		MaxPressSteps:  DefaultMaxPressSteps,
	}
}

// Option configures a [Layouter].
type Option func(*Options)

// WithOptions replaces all parameters at once. Non-positive fields fall back
// to their defaults.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

// WithSpiral sets the involute radius and the angle step in radians.
func WithSpiral(radius, step float64) Option {
	return func(o *Options) {
		o.SpiralRadius = radius
		o.SpiralStep = step
	}
}

// WithPressSteps sets the step length of the diagonal pass and of the two
// axis-aligned passes.
func WithPressSteps(first, rest float64) Option {
	return func(o *Options) {
		o.FirstPressStep = first
		o.PressStep = rest
	}
}

// WithMaxSpiralSteps sets the spiral search ceiling.
func WithMaxSpiralSteps(n int) Option {
	return func(o *Options) { o.MaxSpiralSteps = n }
}

// WithMaxPressSteps sets the ceiling of a single compaction pass.
func WithMaxPressSteps(n int) Option {
	return func(o *Options) { o.MaxPressSteps = n }
}

// WithLogger enables debug logging of placement statistics.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// sanitize replaces unusable values with defaults.
func (o *Options) sanitize() {
	d := DefaultOptions()
	if !positive(o.SpiralRadius) {
		o.SpiralRadius = d.SpiralRadius
	}
	if !positive(o.SpiralStep) {
		o.SpiralStep = d.SpiralStep
	}
	if !positive(o.FirstPressStep) {
		o.FirstPressStep = d.FirstPressStep
	}
	if !positive(o.PressStep) {
		o.PressStep = d.PressStep
	}
	if o.MaxSpiralSteps <= 0 {
		o.MaxSpiralSteps = d.MaxSpiralSteps
	}
	if o.MaxPressSteps <= 0 {
		o.MaxPressSteps = d.MaxPressSteps
	}
}

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
