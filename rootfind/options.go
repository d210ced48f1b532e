package rootfind

import "math"

// Defaults.
const (
	// DefaultXTol is the absolute x tolerance.
	DefaultXTol = 2e-12

	// DefaultRTol is the relative x tolerance, four float64 machine epsilons.
	DefaultRTol = 4 * 0x1p-52

	// DefaultMaxIter caps function evaluations after the two endpoint calls.
	DefaultMaxIter = 100
)

// Option configures a solve.
type Option func(*options)

type options struct {
	xtol    float64
	rtol    float64
	maxIter int
}

// WithXTol sets the absolute tolerance. Panics if xtol is not positive and finite.
func WithXTol(xtol float64) Option {
	if !(xtol > 0) || math.IsInf(xtol, 0) {
		panic("rootfind: WithXTol requires a positive finite tolerance")
	}
	return func(o *options) { o.xtol = xtol }
}

// WithRTol sets the relative tolerance. Panics if rtol is negative or not finite.
func WithRTol(rtol float64) Option {
	if !(rtol >= 0) || math.IsInf(rtol, 0) {
		panic("rootfind: WithRTol requires a non-negative finite tolerance")
	}
	return func(o *options) { o.rtol = rtol }
}

// WithMaxIter sets the iteration cap. Panics if n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic("rootfind: WithMaxIter requires n >= 1")
	}
	return func(o *options) { o.maxIter = n }
}

func gatherOptions(user ...Option) options {
	o := options{
		xtol:    DefaultXTol,
		rtol:    DefaultRTol,
		maxIter: DefaultMaxIter,
	}
	for _, set := range user {
		set(&o)
	}
	return o
}
