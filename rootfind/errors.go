package rootfind

import "errors"

var (
	// ErrBadInterval: lo ≥ hi or an endpoint is NaN/±Inf.
	ErrBadInterval = errors.New("rootfind: invalid interval")

	// ErrNoBracket: f(lo) and f(hi) have the same strict sign.
	ErrNoBracket = errors.New("rootfind: f(lo) and f(hi) must have different signs")

	// ErrNotFinite: f returned NaN or ±Inf.
	ErrNotFinite = errors.New("rootfind: function value is not finite")

	// ErrMaxIterations: the tolerance was not met within the iteration cap.
	// The best iterate is still returned alongside it.
	ErrMaxIterations = errors.New("rootfind: maximum iterations exceeded")
)
