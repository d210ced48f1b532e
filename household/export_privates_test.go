package household

// Test bridge: exposes the two solver kernels to household_test so that each
// regime can be checked in isolation from the Solve dispatch.

// SolveAnalyticalTestOnly runs the closed-form kernel on raw wages.
func SolveAnalyticalTestOnly(wx, wy, gamma float64) Outcome { return solveAnalytical(wx, wy, gamma) }

// SolveCornerTestOnly runs the bounded corner kernel on raw wages.
func SolveCornerTestOnly(wx, wy, gamma float64) Outcome { return solveCorner(wx, wy, gamma) }

// CornerStartTestOnly returns a copy of the fixed corner start point.
func CornerStartTestOnly() [4]float64 { return cornerStart }
