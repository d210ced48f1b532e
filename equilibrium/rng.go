package equilibrium

import "math/rand"

// defaultRNGSeed replaces a zero seed so that the zero BatchOptions is
// still reproducible.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream id with the SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// streamRNG returns the independent stream of run `run` of a batch seeded
// with seed. Streams depend only on (seed, run), never on scheduling order.
func streamRNG(seed int64, run int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(run))))
}

// randomStart draws a uniform initial guess in [0, 1)².
func randomStart(r *rand.Rand) (pm, pf float64) {
	pm = r.Float64()
	pf = r.Float64()
	return pm, pf
}
