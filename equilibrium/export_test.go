package equilibrium

// StreamStartTestOnly returns the random start of run `run` under seed.
func StreamStartTestOnly(seed int64, run int) (float64, float64) {
	return randomStart(streamRNG(seed, run))
}

// SummarizeTestOnly exposes the batch reducer.
func SummarizeTestOnly(runs []RunSummary, horizon int) Batch {
	bo, _ := BatchOptions{Horizon: horizon}.withDefaults()
	return summarize("test", runs, bo)
}
