// Package metrics counts model work in a private Prometheus registry.
//
// The registry is never served; the CLI dumps it in the text exposition
// format with WriteTextfile (node-exporter textfile collector style).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/patriarchy/equilibrium"
	"github.com/katalvlaran/patriarchy/household"
)

const namespace = "patriarchy"

// Run outcome label values.
const (
	OutcomeConverged = "converged"
	OutcomeExhausted = "exhausted"
)

// Recorder implements equilibrium.Recorder on top of Prometheus collectors.
// It is safe for concurrent use.
type Recorder struct {
	registry    *prometheus.Registry
	households  *prometheus.CounterVec
	runs        *prometheus.CounterVec
	generations prometheus.Histogram
	batches     *prometheus.CounterVec
}

var _ equilibrium.Recorder = (*Recorder)(nil)

// New returns a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		households: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "household",
			Name:      "solutions_total",
			Help:      "Solved households by solution kind.",
		}, []string{"kind"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "equilibrium",
			Name:      "runs_total",
			Help:      "Finished equilibrium searches by outcome.",
		}, []string{"outcome"}),
		generations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "equilibrium",
			Name:      "generations",
			Help:      "Generations used by an equilibrium search.",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 9),
		}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "montecarlo",
			Name:      "batches_total",
			Help:      "Monte Carlo batches by verdict.",
		}, []string{"verdict"}),
	}
	r.registry.MustRegister(r.households, r.runs, r.generations, r.batches)

	return r
}

// Registry exposes the underlying registry as a Gatherer.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// ObserveHousehold counts o under its solution kind.
func (r *Recorder) ObserveHousehold(o household.Outcome) {
	r.households.WithLabelValues(o.Kind.String()).Inc()
}

// ObserveRun counts res by outcome and records its generations.
func (r *Recorder) ObserveRun(res equilibrium.Result) {
	outcome := OutcomeExhausted
	if res.Converged {
		outcome = OutcomeConverged
	}
	r.runs.WithLabelValues(outcome).Inc()
	r.generations.Observe(float64(res.Iterations))
}

// ObserveBatch counts b by verdict.
func (r *Recorder) ObserveBatch(b equilibrium.Batch) {
	r.batches.WithLabelValues(string(b.Verdict)).Inc()
}

// WriteTextfile writes the registry to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
