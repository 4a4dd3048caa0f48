// Package metrics records statistics about searches as Prometheus metrics.
//
// A CLI run is short-lived, so metrics are not served over HTTP: they are written
// in the Prometheus text format to a file, to be picked by node_exporter's textfile
// collector or any other tool reading that format.
package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/crillab/countdown/solver"
)

const namespace = "countdown"

// Result labels for runs.
const (
	ResultComplete    = "complete"
	ResultInterrupted = "interrupted"
)

// A Recorder holds the metrics of searches in its own registry.
type Recorder struct {
	registry *prometheus.Registry

	runs      *prometheus.CounterVec
	evaluated prometheus.Counter
	solutions prometheus.Counter
	duration  prometheus.Histogram
}

// NewRecorder returns a recorder with all its metrics registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total searches, by result",
		}, []string{"result"}),
		evaluated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluated_total",
			Help:      "Total operator applications that produced a term",
		}),
		solutions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solutions_total",
			Help:      "Total distinct solutions found",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Search duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8), // 1ms to ~16s
		}),
	}
}

// Observe records the result of the search made by s, which took elapsed.
func (r *Recorder) Observe(s *solver.Solver, elapsed time.Duration) {
	result := ResultComplete
	if s.Interrupted() {
		result = ResultInterrupted
	}
	r.runs.WithLabelValues(result).Inc()
	r.evaluated.Add(float64(s.Stats.NbEvaluated))
	r.solutions.Add(float64(len(s.Solutions())))
	r.duration.Observe(elapsed.Seconds())
}

// Gatherer returns the registry holding the metrics.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the metrics to path, in the Prometheus text format.
// The file is written atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.Wrapf(err, "could not write metrics to %q", path)
	}
	return nil
}
