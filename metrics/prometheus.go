package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvbnb/knapsack"
)

// Outcome label values for knapsack_solves_total.
const (
	OutcomeOptimal  = "optimal"
	OutcomeLimit    = "limit"
	OutcomeCanceled = "canceled"
	OutcomeError    = "error"
)

var _ knapsack.Recorder = (*Collector)(nil)

// Collector records knapsack solves as Prometheus series.
// All methods are safe for concurrent use.
type Collector struct {
	solves       *prometheus.CounterVec
	created      prometheus.Counter
	expanded     prometheus.Counter
	pruned       prometheus.Counter
	discarded    prometheus.Counter
	incumbents   prometheus.Counter
	duration     prometheus.Histogram
	frontierPeak prometheus.Gauge
}

// NewCollector builds a Collector and registers its series on reg under namespace.
// A nil reg skips registration (useful when the caller registers manually).
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "knapsack",
			Name:      "solves_total",
			Help:      "Knapsack solves by outcome.",
		}, []string{"outcome"}),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "knapsack",
			Name:      "nodes_created_total",
			Help:      "Search nodes bounded, root included.",
		}),
		expanded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "knapsack",
			Name:      "nodes_expanded_total",
			Help:      "Search nodes whose children were generated.",
		}),
		pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "knapsack",
			Name:      "nodes_pruned_total",
			Help:      "Live nodes removed after an incumbent update.",
		}),
		discarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "knapsack",
			Name:      "nodes_discarded_total",
			Help:      "Dominated nodes dropped on extraction.",
		}),
		incumbents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "knapsack",
			Name:      "incumbent_updates_total",
			Help:      "Incumbent replacements.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "knapsack",
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock duration of a solve.",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
		}),
		frontierPeak: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "knapsack",
			Name:      "frontier_peak_nodes",
			Help:      "Peak number of live nodes in the most recent solve.",
		}),
	}

	if reg == nil {
		return c, nil
	}
	for _, col := range c.collectors() {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordSolve implements knapsack.Recorder.
func (c *Collector) RecordSolve(stats knapsack.Stats, duration time.Duration, err error) {
	c.solves.WithLabelValues(outcome(err)).Inc()
	c.created.Add(float64(stats.Created))
	c.expanded.Add(float64(stats.Expanded))
	c.pruned.Add(float64(stats.Pruned))
	c.discarded.Add(float64(stats.Discarded))
	c.incumbents.Add(float64(stats.IncumbentUpdates))
	c.duration.Observe(duration.Seconds())
	c.frontierPeak.Set(float64(stats.MaxFrontier))
}

// Describe implements prometheus.Collector so a Collector can also be
// registered as a single unit.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, col := range c.collectors() {
		col.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, col := range c.collectors() {
		col.Collect(ch)
	}
}

func (c *Collector) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		c.solves, c.created, c.expanded, c.pruned,
		c.discarded, c.incumbents, c.duration, c.frontierPeak,
	}
}

// outcome maps a solve error to a label value.
func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOptimal
	case errors.Is(err, knapsack.ErrTimeLimit), errors.Is(err, knapsack.ErrExpansionLimit):
		return OutcomeLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	default:
		return OutcomeError
	}
}
