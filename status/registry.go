// Package status exports gameplay telemetry as Prometheus metrics
package status

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name
const Namespace = "stacker"

// Registry counts gameplay transitions
// It implements tower.Recorder; counters are cumulative across runs, gauges describe the current run
type Registry struct {
	spawned   prometheus.Counter
	placed    *prometheus.CounterVec
	failed    prometheus.Counter
	cascade   prometheus.Counter
	restarts  prometheus.Counter
	height    prometheus.Gauge
	best      prometheus.Gauge
	placeDiff prometheus.Histogram

	bestHeight int
}

// NewRegistry creates the metrics and registers them with reg
// Pass prometheus.NewRegistry() in tests to avoid the global default registerer
func NewRegistry(reg prometheus.Registerer) (*Registry, error) {
	r := &Registry{
		spawned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "blocks_spawned_total",
			Help:      "Blocks activated, including base blocks.",
		}),
		placed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "blocks_placed_total",
			Help:      "Successful placements by outcome.",
		}, []string{"outcome"}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "placements_failed_total",
			Help:      "Placements that ended a run.",
		}),
		cascade: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "cascade_animations_total",
			Help:      "Grow-then-shrink animations issued by perfect moves.",
		}),
		restarts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_started_total",
			Help:      "Runs started, including the first one.",
		}),
		height: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "tower_height_blocks",
			Help:      "Settled blocks in the current run, base included.",
		}),
		best: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "tower_best_height_blocks",
			Help:      "Highest settled tower since process start.",
		}),
		placeDiff: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "placement_diff",
			Help:      "Signed footprint difference against the previous block.",
			Buckets:   []float64{-2, -1, -0.5, -0.25, 0, 0.1, 0.25, 0.5, 1, 2},
		}),
	}

	for _, c := range []prometheus.Collector{
		r.spawned, r.placed, r.failed, r.cascade, r.restarts, r.height, r.best, r.placeDiff,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) Spawned(int) {
	r.spawned.Inc()
}

func (r *Registry) Placed(index int, diff float64, perfect bool) {
	outcome := "plain"
	if perfect {
		outcome = "perfect"
	}
	r.placed.WithLabelValues(outcome).Inc()
	r.placeDiff.Observe(diff)

	h := index + 1
	r.height.Set(float64(h))
	if h > r.bestHeight {
		r.bestHeight = h
		r.best.Set(float64(h))
	}
}

func (r *Registry) Failed(_ int, diff float64) {
	r.failed.Inc()
	r.placeDiff.Observe(diff)
}

func (r *Registry) CascadeIssued(int) {
	r.cascade.Inc()
}

func (r *Registry) Restarted() {
	r.restarts.Inc()
	r.height.Set(1)
	if r.bestHeight < 1 {
		r.bestHeight = 1
		r.best.Set(1)
	}
}
