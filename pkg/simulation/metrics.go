package simulation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exports step statistics to Prometheus.
type Metrics struct {
	steps        prometheus.Counter
	stepDuration prometheus.Histogram
	interactions *prometheus.CounterVec
	bodies       prometheus.Gauge
	treeNodes    prometheus.Gauge
	treeDepth    prometheus.Gauge
	totalMass    prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		steps: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "nbody",
			Name:      "steps_total",
			Help:      "Number of simulation steps completed.",
		}),
		stepDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nbody",
			Name:      "step_duration_seconds",
			Help:      "Time spent building, aggregating and evaluating one step.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
		}),
		interactions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nbody",
			Name:      "interactions_total",
			Help:      "Force interactions by outcome.",
		}, []string{"kind"}),
		bodies: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "nbody",
			Name:      "bodies",
			Help:      "Number of simulated bodies.",
		}),
		treeNodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "nbody",
			Name:      "tree_nodes",
			Help:      "Nodes in the last quadtree.",
		}),
		treeDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "nbody",
			Name:      "tree_depth",
			Help:      "Depth of the last quadtree.",
		}),
		totalMass: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "nbody",
			Name:      "total_mass",
			Help:      "Aggregated root mass of the last step.",
		}),
	}
}

// Observe records one step. It is a no-op on a nil receiver.
func (m *Metrics) Observe(r StepReport) {
	if m == nil {
		return
	}
	m.steps.Inc()
	m.stepDuration.Observe(r.Duration.Seconds())
	m.interactions.WithLabelValues("direct").Add(float64(r.Stats.Direct))
	m.interactions.WithLabelValues("approximated").Add(float64(r.Stats.Approximated))
	m.interactions.WithLabelValues("skipped").Add(float64(r.Stats.Skipped))
	m.interactions.WithLabelValues("degenerate").Add(float64(r.Stats.Degenerate))
	m.bodies.Set(float64(r.Stats.Integrated))
	m.treeNodes.Set(float64(r.Nodes))
	m.treeDepth.Set(float64(r.Depth))
	m.totalMass.Set(r.TotalMass)
}
