package simulation

import (
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/barneshut"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	report := StepReport{
		Step:      1,
		Stats:     barneshut.Stats{Integrated: 10, Direct: 30, Approximated: 12, Skipped: 10, Degenerate: 2},
		TotalMass: 42,
		Nodes:     17,
		Depth:     4,
		Duration:  3 * time.Millisecond,
	}
	m.Observe(report)
	m.Observe(report)

	if got := testutil.ToFloat64(m.steps); got != 2 {
		t.Errorf("steps_total = %v; want 2", got)
	}
	if got := testutil.ToFloat64(m.interactions.WithLabelValues("direct")); got != 60 {
		t.Errorf("direct interactions = %v; want 60", got)
	}
	if got := testutil.ToFloat64(m.interactions.WithLabelValues("degenerate")); got != 4 {
		t.Errorf("degenerate interactions = %v; want 4", got)
	}
	if got := testutil.ToFloat64(m.treeDepth); got != 4 {
		t.Errorf("tree_depth = %v; want 4", got)
	}
	if got := testutil.ToFloat64(m.totalMass); got != 42 {
		t.Errorf("total_mass = %v; want 42", got)
	}

	n, err := testutil.GatherAndCount(reg, "nbody_steps_total", "nbody_step_duration_seconds", "nbody_bodies")
	if err != nil {
		t.Fatalf("GatherAndCount error = %v", err)
	}
	if n != 3 {
		t.Errorf("registered series = %d; want 3", n)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.Observe(StepReport{Step: 1})

	// unregistered collectors still count
	u := NewMetrics(nil)
	u.Observe(StepReport{Step: 1})
	if got := testutil.ToFloat64(u.steps); got != 1 {
		t.Errorf("steps_total = %v; want 1", got)
	}
}
