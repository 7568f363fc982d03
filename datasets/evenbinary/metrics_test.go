package evenbinary

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	src := &fixedSource{values: []int{1, 4, 5}}
	if _, err := (Generator{Rand: src, BatchSize: 3, Metrics: m}).Generate(12); err != nil {
		t.Fatal(err)
	}
	if got := testutil.ToFloat64(m.batches); got != 1 {
		t.Errorf("batches_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.samples); got != 3 {
		t.Errorf("samples_total = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.overflow); got != 2 {
		t.Errorf("overflow_total = %v, want 2", got)
	}

	src = &fixedSource{values: []int{4}}
	if _, err := (Generator{Rand: src, BatchSize: 3, Strict: true, Metrics: m}).Generate(12); err == nil {
		t.Fatal("expected strict overflow")
	}
	if got := testutil.ToFloat64(m.batches); got != 1 {
		t.Errorf("rejected batch counted: batches_total = %v", got)
	}
	if got := testutil.ToFloat64(m.overflow); got != 3 {
		t.Errorf("overflow_total = %v, want 3", got)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.observe(4, 1)
}
