package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"git.solver4all.com/azaryc2s/cvrp"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	if err := c.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r.InstancesTotal == nil || r.GenerationDuration == nil || r.FleetSize == nil {
		t.Fatal("metrics not initialized")
	}
	if r.Gatherer() == nil {
		t.Fatal("Gatherer() returned nil")
	}
}

func TestRecordGeneration(t *testing.T) {
	r := NewRegistry()

	r.RecordGeneration(cvrp.Stats{Candidates: 10, Rejections: 7, Collisions: 2, Vehicles: 5}, 3*time.Millisecond, nil)
	r.RecordGeneration(cvrp.Stats{Candidates: 4, Rejections: 1, Vehicles: 9}, time.Millisecond, nil)
	r.RecordGeneration(cvrp.Stats{Candidates: 100}, time.Millisecond, errors.New("too many seeds"))

	ok, err := r.InstancesTotal.GetMetricWithLabelValues("ok")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if v := counterValue(t, ok); v != 2 {
		t.Errorf("ok counter = %v, want 2", v)
	}
	failed, err := r.InstancesTotal.GetMetricWithLabelValues("error")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if v := counterValue(t, failed); v != 1 {
		t.Errorf("error counter = %v, want 1", v)
	}

	if v := counterValue(t, r.CandidatesTotal); v != 14 {
		t.Errorf("candidates = %v, want 14", v)
	}
	if v := counterValue(t, r.RejectionsTotal); v != 8 {
		t.Errorf("rejections = %v, want 8", v)
	}
	if v := counterValue(t, r.CollisionsTotal); v != 2 {
		t.Errorf("collisions = %v, want 2", v)
	}

	var metric dto.Metric
	if err := r.FleetSize.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if got := metric.Histogram.GetSampleCount(); got != 2 {
		t.Errorf("fleet samples = %v, want 2", got)
	}
	if got := metric.Histogram.GetSampleSum(); got != 14 {
		t.Errorf("fleet sum = %v, want 14", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.RecordGeneration(cvrp.Stats{Vehicles: 3}, time.Millisecond, nil)

	path := filepath.Join(t.TempDir(), "cvrpgen.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, name := range []string{
		`cvrpgen_instances_total{status="ok"} 1`,
		"cvrpgen_generation_duration_seconds_count 1",
		"cvrpgen_fleet_size_sum 3",
	} {
		if !strings.Contains(text, name) {
			t.Errorf("textfile missing %q", name)
		}
	}
}
