// Package metrics holds the Prometheus instruments of the generator.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"git.solver4all.com/azaryc2s/cvrp"
)

// Registry owns a private Prometheus registry and the generator metrics.
type Registry struct {
	registry *prometheus.Registry

	InstancesTotal     *prometheus.CounterVec
	GenerationDuration prometheus.Histogram
	CandidatesTotal    prometheus.Counter
	RejectionsTotal    prometheus.Counter
	CollisionsTotal    prometheus.Counter
	FleetSize          prometheus.Histogram
}

func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.InstancesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "cvrpgen_instances_total",
			Help: "Generated instances by outcome",
		},
		[]string{"status"},
	)

	r.GenerationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cvrpgen_generation_duration_seconds",
			Help:    "Time spent generating one instance",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
	)

	r.CandidatesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "cvrpgen_sampler_candidates_total",
			Help: "Candidates drawn by the clustered accept-reject sampler",
		},
	)

	r.RejectionsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "cvrpgen_sampler_rejections_total",
			Help: "Candidates rejected by the clustered accept-reject sampler",
		},
	)

	r.CollisionsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "cvrpgen_sampler_collisions_total",
			Help: "Coordinate draws redrawn because the cell was taken",
		},
	)

	r.FleetSize = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cvrpgen_fleet_size",
			Help:    "Minimum number of vehicles of generated instances",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	return r
}

// Gatherer exposes the underlying registry for handlers and exporters.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// RecordGeneration records one generation. st is ignored when err is set.
func (r *Registry) RecordGeneration(st cvrp.Stats, duration time.Duration, err error) {
	r.GenerationDuration.Observe(duration.Seconds())
	if err != nil {
		r.InstancesTotal.WithLabelValues("error").Inc()
		return
	}
	r.InstancesTotal.WithLabelValues("ok").Inc()
	r.CandidatesTotal.Add(float64(st.Candidates))
	r.RejectionsTotal.Add(float64(st.Rejections))
	r.CollisionsTotal.Add(float64(st.Collisions))
	r.FleetSize.Observe(float64(st.Vehicles))
}

// WriteTextfile dumps all metrics in the text exposition format, for the
// node exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
