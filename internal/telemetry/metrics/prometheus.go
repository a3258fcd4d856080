package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus returns a fresh registry with build, runtime and process
// collectors, plus any extra collectors given. GC, memory and scheduler
// runtime metrics are included since the web service is mostly waiting on
// the upstream API.
func SetupPrometheus(extraCollectors ...prometheus.Collector) *prometheus.Registry {
	registry := prometheus.NewRegistry()

	goCollector := collectors.NewGoCollector(
		collectors.WithGoCollectorRuntimeMetrics(
			collectors.MetricsGC,
			collectors.MetricsMemory,
			collectors.MetricsScheduler,
		),
	)
	registry.MustRegister(
		collectors.NewBuildInfoCollector(),
		goCollector,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	for _, c := range extraCollectors {
		registry.MustRegister(c)
	}

	return registry
}
