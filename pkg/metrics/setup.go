package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the Prometheus registry and the HTTP server exposing it.
type Metrics struct {
	Server *http.Server

	// Registry is the underlying registry, used by the handler.
	Registry *prometheus.Registry

	// Registerer adds the service label to everything registered through it.
	Registerer prometheus.Registerer

	namespace string
}

// NewMetrics creates the registry and the (not yet started) metrics server.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	var registerer prometheus.Registerer = registry
	if cfg.ServiceName != "" {
		registerer = prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)
	}

	if cfg.EnableDefaultCollectors {
		registerer.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	address := cfg.Address
	if address == "" {
		address = DefaultMetricsAddress
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return &Metrics{
		Server:     &http.Server{Addr: address, Handler: mux},
		Registry:   registry,
		Registerer: registerer,
		namespace:  cfg.Namespace,
	}
}
