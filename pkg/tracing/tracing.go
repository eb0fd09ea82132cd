package tracing

import (
	"fmt"
	"net/http"

	"contrib.go.opencensus.io/exporter/jaeger"
	"contrib.go.opencensus.io/exporter/prometheus"
	"contrib.go.opencensus.io/exporter/zipkin"
	"contrib.go.opencensus.io/integrations/ocsql"
	zipkinhttp "github.com/openzipkin/zipkin-go/reporter/http"
	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/trace"

	"github.com/recordhub/recordhub/config"
	"github.com/recordhub/recordhub/pkg/logger"
)

// Exporters holds what InitTracing started so it can be shut down
type Exporters struct {
	// MetricsServer serves /metrics when the prometheus exporter runs on its own port
	MetricsServer *http.Server
}

// InitTracing configures OpenCensus sampling, trace and metrics exporters.
// It is a no-op when tracing is disabled.
func InitTracing(cfg *config.TracingConfig, log logger.Logger) (*Exporters, error) {
	exporters := &Exporters{}
	if !cfg.Enabled {
		return exporters, nil
	}

	trace.ApplyConfig(trace.Config{
		DefaultSampler: trace.ProbabilitySampler(cfg.SamplingProbability),
	})

	if err := initTraceExporter(cfg, log); err != nil {
		return nil, err
	}

	server, err := initMetricsExporter(cfg, log)
	if err != nil {
		return nil, err
	}
	exporters.MetricsServer = server

	if err := view.Register(ochttp.DefaultServerViews...); err != nil {
		return nil, fmt.Errorf("failed to register HTTP server views: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"trace_exporter":   cfg.TraceExporter,
		"metrics_exporter": cfg.MetricsExporter,
	}).Info("OpenCensus initialized")
	return exporters, nil
}

func initTraceExporter(cfg *config.TracingConfig, log logger.Logger) error {
	switch cfg.TraceExporter {
	case "jaeger":
		if cfg.JaegerEndpoint == "" {
			return fmt.Errorf("jaeger endpoint is required for jaeger exporter")
		}
		je, err := jaeger.NewExporter(jaeger.Options{
			CollectorEndpoint: cfg.JaegerEndpoint,
			ServiceName:       cfg.ServiceName,
			Process:           jaeger.Process{ServiceName: cfg.ServiceName},
		})
		if err != nil {
			return fmt.Errorf("failed to create jaeger exporter: %w", err)
		}
		trace.RegisterExporter(je)
		log.WithField("endpoint", cfg.JaegerEndpoint).Info("Jaeger exporter initialized")
		return nil
	case "zipkin":
		if cfg.ZipkinEndpoint == "" {
			return fmt.Errorf("zipkin endpoint is required for zipkin exporter")
		}
		reporter := zipkinhttp.NewReporter(cfg.ZipkinEndpoint)
		trace.RegisterExporter(zipkin.NewExporter(reporter, nil))
		log.WithField("endpoint", cfg.ZipkinEndpoint).Info("Zipkin exporter initialized")
		return nil
	case "none", "":
		return nil
	default:
		return fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}
}

func initMetricsExporter(cfg *config.TracingConfig, log logger.Logger) (*http.Server, error) {
	switch cfg.MetricsExporter {
	case "none", "":
		return nil, nil
	case "prometheus":
	default:
		return nil, fmt.Errorf("unsupported metrics exporter: %s", cfg.MetricsExporter)
	}

	pe, err := prometheus.NewExporter(prometheus.Options{
		Namespace: cfg.ServiceName,
		OnError: func(err error) {
			log.WithField("error", err.Error()).Error("Prometheus exporter error")
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}
	view.RegisterExporter(pe)

	if err := view.Register(ocsql.DefaultViews...); err != nil {
		return nil, fmt.Errorf("failed to register database views: %w", err)
	}

	if cfg.PrometheusPort <= 0 {
		return nil, nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", pe)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.PrometheusPort),
		Handler: mux,
	}

	go func() {
		log.WithField("port", cfg.PrometheusPort).Info("Starting Prometheus metrics server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithField("error", err.Error()).Error("Prometheus metrics server failed")
		}
	}()

	return server, nil
}
