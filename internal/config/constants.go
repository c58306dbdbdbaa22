package config

const (
	envDataDir      = "DATA_DIR"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	// Conventional location of the march-ml-mania CSV drop, relative to
	// the working directory.
	defaultDataDir     = "march-ml-mania-dataset"
	defaultMetricsOn   = false
	defaultServiceName = "ncaa-data-service"
)
