package config

// MetricsConfig controls the telemetry pipeline and its listener.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsEnabled, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envMetricsServiceName, defaultMetricsServiceName),
		OtlpEndpoint: envOrDefault(envMetricsOtlpEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envMetricsOtlpInsecure, false),
	}
}
