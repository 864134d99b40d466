package tracing

// Config holds the configuration for the tracing system.
type Config struct {
	// Disable, if true, completely disables tracing. No spans will be
	// collected or exported.
	Disable bool `yaml:"disable" default:"false"`

	// SampleRate determines the trace sampling fraction, between 0.0
	// (no traces) and 1.0 (all traces).
	SampleRate float64 `yaml:"sample_rate" default:"1"`

	// ExporterHost is the hostname or IP address of the OTLP collector.
	ExporterHost string `yaml:"exporter_host"`

	// ExporterPort is the port number of the OTLP collector.
	ExporterPort int `yaml:"exporter_port"`

	// Tags is a map of custom key-value pairs added as resource attributes
	// to all spans.
	Tags map[string]string `yaml:"tags"`
}
