// internal/config/configs/telemetry.go
package configs

// Telemetry configures OTLP trace export. Export is off unless an
// endpoint is set.
type Telemetry struct {
	// Endpoint is the OTLP/HTTP collector address, host:port. Empty
	// disables export.
	Endpoint string `env:"EXPORTER_OTLP_ENDPOINT"`

	// Insecure disables TLS on the exporter connection.
	Insecure bool `env:"EXPORTER_OTLP_INSECURE" envDefault:"true"`
}
