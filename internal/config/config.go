// internal/config/config.go
package config

import (
	"github.com/caarlos0/env/v11"

	"fairlinks/internal/config/configs"
)

// Config aggregates the configuration sections shared by every fairlinks
// service binary. Fields are populated from environment variables using
// the caarlos0/env library; nested structs are tagged with envPrefix so
// their fields are parsed with the given prefix.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Telemetry configures trace export. Environment variables prefixed
	// with OTEL_ populate this struct.
	Telemetry configs.Telemetry `envPrefix:"OTEL_"`

	// Course holds the simulated course's opening parameters. Environment
	// variables prefixed with COURSE_ populate this struct.
	Course configs.Course `envPrefix:"COURSE_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their declared defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
