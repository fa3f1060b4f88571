// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Session   SessionConfig   `koanf:"session"`
	Live      LiveConfig      `koanf:"live"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host               string        `koanf:"host"`
	Port               int           `koanf:"port"`
	ReadTimeout        time.Duration `koanf:"read_timeout"`
	WriteTimeout       time.Duration `koanf:"write_timeout"`
	IdleTimeout        time.Duration `koanf:"idle_timeout"`
	HealthCheckTimeout time.Duration `koanf:"health_check_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// SessionConfig holds settings for mounted form components. Each browser
// session owns one component, identified by a cookie.
type SessionConfig struct {
	CookieName   string        `koanf:"cookie_name"`
	CookieSecure bool          `koanf:"cookie_secure"`
	TTL          time.Duration `koanf:"ttl"`
	MaxSessions  int           `koanf:"max_sessions"`
	EventRate    float64       `koanf:"event_rate"`
	EventBurst   int           `koanf:"event_burst"`
}

// LiveConfig holds websocket live transport settings.
type LiveConfig struct {
	Enabled         bool          `koanf:"enabled"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	MaxMessageBytes int64         `koanf:"max_message_bytes"`
	AllowedOrigins  []string      `koanf:"allowed_origins"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
