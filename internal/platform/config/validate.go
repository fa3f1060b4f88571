package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Session.validate(),
		c.Live.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (sc *SessionConfig) validate() error {
	var errs []error

	if sc.CookieName == "" {
		errs = append(errs, errors.New("session.cookie_name must not be empty"))
	}
	if sc.TTL <= 0 {
		errs = append(errs, errors.New("session.ttl must be positive"))
	}
	if sc.MaxSessions < 0 {
		errs = append(errs, fmt.Errorf("session.max_sessions must be >= 0, got %d", sc.MaxSessions))
	}
	if sc.EventRate <= 0 {
		errs = append(errs, fmt.Errorf("session.event_rate must be positive, got %f", sc.EventRate))
	}
	if sc.EventBurst < 1 {
		errs = append(errs, fmt.Errorf("session.event_burst must be >= 1, got %d", sc.EventBurst))
	}

	return errors.Join(errs...)
}

func (lc *LiveConfig) validate() error {
	if !lc.Enabled {
		return nil
	}

	var errs []error

	if lc.ReadTimeout <= 0 {
		errs = append(errs, errors.New("live.read_timeout must be positive"))
	}
	if lc.WriteTimeout <= 0 {
		errs = append(errs, errors.New("live.write_timeout must be positive"))
	}
	if lc.MaxMessageBytes < 1 {
		errs = append(errs, fmt.Errorf("live.max_message_bytes must be >= 1, got %d", lc.MaxMessageBytes))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
