package config

const (
	defaultServerPort = 8080

	defaultMaxSessions = 10000
	defaultEventRate   = 20.0
	defaultEventBurst  = 40

	defaultLiveMaxMessageBytes = 16 << 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"session.cookie_name":   "contact_session",
		"session.cookie_secure": true,
		"session.ttl":           "30m",
		"session.max_sessions":  defaultMaxSessions,
		"session.event_rate":    defaultEventRate,
		"session.event_burst":   defaultEventBurst,

		"live.enabled":           true,
		"live.read_timeout":      "60s",
		"live.write_timeout":     "10s",
		"live.max_message_bytes": defaultLiveMaxMessageBytes,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "contact-form",
	}
}
