package config

const (
	defaultServerPort = 8080

	defaultMaxOpenConns = 25
	defaultMaxIdleConns = 5

	defaultRendererMaxResponseBytes = 32 << 20

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 10.0
	defaultRateLimitBurst = 5

	defaultListWorkers = 8
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "30s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "25s",

		"log.level":  "info",
		"log.format": "json",

		"database.driver":            "sqlite",
		"database.dsn":               "file:projectledger.db?_foreign_keys=on",
		"database.max_open_conns":    defaultMaxOpenConns,
		"database.max_idle_conns":    defaultMaxIdleConns,
		"database.conn_max_lifetime": "30m",
		"database.slow_threshold":    "200ms",
		"database.auto_migrate":      false,

		"renderer.base_url":                        "http://localhost:3000",
		"renderer.timeout":                         "60s",
		"renderer.max_response_bytes":              defaultRendererMaxResponseBytes,
		"renderer.retry.max_attempts":              defaultRetryMaxAttempts,
		"renderer.retry.initial_interval":          "200ms",
		"renderer.retry.max_interval":              "5s",
		"renderer.retry.multiplier":                defaultRetryMultiplier,
		"renderer.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"renderer.circuit_breaker.timeout":         "30s",
		"renderer.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"renderer.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"renderer.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "projectledger",

		"app.list_workers": defaultListWorkers,
	}
}
