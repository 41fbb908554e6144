package config

import "time"

const (
	envPort           = "PORT"
	envPollInterval   = "POLL_INTERVAL"
	envProvider       = "PROVIDER"
	envCategories     = "CATEGORIES"
	envReferenceTZ    = "REFERENCE_TZ"
	envDailyResetHour = "DAILY_RESET_HOUR"
	envDBPath         = "DB_PATH"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Conservative default poll interval to respect upstream quotas.
	defaultPollInterval   = 2 * Duration(time.Minute)
	defaultProvider       = "fixture"
	defaultCategories     = "nba"
	defaultReferenceTZ    = "America/New_York"
	defaultDailyResetHour = 4
	defaultDBPath         = "picks.db"
	defaultMetricsPort    = "9090"
)
