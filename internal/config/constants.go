package config

import "time"

const (
	envPort           = "PORT"
	envEnvFile        = "ENV_FILE"
	envDefaultsFile   = "DEFAULTS_FILE"
	envMaxDeltaBytes  = "MAX_DELTA_BYTES"
	envCORSOrigins    = "CORS_ALLOWED_ORIGINS"
	envScoreURL       = "SCORE_URL"
	envClientTimeout  = "CLIENT_TIMEOUT"
	envControllerPoll = "CONTROLLER_POLL_INTERVAL"
	envDisplayPoll    = "DISPLAY_POLL_INTERVAL"
	envDisplayRedraw  = "DISPLAY_REDRAW_INTERVAL"
	envControllerSide = "CONTROLLER_COURT"
	envDisplayTZ      = "DISPLAY_TIMEZONE"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envClientMetrics  = "CLIENT_METRICS_ENABLED"
	envClientPromPort = "CLIENT_METRICS_PORT"

	defaultPort          = "3000"
	defaultEnvFile       = ".env"
	defaultMaxDeltaBytes = 64 << 10
	defaultCORSOrigins   = "*"
	defaultScoreURL      = "http://localhost:3000"
	defaultClientTimeout = 5 * time.Second
	// Controllers poll once a second, the board twice as often so a score
	// shows up on screen within half a second of landing on the server.
	defaultControllerPoll = time.Second
	defaultDisplayPoll    = 500 * time.Millisecond
	defaultDisplayRedraw  = 100 * time.Millisecond
	defaultMetricsPort    = "9090"
	defaultServiceName    = "court-score-service"
)
