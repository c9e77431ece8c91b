package config

import "time"

// ClientConfig controls how controller and display processes reach the score service.
type ClientConfig struct {
	ScoreURL        string
	Timeout         time.Duration
	ControllerPoll  time.Duration
	DisplayPoll     time.Duration
	DisplayRedraw   time.Duration
	ControllerCourt string // empty means both courts
	DisplayTimezone string
	// Metrics is off unless enabled. Without a port the recorder only pushes
	// over OTLP; the process name fills in an empty service name.
	Metrics         MetricsConfig
}

func loadClients() ClientConfig {
	return ClientConfig{
		ScoreURL:        envOrDefault(envScoreURL, defaultScoreURL),
		Timeout:         durationEnvOrDefault(envClientTimeout, defaultClientTimeout),
		ControllerPoll:  durationEnvOrDefault(envControllerPoll, defaultControllerPoll),
		DisplayPoll:     durationEnvOrDefault(envDisplayPoll, defaultDisplayPoll),
		DisplayRedraw:   durationEnvOrDefault(envDisplayRedraw, defaultDisplayRedraw),
		ControllerCourt: envOrDefault(envControllerSide, ""),
		DisplayTimezone: envOrDefault(envDisplayTZ, ""),
		Metrics:         loadClientMetrics(),
	}
}

func loadClientMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envClientMetrics, false),
		Port:         envOrDefault(envClientPromPort, ""),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, ""),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}
