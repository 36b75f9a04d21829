package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 120
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout    = 30 * time.Second
	DefaultMaxUploadSize     = 25 * 1024 * 1024 // 25MB
	DefaultCORSAllowedOrigin = "*"

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultExportEnabled  = false
	DefaultExportTopic    = "cre.listings.normalized"
	DefaultExportDLQTopic = "cre.listings.normalized.dlq"
)
