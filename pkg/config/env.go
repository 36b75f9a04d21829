package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout    = "REQUEST_TIMEOUT"
	EnvMaxUploadSize     = "MAX_UPLOAD_SIZE"
	EnvCORSAllowedOrigin = "CORS_ALLOWED_ORIGIN"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvExportEnabled  = "EXPORT_ENABLED"
	EnvExportTopic    = "EXPORT_TOPIC"
	EnvExportDLQTopic = "EXPORT_DLQ_TOPIC"
)
