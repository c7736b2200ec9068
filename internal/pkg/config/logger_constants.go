package config

// Levels accepted by logger.log_level; critical logs at error level
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Sinks accepted by logger.log_type
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Record encodings accepted by logger.format. File logs are always JSON.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)
