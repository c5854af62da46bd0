package config

import (
	"strings"

	"github.com/rshade/responsive-link/internal/logging"
)

// Environment variables that tune diagnostics. Nothing about the patch
// itself is configurable.
const (
	EnvLogLevel  = "RESPONSIVE_LINK_LOG_LEVEL"
	EnvLogFormat = "RESPONSIVE_LINK_LOG_FORMAT"
)

// Logging defaults. Progress lines are printed by the CLI, so the
// diagnostic log stays quiet unless asked.
const (
	DefaultLogLevel  = "error"
	DefaultLogFormat = logging.FormatConsole
)

// LoggingConfig holds the diagnostic logger settings.
type LoggingConfig struct {
	Level  string
	Format string
}

// GetLoggingConfig returns the defaults with any environment overrides
// applied. lookupEnv is os.LookupEnv outside of tests. A --debug flag is
// expected to be applied by the caller on the returned value.
func GetLoggingConfig(lookupEnv func(string) (string, bool)) LoggingConfig {
	cfg := LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat}
	if lookupEnv == nil {
		return cfg
	}

	if v, ok := lookupEnv(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		cfg.Level = strings.TrimSpace(v)
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && strings.TrimSpace(v) != "" {
		cfg.Format = strings.TrimSpace(v)
	}
	return cfg
}

// ToLoggingConfig converts to the logging package's Config.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{Level: lc.Level, Format: lc.Format}
}
