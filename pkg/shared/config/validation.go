package config

import (
	"fmt"
	"strings"
)

var knownLogLevels = map[string]struct{}{
	"TRACE": {},
	"DEBUG": {},
	"INFO":  {},
	"WARN":  {},
	"ERROR": {},
}

// ValidateConfig checks if the global configurations have valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := ValidateLoggerConfig(&cfg.Logger); err != nil {
		return fmt.Errorf("YAML global config: logger directive is invalid: %w", err)
	}
	return nil
}

// ValidateLoggerConfig checks that the configured log level is one hclog understands.
func ValidateLoggerConfig(loggerConfig *Logger) error {
	if loggerConfig == nil {
		return fmt.Errorf("logger configuration is nil")
	}
	if loggerConfig.Level == "" {
		return nil
	}
	if _, ok := knownLogLevels[strings.ToUpper(loggerConfig.Level)]; !ok {
		return fmt.Errorf("unknown log level %q", loggerConfig.Level)
	}
	return nil
}
