package config

import (
	"reflect"
	"strings"
)

// GetBoolValue retrieves a boolean value from a nested struct based on a dot-separated path.
// It returns defaultValue if the field does not exist, is a nil pointer, or any pointer on the way is nil.
func GetBoolValue(config interface{}, fieldPath string, defaultValue bool) bool {
	if config == nil {
		return defaultValue
	}

	val := reflect.ValueOf(config)
	for _, field := range strings.Split(fieldPath, ".") {
		if val.Kind() == reflect.Ptr {
			if val.IsNil() {
				return defaultValue
			}
			val = val.Elem()
		}
		if val.Kind() != reflect.Struct {
			return defaultValue
		}

		val = val.FieldByName(field)
		if !val.IsValid() {
			return defaultValue
		}
	}

	if val.Kind() == reflect.Ptr && !val.IsNil() {
		return val.Elem().Bool()
	} else if val.Kind() == reflect.Bool {
		return val.Bool()
	}

	return defaultValue
}

// ExcludeSuppressed reports whether suppressed SARIF results should be dropped. Defaults to false.
func ExcludeSuppressed(cfg *Config) bool {
	return GetBoolValue(cfg, "Report.ExcludeSuppressed", false)
}

// ExitCodeEnabled reports whether failures map to nonzero exit codes. Defaults to false.
func ExitCodeEnabled(cfg *Config) bool {
	return GetBoolValue(cfg, "Report.ExitCode", false)
}
