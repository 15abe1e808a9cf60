package config

import (
	"fmt"
	"strings"

	"github.com/bnema/appstate/pkg/appstate"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateSources(config)...)
	validationErrors = append(validationErrors, validateInterval(config)...)
	validationErrors = append(validationErrors, validateMetrics(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateSources(config *Config) []string {
	var validationErrors []string
	switch config.Sources.Visibility {
	case VisibilityScreenSaver, VisibilityNone:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("sources.visibility must be screensaver or none (got %q)", config.Sources.Visibility))
	}
	switch config.Sources.Connectivity {
	case ConnectivityNetworkManager, ConnectivityNone:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("sources.connectivity must be networkmanager or none (got %q)", config.Sources.Connectivity))
	}
	return validationErrors
}

func validateInterval(config *Config) []string {
	var validationErrors []string
	if config.Interval.Every <= 0 {
		validationErrors = append(validationErrors, "interval.every must be a positive duration")
	}
	if !IsStateValue(config.Interval.State) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("interval.state must be one of visible, hidden, online, offline, active, inactive (got %q)", config.Interval.State))
	}
	return validationErrors
}

func validateMetrics(config *Config) []string {
	if config.Metrics.Enabled && config.Metrics.ListenAddr == "" {
		return []string{"metrics.listen_addr is required when metrics.enabled is true"}
	}
	return nil
}

// IsStateValue reports whether s names a concrete state value rather than a
// category or an unknown token.
func IsStateValue(s string) bool {
	switch appstate.Value(s) {
	case appstate.Visible, appstate.Hidden,
		appstate.Online, appstate.Offline,
		appstate.Active, appstate.Inactive:
		return true
	default:
		return false
	}
}
