package config

import "time"

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultIntervalEvery = 30 * time.Second
	defaultIntervalState = "active"

	defaultMetricsListenAddr = "127.0.0.1:9464"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Sources: SourcesConfig{
			Visibility:   VisibilityScreenSaver,
			Connectivity: ConnectivityNetworkManager,
		},
		Interval: IntervalConfig{
			Every:          defaultIntervalEvery,
			State:          defaultIntervalState,
			TriggerOnSetup: false,
		},
		Metrics: MetricsConfig{
			Enabled:    false,
			ListenAddr: defaultMetricsListenAddr,
		},
	}
}
