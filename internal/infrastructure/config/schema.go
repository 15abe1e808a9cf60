package config

import "time"

// Config represents the complete configuration for appstate.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Sources selects which host signals back visibility and connectivity.
	Sources SourcesConfig `mapstructure:"sources" toml:"sources" json:"sources"`
	// Interval holds the defaults used by `appstate run`.
	Interval IntervalConfig `mapstructure:"interval" toml:"interval" json:"interval"`
	// Metrics controls the Prometheus endpoint exposed by `appstate run`.
	Metrics MetricsConfig `mapstructure:"metrics" toml:"metrics" json:"metrics"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	// Format is console or json.
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// VisibilityBackend names the host signal used for visibility.
type VisibilityBackend string

const (
	// VisibilityScreenSaver treats an active screensaver or locked session as hidden.
	VisibilityScreenSaver VisibilityBackend = "screensaver"
	// VisibilityNone always reads visible.
	VisibilityNone VisibilityBackend = "none"
)

// ConnectivityBackend names the host signal used for connectivity.
type ConnectivityBackend string

const (
	// ConnectivityNetworkManager reads the NetworkManager state over D-Bus.
	ConnectivityNetworkManager ConnectivityBackend = "networkmanager"
	// ConnectivityNone reports no capability, which reads online.
	ConnectivityNone ConnectivityBackend = "none"
)

// SourcesConfig selects host signal backends.
type SourcesConfig struct {
	Visibility   VisibilityBackend   `mapstructure:"visibility" toml:"visibility" json:"visibility" jsonschema:"enum=screensaver,enum=none"`
	Connectivity ConnectivityBackend `mapstructure:"connectivity" toml:"connectivity" json:"connectivity" jsonschema:"enum=networkmanager,enum=none"`
}

// IntervalConfig holds gated interval defaults.
type IntervalConfig struct {
	// Every is the tick period, e.g. "30s".
	Every time.Duration `mapstructure:"every" toml:"every" json:"every"`
	// State is the value the interval runs in (visible, hidden, online, offline, active, inactive).
	State string `mapstructure:"state" toml:"state" json:"state"`
	// TriggerOnSetup runs the command immediately whenever the interval (re)starts.
	TriggerOnSetup bool `mapstructure:"trigger_on_setup" toml:"trigger_on_setup" json:"trigger_on_setup"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled    bool   `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	ListenAddr string `mapstructure:"listen_addr" toml:"listen_addr" json:"listen_addr"`
}
