package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager rooted at the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDir(configDir)
}

// NewManagerWithDir creates a configuration manager that reads config.toml from configDir.
func NewManagerWithDir(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(configDir)

	// APPSTATE_SOURCES_VISIBILITY, APPSTATE_INTERVAL_EVERY, ...
	v.SetEnvPrefix("APPSTATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "APPSTATE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind APPSTATE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "APPSTATE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind APPSTATE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written on first use.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile = m.defaultConfigFile()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func (m *Manager) defaultConfigFile() string {
	return filepath.Join(m.configDir, configName+"."+configType)
}

// createDefaultConfig writes the current defaults to config.toml.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}
	if err := m.viper.SafeWriteConfigAs(m.defaultConfigFile()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	switch VisibilityBackend(strings.ToLower(string(config.Sources.Visibility))) {
	case "", VisibilityScreenSaver:
		config.Sources.Visibility = VisibilityScreenSaver
	case VisibilityNone:
		config.Sources.Visibility = VisibilityNone
	}

	switch ConnectivityBackend(strings.ToLower(string(config.Sources.Connectivity))) {
	case "", ConnectivityNetworkManager:
		config.Sources.Connectivity = ConnectivityNetworkManager
	case ConnectivityNone:
		config.Sources.Connectivity = ConnectivityNone
	}

	config.Interval.State = strings.ToLower(strings.TrimSpace(config.Interval.State))
	if config.Interval.State == "" {
		config.Interval.State = defaultIntervalState
	}
	config.Metrics.ListenAddr = strings.TrimSpace(config.Metrics.ListenAddr)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.defaultConfigFile()
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("sources.visibility", string(defaults.Sources.Visibility))
	m.viper.SetDefault("sources.connectivity", string(defaults.Sources.Connectivity))

	// Durations are stored as strings so the written TOML stays readable.
	m.viper.SetDefault("interval.every", defaults.Interval.Every.String())
	m.viper.SetDefault("interval.state", defaults.Interval.State)
	m.viper.SetDefault("interval.trigger_on_setup", defaults.Interval.TriggerOnSetup)

	m.viper.SetDefault("metrics.enabled", defaults.Metrics.Enabled)
	m.viper.SetDefault("metrics.listen_addr", defaults.Metrics.ListenAddr)
}
