package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_CollectsEveryError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"
	cfg.Sources.Visibility = "x11"
	cfg.Sources.Connectivity = "ping"
	cfg.Interval.Every = -1
	cfg.Interval.State = "invisible"
	cfg.Metrics.Enabled = true
	cfg.Metrics.ListenAddr = ""

	err := validateConfig(cfg)
	require.Error(t, err)
	for _, want := range []string{
		"logging.level",
		"logging.format",
		"sources.visibility",
		"sources.connectivity",
		"interval.every",
		"interval.state",
		"metrics.listen_addr",
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestIsStateValue(t *testing.T) {
	for _, v := range []string{"visible", "hidden", "online", "offline", "active", "inactive"} {
		assert.True(t, IsStateValue(v), v)
	}
	for _, v := range []string{"", "app", "visibility", "invisible", "bogus"} {
		assert.False(t, IsStateValue(v), v)
	}
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"title": "appstate configuration"`)
	assert.Contains(t, out, `"trigger_on_setup"`)
	assert.Contains(t, out, `"networkmanager"`)
}
