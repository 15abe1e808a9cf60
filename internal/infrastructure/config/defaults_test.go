package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, VisibilityScreenSaver, cfg.Sources.Visibility)
	assert.Equal(t, ConnectivityNetworkManager, cfg.Sources.Connectivity)
	assert.Equal(t, 30*time.Second, cfg.Interval.Every)
	assert.Equal(t, "active", cfg.Interval.State)
	assert.False(t, cfg.Metrics.Enabled)
}
