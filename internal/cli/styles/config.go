package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/appstate/internal/infrastructure/config"
)

// ConfigRenderer renders configuration status and values.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new ConfigRenderer.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file path and whether it exists.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconConfig)
	status := r.theme.Badge.Render("exists")
	if !exists {
		status = r.theme.BadgeMuted.Render("not created")
	}
	return fmt.Sprintf("%s %s %s", icon, r.theme.Normal.Render(path), status)
}

// RenderConfig renders the effective configuration grouped by section.
func (r *ConfigRenderer) RenderConfig(cfg *config.Config) string {
	sections := []struct {
		name string
		rows [][2]string
	}{
		{"Logging", [][2]string{
			{"level", cfg.Logging.Level},
			{"format", cfg.Logging.Format},
		}},
		{"Sources", [][2]string{
			{"visibility", string(cfg.Sources.Visibility)},
			{"connectivity", string(cfg.Sources.Connectivity)},
		}},
		{"Interval", [][2]string{
			{"every", cfg.Interval.Every.String()},
			{"state", cfg.Interval.State},
			{"trigger_on_setup", fmt.Sprint(cfg.Interval.TriggerOnSetup)},
		}},
		{"Metrics", [][2]string{
			{"enabled", fmt.Sprint(cfg.Metrics.Enabled)},
			{"listen_addr", cfg.Metrics.ListenAddr},
		}},
	}

	var parts []string
	for _, s := range sections {
		parts = append(parts, r.theme.Subtitle.Render(s.name))
		for _, row := range s.rows {
			parts = append(parts, fmt.Sprintf("  %s %s",
				r.theme.Subtle.Width(18).Render(row[0]),
				r.theme.Highlight.Render(row[1]),
			))
		}
		parts = append(parts, "")
	}
	return strings.TrimRight(strings.Join(parts, "\n"), "\n")
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	icon := r.theme.ErrorStyle.Render(IconWarning)
	return fmt.Sprintf("%s %s", icon, r.theme.ErrorStyle.Render(err.Error()))
}
