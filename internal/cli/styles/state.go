package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/appstate/pkg/appstate"
)

// StateRenderer renders state values and snapshots.
type StateRenderer struct {
	theme *Theme
}

// NewStateRenderer creates a new state renderer with the given theme.
func NewStateRenderer(theme *Theme) *StateRenderer {
	return &StateRenderer{theme: theme}
}

// IsPositive reports whether v is the "up" value of its category.
func IsPositive(v appstate.Value) bool {
	switch v {
	case appstate.Visible, appstate.Online, appstate.Active:
		return true
	default:
		return false
	}
}

// CategoryIcon returns the icon shown next to a category for value v.
func CategoryIcon(c appstate.Category, v appstate.Value) string {
	switch c {
	case appstate.CategoryVisibility:
		if v == appstate.Hidden {
			return IconEyeOff
		}
		return IconEye
	case appstate.CategoryConnectivity:
		if v == appstate.Offline {
			return IconPlug
		}
		return IconWifi
	case appstate.CategoryApp:
		if v == appstate.Inactive {
			return IconPause
		}
		return IconPlay
	default:
		return IconWarning
	}
}

// RenderValue renders a single value as a colored badge.
func (r *StateRenderer) RenderValue(v appstate.Value) string {
	if IsPositive(v) {
		return r.theme.Positive.Render(string(v))
	}
	return r.theme.Negative.Render(string(v))
}

// RenderLine renders "icon category value".
func (r *StateRenderer) RenderLine(c appstate.Category, v appstate.Value) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(CategoryIcon(c, v))
	name := r.theme.Subtle.Width(14).Render(string(c))
	return fmt.Sprintf("%s %s %s", icon, name, r.RenderValue(v))
}

// RenderSnapshot renders one line per category.
func (r *StateRenderer) RenderSnapshot(s appstate.Snapshot) string {
	lines := []string{
		r.RenderLine(appstate.CategoryVisibility, s.Visible),
		r.RenderLine(appstate.CategoryConnectivity, s.Online),
		r.RenderLine(appstate.CategoryApp, s.Active),
	}
	return strings.Join(lines, "\n")
}

// RenderReading renders a single value, or the snapshot for a snapshot reading.
func (r *StateRenderer) RenderReading(reading appstate.Reading) string {
	if reading.IsSnapshot() {
		return r.RenderSnapshot(reading.Snapshot)
	}
	return r.RenderLine(reading.Category, reading.Value)
}

// RenderChange renders a timestamped change event.
func (r *StateRenderer) RenderChange(at time.Time, c appstate.Category, v appstate.Value) string {
	ts := r.theme.Subtle.Render(at.Format("15:04:05"))
	return fmt.Sprintf("%s %s", ts, r.RenderLine(c, v))
}
