// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/appstate/internal/cli/styles"
	"github.com/bnema/appstate/pkg/appstate"
)

const (
	maxMonitorEvents = 12
	changeBuffer     = 32
)

// StateChangeMsg is delivered when a category changes value.
type StateChangeMsg struct {
	At       time.Time
	Category appstate.Category
	Value    appstate.Value
}

type monitorKeyMap struct {
	Clear key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k monitorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Clear, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k monitorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Clear}, {k.Help, k.Quit}}
}

func defaultMonitorKeyMap() monitorKeyMap {
	return monitorKeyMap{
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MonitorModel shows the live value of every category and a log of changes.
type MonitorModel struct {
	help help.Model
	keys monitorKeyMap

	snapshot appstate.Snapshot
	events   []StateChangeMsg
	width    int

	tracker  *appstate.Tracker
	changes  chan StateChangeMsg
	dispose  []appstate.Disposer
	now      func() time.Time
	theme    *styles.Theme
	renderer *styles.StateRenderer
}

// NewMonitorModel subscribes to every category of tracker. Call Close when
// the program exits.
func NewMonitorModel(theme *styles.Theme, tracker *appstate.Tracker) *MonitorModel {
	m := &MonitorModel{
		help:     help.New(),
		keys:     defaultMonitorKeyMap(),
		width:    80,
		tracker:  tracker,
		changes:  make(chan StateChangeMsg, changeBuffer),
		now:      time.Now,
		theme:    theme,
		renderer: styles.NewStateRenderer(theme),
		snapshot: tracker.Snapshot(),
	}

	for _, c := range appstate.Categories() {
		category := c
		m.dispose = append(m.dispose, tracker.SetupEventListener(category, func(v appstate.Value) {
			msg := StateChangeMsg{At: m.now(), Category: category, Value: v}
			select {
			case m.changes <- msg:
			default:
				// The UI is behind; the snapshot re-read on the next message catches up.
			}
		}, appstate.ListenerOptions{}))
	}
	return m
}

// Close removes the tracker listeners.
func (m *MonitorModel) Close() {
	for _, dispose := range m.dispose {
		dispose()
	}
	m.dispose = nil
}

func (m *MonitorModel) waitForChange() tea.Msg {
	return <-m.changes
}

// Init implements tea.Model.
func (m *MonitorModel) Init() tea.Cmd {
	return m.waitForChange
}

// Update implements tea.Model.
func (m *MonitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Clear):
			m.events = nil
		}

	case StateChangeMsg:
		m.snapshot = m.tracker.Snapshot()
		m.events = append(m.events, msg)
		if len(m.events) > maxMonitorEvents {
			m.events = m.events[len(m.events)-maxMonitorEvents:]
		}
		return m, m.waitForChange
	}

	return m, nil
}

// Events returns the change log, oldest first.
func (m *MonitorModel) Events() []StateChangeMsg {
	return m.events
}

// View implements tea.Model.
func (m *MonitorModel) View() string {
	t := m.theme

	current := t.Box.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		t.Title.Render("Current state"),
		"",
		m.renderer.RenderSnapshot(m.snapshot),
	))

	var log string
	if len(m.events) == 0 {
		log = t.Subtle.Render("Waiting for changes...")
	} else {
		lines := make([]string, 0, len(m.events))
		for i := len(m.events) - 1; i >= 0; i-- {
			e := m.events[i]
			lines = append(lines, m.renderer.RenderChange(e.At, e.Category, e.Value))
		}
		log = lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		current,
		"",
		t.Subtitle.Render("Changes"),
		log,
		"",
		m.help.View(m.keys),
	)
}
