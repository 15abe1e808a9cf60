package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/appstate/internal/cli/model"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Live view of all states",
	Long:  `Open a full-screen view of visibility, connectivity and app state with a log of recent changes.`,
	Args:  cobra.NoArgs,
	RunE:  runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(_ *cobra.Command, _ []string) error {
	a, tracker, err := appWithTracker()
	if err != nil {
		return err
	}

	m := model.NewMonitorModel(a.Theme, tracker)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(a.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run monitor: %w", err)
	}
	return nil
}
