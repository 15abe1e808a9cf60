package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/appstate/internal/cli/styles"
	"github.com/bnema/appstate/pkg/appstate"
)

var stateJSON bool

var stateCmd = &cobra.Command{
	Use:   "state [token]",
	Short: "Print the current state",
	Long: `Print the live value of a category, or all three when no token is given.

The token may be a category (visibility, connectivity, app) or any of its
values (visible, hidden, online, offline, active, inactive). An unknown token
prints the full snapshot.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runState,
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.Flags().BoolVar(&stateJSON, "json", false, "print as JSON")
}

type readingJSON struct {
	Category appstate.Category `json:"category"`
	Value    appstate.Value    `json:"value"`
}

func runState(cmd *cobra.Command, args []string) error {
	a, tracker, err := appWithTracker()
	if err != nil {
		return err
	}

	token := ""
	if len(args) > 0 {
		token = args[0]
	}
	reading := tracker.GetState(token)
	out := cmd.OutOrStdout()

	if stateJSON {
		if reading.IsSnapshot() {
			return writeJSON(out, reading.Snapshot)
		}
		return writeJSON(out, readingJSON{Category: reading.Category, Value: reading.Value})
	}

	fmt.Fprintln(out, styles.NewStateRenderer(a.Theme).RenderReading(reading))
	return nil
}
