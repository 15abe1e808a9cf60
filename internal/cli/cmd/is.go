package cmd

import (
	"github.com/spf13/cobra"
)

var isCmd = &cobra.Command{
	Use:   "is <state>",
	Short: "Exit 0 if the app is in the given state, 1 otherwise",
	Long: `Test the current state for shell scripts. Nothing is printed.

Examples:
  appstate is online && curl -fsS https://example.com/ping
  appstate is hidden || notify-send "still here"`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"visible", "hidden", "online", "offline", "active", "inactive"},
	RunE:      runIs,
}

func init() {
	rootCmd.AddCommand(isCmd)
}

func runIs(_ *cobra.Command, args []string) error {
	value, err := parseValue(args[0])
	if err != nil {
		return err
	}

	_, tracker, err := appWithTracker()
	if err != nil {
		return err
	}

	if !tracker.AppIs(string(value)) {
		return &exitError{code: 1}
	}
	return nil
}
