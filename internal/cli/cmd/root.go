// Package cmd provides Cobra CLI commands for appstate.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/appstate/internal/cli"
	"github.com/bnema/appstate/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "appstate",
		Short: "Visibility and connectivity aware state for desktop jobs",
		Long: `appstate - know whether your session is visible and online, and only do work when it is.

Visibility comes from the desktop screensaver, connectivity from NetworkManager,
both over D-Bus. The app state is active when the session is visible and online.

Examples:
  appstate state                          # show all three states
  appstate is online && git fetch         # shell gating
  appstate watch app                      # stream app state changes
  appstate run --every 5m -- ./sync.sh    # run only while active`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "__complete":
				return nil
			}
			if app != nil {
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// exitError ends the process with code without printing anything.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if app != nil {
		_ = app.Close()
	}

	var exit *exitError
	if errors.As(err, &exit) {
		os.Exit(exit.code)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetApp installs a prepared app, skipping the default initialization.
func SetApp(a *cli.App) {
	app = a
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info.Normalize()
	rootCmd.Version = buildInfo.Version
	rootCmd.SetVersionTemplate(buildInfo.String() + "\n")
}
