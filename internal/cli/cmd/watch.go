package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/appstate/internal/cli/styles"
	"github.com/bnema/appstate/internal/logging"
	"github.com/bnema/appstate/pkg/appstate"
)

var (
	watchTrigger bool
	watchOnce    bool
	watchJSON    bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [category]",
	Short: "Stream state changes",
	Long: `Print a line every time the category changes. The category defaults to app.

With --once the command exits after the first change.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchTrigger, "trigger-on-setup", false, "print the current value before waiting")
	watchCmd.Flags().BoolVar(&watchOnce, "once", false, "exit after the first change")
	watchCmd.Flags().BoolVar(&watchJSON, "json", false, "print JSON lines")
}

type changeJSON struct {
	Time     time.Time         `json:"time"`
	Category appstate.Category `json:"category"`
	Value    appstate.Value    `json:"value"`
}

func runWatch(cmd *cobra.Command, args []string) error {
	category := appstate.CategoryApp
	if len(args) > 0 {
		c, err := parseCategory(args[0])
		if err != nil {
			return err
		}
		category = c
	}

	a, tracker, err := appWithTracker()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logging.WithCategory(logging.WithComponent(a.Context(), "watch"), string(category)))
	defer cancel()
	log := logging.FromContext(ctx)

	out := cmd.OutOrStdout()
	renderer := styles.NewStateRenderer(a.Theme)
	emit := func(v appstate.Value) {
		now := time.Now()
		if watchJSON {
			if err := writeJSONLine(out, changeJSON{Time: now, Category: category, Value: v}); err != nil {
				log.Error().Err(err).Msg("write change")
			}
			return
		}
		fmt.Fprintln(out, renderer.RenderChange(now, category, v))
	}

	done := make(chan struct{})
	dispose := tracker.SetupEventListener(category, func(v appstate.Value) {
		emit(v)
		if watchOnce {
			close(done)
		}
	}, appstate.ListenerOptions{Once: watchOnce})
	defer dispose()

	if watchTrigger {
		// Printed here rather than through TriggerOnSetup so --once still waits for a real change.
		emit(tracker.Value(category))
	}

	log.Debug().Bool("once", watchOnce).Msg("watching")

	select {
	case <-ctx.Done():
	case <-done:
	}
	return nil
}
