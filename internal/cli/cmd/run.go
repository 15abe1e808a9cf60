package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/appstate/internal/application/port"
	"github.com/bnema/appstate/internal/application/usecase"
	"github.com/bnema/appstate/internal/infrastructure/config"
	"github.com/bnema/appstate/internal/infrastructure/process"
	"github.com/bnema/appstate/internal/logging"
	"github.com/bnema/appstate/internal/metrics"
)

const metricsShutdownTimeout = 5 * time.Second

var (
	runEvery       time.Duration
	runOnState     string
	runTrigger     bool
	runMaxRuns     int
	runMetricsAddr string
)

var runCmd = &cobra.Command{
	Use:   "run [flags] -- command [args...]",
	Short: "Run a command periodically while a state holds",
	Long: `Run a command every interval, but only while the session is in the chosen
state (active by default). The interval pauses as soon as the state changes
away and restarts when it comes back. Missed ticks are not replayed.

Defaults come from the [interval] and [metrics] sections of the config file.

Examples:
  appstate run --every 10m -- rsync -a ~/notes backup:/notes
  appstate run --state online --trigger-on-setup -- ./refresh-feeds
  appstate run --metrics-addr 127.0.0.1:9464 -- ./poll.sh`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().DurationVar(&runEvery, "every", 0, "tick period (default from config)")
	runCmd.Flags().StringVar(&runOnState, "state", "", "state the command runs in (default from config)")
	runCmd.Flags().BoolVar(&runTrigger, "trigger-on-setup", false, "run immediately whenever the interval (re)starts")
	runCmd.Flags().IntVar(&runMaxRuns, "max-runs", 0, "stop after this many runs (0 = unlimited)")
	runCmd.Flags().StringVar(&runMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
}

// buildGatedRunInput merges flags over the configured interval defaults.
func buildGatedRunInput(cmd *cobra.Command, cfg *config.Config, argv []string) (usecase.GatedRunInput, error) {
	input := usecase.GatedRunInput{
		Command:        argv,
		Every:          cfg.Interval.Every,
		TriggerOnSetup: cfg.Interval.TriggerOnSetup,
		MaxRuns:        runMaxRuns,
	}

	state := cfg.Interval.State
	if cmd.Flags().Changed("state") {
		state = runOnState
	}
	value, err := parseValue(state)
	if err != nil {
		return input, err
	}
	input.State = value

	if cmd.Flags().Changed("every") {
		input.Every = runEvery
	}
	if cmd.Flags().Changed("trigger-on-setup") {
		input.TriggerOnSetup = runTrigger
	}
	return input, nil
}

// metricsAddr returns the listen address, or "" when metrics are off.
func metricsAddr(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("metrics-addr") {
		return runMetricsAddr
	}
	if cfg.Metrics.Enabled {
		return cfg.Metrics.ListenAddr
	}
	return ""
}

func runRun(cmd *cobra.Command, args []string) error {
	a, tracker, err := appWithTracker()
	if err != nil {
		return err
	}

	input, err := buildGatedRunInput(cmd, a.Config, args)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logging.With(logging.WithComponent(a.Context(), "run"), map[string]any{
		"program": input.Command[0],
		"state":   string(input.State),
	}))
	defer cancel()
	log := logging.FromContext(ctx)

	if a.ConfigManager != nil {
		a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
			level := logging.ParseLevel(cfg.Logging.Level)
			zerolog.SetGlobalLevel(level)
			log.Info().Str("level", level.String()).Msg("config reloaded")
		})
		if err := a.ConfigManager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	var observer port.TickObserver
	addr := metricsAddr(cmd, a.Config)
	var recorder *metrics.Recorder
	if addr != "" {
		recorder = metrics.NewRecorder()
		defer recorder.Close()
		recorder.Attach(tracker)
		observer = recorder
	}

	uc := usecase.NewGatedRunUseCase(tracker, process.NewExecRunner(cmd.OutOrStdout(), cmd.ErrOrStderr()), observer)

	g, gctx := errgroup.WithContext(ctx)
	runCtx, stopRun := context.WithCancel(gctx)
	defer stopRun()

	var out *usecase.GatedRunOutput
	g.Go(func() error {
		// Finishing on max runs also stops the metrics server.
		defer stopRun()
		res, err := uc.Execute(runCtx, input)
		out = res
		return err
	})

	if recorder != nil {
		srv := &http.Server{
			Addr:              addr,
			Handler:           metricsMux(recorder),
			ReadHeaderTimeout: 5 * time.Second,
			BaseContext:       func(net.Listener) context.Context { return gctx },
		}
		g.Go(func() error {
			log.Info().Str("addr", addr).Msg("serving metrics")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-runCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if out != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d runs, %d failed\n", out.Runs, out.Failures)
	}
	return nil
}

func metricsMux(recorder *metrics.Recorder) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", recorder.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux
}
