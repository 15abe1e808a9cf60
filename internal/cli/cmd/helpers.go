package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/appstate/internal/cli"
	"github.com/bnema/appstate/pkg/appstate"
)

var errAppNotInitialized = errors.New("app not initialized")

// parseValue accepts the state values only, not category names.
func parseValue(s string) (appstate.Value, error) {
	v := appstate.Value(s)
	switch v {
	case appstate.Visible, appstate.Hidden, appstate.Online, appstate.Offline, appstate.Active, appstate.Inactive:
		return v, nil
	case "invisible":
		return appstate.Hidden, nil
	default:
		return "", fmt.Errorf("unknown state %q (want visible, hidden, online, offline, active or inactive)", s)
	}
}

// parseCategory accepts a category name or any value alias.
func parseCategory(s string) (appstate.Category, error) {
	c := appstate.ResolveType(s)
	if c == appstate.CategoryNone {
		return c, fmt.Errorf("unknown category %q (want visibility, connectivity or app)", s)
	}
	return c, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// writeJSONLine writes v as a single compact line.
func writeJSONLine(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func appWithTracker() (*cli.App, *appstate.Tracker, error) {
	a := GetApp()
	if a == nil {
		return nil, nil, errAppNotInitialized
	}
	tracker, err := a.Tracker()
	if err != nil {
		return nil, nil, err
	}
	return a, tracker, nil
}
