// Command counter dispatches a few change actions against a counter reducer and logs
// every transition.
//
// Usage:
//
//	counter [-config counter.toml]
//
// The optional TOML file may set namespace and mode, see reducer.ParseConfig.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/AntonStoeckl/re-reducer-go/fsa"
	"github.com/AntonStoeckl/re-reducer-go/reducer"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML reducer config")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if err := run(*configPath, logger); err != nil {
		logger.Error("counter failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string, logger *slog.Logger) error {
	options, err := loadOptions(configPath)
	if err != nil {
		return err
	}

	counter, err := NewCounter(append(options, reducer.WithLogger(logger))...)
	if err != nil {
		return err
	}

	initialState := counter.Reducer.InitialState()

	for _, action := range []fsa.Action{
		counter.Change.Call(10),
		counter.Change.Call(10, Kind(KindIncrement)),
		counter.Change.Call(10, Kind(KindDecrement)),
	} {
		nextState, err := counter.Reducer.Reduce(initialState, action)
		if err != nil {
			return err
		}

		actionJSON, err := action.MarshalJSON()
		if err != nil {
			return err
		}

		logger.Info("state changed", "from", initialState, "to", nextState, "action", string(actionJSON))
	}

	return nil
}

// loadOptions reads the optional reducer config, a missing file keeps the defaults.
func loadOptions(path string) ([]reducer.Option, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := reducer.ParseConfig(data)
	if err != nil {
		return nil, err
	}

	// the counter keeps its scalar initial state
	return []reducer.Option{reducer.WithNamespace(cfg.Namespace), reducer.WithMode(cfg.Mode)}, nil
}
