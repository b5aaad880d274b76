package reducer

import (
	"errors"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the declarative form of the scalar Reducer options.
//
//	namespace = "counter"
//	mode = "production"
//
//	[initial_state]
//	count = 1
type Config struct {
	Namespace    string
	Mode         Mode
	InitialState map[string]any
}

// ParseConfig decodes a TOML reducer configuration.
// Missing keys keep their defaults: no namespace, Development mode, an empty object as initial state.
func ParseConfig(data []byte) (Config, error) {
	var raw struct {
		Namespace    string         `toml:"namespace"`
		Mode         string         `toml:"mode"`
		InitialState map[string]any `toml:"initial_state"`
	}

	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, errors.Join(ErrParsingConfigFailed, err)
	}

	mode, err := ParseMode(strings.ToLower(strings.TrimSpace(raw.Mode)))
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfigFailed, err)
	}

	cfg := Config{
		Namespace:    strings.TrimSpace(raw.Namespace),
		Mode:         mode,
		InitialState: raw.InitialState,
	}

	if cfg.InitialState == nil {
		cfg.InitialState = map[string]any{}
	}

	return cfg, nil
}

// Options returns the options equivalent to c.
func (c Config) Options() []Option {
	return []Option{
		WithNamespace(c.Namespace),
		WithMode(c.Mode),
		WithInitialState(c.InitialState),
	}
}
