package main

import (
	"fmt"
	"time"

	"github.com/sauerbraten/jsonfile"

	"github.com/chazu/planar/pkg/engine"
)

// Config holds the CLI settings. It is read from a JSON file, which may
// contain // line comments, and then overridden by command-line flags.
type Config struct {
	EvalTimeoutMS int    `json:"eval_timeout_ms"`
	ShowWarnings  bool   `json:"show_warnings"`
	Format        string `json:"format"` // "text" or "json"
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		EvalTimeoutMS: int(engine.EvalTimeout / time.Millisecond),
		ShowWarnings:  true,
		Format:        "text",
	}
}

// LoadConfig reads path over the defaults. An empty path yields the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	if path == "" {
		return conf, nil
	}
	if err := jsonfile.ParseFile(path, &conf); err != nil {
		return conf, fmt.Errorf("config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return conf, fmt.Errorf("config %s: %w", path, err)
	}
	return conf, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q, expected text or json", c.Format)
	}
	if c.EvalTimeoutMS < 0 {
		return fmt.Errorf("eval_timeout_ms must not be negative, got %d", c.EvalTimeoutMS)
	}
	return nil
}

// EvalTimeout returns the evaluation limit. Zero means the engine default.
func (c Config) EvalTimeout() time.Duration {
	return time.Duration(c.EvalTimeoutMS) * time.Millisecond
}
