// apps/solver/internal/cli/config.go
//
// Layered configuration for the solver CLI.
// Precedence (lowest to highest): built-in defaults, solver.yaml in the
// working directory, SOLVER_* environment variables, command-line flags.

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	defaultLength = 5
	defaultLimit  = 10
)

// Config holds the resolved settings for one invocation.
type Config struct {
	Dictionary string `koanf:"dictionary"` // path to a word list, empty = embedded default
	Length     int    `koanf:"length"`     // fixed word length L for the session
	Limit      int    `koanf:"limit"`      // display truncation for candidate/ranking lists
	Verbose    bool   `koanf:"verbose"`    // debug logging
}

// findConfigFile returns the config file to use, if any.
// Priority: solver.yaml > solver.yml.
func findConfigFile() string {
	for _, name := range []string{"solver.yaml", "solver.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// loadConfig resolves the configuration from all layers.
// flags may be nil (tests); changed flags override everything else.
func loadConfig(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	_ = k.Load(confmap.Provider(map[string]interface{}{
		"dictionary": "",
		"length":     defaultLength,
		"limit":      defaultLimit,
		"verbose":    false,
	}, "."), nil)

	if name := findConfigFile(); name != "" {
		if err := k.Load(file.Provider(name), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", name, err)
		}
	}

	if err := k.Load(env.Provider("SOLVER_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SOLVER_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Length < 1 {
		return nil, fmt.Errorf("length must be at least 1, got %d", cfg.Length)
	}
	if cfg.Limit < 1 {
		return nil, fmt.Errorf("limit must be at least 1, got %d", cfg.Limit)
	}
	return &cfg, nil
}
