package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvassign/hungarian"
)

// ErrConfig wraps every configuration file problem.
var ErrConfig = errors.New("config")

const defaultAddr = "127.0.0.1:8080"

// Config is the on-disk TOML configuration. Flags override it.
//
//	[solver]
//	algorithm  = "konig"    # or "potentials"
//	extraction = "carried"  # or "greedy"
//	eps        = 1e-9
//	max_rounds = 0
//
//	[server]
//	addr = "127.0.0.1:8080"
//
//	[log]
//	level = "info"
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// SolverConfig mirrors hungarian.Options in textual form.
type SolverConfig struct {
	Algorithm  string  `toml:"algorithm"`
	Extraction string  `toml:"extraction"`
	Eps        float64 `toml:"eps"`
	MaxRounds  int     `toml:"max_rounds"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig matches hungarian.DefaultOptions.
func DefaultConfig() Config {
	def := hungarian.DefaultOptions()
	return Config{
		Solver: SolverConfig{
			Algorithm:  def.Algo.String(),
			Extraction: def.Extraction.String(),
			Eps:        def.Eps,
			MaxRounds:  def.MaxRounds,
		},
		Server: ServerConfig{Addr: defaultAddr},
		Log:    LogConfig{Level: "info"},
	}
}

// LoadConfig reads path over DefaultConfig. Unknown keys are rejected so
// typos do not go unnoticed.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrConfig, path, strings.Join(keys, ", "))
	}
	if _, err := cfg.SolverOptions(); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
	}
	if _, err := cfg.LogLevel(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// SolverOptions converts the [solver] table to hungarian.Options.
func (c Config) SolverOptions() (hungarian.Options, error) {
	opts := hungarian.DefaultOptions()

	algo, err := hungarian.ParseAlgorithm(c.Solver.Algorithm)
	if err != nil {
		return opts, fmt.Errorf("%w: algorithm %q", err, c.Solver.Algorithm)
	}
	ext, err := hungarian.ParseExtraction(c.Solver.Extraction)
	if err != nil {
		return opts, fmt.Errorf("%w: extraction %q", err, c.Solver.Extraction)
	}
	if c.Solver.Eps < 0 || c.Solver.Eps >= 1 {
		return opts, fmt.Errorf("%w: eps %g outside [0, 1)", hungarian.ErrBadOptions, c.Solver.Eps)
	}
	if c.Solver.MaxRounds < 0 {
		return opts, fmt.Errorf("%w: max_rounds %d", hungarian.ErrBadOptions, c.Solver.MaxRounds)
	}

	opts.Algo = algo
	opts.Extraction = ext
	opts.Eps = c.Solver.Eps
	opts.MaxRounds = c.Solver.MaxRounds

	return opts, nil
}

// LogLevel parses the [log] level; empty means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return LogInfo, nil
	}
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return LogInfo, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	return level, nil
}
