package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"pursuit/agent"
	"pursuit/game"
	"pursuit/meta"
)

// Config describes a batch of games.
type Config struct {
	Seekers      int        `yaml:"seekers"`
	Rounds       []bool     `yaml:"rounds"` // Reveal schedule, one entry per round
	Depth        int        `yaml:"depth"`
	Games        int        `yaml:"games"`
	Seed         uint64     `yaml:"seed"`
	MapFile      string     `yaml:"map_file"` // Empty means the built-in demo board
	OutDir       string     `yaml:"out_dir"`
	LogLevel     string     `yaml:"log_level"`
	Evader       agent.Kind `yaml:"evader"`
	SeekersAgent agent.Kind `yaml:"seekers_agent"`
	MaxTurns     int        `yaml:"max_turns"`
}

func Default() *Config {
	return &Config{
		Seekers:      meta.SEEKERS,
		Rounds:       meta.Schedule(),
		Depth:        meta.DEPTH,
		Games:        1,
		Seed:         1,
		OutDir:       "experiments/results",
		LogLevel:     "info",
		Evader:       agent.Search,
		SeekersAgent: agent.Random,
		MaxTurns:     meta.MAX_TURNS,
	}
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("PURSUIT_DEPTH"); v != "" {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("bad PURSUIT_DEPTH %q: %w", v, err)
		}
		c.Depth = depth
	}
	if v := os.Getenv("PURSUIT_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("bad PURSUIT_SEED %q: %w", v, err)
		}
		c.Seed = seed
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Seekers < 1 || c.Seekers > game.MaxSeekers {
		return fmt.Errorf("seekers must be between 1 and %d, got %d", game.MaxSeekers, c.Seekers)
	}
	if c.Depth < 1 {
		return fmt.Errorf("depth must be at least 1, got %d", c.Depth)
	}
	if len(c.Rounds) == 0 {
		return fmt.Errorf("rounds must not be empty")
	}
	if c.Games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", c.Games)
	}
	if c.MaxTurns < 1 {
		return fmt.Errorf("max_turns must be at least 1, got %d", c.MaxTurns)
	}
	if _, err := agent.ParseKind(string(c.Evader)); err != nil {
		return fmt.Errorf("evader: %w", err)
	}
	if _, err := agent.ParseKind(string(c.SeekersAgent)); err != nil {
		return fmt.Errorf("seekers_agent: %w", err)
	}
	return nil
}
