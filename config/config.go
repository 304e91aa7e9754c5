package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config drives the self-play runner. Zero values fall back to defaults, so
// a partial file (or none at all) is fine.
type Config struct {
	Seed        int64  `yaml:"seed"`
	Games       int    `yaml:"games"`
	Goroutines  int    `yaml:"goroutines"`
	Episodes    int    `yaml:"episodes"`
	DurationMS  int    `yaml:"duration_ms"`
	Cutoff      int    `yaml:"cutoff"`
	TopK        int    `yaml:"top_k"`
	HiddenDeck  bool   `yaml:"hidden_deck"`
	OutputDir   string `yaml:"output_dir"`
	SeasonTimes []int  `yaml:"season_times,omitempty"`
}

func defaults() Config {
	return Config{
		Seed:       1,
		Games:      1,
		Goroutines: 8,
		Episodes:   2000,
		TopK:       5,
		OutputDir:  "experiments/selfplay",
	}
}

// Load reads the YAML config at path, or returns defaults when path is
// empty.
func Load(path string) (Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("config: games must be positive, got %d", c.Games)
	}
	if c.Goroutines <= 0 {
		return fmt.Errorf("config: goroutines must be positive, got %d", c.Goroutines)
	}
	if c.Episodes <= 0 && c.DurationMS <= 0 {
		return fmt.Errorf("config: need an episode or duration budget")
	}
	if n := len(c.SeasonTimes); n > 4 {
		return fmt.Errorf("config: at most 4 seasons, got %d", n)
	}
	for _, t := range c.SeasonTimes {
		if t <= 0 {
			return fmt.Errorf("config: season times must be positive, got %d", t)
		}
	}
	return nil
}

func (c Config) Duration() time.Duration {
	return time.Duration(c.DurationMS) * time.Millisecond
}
