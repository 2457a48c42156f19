// Package config loads the settings of a Blocky run from an optional YAML file
// and BLOCKY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"blocky/game"
	"blocky/meta"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Colour struct {
	Name string `mapstructure:"name"`
	R    uint8  `mapstructure:"r"`
	G    uint8  `mapstructure:"g"`
	B    uint8  `mapstructure:"b"`
}

type Config struct {
	MaxDepth      int      `mapstructure:"max_depth"`
	BoardSize     int      `mapstructure:"board_size"`
	Turns         int      `mapstructure:"turns"`
	Seed          uint64   `mapstructure:"seed"`
	RandomPlayers int      `mapstructure:"random_players"`
	SmartPlayers  []int    `mapstructure:"smart_players"` // one difficulty per smart player
	Games         int      `mapstructure:"games"`
	Workers       int      `mapstructure:"workers"`
	OutputDir     string   `mapstructure:"output_dir"`
	LogLevel      string   `mapstructure:"log_level"`
	Palette       []Colour `mapstructure:"palette"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("max_depth", meta.MAX_DEPTH)
	v.SetDefault("board_size", meta.BOARD_SIZE)
	v.SetDefault("turns", meta.MAX_TURNS)
	v.SetDefault("seed", 0)
	v.SetDefault("random_players", 1)
	v.SetDefault("smart_players", []int{10})
	v.SetDefault("games", meta.GAMES)
	v.SetDefault("workers", meta.WORKERS)
	v.SetDefault("output_dir", "experiments")
	v.SetDefault("log_level", "info")
}

// Load reads the config file at path, if any, applies environment overrides
// and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("BLOCKY")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate reports every setting that cannot be used to run a game.
func (c *Config) Validate() error {
	var errs []error
	if c.MaxDepth < 0 || c.MaxDepth > meta.MAX_DEPTH_LIMIT {
		errs = append(errs, fmt.Errorf("max_depth must be in [0, %d], got %d", meta.MAX_DEPTH_LIMIT, c.MaxDepth))
	} else if c.BoardSize < 1<<c.MaxDepth {
		errs = append(errs, fmt.Errorf("board_size must be at least %d for max_depth %d, got %d", 1<<c.MaxDepth, c.MaxDepth, c.BoardSize))
	}
	if c.Turns < 0 {
		errs = append(errs, fmt.Errorf("turns must be non-negative, got %d", c.Turns))
	}
	if c.RandomPlayers < 0 {
		errs = append(errs, fmt.Errorf("random_players must be non-negative, got %d", c.RandomPlayers))
	}
	for i, difficulty := range c.SmartPlayers {
		if difficulty < 0 {
			errs = append(errs, fmt.Errorf("smart_players[%d] must be non-negative, got %d", i, difficulty))
		}
	}
	if c.Players() == 0 {
		errs = append(errs, errors.New("at least one player is required"))
	}
	if c.Games <= 0 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	seen := map[game.Colour]string{}
	for _, entry := range c.Palette {
		colour := game.Colour{R: entry.R, G: entry.G, B: entry.B}
		if other, ok := seen[colour]; ok {
			errs = append(errs, fmt.Errorf("palette colours %q and %q are the same", other, entry.Name))
		}
		seen[colour] = entry.Name
	}
	if colours := len(c.GamePalette().Colours); c.Players() > colours {
		errs = append(errs, fmt.Errorf("%d players need distinct goal colours but the palette has %d", c.Players(), colours))
	}
	return errors.Join(errs...)
}

func (c *Config) Players() int {
	return c.RandomPlayers + len(c.SmartPlayers)
}

// GamePalette returns the configured palette, or the default Blocky colours
// when none is configured.
func (c *Config) GamePalette() game.Palette {
	if len(c.Palette) == 0 {
		return game.DefaultPalette()
	}
	palette := game.Palette{}
	for _, entry := range c.Palette {
		palette.Colours = append(palette.Colours, game.Colour{R: entry.R, G: entry.G, B: entry.B})
		palette.Names = append(palette.Names, entry.Name)
	}
	return palette
}

// Level parses log_level, accepting any case.
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("failed to parse log level: %w", err)
	}
	return level, nil
}
