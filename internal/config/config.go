package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/sorting"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultSpeed     = player.MaxMultiplier
	DefaultRandomLen = 8
	DefaultTheme     = "cyberpunk"
	DefaultCodeView  = "pseudo"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Algorithm string         `yaml:"algorithm"`
	Array     sorting.Array  `yaml:"array,omitempty"`
	Bounds    sorting.Bounds `yaml:"bounds"`
	// Speed is a 1..4 multiplier; Tick, when set, overrides it.
	Speed     int           `yaml:"speed"`
	Tick      time.Duration `yaml:"tick,omitempty"`
	RandomLen int           `yaml:"random_length"`
	Seed      int64         `yaml:"seed,omitempty"`
	Theme     string        `yaml:"theme"`
	CodeView  string        `yaml:"code_view"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Bounds:    sorting.DefaultBounds(),
		Speed:     DefaultSpeed,
		RandomLen: DefaultRandomLen,
		Theme:     DefaultTheme,
		CodeView:  DefaultCodeView,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := sorting.Lookup(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Bounds.Min > c.Bounds.Max {
		return fmt.Errorf("%w: bounds min %d > max %d", ErrInvalidConfig, c.Bounds.Min, c.Bounds.Max)
	}
	if c.Bounds.MaxLen <= 0 {
		return fmt.Errorf("%w: max_length must be positive, got %d", ErrInvalidConfig, c.Bounds.MaxLen)
	}
	if c.Speed < player.MinMultiplier || c.Speed > player.MaxMultiplier {
		return fmt.Errorf("%w: speed must be in [%d,%d], got %d", ErrInvalidConfig, player.MinMultiplier, player.MaxMultiplier, c.Speed)
	}
	if c.Tick < 0 {
		return fmt.Errorf("%w: tick must not be negative, got %v", ErrInvalidConfig, c.Tick)
	}
	if c.RandomLen < 0 {
		return fmt.Errorf("%w: random_length must not be negative", ErrInvalidConfig)
	}
	if err := c.Bounds.Check(c.Array); err != nil {
		return fmt.Errorf("%w: array: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) GetAlgorithm() sorting.Algorithm {
	alg, err := sorting.Lookup(c.Algorithm)
	if err != nil {
		return sorting.Bubble{}
	}
	return alg
}

// GetTick resolves the playback tick from Tick or Speed.
func (c *Config) GetTick() time.Duration {
	if c.Tick > 0 {
		return c.Tick
	}
	return player.TickFor(c.Speed)
}
