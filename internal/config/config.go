package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/shmviz/internal/anim"
	"github.com/san-kum/shmviz/internal/motion"
)

const (
	DefaultFPS          = 60
	DefaultTheme        = "classic"
	DefaultSpringWidth  = 400
	DefaultSpringHeight = 300
	DefaultGraphWidth   = 600
	DefaultGraphHeight  = 300
)

var (
	ErrUnknownPreset = errors.New("config: unknown preset")
	ErrInvalid       = errors.New("config: invalid value")
)

type Config struct {
	Params motion.Parameters `yaml:"params"`
	Step   float64           `yaml:"step"`
	FPS    int               `yaml:"fps"`
	Theme  string            `yaml:"theme"`
	Spring SizeConfig        `yaml:"spring"`
	Graph  SizeConfig        `yaml:"graph"`
}

// SizeConfig is a drawing surface size in logical pixels.
type SizeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Params: motion.DefaultParameters(),
		Step:   anim.DefaultStep,
		FPS:    DefaultFPS,
		Theme:  DefaultTheme,
		Spring: SizeConfig{Width: DefaultSpringWidth, Height: DefaultSpringHeight},
		Graph:  SizeConfig{Width: DefaultGraphWidth, Height: DefaultGraphHeight},
	}
}

// Load reads a YAML file over the defaults. Unlike interactive input, a file
// with a zero divisor or a non-positive step is rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if c.Step <= 0 {
		return fmt.Errorf("step %v: %w", c.Step, ErrInvalid)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps %d: %w", c.FPS, ErrInvalid)
	}
	for _, s := range []SizeConfig{c.Spring, c.Graph} {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("surface size %dx%d: %w", s.Width, s.Height, ErrInvalid)
		}
	}
	return nil
}
