// Package config loads and validates training run configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ffnet-ml/ffnet/internal/nn"
)

// LayerSpec describes one dense layer of the network architecture.
type LayerSpec struct {
	Activation string `yaml:"activation"`
	Inputs     int    `yaml:"inputs"`
	Outputs    int    `yaml:"outputs"`
}

// Config captures the runtime knobs for a training run.
type Config struct {
	Layers []LayerSpec `yaml:"layers"`

	Epochs       int     `yaml:"epochs"`
	BatchSize    int     `yaml:"batch_size"`
	LearningRate float32 `yaml:"learning_rate"`
	Seed         int64   `yaml:"seed"`
	Shuffle      bool    `yaml:"shuffle"`
	LogEvery     int     `yaml:"log_every"`
}

// Overrides captures CLI-supplied values. Zero values leave the config
// untouched.
type Overrides struct {
	Epochs       int
	BatchSize    int
	LearningRate float32
	Seed         int64
}

// Default returns a runnable configuration for the built-in circle
// benchmark: a 2 → 64 → 32 → 1 network trained the way the classic demo
// does it.
func Default() *Config {
	return &Config{
		Layers: []LayerSpec{
			{Activation: "relu", Inputs: 2, Outputs: 64},
			{Activation: "relu", Inputs: 64, Outputs: 32},
			{Activation: "sigmoid", Inputs: 32, Outputs: 1},
		},
		Epochs:       100,
		BatchSize:    32,
		LearningRate: 0.1,
		Seed:         42,
		Shuffle:      true,
		LogEvery:     10,
	}
}

// Load reads and validates a Config from a YAML file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.BatchSize > 0 {
		c.BatchSize = o.BatchSize
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.Layers) == 0 {
		return errors.New("at least one layer must be configured")
	}
	for i, l := range c.Layers {
		if _, err := nn.ActivationByName(l.Activation); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
		if l.Inputs <= 0 || l.Outputs <= 0 {
			return fmt.Errorf("layer %d: sizes must be > 0 (got %dx%d)", i, l.Inputs, l.Outputs)
		}
		if i > 0 && c.Layers[i-1].Outputs != l.Inputs {
			return fmt.Errorf("layer %d: expects %d inputs, layer %d produces %d",
				i, l.Inputs, i-1, c.Layers[i-1].Outputs)
		}
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be > 0 (got %d)", c.Epochs)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", c.BatchSize)
	}
	if c.LearningRate < 0 {
		return fmt.Errorf("learning_rate must be >= 0 (got %g)", c.LearningRate)
	}
	if c.LogEvery <= 0 {
		c.LogEvery = 10
	}
	return nil
}

// BuildNetwork constructs the configured network, drawing initial weights
// from the configured seed. Call Validate first; an invalid layer chain
// panics here, as with any network construction.
func (c *Config) BuildNetwork() *nn.Network {
	b := nn.NewBuilder(c.Seed)
	for _, l := range c.Layers {
		act, err := nn.ActivationByName(l.Activation)
		if err != nil {
			panic(fmt.Sprintf("config.BuildNetwork: %v", err))
		}
		b.Dense(act, l.Inputs, l.Outputs)
	}
	return b.Build()
}
