package evenbinary

import (
	"fmt"
	"math/rand"

	yaml "go.yaml.in/yaml/v2"
)

// Config captures the knobs of a generator.
type Config struct {
	MaxInt    int   `yaml:"max_int"`
	BatchSize int   `yaml:"batch_size"`
	Seed      int64 `yaml:"seed"`
	Strict    bool  `yaml:"strict"`
}

// ParseConfig reads and validates a Config from YAML.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures the configuration can produce a batch.
func (c Config) Validate() error {
	if _, err := checkBound(c.MaxInt); err != nil {
		return err
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("%w: negative batch size %d", ErrInvalidArgument, c.BatchSize)
	}
	return nil
}

// Generator builds a Generator from the config. A non-zero seed gives a private,
// reproducible source; zero uses the global math/rand source.
func (c Config) Generator() Generator {
	var g = Generator{
		BatchSize: c.BatchSize,
		Strict:    c.Strict,
	}
	if c.Seed != 0 {
		g.Rand = rand.New(rand.NewSource(c.Seed))
	}
	return g
}
