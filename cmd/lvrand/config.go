package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvrand/isaac"
	"github.com/katalvlaran/lvrand/random"
	"github.com/katalvlaran/lvrand/readers"
)

// Seed modes.
const (
	SeedZero    = "zero"
	SeedExample = "example"
	SeedRandom  = "random"
)

const defaultCount = 10

// ErrConfig reports an unusable run configuration.
var ErrConfig = errors.New("lvrand: invalid configuration")

// SeedSpec is either a named seed mode or an explicit list of words.
type SeedSpec struct {
	Mode  string
	Words []int32
}

// UnmarshalYAML accepts a scalar mode ("zero", "example", "random") or a
// sequence of integers.
func (s *SeedSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		s.Mode = strings.ToLower(strings.TrimSpace(node.Value))
		s.Words = nil
		return nil
	case yaml.SequenceNode:
		var words []int32
		if err := node.Decode(&words); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		s.Mode, s.Words = "", words
		return nil
	default:
		return fmt.Errorf("seed: line %d: expected a mode or a list of integers", node.Line)
	}
}

// ParseSeed reads a seed flag: a mode name or a list such as "[1, 2, ...]".
func ParseSeed(text string) (SeedSpec, error) {
	if strings.HasPrefix(text, "[") {
		words, ok := readers.ReadList(text, readers.ReadInt32)
		if !ok {
			return SeedSpec{}, fmt.Errorf("seed %q: %w", text, ErrConfig)
		}
		return SeedSpec{Words: words}, nil
	}

	return SeedSpec{Mode: strings.ToLower(text)}, nil
}

// Config describes one sampling run.
type Config struct {
	Seed           SeedSpec `yaml:"seed"`
	Scale          *int     `yaml:"scale"`
	SecondaryScale *int     `yaml:"secondary_scale"`
	TertiaryScale  *int     `yaml:"tertiary_scale"`

	Op    string `yaml:"op"`
	Count int    `yaml:"count"`

	// Operation parameters. Lo and Hi bound integer ranges; Size < 0 means a
	// variable size; Elements are parsed with readers when numeric.
	Lo       *int64   `yaml:"lo"`
	Hi       *int64   `yaml:"hi"`
	Size     *int     `yaml:"size"`
	Chars    string   `yaml:"chars"`
	Elements []string `yaml:"elements"`

	Stats bool `yaml:"stats"`
}

// Load reads, defaults and validates a YAML run configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse is Load over an in-memory document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func intPtr(v int) *int { return &v }

func (c *Config) applyDefaults() {
	if c.Seed.Mode == "" && c.Seed.Words == nil {
		c.Seed.Mode = SeedExample
	}
	if c.Scale == nil {
		c.Scale = intPtr(random.DefaultScale)
	}
	if c.SecondaryScale == nil {
		c.SecondaryScale = intPtr(random.DefaultSecondaryScale)
	}
	if c.TertiaryScale == nil {
		c.TertiaryScale = intPtr(random.DefaultTertiaryScale)
	}
	if c.Op == "" {
		c.Op = "integers"
	}
	c.Op = strings.ToLower(strings.TrimSpace(c.Op))
	if c.Count == 0 {
		c.Count = defaultCount
	}
	if c.Size == nil {
		c.Size = intPtr(-1)
	}
	if c.Lo == nil {
		c.Lo = new(int64)
	}
	if c.Hi == nil {
		hi := int64(9)
		c.Hi = &hi
	}
}

func (c *Config) validate() error {
	if c.Seed.Words != nil {
		if len(c.Seed.Words) != isaac.Size {
			return fmt.Errorf("seed holds %d words, want %d: %w", len(c.Seed.Words), isaac.Size, ErrConfig)
		}
	} else {
		switch c.Seed.Mode {
		case SeedZero, SeedExample, SeedRandom:
		default:
			return fmt.Errorf("unknown seed mode %q: %w", c.Seed.Mode, ErrConfig)
		}
	}
	if c.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d: %w", c.Count, ErrConfig)
	}
	if _, ok := operations[c.Op]; !ok {
		return fmt.Errorf("unknown op %q (known: %s): %w", c.Op, strings.Join(operationNames(), ", "), ErrConfig)
	}

	return nil
}

// Provider builds the provider the run draws from.
func (c *Config) Provider() (*random.Provider, error) {
	opts := random.WithScales(*c.Scale, *c.SecondaryScale, *c.TertiaryScale)
	switch {
	case c.Seed.Words != nil:
		return random.New(c.Seed.Words, opts)
	case c.Seed.Mode == SeedZero:
		return random.New(make([]int32, random.SeedSize), opts)
	case c.Seed.Mode == SeedRandom:
		return random.NewDefault(opts), nil
	default:
		return random.New(isaac.ExampleSeed(), opts)
	}
}
