// Package config loads simulation scenarios from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoScenarios      = errors.New("no scenarios configured")
	ErrInvalidDimension = errors.New("scenario width and height must be positive")
	ErrInvalidSteps     = errors.New("scenario steps must not be negative")
	ErrInvalidRule      = errors.New("rule neighbour counts must be within 0..8")
	ErrDuplicateName    = errors.New("duplicate scenario name")
	ErrInvalidFill      = errors.New("fill width and height must not be negative")
)

type Config struct {
	Log         LogConfig  `yaml:"log"`
	Concurrency int        `yaml:"concurrency"`
	Scenarios   []Scenario `yaml:"scenarios"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// Scenario describes one board and how to seed it.
type Scenario struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Steps  int    `yaml:"steps"`
	Rule   Rule   `yaml:"rule"`

	// Fills are rectangles of live cells, clipped to the board.
	Fills []Fill `yaml:"fills,omitempty"`
	// Patterns are live-cell offsets stamped at an origin, wrapping at edges.
	Patterns []Pattern `yaml:"patterns,omitempty"`
}

type Rule struct {
	Birth   []int `yaml:"birth"`
	Survive []int `yaml:"survive"`
}

type Fill struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Pattern struct {
	X     int      `yaml:"x"`
	Y     int      `yaml:"y"`
	Cells [][2]int `yaml:"cells"`
}

// ConwayRule is B3/S23.
func ConwayRule() Rule {
	return Rule{Birth: []int{3}, Survive: []int{2, 3}}
}

// Default returns a single glider on a small torus.
func Default() *Config {
	return &Config{
		Log:         LogConfig{Level: "info", Encoding: "json"},
		Concurrency: 4,
		Scenarios: []Scenario{
			{
				Name:   "glider",
				Width:  8,
				Height: 8,
				Steps:  32,
				Rule:   ConwayRule(),
				Patterns: []Pattern{
					{X: 1, Y: 1, Cells: [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
				},
			},
		},
	}
}

// Load reads a YAML config. Missing top-level values take their defaults;
// scenarios without a rule use ConwayRule.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	c.Scenarios = nil

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	for i := range c.Scenarios {
		s := &c.Scenarios[i]
		if len(s.Rule.Birth) == 0 && len(s.Rule.Survive) == 0 {
			s.Rule = ConwayRule()
		}
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario-%d", i)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (c *Config) Validate() error {
	if len(c.Scenarios) == 0 {
		return ErrNoScenarios
	}
	if c.Concurrency < 1 {
		c.Concurrency = 1
	}

	seen := make(map[string]struct{}, len(c.Scenarios))
	for _, s := range c.Scenarios {
		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateName, s.Name)
		}
		seen[s.Name] = struct{}{}

		if err := s.Validate(); err != nil {
			return fmt.Errorf("scenario %s: %w", s.Name, err)
		}
	}
	return nil
}

func (s Scenario) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, s.Width, s.Height)
	}
	if s.Steps < 0 {
		return ErrInvalidSteps
	}
	for _, f := range s.Fills {
		if f.Width < 0 || f.Height < 0 {
			return fmt.Errorf("%w: %dx%d at (%d, %d)", ErrInvalidFill, f.Width, f.Height, f.X, f.Y)
		}
	}
	for _, n := range append(append([]int{}, s.Rule.Birth...), s.Rule.Survive...) {
		if n < 0 || n > 8 {
			return fmt.Errorf("%w: %d", ErrInvalidRule, n)
		}
	}
	return nil
}
