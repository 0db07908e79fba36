package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lifesim/internal/ambient"
	"github.com/san-kum/lifesim/internal/life"
)

const (
	DefaultMode        = Mode2D
	DefaultLevel       = "beginner"
	DefaultGenerations = 200
)

var (
	ErrUnknownMode    = errors.New("config: unknown mode")
	ErrUnknownLevel   = errors.New("config: unknown level")
	ErrInvalidDensity = errors.New("config: density must be within [0, 1]")
	ErrInvalidSpeed   = errors.New("config: speed must not be negative")
	ErrInvalidAmbient = errors.New("config: invalid ambient settings")
)

type Config struct {
	Mode        string         `yaml:"mode"`
	Level       string         `yaml:"level"`
	Rule        string         `yaml:"rule,omitempty"`
	Pattern     string         `yaml:"pattern,omitempty"`
	Seed        int64          `yaml:"seed"`
	Generations int            `yaml:"generations"`
	Speed       float64        `yaml:"speed,omitempty"`
	Density     *float64       `yaml:"density,omitempty"`
	Ambient     ambient.Config `yaml:"ambient"`
}

// DefaultConfig leaves Rule empty so it resolves to the default of whatever
// mode ends up selected.
func DefaultConfig() *Config {
	return &Config{
		Mode:        DefaultMode,
		Level:       DefaultLevel,
		Generations: DefaultGenerations,
		Ambient:     ambient.DefaultConfig(),
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.Mode = strings.ToLower(cfg.Mode)
	return cfg, nil
}

// Encode writes cfg as YAML.
func Encode(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

func (c *Config) Validate() error {
	if _, ok := Levels[c.Mode]; !ok {
		return fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownMode, c.Mode, Mode2D, Mode3D)
	}
	if _, ok := GetLevel(c.Mode, c.Level); !ok {
		return fmt.Errorf("%w: %q (available: %v)", ErrUnknownLevel, c.Level, ListLevels(c.Mode))
	}
	if c.Speed < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, c.Speed)
	}
	if c.Density != nil && (*c.Density < 0 || *c.Density > 1) {
		return fmt.Errorf("%w: %v", ErrInvalidDensity, *c.Density)
	}
	a := c.Ambient
	if a.CellSize <= 0 || a.BaseInterval <= 0 || a.ReducedMotionInterval <= 0 {
		return fmt.Errorf("%w: cell size and intervals must be positive", ErrInvalidAmbient)
	}
	if a.InitialDensity < 0 || a.InitialDensity > 1 {
		return fmt.Errorf("%w: initial density %v", ErrInvalidAmbient, a.InitialDensity)
	}
	return nil
}

// Settings is the effective simulation setup after presets and overrides
// have been applied.
type Settings struct {
	Mode           string
	Level          Level
	RuleSpec       string
	Rule           life.Rule
	StepsPerSecond float64
	Density        float64
	Pattern        string
	Seed           int64
}

// Resolve validates c and flattens it into Settings.
func (c *Config) Resolve() (Settings, error) {
	if err := c.Validate(); err != nil {
		return Settings{}, err
	}
	lv, _ := GetLevel(c.Mode, c.Level)
	spec := ResolveRule(c.Mode, c.Rule)

	s := Settings{
		Mode:           c.Mode,
		Level:          lv,
		RuleSpec:       spec,
		Rule:           life.ParseRule(spec),
		StepsPerSecond: lv.StepsPerSecond,
		Density:        lv.RandomFill,
		Pattern:        c.Pattern,
		Seed:           c.Seed,
	}
	if c.Speed > 0 {
		s.StepsPerSecond = c.Speed
	}
	if c.Density != nil {
		s.Density = *c.Density
	}
	return s, nil
}
