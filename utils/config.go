package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-decay/model"
	"github.com/sheikhrachel/go-gol-decay/rules"
)

// Renderer names accepted in Config.Renderer.
const (
	RendererText     = "text"
	RendererTerminal = "terminal"
	RendererGUI      = "gui"
)

// Config holds the configuration for the simulation
type Config struct {
	Variant        string        `json:"variant"`
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	Depth          int           `json:"depth"`
	FrameRate      time.Duration `json:"frame_rate"`
	DecayTicks     uint32        `json:"decay_ticks"`
	Rule           string        `json:"rule"`
	SeedFile       string        `json:"seed_file"`
	UseParallel    bool          `json:"use_parallel"`
	MaxGenerations int           `json:"max_generations"`
	Renderer       string        `json:"renderer"`
	HistorySize    int           `json:"history_size"`
	StopOnStagnant bool          `json:"stop_on_stagnant"`
	Scale          int           `json:"scale"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Variant:        "2d",
		Width:          100,
		Height:         60,
		Depth:          1,
		FrameRate:      100 * time.Millisecond,
		DecayTicks:     model.DefaultDecayTicks,
		Rule:           "", // empty picks the variant default
		SeedFile:       "alive.csv",
		UseParallel:    true,
		MaxGenerations: 0, // run until interrupted
		Renderer:       RendererTerminal,
		HistorySize:    5,
		StopOnStagnant: false,
		Scale:          8,
	}
}

// LoadConfig loads configuration from JSON file. The result is not validated;
// call Validate once command-line overrides have been applied.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks every field that the simulation depends on
func (c Config) Validate() error {
	variant, err := c.ParsedVariant()
	if err != nil {
		return err
	}
	if err = c.Dims().Validate(variant); err != nil {
		return errors.Wrap(err, "[Config.Validate] bad dimensions")
	}
	if c.FrameRate <= 0 {
		return errors.Errorf("[Config.Validate] frame_rate must be positive, got %v", c.FrameRate)
	}
	if _, err = c.ParsedRule(); err != nil {
		return err
	}
	switch c.Renderer {
	case RendererText, RendererTerminal, RendererGUI:
	default:
		return errors.Errorf("[Config.Validate] unknown renderer %q", c.Renderer)
	}
	if c.HistorySize < 0 || c.MaxGenerations < 0 {
		return errors.New("[Config.Validate] history_size and max_generations must not be negative")
	}
	return nil
}

// ParsedVariant returns the configured board variant
func (c Config) ParsedVariant() (model.Variant, error) {
	v, err := model.ParseVariant(c.Variant)
	return v, errors.Wrap(err, "[Config.ParsedVariant] bad variant")
}

// Dims returns the configured board extents. 2D boards always get depth 1.
func (c Config) Dims() model.Dims {
	depth := c.Depth
	if v, err := c.ParsedVariant(); err == nil && v == model.Variant2D {
		depth = 1
	}
	return model.Dims{Width: c.Width, Height: c.Height, Depth: depth}
}

// ParsedRule returns the configured rule, or the variant default when unset
func (c Config) ParsedRule() (rules.Rule, error) {
	variant, err := c.ParsedVariant()
	if err != nil {
		return rules.Rule{}, err
	}
	if c.Rule == "" {
		if variant == model.Variant3D {
			return rules.DefaultRule3D, nil
		}
		return rules.DefaultRule2D, nil
	}
	rule, err := rules.ParseRule(c.Rule, variant.Neighborhood().Max())
	return rule, errors.Wrap(err, "[Config.ParsedRule] bad rule")
}
