package utils

import (
	"flag"
	"strconv"

	"github.com/pkg/errors"
)

// Flags are command-line overrides applied on top of the JSON configuration.
type Flags struct {
	ConfigPath     string
	Variant        string
	Renderer       string
	SeedFile       string
	Rule           string
	MaxGenerations int

	maxGenerationsSet bool
}

// NewFlags returns Flags with defaults that leave the configuration untouched.
func NewFlags() *Flags {
	return &Flags{ConfigPath: "config.json"}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "path to the JSON configuration file")
	fs.StringVar(&f.Variant, "variant", f.Variant, "board variant: 2d or 3d")
	fs.StringVar(&f.Renderer, "renderer", f.Renderer, "renderer: text, terminal or gui")
	fs.StringVar(&f.SeedFile, "seed", f.SeedFile, "seed file with x;y[;z] records")
	fs.StringVar(&f.Rule, "rule", f.Rule, "rule such as B3/S23 or B3/D0145678")
	fs.Func("max-generations", "stop after this many generations (0 = never, default from config)", f.setMaxGenerations)
}

func (f *Flags) setMaxGenerations(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.Wrap(err, "[Flags] max-generations")
	}
	if n < 0 {
		return errors.Errorf("[Flags] max-generations must not be negative, got %d", n)
	}
	f.MaxGenerations, f.maxGenerationsSet = n, true
	return nil
}

// Apply copies every set override into c.
func (f *Flags) Apply(c *Config) {
	if f.Variant != "" {
		c.Variant = f.Variant
	}
	if f.Renderer != "" {
		c.Renderer = f.Renderer
	}
	if f.SeedFile != "" {
		c.SeedFile = f.SeedFile
	}
	if f.Rule != "" {
		c.Rule = f.Rule
	}
	if f.maxGenerationsSet {
		c.MaxGenerations = f.MaxGenerations
	}
}
