package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-decay/model"
	"github.com/sheikhrachel/go-gol-decay/rules"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Dims() != (model.Dims{Width: 100, Height: 60, Depth: 1}) {
		t.Fatalf("Dims = %+v", c.Dims())
	}
	rule, err := c.ParsedRule()
	if err != nil || rule != rules.DefaultRule2D {
		t.Fatalf("ParsedRule = %v, %v", rule, err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"variant": "3d",
		"width": 10,
		"height": 8,
		"depth": 6,
		"frame_rate": 50000000,
		"decay_ticks": 4,
		"rule": "B2/S12",
		"renderer": "text"
	}`)
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Dims() != (model.Dims{Width: 10, Height: 8, Depth: 6}) {
		t.Fatalf("Dims = %+v", c.Dims())
	}
	if c.FrameRate != 50*time.Millisecond || c.DecayTicks != 4 || c.Renderer != RendererText {
		t.Fatalf("config = %+v", c)
	}
	if c.SeedFile != "alive.csv" {
		t.Fatalf("SeedFile = %q, want default kept", c.SeedFile)
	}
	rule, err := c.ParsedRule()
	if err != nil || rule != rules.DefaultRule3D {
		t.Fatalf("ParsedRule = %v, %v", rule, err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, `{"width": `)); err == nil {
		t.Fatal("expected error")
	}
}

func TestValidateRejectsInvalid(t *testing.T) {
	for name, body := range map[string]string{
		"variant":    `{"variant": "4d"}`,
		"width":      `{"width": 0}`,
		"rule":       `{"rule": "B9/S23"}`,
		"renderer":   `{"renderer": "opengl"}`,
		"frame rate": `{"frame_rate": 0}`,
		"history":    `{"history_size": -1}`,
	} {
		c, err := LoadConfig(writeConfig(t, body))
		if err != nil {
			t.Fatalf("%s: LoadConfig: %v", name, err)
		}
		if err = c.Validate(); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

// A bad value in the file can be overridden on the command line.
func TestFlagsFixInvalidFile(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, `{"rule": "B9/S23", "renderer": "opengl"}`))
	if err != nil {
		t.Fatal(err)
	}
	f := NewFlags()
	f.Rule = "B3/S23"
	f.Renderer = RendererText
	f.Apply(&c)
	if err = c.Validate(); err != nil {
		t.Fatalf("Validate after overrides: %v", err)
	}
}

func TestDims2DIgnoresDepth(t *testing.T) {
	c := DefaultConfig()
	c.Depth = 9
	if c.Dims().Depth != 1 {
		t.Fatalf("2d depth = %d, want 1", c.Dims().Depth)
	}
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
}
