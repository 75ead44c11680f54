package utils

import (
	"bytes"
	"flag"
	"strings"
	"testing"
)

func TestFlagsApply(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := NewFlags()
	f.Bind(fs)
	if err := fs.Parse([]string{"-variant", "3d", "-renderer", "text", "-max-generations", "0", "-rule", "B2/S12"}); err != nil {
		t.Fatal(err)
	}

	c := DefaultConfig()
	c.MaxGenerations = 50
	f.Apply(&c)

	if c.Variant != "3d" || c.Renderer != RendererText || c.Rule != "B2/S12" || c.MaxGenerations != 0 {
		t.Fatalf("config = %+v", c)
	}
	if c.SeedFile != "alive.csv" || f.ConfigPath != "config.json" {
		t.Fatal("unset flags must leave defaults alone")
	}
}

func TestFlagsUnsetKeepConfig(t *testing.T) {
	c := DefaultConfig()
	c.MaxGenerations = 12
	NewFlags().Apply(&c)
	if c != func() Config { d := DefaultConfig(); d.MaxGenerations = 12; return d }() {
		t.Fatalf("config changed: %+v", c)
	}
}

func TestMaxGenerationsFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var usage bytes.Buffer
	fs.SetOutput(&usage)
	f := NewFlags()
	f.Bind(fs)
	fs.PrintDefaults()
	if strings.Contains(usage.String(), "-1") {
		t.Fatalf("usage leaks a sentinel default:\n%s", usage.String())
	}

	if err := fs.Parse([]string{"-max-generations", "-3"}); err == nil {
		t.Fatal("negative max-generations accepted")
	}
}
