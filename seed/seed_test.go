package seed

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-decay/model"
)

var (
	dims2D = model.Dims{Width: 5, Height: 4, Depth: 1}
	dims3D = model.Dims{Width: 3, Height: 3, Depth: 3}
)

func TestParse2D(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)

	in := "1;2\n\n# glider\n 4 ; 3 \r\n0;0\n"
	got, err := Parse(strings.NewReader(in), model.Variant2D, dims2D, logger)
	if err != nil {
		t.Fatal(err)
	}
	want := []model.Position{{X: 1, Y: 2}, {X: 4, Y: 3}, {X: 0, Y: 0}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if logs.Len() != 0 {
		t.Fatalf("unexpected warnings: %q", logs.String())
	}
}

func TestParseSkipsMalformed(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)

	in := strings.Join([]string{
		"1;1",
		"2",     // too few fields
		"1;2;0", // z is not allowed in 2d
		"a;b",   // not integers
		"1.5;2", // not integers
		"3;3",
	}, "\n")
	got, err := Parse(strings.NewReader(in), model.Variant2D, dims2D, logger)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != (model.Position{X: 1, Y: 1}) || got[1] != (model.Position{X: 3, Y: 3}) {
		t.Fatalf("got %v", got)
	}
	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d warnings, want 4: %q", len(lines), logs.String())
	}
	if !strings.Contains(lines[0], "on line 2") {
		t.Fatalf("warning lacks line number: %q", lines[0])
	}
}

func TestParse3D(t *testing.T) {
	got, err := Parse(strings.NewReader("1;1;2\n2;0\n"), model.Variant3D, dims3D, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []model.Position{{X: 1, Y: 1, Z: 2}, {X: 2, Y: 0, Z: 0}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseOutOfRangeIsFatal(t *testing.T) {
	for _, tc := range []struct {
		variant model.Variant
		dims    model.Dims
		in      string
	}{
		{model.Variant2D, dims2D, "1;1\n5;0\n"},
		{model.Variant2D, dims2D, "0;4"},
		{model.Variant2D, dims2D, "-1;0"},
		{model.Variant2D, dims2D, "99999999999999999999;0\n"},
		{model.Variant3D, dims3D, "0;0;-99999999999999999999"},
		{model.Variant3D, dims3D, "0;0;3"},
	} {
		_, err := Parse(strings.NewReader(tc.in), tc.variant, tc.dims, nil)
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Parse(%q) error = %v, want ErrOutOfRange", tc.in, err)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alive.csv")
	if err := os.WriteFile(path, []byte("2;2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path, model.Variant2D, dims2D, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != (model.Position{X: 2, Y: 2}) {
		t.Fatalf("got %v", got)
	}

	if _, err := Load(filepath.Join(dir, "missing.csv"), model.Variant2D, dims2D, nil); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file error = %v, want not-exist", err)
	}
}
