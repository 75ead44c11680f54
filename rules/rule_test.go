package rules

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseRule(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		max       int
		wantSpawn NeighborSet
		wantDecay NeighborSet
	}{
		{"survive form", "B3/S23", 8, NewNeighborSet(3), NewNeighborSet(0, 1, 4, 5, 6, 7, 8)},
		{"decay form", "B3/D0145678", 8, NewNeighborSet(3), NewNeighborSet(0, 1, 4, 5, 6, 7, 8)},
		{"reversed lower case", "s12/b2", 6, NewNeighborSet(2), NewNeighborSet(0, 3, 4, 5, 6)},
		{"empty birth", "B/D0", 6, 0, NewNeighborSet(0)},
		{"whitespace", "  B36/S23 ", 8, NewNeighborSet(3, 6), NewNeighborSet(0, 1, 4, 5, 6, 7, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRule(tt.in, tt.max)
			if err != nil {
				t.Fatalf("ParseRule(%q) error: %v", tt.in, err)
			}
			if r.Spawn != tt.wantSpawn {
				t.Fatalf("spawn = %q, want %q", r.Spawn, tt.wantSpawn)
			}
			if r.Decay != tt.wantDecay {
				t.Fatalf("decay = %q, want %q", r.Decay, tt.wantDecay)
			}
		})
	}
}

func TestParseRuleErrors(t *testing.T) {
	for _, in := range []string{"", "B3", "B3/S23/D1", "X3/S23", "B3/B4", "S2/D3", "B3/Sx", "B9/S23", "/S23"} {
		if _, err := ParseRule(in, 8); !errors.Is(err, ErrInvalidRule) {
			t.Fatalf("ParseRule(%q) error = %v, want ErrInvalidRule", in, err)
		}
	}
}

func TestDefaultRulesMatchNotation(t *testing.T) {
	r2, err := ParseRule("B3/S23", 8)
	if err != nil {
		t.Fatal(err)
	}
	if r2 != DefaultRule2D {
		t.Fatalf("DefaultRule2D = %v, want %v", DefaultRule2D, r2)
	}
	r3, err := ParseRule("B2/S12", 6)
	if err != nil {
		t.Fatal(err)
	}
	if r3 != DefaultRule3D {
		t.Fatalf("DefaultRule3D = %v, want %v", DefaultRule3D, r3)
	}
}

// B3/S23 spawns and decays exactly where classic Life births and kills.
func TestDefaultRule2DAgreesWithConway(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if got, want := DefaultRule2D.ShouldSpawn(uint32(n)), conwayNext(n, false); got != want {
			t.Fatalf("spawn(%d) = %v, conway birth = %v", n, got, want)
		}
		if got, want := DefaultRule2D.ShouldDecay(uint32(n)), !conwayNext(n, true); got != want {
			t.Fatalf("decay(%d) = %v, conway death = %v", n, got, want)
		}
	}
}

func TestPredicatesAreTotal(t *testing.T) {
	r := DefaultRule2D
	for _, n := range []uint32{0, 8, 31, 32, 1 << 31} {
		_ = r.ShouldSpawn(n)
		_ = r.ShouldDecay(n)
	}
	if r.ShouldDecay(32) || r.ShouldSpawn(1<<31) {
		t.Fatal("counts beyond the set width must never match")
	}
}

func TestRuleString(t *testing.T) {
	if got := DefaultRule2D.String(); got != "B3/D0145678" {
		t.Fatalf("String() = %q", got)
	}
}

// conwayNext is the classic Life transition: (alive && neighbors == 2) || neighbors == 3
func conwayNext(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
