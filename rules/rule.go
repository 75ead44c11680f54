package rules

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidRule is returned by ParseRule for malformed rule strings.
var ErrInvalidRule = errors.New("invalid rule")

// maxCount is the largest neighbor count a NeighborSet can hold.
const maxCount = 31

// NeighborSet is a bitmask of neighbor counts; bit n set means count n matches.
type NeighborSet uint32

// NewNeighborSet returns a set holding the given counts. Counts outside
// [0, 31] are ignored.
func NewNeighborSet(counts ...int) NeighborSet {
	var s NeighborSet
	for _, n := range counts {
		if n < 0 || n > maxCount {
			continue
		}
		s |= 1 << uint(n)
	}
	return s
}

// Has reports whether n is in the set.
func (s NeighborSet) Has(n uint32) bool {
	if n > maxCount {
		return false
	}
	return s&(1<<n) != 0
}

// Complement returns the counts in [0, limit] that are not in s.
func (s NeighborSet) Complement(limit int) NeighborSet {
	return NewNeighborSet(rangeTo(limit)...) &^ s
}

func (s NeighborSet) String() string {
	var b strings.Builder
	for n := 0; n <= maxCount; n++ {
		if s.Has(uint32(n)) {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}

// Rule holds the neighbor-count thresholds of the decaying automaton.
//
// A dead cell whose count is in Spawn comes alive; a live, not yet decaying
// cell whose count is in Decay starts its decay countdown.
type Rule struct {
	Spawn NeighborSet
	Decay NeighborSet
}

// DefaultRule2D is B3/S23 on the Moore neighborhood: birth on exactly three
// neighbors, decline on anything other than two or three.
var DefaultRule2D = Rule{
	Spawn: NewNeighborSet(3),
	Decay: NewNeighborSet(2, 3).Complement(8),
}

// DefaultRule3D is B2/S12 on the six-cell face neighborhood.
var DefaultRule3D = Rule{
	Spawn: NewNeighborSet(2),
	Decay: NewNeighborSet(1, 2).Complement(6),
}

// ShouldSpawn reports whether a dead cell with the given count comes alive.
func (r Rule) ShouldSpawn(neighbors uint32) bool {
	return r.Spawn.Has(neighbors)
}

// ShouldDecay reports whether a live cell with the given count starts to decay.
func (r Rule) ShouldDecay(neighbors uint32) bool {
	return r.Decay.Has(neighbors)
}

// String renders the rule in B/D notation, e.g. "B3/D0145678".
func (r Rule) String() string {
	return "B" + r.Spawn.String() + "/D" + r.Decay.String()
}

/*
ParseRule parses a rule string in one of two notations:

	B3/D0145678  birth counts / decay counts
	B3/S23       birth counts / survive counts

For the survive form, the decay set is every count in [0, maxNeighbors] that
is not a survive count. Letters are case-insensitive and the parts may come in
either order.
*/
func ParseRule(s string, maxNeighbors int) (Rule, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Rule{}, errors.Wrapf(ErrInvalidRule, "[ParseRule] expected two parts in %q", s)
	}

	var (
		rule               Rule
		haveBirth, haveEnd bool
	)
	for _, part := range parts {
		if part == "" {
			return Rule{}, errors.Wrapf(ErrInvalidRule, "[ParseRule] empty part in %q", s)
		}
		set, err := parseCounts(part[1:], maxNeighbors)
		if err != nil {
			return Rule{}, errors.Wrapf(err, "[ParseRule] rule %q", s)
		}
		switch strings.ToUpper(part[:1]) {
		case "B":
			if haveBirth {
				return Rule{}, errors.Wrapf(ErrInvalidRule, "[ParseRule] duplicate birth part in %q", s)
			}
			rule.Spawn, haveBirth = set, true
		case "S":
			if haveEnd {
				return Rule{}, errors.Wrapf(ErrInvalidRule, "[ParseRule] duplicate survive/decay part in %q", s)
			}
			rule.Decay, haveEnd = set.Complement(maxNeighbors), true
		case "D":
			if haveEnd {
				return Rule{}, errors.Wrapf(ErrInvalidRule, "[ParseRule] duplicate survive/decay part in %q", s)
			}
			rule.Decay, haveEnd = set, true
		default:
			return Rule{}, errors.Wrapf(ErrInvalidRule, "[ParseRule] unknown part %q in %q", part, s)
		}
	}
	if !haveBirth || !haveEnd {
		return Rule{}, errors.Wrapf(ErrInvalidRule, "[ParseRule] %q needs a B part and an S or D part", s)
	}
	return rule, nil
}

func parseCounts(digits string, maxNeighbors int) (NeighborSet, error) {
	var set NeighborSet
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, errors.Wrapf(ErrInvalidRule, "non-digit %q", r)
		}
		n := int(r - '0')
		if n > maxNeighbors {
			return 0, errors.Wrapf(ErrInvalidRule, "count %d exceeds %d neighbors", n, maxNeighbors)
		}
		set |= NewNeighborSet(n)
	}
	return set, nil
}

func rangeTo(limit int) []int {
	limit = min(limit, maxCount)
	if limit < 0 {
		return nil
	}
	out := make([]int, 0, limit+1)
	for n := 0; n <= limit; n++ {
		out = append(out, n)
	}
	return out
}
