package life

import (
	"strconv"
	"strings"
)

// MaxNeighbors is the largest neighbor count any grid can produce (3D Moore
// neighborhood). Larger values in a rule string are dropped.
const MaxNeighbors = 26

// CountSet is a set of neighbor counts in [0, MaxNeighbors].
type CountSet uint32

// Has reports whether n is in the set.
func (s CountSet) Has(n int) bool {
	if n < 0 || n > MaxNeighbors {
		return false
	}
	return s&(1<<uint(n)) != 0
}

// With returns a copy of s that also contains n.
func (s CountSet) With(n int) CountSet {
	if n < 0 || n > MaxNeighbors {
		return s
	}
	return s | 1<<uint(n)
}

// Values lists the members in ascending order.
func (s CountSet) Values() []int {
	out := make([]int, 0, 8)
	for n := 0; n <= MaxNeighbors; n++ {
		if s.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// Len returns the number of members.
func (s CountSet) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Counts builds a set from the given values.
func Counts(values ...int) CountSet {
	var s CountSet
	for _, v := range values {
		s = s.With(v)
	}
	return s
}

// Rule holds the birth and survival conditions of a life-like automaton.
type Rule struct {
	Births   CountSet
	Survives CountSet
}

// Classic is Conway's B3/S23.
var Classic = Rule{Births: Counts(3), Survives: Counts(2, 3)}

// Born reports whether a dead cell with n live neighbors comes alive.
func (r Rule) Born(n int) bool { return r.Births.Has(n) }

// Survive reports whether a live cell with n live neighbors stays alive.
func (r Rule) Survive(n int) bool { return r.Survives.Has(n) }

// Next returns the next state of a cell given its state and neighbor count.
func (r Rule) Next(alive bool, n int) bool {
	if alive {
		return r.Survive(n)
	}
	return r.Born(n)
}

// IsZero reports whether the rule has no birth and no survival conditions.
func (r Rule) IsZero() bool { return r.Births == 0 && r.Survives == 0 }

// String renders the rule in B/S notation. Comma lists are used as soon as
// one value needs two digits, so the output parses back to the same rule.
func (r Rule) String() string {
	return "B" + formatCounts(r.Births) + "/S" + formatCounts(r.Survives)
}

func formatCounts(s CountSet) string {
	vals := s.Values()
	sep := ""
	for _, v := range vals {
		if v > 9 {
			sep = ","
			break
		}
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}

// ParseRule parses "B<counts>/S<counts>", case-insensitively.
//
// A part without commas is read digit by digit, so "S23" means {2, 3}. A part
// with commas is split into decimal fields, so "S2,3,13" means {2, 3, 13}.
// Missing or malformed parts produce empty sets rather than an error.
func ParseRule(spec string) Rule {
	parts := strings.SplitN(strings.ToUpper(strings.TrimSpace(spec)), "/", 2)
	var r Rule
	r.Births = parseCounts(parts[0], 'B')
	if len(parts) == 2 {
		r.Survives = parseCounts(parts[1], 'S')
	}
	return r
}

func parseCounts(part string, prefix byte) CountSet {
	part = strings.TrimSpace(part)
	if part != "" && part[0] == prefix {
		part = part[1:]
	}

	var s CountSet
	if strings.Contains(part, ",") {
		for _, field := range strings.Split(part, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				continue
			}
			s = s.With(n)
		}
		return s
	}

	for i := 0; i < len(part); i++ {
		if c := part[i]; c >= '0' && c <= '9' {
			s = s.With(int(c - '0'))
		}
	}
	return s
}
