package life

import (
	"reflect"
	"testing"
)

func TestParseRule(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		births   []int
		survives []int
	}{
		{"classic", "B3/S23", []int{3}, []int{2, 3}},
		{"comma lists", "B3,4/S2,3,5", []int{3, 4}, []int{2, 3, 5}},
		{"lower case", "b36/s23", []int{3, 6}, []int{2, 3}},
		{"multi-digit 3d", "B5/S4,5,13,26", []int{5}, []int{4, 5, 13, 26}},
		{"out of range dropped", "B3,40/S2", []int{3}, []int{2}},
		{"empty survive", "B2/S", []int{2}, []int{}},
		{"missing survive", "B3", []int{3}, []int{}},
		{"empty string", "", []int{}, []int{}},
		{"garbage", "hello/world", []int{}, []int{}},
		{"garbage comma field", "B3,x/S2", []int{3}, []int{2}},
		{"padded", "  B3 / S23 ", []int{3}, []int{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParseRule(tt.spec)
			if got := r.Births.Values(); !reflect.DeepEqual(got, tt.births) {
				t.Errorf("births = %v, want %v", got, tt.births)
			}
			if got := r.Survives.Values(); !reflect.DeepEqual(got, tt.survives) {
				t.Errorf("survives = %v, want %v", got, tt.survives)
			}
		})
	}
}

func TestRuleString(t *testing.T) {
	tests := []struct {
		rule Rule
		want string
	}{
		{Classic, "B3/S23"},
		{ParseRule("B3,4/S2,3,5"), "B34/S235"},
		{ParseRule("B5,6,7/S5,6,7,13"), "B567/S5,6,7,13"},
		{Rule{}, "B/S"},
	}

	for _, tt := range tests {
		if got := tt.rule.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if back := ParseRule(tt.rule.String()); back != tt.rule {
			t.Errorf("ParseRule(%q) = %+v, want %+v", tt.rule.String(), back, tt.rule)
		}
	}
}

func TestRuleNext(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantBirth := n == 3
		wantSurvive := n == 2 || n == 3
		if got := Classic.Next(false, n); got != wantBirth {
			t.Errorf("dead cell with %d neighbors: got %v, want %v", n, got, wantBirth)
		}
		if got := Classic.Next(true, n); got != wantSurvive {
			t.Errorf("live cell with %d neighbors: got %v, want %v", n, got, wantSurvive)
		}
	}

	if !ParseRule("garbage").IsZero() {
		t.Error("garbage rule should have no conditions")
	}
}

func TestCountSet(t *testing.T) {
	s := Counts(0, 8, 26, 27, -1)
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if !s.Has(0) || !s.Has(26) || s.Has(27) || s.Has(-1) {
		t.Errorf("unexpected membership: %v", s.Values())
	}
}
