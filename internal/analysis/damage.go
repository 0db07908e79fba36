package analysis

import (
	"math"

	"github.com/san-kum/lifesim/internal/life"
)

// Damage flips cell (r, c) in a copy of g and steps both boards side by
// side. The result holds the Hamming distance between them for every
// generation, starting with the initial 1. g itself is not modified.
func Damage(g *life.Grid, rule life.Rule, wrap bool, generations, r, c int) []int {
	base := g.Clone()
	hit := g.Clone()
	hit.Toggle(r, c)

	series := make([]int, 0, generations+1)
	series = append(series, hamming(base.Cells(), hit.Cells()))
	for i := 0; i < generations; i++ {
		base.Step(rule, wrap)
		hit.Step(rule, wrap)
		series = append(series, hamming(base.Cells(), hit.Cells()))
	}
	return series
}

func hamming(a, b []uint8) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

// DamageRate averages ln(d(t)/d(0))/t over the generations where the damage
// is still present. Healed perturbations contribute nothing, so a series
// that dies out immediately rates 0.
func DamageRate(series []int) float64 {
	if len(series) < 2 || series[0] <= 0 {
		return 0
	}
	d0 := float64(series[0])

	sum := 0.0
	count := 0
	for t := 1; t < len(series); t++ {
		if series[t] <= 0 {
			continue
		}
		sum += math.Log(float64(series[t])/d0) / float64(t)
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
