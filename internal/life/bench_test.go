package life

import "testing"

func BenchmarkStep2D(b *testing.B) {
	g := NewGrid(60, 60)
	g.Randomize(0.2, NewRNG(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Step(Classic, true)
	}
}

func BenchmarkStep3D(b *testing.B) {
	g := NewGrid3D(22)
	g.Randomize(0.12, NewRNG(1))
	rule := ParseRule("B5/S4,5")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Step(rule, true)
	}
}

func BenchmarkParseRule(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ParseRule("B5,6,7/S5,6,7,13")
	}
}
