package gui

import (
	"math/rand/v2"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/lifesim/internal/ambient"
)

// RunAmbient opens a resizable window showing the self-sustaining field at
// pixel scale. The field stops advancing while the window is unfocused or
// minimized.
func RunAmbient(cfg ambient.Config, rng *rand.Rand) {
	initWindow("lifesim ambient")
	defer rl.CloseWindow()

	field := ambient.New(cfg, int(rl.GetScreenWidth()), int(rl.GetScreenHeight()), rng)
	runner := ambient.NewRunner(field, nil)
	runner.Start()
	defer runner.Stop()

	visible, reduced := true, cfg.ReducedMotion
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
			return
		}
		if rl.IsKeyPressed(rl.KeyM) {
			reduced = !reduced
			runner.SetReducedMotion(reduced)
		}
		if rl.IsWindowResized() {
			runner.Resize(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))
		}
		if v := rl.IsWindowFocused() && !rl.IsWindowMinimized(); v != visible {
			visible = v
			runner.SetVisible(v)
		}

		rl.BeginDrawing()
		rl.ClearBackground(ColBg)
		runner.View(drawField)
		rl.EndDrawing()
	}
}

func drawField(f *ambient.Field) {
	g := f.Grid()
	cell := int32(f.Config().CellSize)
	cols := g.Cols()
	for i, v := range g.Cells() {
		if v == 0 {
			continue
		}
		r, c := int32(i/cols), int32(i%cols)
		rl.DrawRectangle(c*cell, r*cell, max(1, cell-1), max(1, cell-1), ColAmbient)
	}
}
