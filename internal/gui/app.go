package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/patterns"
	"github.com/san-kum/lifesim/internal/sim"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAlive   = rl.NewColor(210, 230, 215, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(30, 30, 30, 255)
	ColCursor  = rl.NewColor(255, 216, 102, 255)
	ColAmbient = rl.NewColor(70, 92, 78, 255)
)

const (
	windowWidth  = 1280
	windowHeight = 720
	panelWidth   = 280
	margin       = 16
	orbitSpeed   = 0.01
	speedFactor  = 1.25
)

// App is the windowed session view.
type App struct {
	session    *sim.Session
	history    *metrics.History
	camera     rl.Camera3D
	yaw, pitch float64
	distance   float64
	patternIdx int
	painting   bool
	flash      string
}

func initWindow(title string) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, title)
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func NewApp(s *sim.Session) *App {
	a := &App{
		session:  s,
		history:  metrics.NewHistory(300),
		yaw:      0.6,
		pitch:    0.45,
		distance: 2.2,
		camera: rl.NewCamera3D(
			rl.NewVector3(0, 0, 50),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			45.0,
			rl.CameraPerspective,
		),
	}
	s.AddObserver(a.history)
	return a
}

// Run opens a window on s and blocks until it is closed.
func Run(s *sim.Session) {
	initWindow("lifesim")
	defer rl.CloseWindow()
	app := NewApp(s)
	app.RunLoop()
}

func (a *App) RunLoop() {
	defer a.session.Pause()
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles input for one frame. It returns false when the user quits.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}

	snap := a.session.Snapshot()
	is3D := snap.Mode == config.Mode3D

	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		a.session.Toggle()
	case rl.IsKeyPressed(rl.KeyN):
		if err := a.session.Step(); err != nil {
			a.flash = "pause before stepping"
		}
	case rl.IsKeyPressed(rl.KeyR):
		a.session.Randomize()
		a.history.Reset()
	case rl.IsKeyPressed(rl.KeyC):
		a.session.Clear()
		a.history.Reset()
	case rl.IsKeyPressed(rl.KeyTab):
		a.patternIdx++
	case rl.IsKeyPressed(rl.KeyP):
		name := a.patternName(is3D)
		a.session.ApplyPattern(name)
		a.history.Reset()
		a.flash = "applied " + name
	case rl.IsKeyPressed(rl.KeyM):
		next := config.Mode3D
		if is3D {
			next = config.Mode2D
		}
		if err := a.session.SetMode(next); err != nil {
			a.flash = err.Error()
		}
		a.history.Reset()
	case rl.IsKeyPressed(rl.KeyOne):
		a.setLevel("beginner")
	case rl.IsKeyPressed(rl.KeyTwo):
		a.setLevel("intermediate")
	case rl.IsKeyPressed(rl.KeyThree):
		a.setLevel("advanced")
	case rl.IsKeyPressed(rl.KeyRightBracket):
		a.adjustSpeed(snap.StepsPerSecond * speedFactor)
	case rl.IsKeyPressed(rl.KeyLeftBracket):
		a.adjustSpeed(snap.StepsPerSecond / speedFactor)
	}

	if is3D {
		a.updateOrbit()
	} else {
		a.updatePaint(snap)
	}
	return true
}

func (a *App) setLevel(name string) {
	if err := a.session.SetLevel(name); err != nil {
		a.flash = err.Error()
		return
	}
	a.history.Reset()
}

func (a *App) adjustSpeed(sps float64) {
	if err := a.session.SetSpeed(max(0.5, min(sps, 60))); err != nil {
		a.flash = err.Error()
	}
}

func (a *App) patternName(is3D bool) string {
	names := patterns.Names2D()
	if is3D {
		names = patterns.Names3D()
	}
	return names[a.patternIdx%len(names)]
}

// updatePaint toggles the cell under a click and paints live cells while
// the button is held.
func (a *App) updatePaint(snap sim.Snapshot) {
	lay := fitBoard(int(rl.GetScreenWidth())-panelWidth, int(rl.GetScreenHeight()), snap.Rows, snap.Cols)
	mouse := rl.GetMousePosition()
	r, c, ok := lay.cellAt(mouse.X, mouse.Y)

	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		a.painting = true
		if ok {
			a.session.ToggleCell(r, c)
		}
	case rl.IsMouseButtonDown(rl.MouseButtonLeft):
		if a.painting && ok {
			a.session.Paint(r, c, true)
		}
	default:
		a.painting = false
	}
}

func (a *App) updateOrbit() {
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) || rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		a.yaw -= float64(d.X) * orbitSpeed
		a.pitch = math.Max(-1.5, math.Min(1.5, a.pitch+float64(d.Y)*orbitSpeed))
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.distance = math.Max(0.8, math.Min(6, a.distance*math.Pow(0.9, float64(wheel))))
	}
	a.camera.Position = rl.NewVector3(
		float32(a.distance*math.Cos(a.pitch)*math.Sin(a.yaw)),
		float32(a.distance*math.Sin(a.pitch)),
		float32(a.distance*math.Cos(a.pitch)*math.Cos(a.yaw)),
	)
	a.camera.Target = rl.NewVector3(0, 0, 0)
}

func (a *App) Draw() {
	snap := a.session.Snapshot()

	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
	boardWidth := int(rl.GetScreenWidth()) - panelWidth
	if snap.Mode == config.Mode3D {
		a.drawLattice(snap)
	} else {
		drawBoard(snap, fitBoard(boardWidth, int(rl.GetScreenHeight()), snap.Rows, snap.Cols))
	}
	a.drawPanel(snap, int32(boardWidth))
	rl.EndDrawing()
}

func (a *App) drawPanel(snap sim.Snapshot, x int32) {
	rl.DrawRectangle(x, 0, panelWidth, int32(rl.GetScreenHeight()), rl.NewColor(16, 16, 16, 255))
	x += margin
	y := int32(margin)
	line := func(text string, col rl.Color) {
		rl.DrawText(text, x, y, 18, col)
		y += 26
	}

	status := "PAUSED"
	if snap.Running {
		status = "RUNNING"
	}
	line(fmt.Sprintf("LIFE %s  %s", snap.Mode, status), ColAccent)
	y += 8
	line(fmt.Sprintf("level       %s", snap.Level), ColText)
	line(fmt.Sprintf("rule        %s", snap.Rule), ColText)
	line(fmt.Sprintf("generation  %d", snap.Generation), ColText)
	line(fmt.Sprintf("live        %d", snap.Live), ColText)
	line(fmt.Sprintf("speed       %.1f/s", snap.StepsPerSecond), ColText)
	line(fmt.Sprintf("pattern     %s", a.patternName(snap.Mode == config.Mode3D)), ColText)
	if a.flash != "" {
		line(a.flash, ColCursor)
	}

	y += 8
	drawSparkline(a.history.Values(), x, y, panelWidth-2*margin, 60)
	y += 80
	for _, h := range []string{"space  run / pause", "n      step", "r / c  random / clear", "tab p  pattern", "1-3    level", "m      2D / 3D", "[ ]    speed", "q      quit"} {
		line(h, ColTextDim)
	}
}
