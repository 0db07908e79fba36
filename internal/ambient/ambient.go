// Package ambient implements the self-sustaining background automaton: a
// wrapped B3/S23 board that reseeds itself so it never dies out.
package ambient

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/san-kum/lifesim/internal/life"
)

const (
	DefaultCellSize              = 6
	DefaultInitialDensity        = 0.10
	DefaultBaseInterval          = 650 * time.Millisecond
	DefaultReducedMotionInterval = 10 * time.Second
	DefaultMicroSeedEvery        = 300
	DefaultMinLive               = 60
)

// Config tunes the ambient field. The zero value is not useful; start from
// DefaultConfig.
type Config struct {
	CellSize              int           `yaml:"cell_size"`
	InitialDensity        float64       `yaml:"initial_density"`
	BaseInterval          time.Duration `yaml:"base_interval"`
	ReducedMotionInterval time.Duration `yaml:"reduced_motion_interval"`
	MicroSeedEvery        int           `yaml:"micro_seed_every"`
	MinLive               int           `yaml:"min_live"`
	ReducedMotion         bool          `yaml:"reduced_motion"`
}

func DefaultConfig() Config {
	return Config{
		CellSize:              DefaultCellSize,
		InitialDensity:        DefaultInitialDensity,
		BaseInterval:          DefaultBaseInterval,
		ReducedMotionInterval: DefaultReducedMotionInterval,
		MicroSeedEvery:        DefaultMicroSeedEvery,
		MinLive:               DefaultMinLive,
	}
}

// Cluster size ranges for the two reseeding strategies.
const (
	microClustersMin, microClustersMax = 2, 3
	microCellsMin, microCellsMax       = 8, 20
	microRadius                        = 2

	rescueClustersMin, rescueClustersMax = 2, 4
	rescueCellsMin, rescueCellsMax       = 10, 25
	rescueRadius                         = 3

	attemptsPerCell = 8
)

// TickReport summarizes one Tick.
type TickReport struct {
	Generation  int
	Live        int
	MicroSeeded int
	Rescued     int
}

// Field is the ambient board sized from a viewport in pixels.
type Field struct {
	cfg           Config
	grid          *life.Grid
	rng           *rand.Rand
	width, height int
}

// New builds a field for a width x height pixel viewport and seeds it.
func New(cfg Config, width, height int, rng *rand.Rand) *Field {
	if cfg.CellSize <= 0 {
		cfg.CellSize = DefaultCellSize
	}
	f := &Field{cfg: cfg, rng: rng}
	f.Resize(width, height)
	return f
}

func (f *Field) Grid() *life.Grid { return f.grid }
func (f *Field) Config() Config   { return f.cfg }

// Dimensions returns the grid size a viewport maps to.
func Dimensions(width, height, cellSize int) (rows, cols int) {
	width = max(1, width)
	height = max(1, height)
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	cols = int(math.Ceil(float64(width) / float64(cellSize)))
	rows = int(math.Ceil(float64(height) / float64(cellSize)))
	return rows, cols
}

// Resize rebuilds the board for a new viewport, restarting at generation 0
// with a fresh random fill. A fill that is already too sparse is rescued
// immediately.
func (f *Field) Resize(width, height int) {
	f.width, f.height = width, height
	rows, cols := Dimensions(width, height, f.cfg.CellSize)
	f.grid = life.NewGrid(rows, cols)
	f.grid.Randomize(f.cfg.InitialDensity, f.rng)
	if f.grid.Live() < f.cfg.MinLive {
		f.InjectRescueSeed()
	}
}

// Interval returns the step cadence for the motion preference.
func (f *Field) Interval(reducedMotion bool) time.Duration {
	if reducedMotion {
		return f.cfg.ReducedMotionInterval
	}
	return f.cfg.BaseInterval
}

// Tick steps the board once, then applies the periodic micro-seed and, if the
// population fell below the floor, the rescue seed.
func (f *Field) Tick() TickReport {
	f.grid.Step(life.Classic, true)

	var rep TickReport
	if f.cfg.MicroSeedEvery > 0 && f.grid.Generation()%f.cfg.MicroSeedEvery == 0 {
		rep.MicroSeeded = f.InjectMicroSeed()
	}
	if f.grid.Live() < f.cfg.MinLive {
		rep.Rescued = f.InjectRescueSeed()
	}
	rep.Generation = f.grid.Generation()
	rep.Live = f.grid.Live()
	return rep
}

// InjectMicroSeed drops 2-3 small clusters totalling 8-20 cells at random
// spots. It returns the number of cells brought to life.
func (f *Field) InjectMicroSeed() int {
	clusters := life.RandInt(f.rng, microClustersMin, microClustersMax)
	remaining := life.RandInt(f.rng, microCellsMin, microCellsMax)

	placed := 0
	for i := 0; i < clusters; i++ {
		left := clusters - i
		cells := remaining
		if left > 1 {
			lo := max(2, remaining/left)
			hi := max(lo, (remaining+left-1)/left+1)
			cells = min(life.RandInt(f.rng, lo, hi), remaining)
		}
		remaining -= cells
		placed += f.injectCluster(f.randomRow(), f.randomCol(), cells, microRadius)
	}
	return placed
}

// InjectRescueSeed drops 2-4 clusters of 10-25 cells each. It returns the
// number of cells brought to life.
func (f *Field) InjectRescueSeed() int {
	clusters := life.RandInt(f.rng, rescueClustersMin, rescueClustersMax)
	placed := 0
	for i := 0; i < clusters; i++ {
		cells := life.RandInt(f.rng, rescueCellsMin, rescueCellsMax)
		placed += f.injectCluster(f.randomRow(), f.randomCol(), cells, rescueRadius)
	}
	return placed
}

// injectCluster scatters up to cells live cells within radius of (r, c),
// skipping targets that are off the board or already alive.
func (f *Field) injectCluster(r, c, cells, radius int) int {
	placed := 0
	for attempts := 0; placed < cells && attempts < cells*attemptsPerCell; attempts++ {
		nr := r + life.RandInt(f.rng, -radius, radius)
		nc := c + life.RandInt(f.rng, -radius, radius)
		if nr < 0 || nr >= f.grid.Rows() || nc < 0 || nc >= f.grid.Cols() {
			continue
		}
		if f.grid.Alive(nr, nc) {
			continue
		}
		f.grid.Set(nr, nc, true)
		placed++
	}
	return placed
}

func (f *Field) randomRow() int { return life.RandInt(f.rng, 0, f.grid.Rows()-1) }
func (f *Field) randomCol() int { return life.RandInt(f.rng, 0, f.grid.Cols()-1) }
