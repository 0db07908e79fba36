package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/patterns"
)

var (
	dataDir    string
	configFile string
	mode       string
	level      string
	rule       string
	pattern    string
	seed       int64
	speed      float64
	density    float64
	verbose    bool

	// headless runs
	generations int
	runs        int
	workers     int
	format      string
	exportFmt   string
	outFile     string
	svgDir      string
	save        bool

	// analyze
	sweepSteps int
	sweepRuns  int

	// views
	reducedMotion bool
	ambientGUI    bool
)

// main registers commands and flags, launches the live terminal view when
// no subcommand is given and exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "lifesim",
		Short:         "2D and 3D cellular automata lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			lvl := slog.LevelInfo
			if verbose {
				lvl = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
		},
		RunE: runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".lifesim", "data directory for saved runs")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&mode, "mode", config.DefaultMode, "board mode: 2d or 3d")
	pf.StringVar(&level, "level", config.DefaultLevel, "level preset: beginner, intermediate, advanced")
	pf.StringVar(&rule, "rule", "", "rule preset name or B/S string")
	pf.StringVar(&pattern, "pattern", "", "2D pattern or 3D seed to start from")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")
	pf.Float64Var(&speed, "speed", 0, "steps per second (overrides the level)")
	pf.Float64Var(&density, "density", 0, "random fill density (overrides the level)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view",
		RunE:  runLive,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless ensemble and summarize it",
		RunE:  runEnsemble,
	}
	runCmd.Flags().IntVarP(&generations, "generations", "g", 0, "generations per run (default from config)")
	runCmd.Flags().IntVarP(&runs, "runs", "n", 1, "number of independent runs")
	runCmd.Flags().IntVar(&workers, "workers", 0, "runs in flight (0 uses GOMAXPROCS)")
	runCmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, yaml")
	runCmd.Flags().StringVarP(&outFile, "out", "o", "", "write the json/yaml report to a file")
	runCmd.Flags().StringVar(&svgDir, "svg", "", "write SVG population charts and 2D final boards to this directory")
	runCmd.Flags().BoolVar(&save, "save", false, "save the ensemble to the data directory")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "detect cycles, measure damage spreading and sweep densities",
		RunE:  analyzeBoard,
	}
	analyzeCmd.Flags().IntVarP(&generations, "generations", "g", 0, "generations to search (default from config)")
	analyzeCmd.Flags().IntVar(&sweepSteps, "sweep", 0, "density sweep points (0 skips the sweep)")
	analyzeCmd.Flags().IntVar(&sweepRuns, "sweep-runs", 4, "runs per sweep point")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted sequence of ensembles",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the population of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&exportFmt, "format", "f", "json", "output format: json, yaml")

	ambientCmd := &cobra.Command{
		Use:   "ambient",
		Short: "self-sustaining background field in the terminal",
		RunE:  runAmbient,
	}
	ambientCmd.Flags().BoolVar(&reducedMotion, "reduced-motion", false, "slow cadence")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the session in a raylib window",
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&ambientGUI, "ambient", false, "show the ambient field instead of a session")
	guiCmd.Flags().BoolVar(&reducedMotion, "reduced-motion", false, "slow ambient cadence")

	levelsCmd := &cobra.Command{
		Use:   "levels",
		Short: "list level presets",
		RunE:  listLevels,
	}

	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "list rule presets",
		RunE:  listRules,
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list 2D patterns and 3D seeds",
		RunE:  listPatterns,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		RunE:  printConfig,
	}

	rootCmd.AddCommand(liveCmd, runCmd, analyzeCmd, scenarioCmd, listCmd, plotCmd, exportCmd,
		ambientCmd, guiCmd, levelsCmd, rulesCmd, patternsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, if any, and applies the flags that were
// set explicitly on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		slog.Debug("loaded config", "path", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = strings.ToLower(mode)
	}
	if flags.Changed("level") {
		cfg.Level = level
	}
	if flags.Changed("rule") {
		cfg.Rule = rule
	}
	if flags.Changed("pattern") {
		cfg.Pattern = pattern
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("density") {
		d := density
		cfg.Density = &d
	}
	if flags.Changed("generations") {
		cfg.Generations = generations
	}
	if flags.Changed("reduced-motion") {
		cfg.Ambient.ReducedMotion = reducedMotion
	}
	return cfg, nil
}

// loadSettings resolves the config into simulation settings and warns about
// a pattern the mode does not know.
func loadSettings(cmd *cobra.Command) (*config.Config, config.Settings, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Settings{}, err
	}
	seedFromClock(cfg)
	st, err := cfg.Resolve()
	if err != nil {
		return nil, config.Settings{}, err
	}
	if st.Pattern != "" && !knownPattern(st.Mode, st.Pattern) {
		slog.Warn("unknown pattern, using a random board", "mode", st.Mode, "pattern", st.Pattern)
	}
	slog.Debug("settings", "mode", st.Mode, "level", st.Level.Name, "rule", st.RuleSpec,
		"speed", st.StepsPerSecond, "density", st.Density, "seed", st.Seed)
	return cfg, st, nil
}

func knownPattern(mode, name string) bool {
	if mode == config.Mode3D {
		return slices.Contains(patterns.Names3D(), name)
	}
	return slices.Contains(patterns.Names2D(), name)
}

// seedFromClock replaces a zero seed.
func seedFromClock(cfg *config.Config) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		slog.Debug("seeded from clock", "seed", cfg.Seed)
	}
}
