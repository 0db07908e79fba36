package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lifesim/internal/automation"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/export"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/sim"
	"github.com/san-kum/lifesim/internal/storage"
	"github.com/san-kum/lifesim/internal/viz"
)

// maxPlotted caps the runs overlaid on one chart.
const maxPlotted = 6

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if format != "text" && format != string(export.FormatJSON) && format != string(export.FormatYAML) {
		return fmt.Errorf("unknown format: %s", format)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("running ensemble", "mode", st.Mode, "level", st.Level.Name, "rule", st.RuleSpec,
		"runs", runs, "generations", cfg.Generations)
	start := time.Now()

	results, err := sim.NewEnsemble(st, runs).
		WithLimit(workers).
		WithMetrics(metrics.Standard).
		WithHistory(true).
		Run(ctx, cfg.Generations)
	if err != nil {
		return err
	}
	slog.Debug("ensemble finished", "elapsed", time.Since(start))

	if save {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(storage.RunMetadata{
			Mode:        st.Mode,
			Level:       st.Level.Name,
			Rule:        st.RuleSpec,
			Pattern:     st.Pattern,
			Seed:        st.Seed,
			Generations: cfg.Generations,
		}, results)
		if err != nil {
			return err
		}
		slog.Info("saved run", "id", runID, "dir", dataDir)
	}

	if svgDir != "" {
		if err := writeSVGs(svgDir, st, results); err != nil {
			return err
		}
	}

	report := export.NewReport(st, cfg.Generations, results)
	if outFile != "" {
		f := export.Format(format)
		if format == "text" {
			f = export.FormatJSON
		}
		if err := export.WriteFile(outFile, report, f); err != nil {
			return err
		}
		slog.Info("wrote report", "path", outFile)
	}
	if format != "text" {
		return export.Write(os.Stdout, report, export.Format(format))
	}
	return printSummary(st, results, time.Since(start))
}

func printSummary(st config.Settings, results []*sim.Result, elapsed time.Duration) error {
	fmt.Printf("%s %s  rule %s  %d run(s) in %v\n\n", st.Mode, st.Level.Name, st.RuleSpec, len(results), elapsed.Round(time.Millisecond))

	series := make([][]float64, 0, maxPlotted)
	for _, r := range results[:min(len(results), maxPlotted)] {
		series = append(series, viz.Ints(r.Population))
	}
	if chart := viz.MultiPopulationChart(series, 70, 12, "live cells per generation"); chart != "" {
		fmt.Println(chart)
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSEED\tINITIAL\tFINAL\tPEAK\tMEAN\tEXTINCT AT\tSTABLE")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.0f\t%.1f\t%s\t%.2f\n",
			r.Run,
			r.Seed,
			r.InitialLive,
			r.FinalLive,
			r.Metrics["peak_live"],
			r.Metrics["mean_live"],
			extinctAt(r.Metrics["extinct_at"]),
			r.Metrics["stability"],
		)
	}
	return w.Flush()
}

func extinctAt(v float64) string {
	if v < 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f", v)
}

// writeSVGs writes one population chart per run and, for 2D boards, the
// final board.
func writeSVGs(dir string, st config.Settings, results []*sim.Result) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, r := range results {
		chart := export.PopulationToSVG(r.Population, 640, 240, "#7bd88f")
		if chart != "" {
			if err := os.WriteFile(filepath.Join(dir, fmt.Sprintf("run%d_population.svg", r.Run)), []byte(chart), 0644); err != nil {
				return err
			}
		}
		if st.Mode != config.Mode2D {
			continue
		}
		board := export.BoardToSVG(r.Final, st.Level.Rows, st.Level.Cols, 8)
		if err := os.WriteFile(filepath.Join(dir, fmt.Sprintf("run%d_board.svg", r.Run)), []byte(board), 0644); err != nil {
			return err
		}
	}
	slog.Info("wrote svg files", "dir", dir, "runs", len(results))
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, err := automation.RunScenario(ctx, sc, storage.New(dataDir), slog.Default())
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("%s\n", sc.Description)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tMODE\tLEVEL\tRULE\tRUNS\tMEAN FINAL\tSAVED AS")
	for _, sr := range out {
		mean := 0.0
		for _, r := range sr.Results {
			mean += float64(r.FinalLive)
		}
		mean /= float64(len(sr.Results))
		saved := sr.RunID
		if saved == "" {
			saved = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.1f\t%s\n",
			sr.Name, sr.Settings.Mode, sr.Settings.Level.Name, sr.Settings.RuleSpec, len(sr.Results), mean, saved)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tMODE\tLEVEL\tRULE\tRUNS\tGENERATIONS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Mode,
			run.Level,
			run.Rule,
			run.Runs,
			run.Generations,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadPopulation(runID)
	if err != nil {
		return err
	}
	if len(series) == 0 || len(series[0]) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("rule: %s (%s %s)\n", meta.Rule, meta.Mode, meta.Level)
	fmt.Printf("samples: %d\n\n", len(series[0]))

	for i, s := range series[:min(len(series), maxPlotted)] {
		if len(s) < 2 {
			continue
		}
		graph := asciigraph.Plot(viz.Ints(s),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Precision(0),
			asciigraph.Caption(fmt.Sprintf("run %d live cells", i)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	report := export.Report{
		Mode:        meta.Mode,
		Level:       meta.Level,
		Rule:        meta.Rule,
		Pattern:     meta.Pattern,
		Seed:        meta.Seed,
		Generations: meta.Generations,
		Runs:        meta.Runs,
		Results:     meta.Results,
	}
	return export.Write(os.Stdout, report, export.Format(exportFmt))
}
