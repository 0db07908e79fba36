package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/patterns"
)

func listLevels(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tLEVEL\tBOARD\tSPEED\tWRAP\tFILL\tSUMMARY")
	for _, m := range []string{config.Mode2D, config.Mode3D} {
		for _, name := range config.ListLevels(m) {
			lv, _ := config.GetLevel(m, name)
			board := fmt.Sprintf("%dx%d", lv.Rows, lv.Cols)
			if m == config.Mode3D {
				board = fmt.Sprintf("%d^3", lv.Size)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%.0f/s\t%t\t%.2f\t%s\n",
				m, lv.Name, board, lv.StepsPerSecond, lv.Wrap, lv.RandomFill, lv.Summary)
		}
	}
	return w.Flush()
}

func listRules(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tNAME\tRULE\tDESCRIPTION")
	for _, m := range []string{config.Mode2D, config.Mode3D} {
		def := config.DefaultRule(m)
		for _, name := range config.ListRules(m) {
			p := config.Rules[name]
			desc := p.Description
			if name == def {
				desc += " (default)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m, p.Name, p.Spec, desc)
		}
	}
	return w.Flush()
}

func listPatterns(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tNAME\tCELLS\tDESCRIPTION")
	for _, name := range patterns.Names2D() {
		fmt.Fprintf(w, "2d\t%s\t%d\t%s\n", name, len(patterns.Offsets(name)), patterns.Describe(name))
	}
	for _, name := range patterns.Names3D() {
		cells := "-"
		if offs := patterns.Offsets3D(name); offs != nil {
			cells = fmt.Sprintf("%d", len(offs))
		}
		fmt.Fprintf(w, "3d\t%s\t%s\t%s\n", name, cells, patterns.Describe(name))
	}
	return w.Flush()
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return config.Encode(os.Stdout, cfg)
}
