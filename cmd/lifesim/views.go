package main

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/lifesim/internal/gui"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/sim"
	"github.com/san-kum/lifesim/internal/viz"
)

// newSession builds a session and fills the board when no pattern was
// loaded.
func newSession(cmd *cobra.Command) (*sim.Session, error) {
	_, st, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}
	s := sim.NewSession(st)
	if st.Pattern == "" || !knownPattern(st.Mode, st.Pattern) {
		s.Randomize()
	}
	return s, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	p := tea.NewProgram(viz.NewLiveModel(s), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	slog.Debug("live view closed", "generation", s.Snapshot().Generation)
	return nil
}

func runAmbient(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	seedFromClock(cfg)

	m := viz.NewAmbientModel(cfg.Ambient, life.NewRNG(cfg.Seed), 80, 24)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	_, err = p.Run()
	return err
}

func runGUI(cmd *cobra.Command, args []string) error {
	if ambientGUI {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		seedFromClock(cfg)
		gui.RunAmbient(cfg.Ambient, life.NewRNG(cfg.Seed))
		return nil
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()
	gui.Run(s)
	return nil
}
