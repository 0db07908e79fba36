package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/sim"
	"github.com/san-kum/lifesim/internal/storage"
)

// Scenario is a scripted sequence of headless ensembles.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is one ensemble. Zero fields fall back to the defaults of a fresh
// config.
type Step struct {
	Name        string   `yaml:"name"`
	Mode        string   `yaml:"mode"`
	Level       string   `yaml:"level"`
	Rule        string   `yaml:"rule"`
	Pattern     string   `yaml:"pattern"`
	Seed        int64    `yaml:"seed"`
	Density     *float64 `yaml:"density"`
	Runs        int      `yaml:"runs"`
	Generations int      `yaml:"generations"`
	Save        bool     `yaml:"save"`
}

// StepResult is the outcome of one step. RunID is set when the step was
// saved.
type StepResult struct {
	Name     string
	Settings config.Settings
	Results  []*sim.Result
	RunID    string
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}
	return &scenario, nil
}

// Config builds the full config for the step.
func (s Step) Config() *config.Config {
	cfg := config.DefaultConfig()
	if s.Mode != "" {
		cfg.Mode = s.Mode
	}
	if s.Level != "" {
		cfg.Level = s.Level
	}
	if s.Generations > 0 {
		cfg.Generations = s.Generations
	}
	cfg.Rule = s.Rule
	cfg.Pattern = s.Pattern
	cfg.Seed = s.Seed
	cfg.Density = s.Density
	return cfg
}

// RunScenario executes all steps in order. Steps marked save are written to
// store, which may be nil when no step saves. The results of completed
// steps are returned along with the first error.
func RunScenario(ctx context.Context, scenario *Scenario, store *storage.Store, log *slog.Logger) ([]StepResult, error) {
	if log == nil {
		log = slog.Default()
	}
	out := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step %d", i+1)
		}

		cfg := step.Config()
		st, err := cfg.Resolve()
		if err != nil {
			return out, fmt.Errorf("%s: %w", name, err)
		}
		runs := max(1, step.Runs)

		log.Info("running step", "step", name, "mode", st.Mode, "level", st.Level.Name,
			"rule", st.RuleSpec, "runs", runs, "generations", cfg.Generations)

		results, err := sim.NewEnsemble(st, runs).
			WithMetrics(metrics.Standard).
			WithHistory(step.Save).
			Run(ctx, cfg.Generations)
		if err != nil {
			return out, fmt.Errorf("%s: %w", name, err)
		}

		sr := StepResult{Name: name, Settings: st, Results: results}
		if step.Save {
			if store == nil {
				return out, fmt.Errorf("%s: save requested without a store", name)
			}
			meta := storage.RunMetadata{
				Mode:        st.Mode,
				Level:       st.Level.Name,
				Rule:        st.RuleSpec,
				Pattern:     st.Pattern,
				Seed:        st.Seed,
				Generations: cfg.Generations,
			}
			if sr.RunID, err = store.Save(meta, results); err != nil {
				return out, fmt.Errorf("%s: %w", name, err)
			}
			log.Debug("saved step", "step", name, "id", sr.RunID)
		}
		out = append(out, sr)
	}

	return out, nil
}
