package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/sim"
)

// Format names an encoding for Write.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Report is the portable summary of a headless ensemble.
type Report struct {
	Mode        string        `json:"mode" yaml:"mode"`
	Level       string        `json:"level" yaml:"level"`
	Rule        string        `json:"rule" yaml:"rule"`
	Pattern     string        `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Seed        int64         `json:"seed" yaml:"seed"`
	Generations int           `json:"generations" yaml:"generations"`
	Runs        int           `json:"runs" yaml:"runs"`
	Results     []*sim.Result `json:"results" yaml:"results"`
}

func NewReport(st config.Settings, generations int, results []*sim.Result) Report {
	return Report{
		Mode:        st.Mode,
		Level:       st.Level.Name,
		Rule:        st.RuleSpec,
		Pattern:     st.Pattern,
		Seed:        st.Seed,
		Generations: generations,
		Runs:        len(results),
		Results:     results,
	}
}

// Write encodes r to w.
func Write(w io.Writer, r Report, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("export: unknown format %q", format)
	}
}

// WriteFile encodes r to path, replacing any existing file.
func WriteFile(path string, r Report, format Format) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(file, r, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
