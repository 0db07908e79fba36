package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/sim"
	"github.com/san-kum/lifesim/internal/viz"
)

func testReport(t *testing.T) Report {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Pattern = "glider"
	cfg.Seed = 3
	st, err := cfg.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	results := []*sim.Result{
		{Run: 0, Seed: 3, Generations: 10, InitialLive: 5, FinalLive: 5, Metrics: map[string]float64{"peak_live": 5}, Final: []uint8{1}},
	}
	return NewReport(st, 10, results)
}

func TestReportJSON(t *testing.T) {
	r := testReport(t)
	var buf bytes.Buffer
	if err := Write(&buf, r, FormatJSON); err != nil {
		t.Fatal(err)
	}

	var got Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Mode != "2d" || got.Level != "beginner" || got.Rule != "B3/S23" {
		t.Errorf("unexpected header %+v", got)
	}
	if got.Runs != 1 || got.Results[0].Metrics["peak_live"] != 5 {
		t.Errorf("unexpected results %+v", got.Results)
	}
	if strings.Contains(buf.String(), "final\"") {
		t.Error("final board should not be encoded")
	}
}

func TestReportYAML(t *testing.T) {
	r := testReport(t)
	var buf bytes.Buffer
	if err := Write(&buf, r, FormatYAML); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "pattern: glider") {
		t.Errorf("missing pattern in:\n%s", buf.String())
	}

	var got Report
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid yaml: %v", err)
	}
	if got.Generations != 10 || got.Results[0].FinalLive != 5 {
		t.Errorf("unexpected report %+v", got)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, Report{}, "toml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := WriteFile(path, testReport(t), FormatJSON); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Error("file is not valid json")
	}
}

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 2) != "" {
		t.Error("nil canvas should give empty output")
	}

	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	svg := CanvasToSVG(c, 2)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Errorf("malformed svg: %q", svg)
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 dots, got %d", n)
	}
	if !strings.Contains(svg, `width="8" height="8"`) {
		t.Errorf("unexpected size in %q", svg)
	}
}

func TestBoardToSVG(t *testing.T) {
	cells := []uint8{
		0, 1, 0,
		0, 1, 0,
		0, 1, 0,
	}
	svg := BoardToSVG(cells, 3, 3, 10)
	if n := strings.Count(svg, "<rect x="); n != 3 {
		t.Errorf("expected 3 cells, got %d", n)
	}
	if !strings.Contains(svg, `<rect x="10.0" y="20.0"`) {
		t.Errorf("missing bottom cell in %q", svg)
	}
	if BoardToSVG(cells, 4, 4, 10) != "" {
		t.Error("short cell slice should give empty output")
	}
}

func TestPopulationToSVG(t *testing.T) {
	if PopulationToSVG([]int{4}, 100, 50, "#fff") != "" {
		t.Error("single sample should give empty output")
	}
	svg := PopulationToSVG([]int{0, 10, 5}, 100, 50, "#fff")
	if !strings.Contains(svg, "M0.0,45.0 L50.0,5.0 L100.0,25.0") {
		t.Errorf("unexpected path in %q", svg)
	}
}
