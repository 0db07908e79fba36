package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/lifesim/internal/sim"
)

const (
	metadataFile   = "metadata.json"
	populationFile = "population.csv"
)

var ErrNoResults = errors.New("storage: no results to save")

// Store keeps headless ensemble runs on disk, one directory per run.
type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes a saved ensemble.
type RunMetadata struct {
	ID          string        `json:"id"`
	Timestamp   time.Time     `json:"timestamp"`
	Mode        string        `json:"mode"`
	Level       string        `json:"level"`
	Rule        string        `json:"rule"`
	Pattern     string        `json:"pattern,omitempty"`
	Seed        int64         `json:"seed"`
	Runs        int           `json:"runs"`
	Generations int           `json:"generations"`
	Results     []*sim.Result `json:"results"`
}

// Save writes metadata.json and a population.csv with one column per run.
// Population columns are written only for results that kept their history.
func (s *Store) Save(meta RunMetadata, results []*sim.Result) (string, error) {
	if len(results) == 0 {
		return "", ErrNoResults
	}

	ts := s.now()
	runID := fmt.Sprintf("%s_%s_%d", meta.Mode, meta.Level, ts.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = ts
	meta.Runs = len(results)
	meta.Results = make([]*sim.Result, len(results))
	for i, r := range results {
		// the series goes to the CSV
		cp := *r
		cp.Population = nil
		meta.Results[i] = &cp
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writePopulation(filepath.Join(runDir, populationFile), results); err != nil {
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writePopulation(path string, results []*sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"generation"}
	rows := 0
	for _, r := range results {
		header = append(header, fmt.Sprintf("run%d", r.Run))
		rows = max(rows, len(r.Population))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for g := 0; g < rows; g++ {
		row := []string{strconv.Itoa(g)}
		for _, r := range results {
			if g < len(r.Population) {
				row = append(row, strconv.Itoa(r.Population[g]))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, newest first. A missing base directory
// is an empty store.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadPopulation reads the per-run population series of a saved ensemble,
// indexed by column order. Blank cells end a series.
func (s *Store) LoadPopulation(runID string) ([][]int, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, populationFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return [][]int{}, nil
	}

	series := make([][]int, len(records[0])-1)
	for _, record := range records[1:] {
		for j := 1; j < len(record) && j <= len(series); j++ {
			if record[j] == "" {
				continue
			}
			v, err := strconv.Atoi(record[j])
			if err != nil {
				return nil, fmt.Errorf("storage: %s: %w", runID, err)
			}
			series[j-1] = append(series[j-1], v)
		}
	}
	return series, nil
}
