package trace

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	metadataFile = "metadata.json"
	anglesFile   = "angles.csv"
)

// Store keeps one directory per run under baseDir.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Frames    int                `json:"frames"`
	Paused    bool               `json:"paused"`
	Speeds    map[string]float64 `json:"speeds"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes meta and the recorded angles to a new run directory and
// returns its id.
func (s *Store) Save(meta RunMetadata, rec *Recorder) (string, error) {
	meta.ID = uuid.NewString()
	meta.Frames = len(rec.Frames)
	if meta.Metrics == nil {
		meta.Metrics = Evaluate(rec.Frames, DefaultMetrics(rec.Names))
	}
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := writeRun(runDir, meta, rec); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	return meta.ID, nil
}

func writeRun(runDir string, meta RunMetadata, rec *Recorder) error {
	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		metaFile.Close()
		return err
	}
	if err := metaFile.Close(); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(runDir, anglesFile))
	if err != nil {
		return err
	}
	if err := writeAngles(csvFile, rec); err != nil {
		csvFile.Close()
		return err
	}
	return csvFile.Close()
}

func writeAngles(out io.Writer, rec *Recorder) error {
	w := csv.NewWriter(out)
	if err := w.Write(append([]string{"frame"}, rec.Names...)); err != nil {
		return err
	}
	for i, angles := range rec.Frames {
		row := []string{strconv.Itoa(i + 1)}
		for _, a := range angles {
			row = append(row, strconv.FormatFloat(a, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
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
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadAngles reads a run's planet names and per-frame angles.
func (s *Store) LoadAngles(runID string) ([]string, [][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, anglesFile))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s: missing header", anglesFile)
	}

	names := records[0][1:]
	frames := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		angles := make([]float64, 0, len(names))
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", anglesFile, err)
			}
			angles = append(angles, v)
		}
		frames = append(frames, angles)
	}
	return names, frames, nil
}

// Series loads one planet's angle column from a saved run.
func (s *Store) Series(runID, name string) ([]float64, error) {
	names, frames, err := s.LoadAngles(runID)
	if err != nil {
		return nil, err
	}
	out, ok := series(names, frames, name)
	if !ok {
		return nil, fmt.Errorf("run %s has no planet %q", runID, name)
	}
	return out, nil
}
