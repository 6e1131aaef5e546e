package trace

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/orrery/internal/app"
	"github.com/san-kum/orrery/internal/scene"
)

type countTicker struct {
	sc *scene.Scene
	n  int
}

func (c *countTicker) Tick() {
	c.n++
	for _, p := range c.sc.Planets {
		p.Orbit.RotationY += p.Speed
	}
}

func newRecorder(t *testing.T, frames int) *Recorder {
	t.Helper()
	opts := scene.DefaultOptions()
	opts.StarCount = 10
	sc := scene.Build(scene.DefaultPlanets(), opts)
	rec := NewRecorder(sc, &countTicker{sc: sc})
	app.Advance(rec, frames)
	return rec
}

func TestRecorderSamplesEveryFrame(t *testing.T) {
	rec := newRecorder(t, 5)
	if len(rec.Frames) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(rec.Frames))
	}
	if len(rec.Names) != 8 || rec.Names[2] != "Earth" {
		t.Errorf("unexpected names %v", rec.Names)
	}

	earth, ok := rec.Series("Earth")
	if !ok {
		t.Fatal("expected Earth series")
	}
	for i, a := range earth {
		want := float64(i+1) * 0.002
		if math.Abs(a-want) > 1e-12 {
			t.Errorf("frame %d: expected %v, got %v", i, want, a)
		}
	}

	if _, ok := rec.Series("Pluto"); ok {
		t.Error("expected no Pluto series")
	}
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	rec := newRecorder(t, 3)
	runID, err := st.Save(RunMetadata{Preset: "classic", Seed: 42}, rec)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Preset != "classic" || meta.Seed != 42 || meta.Frames != 3 {
		t.Errorf("unexpected metadata %+v", meta)
	}

	if got := meta.Metrics["Earth_mean_step"]; math.Abs(got-0.002) > 1e-12 {
		t.Errorf("expected Earth mean step 0.002, got %v", got)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, runID, "angles.csv"))
	if err != nil {
		t.Fatalf("read csv failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "frame,Mercury,Venus,Earth") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,0.004000,") {
		t.Errorf("unexpected first row %q", lines[1])
	}

	names, frames, err := st.LoadAngles(runID)
	if err != nil {
		t.Fatalf("load angles failed: %v", err)
	}
	if len(names) != 8 || len(frames) != 3 {
		t.Errorf("expected 8 names and 3 frames, got %d and %d", len(names), len(frames))
	}

	mars, err := st.Series(runID, "Mars")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(mars[2]-0.0045) > 1e-9 {
		t.Errorf("expected 0.0045, got %v", mars[2])
	}
	if _, err := st.Series(runID, "Pluto"); err == nil {
		t.Error("expected error for unknown planet")
	}
}

func TestStoreList(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "missing"))
	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v %v", runs, err)
	}

	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	rec := newRecorder(t, 1)
	for i := 0; i < 2; i++ {
		if _, err := st.Save(RunMetadata{}, rec); err != nil {
			t.Fatal(err)
		}
	}
	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 || runs[0].ID == runs[1].ID {
		t.Errorf("expected 2 distinct runs, got %+v", runs)
	}
}

func TestRevolutions(t *testing.T) {
	frames := [][]float64{{0}, {math.Pi}, {2*math.Pi + 0.1}, {4*math.Pi + 0.2}}
	vals := Evaluate(frames, []Metric{NewRevolutions("Earth", 0), NewMeanStep("Earth", 0)})
	if vals["Earth_revolutions"] != 2 {
		t.Errorf("expected 2 revolutions, got %v", vals["Earth_revolutions"])
	}
	want := (4*math.Pi + 0.2) / 3
	if math.Abs(vals["Earth_mean_step"]-want) > 1e-12 {
		t.Errorf("expected mean step %v, got %v", want, vals["Earth_mean_step"])
	}

	empty := Evaluate(nil, DefaultMetrics([]string{"Mars"}))
	if len(empty) != 2 || empty["Mars_mean_step"] != 0 {
		t.Errorf("unexpected empty metrics %v", empty)
	}
}

func TestStoreSaveCleansUpFailedRun(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	rec := newRecorder(t, 2)
	// NaN cannot be encoded as JSON
	if _, err := st.Save(RunMetadata{Metrics: map[string]float64{"bad": math.NaN()}}, rec); err == nil {
		t.Fatal("expected save error")
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no run directories left behind, got %d", len(entries))
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteAnglesReportsWriteError(t *testing.T) {
	rec := newRecorder(t, 2)
	if err := writeAngles(failingWriter{}, rec); err == nil {
		t.Error("expected write error")
	}
}
