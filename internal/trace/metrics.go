package trace

import "math"

// Metric folds recorded frames into a single summary value.
type Metric interface {
	Name() string
	Observe(angles []float64)
	Value() float64
	Reset()
}

// Revolutions counts full orbits completed by one planet since the first
// observed frame.
type Revolutions struct {
	name       string
	col        int
	start, end float64
	samples    int
}

func NewRevolutions(planet string, col int) *Revolutions {
	return &Revolutions{name: planet + "_revolutions", col: col}
}

func (r *Revolutions) Name() string { return r.name }

func (r *Revolutions) Observe(angles []float64) {
	if r.col >= len(angles) {
		return
	}
	if r.samples == 0 {
		r.start = angles[r.col]
	}
	r.end = angles[r.col]
	r.samples++
}

func (r *Revolutions) Value() float64 {
	return math.Floor((r.end - r.start) / (2 * math.Pi))
}

func (r *Revolutions) Reset() {
	r.start, r.end, r.samples = 0, 0, 0
}

// MeanStep is the average per-frame angle change of one planet.
type MeanStep struct {
	name    string
	col     int
	last    float64
	sum     float64
	samples int
}

func NewMeanStep(planet string, col int) *MeanStep {
	return &MeanStep{name: planet + "_mean_step", col: col}
}

func (m *MeanStep) Name() string { return m.name }

func (m *MeanStep) Observe(angles []float64) {
	if m.col >= len(angles) {
		return
	}
	a := angles[m.col]
	if m.samples > 0 {
		m.sum += a - m.last
	}
	m.last = a
	m.samples++
}

func (m *MeanStep) Value() float64 {
	if m.samples < 2 {
		return 0
	}
	return m.sum / float64(m.samples-1)
}

func (m *MeanStep) Reset() {
	m.last, m.sum, m.samples = 0, 0, 0
}

// DefaultMetrics tracks revolutions and mean step for every planet.
func DefaultMetrics(names []string) []Metric {
	out := make([]Metric, 0, 2*len(names))
	for i, n := range names {
		out = append(out, NewRevolutions(n, i), NewMeanStep(n, i))
	}
	return out
}

// Evaluate replays frames through metrics and returns their values by name.
func Evaluate(frames [][]float64, metrics []Metric) map[string]float64 {
	out := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		m.Reset()
		for _, f := range frames {
			m.Observe(f)
		}
		out[m.Name()] = m.Value()
	}
	return out
}
