// Package trace records planet orbit angles over headless frame runs and
// persists them as run directories.
package trace

import (
	"github.com/san-kum/orrery/internal/app"
	"github.com/san-kum/orrery/internal/scene"
)

// Recorder wraps a ticker and samples every orbit pivot angle after each
// tick.
type Recorder struct {
	next   app.Ticker
	scene  *scene.Scene
	Names  []string
	Frames [][]float64
}

func NewRecorder(sc *scene.Scene, next app.Ticker) *Recorder {
	names := make([]string, len(sc.Planets))
	for i, p := range sc.Planets {
		names[i] = p.Name
	}
	return &Recorder{next: next, scene: sc, Names: names}
}

func (r *Recorder) Tick() {
	r.next.Tick()
	angles := make([]float64, len(r.scene.Planets))
	for i, p := range r.scene.Planets {
		angles[i] = p.Orbit.RotationY
	}
	r.Frames = append(r.Frames, angles)
}

// Series returns one planet's angle per recorded frame.
func (r *Recorder) Series(name string) ([]float64, bool) {
	return series(r.Names, r.Frames, name)
}

func series(names []string, frames [][]float64, name string) ([]float64, bool) {
	col := -1
	for i, n := range names {
		if n == name {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, false
	}
	out := make([]float64, 0, len(frames))
	for _, f := range frames {
		if col < len(f) {
			out = append(out, f[col])
		}
	}
	return out, true
}
