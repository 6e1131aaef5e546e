package app

import (
	"context"
	"time"

	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/scene"
)

const (
	SunSpin    = 0.0005 // rad per frame
	PlanetSpin = 0.01   // rad per frame
)

// Loop is the render loop. It has one state, running, and never exits on
// its own; the host stops calling Tick when it shuts down.
type Loop struct {
	scene    *scene.Scene
	controls *camera.OrbitControls
	state    *State
	renderer Renderer
	frames   uint64
}

func NewLoop(sc *scene.Scene, ctl *camera.OrbitControls, st *State, r Renderer) *Loop {
	return &Loop{scene: sc, controls: ctl, state: st, renderer: r}
}

// Tick advances one frame and draws it.
func (l *Loop) Tick() {
	l.controls.Update()
	if !l.state.Paused {
		l.scene.Sun.RotationY += SunSpin
		for _, p := range l.scene.Planets {
			p.Orbit.RotationY += p.Speed
			p.Mesh.RotationY += PlanetSpin
		}
	}
	l.renderer.Render(l.scene, l.controls.Camera)
	l.frames++
}

func (l *Loop) Frames() uint64 { return l.frames }

// Advance drives t for n frames without a display, for headless runs.
func Advance(t Ticker, n int) {
	for i := 0; i < n; i++ {
		t.Tick()
	}
}

// Run ticks t once per value received from frames until ctx is cancelled
// or frames is closed. A closed channel is a clean stop.
func Run(ctx context.Context, frames <-chan time.Time, t Ticker) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			t.Tick()
		}
	}
}
