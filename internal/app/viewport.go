package app

import (
	"github.com/rs/zerolog"
	"github.com/san-kum/orrery/internal/camera"
)

// Viewport keeps the camera projection and draw surface matched to the
// window. Every resize event is applied immediately.
type Viewport struct {
	cam     *camera.Perspective
	surface Surface
	state   *State
	log     zerolog.Logger
}

func NewViewport(cam *camera.Perspective, surface Surface, st *State, log zerolog.Logger) *Viewport {
	return &Viewport{cam: cam, surface: surface, state: st, log: log}
}

// Resize applies new window dimensions. Non-positive sizes, as reported for
// minimised windows, are ignored.
func (v *Viewport) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.state.Width, v.state.Height = width, height
	v.cam.Aspect = float64(width) / float64(height)
	v.cam.UpdateProjection()
	v.surface.SetSize(width, height)
	v.log.Debug().Int("width", width).Int("height", height).Msg("viewport resized")
}
