package app

import (
	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/scene"
)

// State is the process-wide mutable view state, owned by App and shared by
// reference with the binder, pointer handler and loop.
type State struct {
	Paused    bool
	LightMode bool

	PointerX, PointerY float64
	Hovered            *scene.Node

	Width, Height int
}

// Label is a text widget such as the pause button caption.
type Label interface {
	SetText(text string)
}

// Tooltip is the hover overlay.
type Tooltip interface {
	Show(x, y float64, text string)
	Hide()
}

// Surface is the draw target resized alongside the camera.
type Surface interface {
	SetSize(width, height int)
}

// Renderer draws one frame of the scene through the camera.
type Renderer interface {
	Render(s *scene.Scene, cam *camera.Perspective)
}

// Ticker is advanced once per display frame by the host's frame source.
type Ticker interface {
	Tick()
}

// Elements are the host widgets the viewer binds to. All are required.
type Elements struct {
	Renderer   Renderer
	Surface    Surface
	PauseLabel Label
	Tooltip    Tooltip
}
