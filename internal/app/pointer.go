package app

import (
	"github.com/rs/zerolog"
	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/scene"
)

// TooltipOffset is the tooltip's distance right of and below the pointer.
const TooltipOffset = 10.0

// Pointer hit-tests screen positions against the planet meshes only; the
// sun and starfield never intercept the ray.
type Pointer struct {
	scene    *scene.Scene
	cam      *camera.Perspective
	controls *camera.OrbitControls
	state    *State
	tooltip  Tooltip
	offset   orrery.Vec3
	rc       camera.Raycaster
	log      zerolog.Logger
}

func NewPointer(sc *scene.Scene, cam *camera.Perspective, ctl *camera.OrbitControls, st *State, tip Tooltip, zoomOffset orrery.Vec3, log zerolog.Logger) *Pointer {
	return &Pointer{
		scene:    sc,
		cam:      cam,
		controls: ctl,
		state:    st,
		tooltip:  tip,
		offset:   zoomOffset,
		log:      log,
	}
}

// NDC converts viewport pixels to normalized device coordinates.
func (p *Pointer) NDC(x, y float64) (float64, float64) {
	w, h := float64(p.state.Width), float64(p.state.Height)
	return (x/w)*2 - 1, -(y/h)*2 + 1
}

// Pick returns the nearest planet mesh under the pointer, or nil.
func (p *Pointer) Pick(x, y float64) *scene.Node {
	if p.state.Width <= 0 || p.state.Height <= 0 {
		return nil
	}
	nx, ny := p.NDC(x, y)
	p.rc.SetFromCamera(nx, ny, p.cam)
	hits := camera.Intersect(&p.rc, p.scene.Meshes)
	if len(hits) == 0 {
		return nil
	}
	return p.scene.Meshes[hits[0].Index]
}

// Move updates the hover target and tooltip.
func (p *Pointer) Move(x, y float64) {
	p.state.PointerX, p.state.PointerY = x, y
	mesh := p.Pick(x, y)
	p.state.Hovered = mesh
	if mesh == nil {
		p.tooltip.Hide()
		return
	}
	p.tooltip.Show(x+TooltipOffset, y+TooltipOffset, mesh.Name)
}

// DoubleClick focuses the controls on the planet under the pointer and
// jumps the camera to a fixed offset from it. The offset is not scaled by
// planet size. Reports whether a planet was hit.
func (p *Pointer) DoubleClick(x, y float64) bool {
	mesh := p.Pick(x, y)
	if mesh == nil {
		return false
	}
	world := mesh.WorldPosition()
	p.controls.Target = world
	p.cam.Position = world.Add(p.offset)
	p.log.Info().Str("planet", mesh.Name).Stringer("target", world).Msg("zoomed to planet")
	return true
}
