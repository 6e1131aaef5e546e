package viz

import (
	"math"
	"sort"

	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/scene"
)

// Renderer draws the scene into a Braille canvas with a painter's
// algorithm: stars first, then bodies far to near.
type Renderer struct {
	Canvas *Canvas
}

type projectedBody struct {
	x, y, r int
	depth   float64
	node    *scene.Node
}

func (r *Renderer) Render(s *scene.Scene, cam *camera.Perspective) {
	c := r.Canvas
	if c == nil || s == nil || cam == nil {
		return
	}
	c.Clear()
	pw, ph := float64(c.PixelWidth()), float64(c.PixelHeight())
	toPixel := func(x, y float64) (int, int) {
		return int(math.Floor((x + 1) / 2 * pw)), int(math.Floor((1 - y) / 2 * ph))
	}

	c.Ink = s.Env.StarColor
	for _, p := range s.Stars.Points {
		x, y, _, ok := cam.Project(p)
		if !ok || math.Abs(x) > 1 || math.Abs(y) > 1 {
			continue
		}
		c.Set(toPixel(x, y))
	}

	bodies := make([]projectedBody, 0, len(s.Meshes)+1)
	for _, n := range append([]*scene.Node{s.Sun}, s.Meshes...) {
		x, y, depth, ok := cam.Project(n.WorldPosition())
		if !ok {
			continue
		}
		px, py := toPixel(x, y)
		rad := int(math.Round(cam.ProjectRadius(n.Radius, depth) * ph / 2))
		bodies = append(bodies, projectedBody{px, py, rad, depth, n})
	}
	sort.Slice(bodies, func(i, j int) bool { return bodies[i].depth > bodies[j].depth })

	for _, b := range bodies {
		c.Ink = b.node.Color.Scale(s.Illumination(b.node))
		c.FillCircle(b.x, b.y, b.r)
	}
}

// Surface adapts the canvas to app.Surface; sizes are in sub-pixels.
type Surface struct {
	Canvas *Canvas
}

func (s Surface) SetSize(w, h int) {
	s.Canvas.Resize(w/2, h/4)
}
