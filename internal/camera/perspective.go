package camera

import (
	"math"

	"github.com/san-kum/orrery/internal/orrery"
)

type Perspective struct {
	Position orrery.Vec3
	Up       orrery.Vec3
	FOV      float64 // vertical, degrees
	Aspect   float64
	Near     float64
	Far      float64

	lookAt     orrery.Vec3
	projAspect float64
	tanHalf    float64
}

func NewPerspective(fov, aspect, near, far float64) *Perspective {
	c := &Perspective{
		Up:     orrery.V(0, 1, 0),
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
	c.UpdateProjection()
	return c
}

// UpdateProjection latches FOV and Aspect into the projection.
func (c *Perspective) UpdateProjection() {
	c.projAspect = c.Aspect
	c.tanHalf = math.Tan(c.FOV * math.Pi / 360)
}

// ProjectionAspect is the aspect ratio in effect for projection and rays.
func (c *Perspective) ProjectionAspect() float64 { return c.projAspect }

func (c *Perspective) LookAt(p orrery.Vec3) { c.lookAt = p }

func (c *Perspective) Target() orrery.Vec3 { return c.lookAt }

// Basis returns the camera's forward, right and up unit vectors.
func (c *Perspective) Basis() (forward, right, up orrery.Vec3) {
	forward = c.lookAt.Sub(c.Position).Normalize()
	if forward.IsZero() {
		forward = orrery.V(0, 0, -1)
	}
	right = forward.Cross(c.Up).Normalize()
	if right.IsZero() {
		right = orrery.V(1, 0, 0)
	}
	up = right.Cross(forward)
	return forward, right, up
}

// Project maps a world point to normalized device coordinates. depth is the
// distance along the view axis; ok is false behind the near plane or past
// the far plane.
func (c *Perspective) Project(p orrery.Vec3) (x, y, depth float64, ok bool) {
	forward, right, up := c.Basis()
	v := p.Sub(c.Position)
	depth = v.Dot(forward)
	if depth <= c.Near || depth > c.Far {
		return 0, 0, depth, false
	}
	x = v.Dot(right) / (depth * c.tanHalf * c.projAspect)
	y = v.Dot(up) / (depth * c.tanHalf)
	return x, y, depth, true
}

// ProjectRadius returns the NDC-space vertical extent of a sphere of the
// given radius at the given depth.
func (c *Perspective) ProjectRadius(radius, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return radius / (depth * c.tanHalf)
}

// Direction returns the unit world direction through an NDC point.
func (c *Perspective) Direction(ndcX, ndcY float64) orrery.Vec3 {
	forward, right, up := c.Basis()
	d := forward.
		Add(right.Scale(ndcX * c.tanHalf * c.projAspect)).
		Add(up.Scale(ndcY * c.tanHalf))
	return d.Normalize()
}

// TanHalfFOV exposes the latched tan(fov/2) for pan scaling.
func (c *Perspective) TanHalfFOV() float64 { return c.tanHalf }
