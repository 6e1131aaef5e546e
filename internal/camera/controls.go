package camera

import (
	"math"

	"github.com/san-kum/orrery/internal/orrery"
)

const (
	DefaultDampingFactor = 0.05
	DefaultMinDistance   = 50.0
	DefaultMaxDistance   = 1000.0

	settle   = 1e-6
	polarEps = 1e-6
)

// OrbitControls orbits a camera around Target. Input methods queue deltas
// that Update consumes, spread over several frames when damping is on.
type OrbitControls struct {
	Camera        *Perspective
	Target        orrery.Vec3
	EnableDamping bool
	DampingFactor float64
	MinDistance   float64
	MaxDistance   float64

	thetaDelta float64
	phiDelta   float64
	scale      float64
	panOffset  orrery.Vec3
}

func NewOrbitControls(cam *Perspective) *OrbitControls {
	c := &OrbitControls{
		Camera:        cam,
		EnableDamping: true,
		DampingFactor: DefaultDampingFactor,
		MinDistance:   DefaultMinDistance,
		MaxDistance:   DefaultMaxDistance,
		scale:         1,
	}
	c.Update()
	return c
}

// Rotate queues an azimuth (theta) and polar (phi) change in radians.
func (c *OrbitControls) Rotate(dTheta, dPhi float64) {
	c.thetaDelta += dTheta
	c.phiDelta += dPhi
}

// Zoom queues a distance multiplier; values below 1 move closer.
func (c *OrbitControls) Zoom(factor float64) {
	if factor > 0 {
		c.scale *= factor
	}
}

// Pan queues a target shift along the camera's right and up axes in world units.
func (c *OrbitControls) Pan(dx, dy float64) {
	_, right, up := c.Camera.Basis()
	c.panOffset = c.panOffset.Add(right.Scale(dx)).Add(up.Scale(dy))
}

// PanPixels converts a pointer drag in pixels to a world-space pan at the
// current target distance.
func (c *OrbitControls) PanPixels(dx, dy float64, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	dist := c.Camera.Position.Sub(c.Target).Length()
	k := 2 * dist * c.Camera.TanHalfFOV() / float64(viewportHeight)
	c.Pan(-dx*k, dy*k)
}

func (c *OrbitControls) pending() bool {
	return c.thetaDelta != 0 || c.phiDelta != 0 || c.scale != 1 || !c.panOffset.IsZero()
}

// Update applies queued input, clamps the distance and points the camera at
// the target. The camera position is left untouched when nothing is queued
// and the distance is in range. Reports whether the camera moved.
func (c *OrbitControls) Update() bool {
	offset := c.Camera.Position.Sub(c.Target)
	radius := offset.Length()
	inRange := radius >= c.MinDistance && radius <= c.MaxDistance

	moved := false
	if (c.pending() || !inRange) && radius > 0 {
		theta := math.Atan2(offset.X, offset.Z)
		phi := math.Acos(math.Max(-1, math.Min(1, offset.Y/radius)))

		f := 1.0
		if c.EnableDamping {
			f = c.DampingFactor
		}
		theta += c.thetaDelta * f
		phi = math.Max(polarEps, math.Min(math.Pi-polarEps, phi+c.phiDelta*f))
		radius = math.Max(c.MinDistance, math.Min(c.MaxDistance, radius*c.scale))
		c.Target = c.Target.Add(c.panOffset.Scale(f))

		sinPhi := math.Sin(phi)
		offset = orrery.V(radius*sinPhi*math.Sin(theta), radius*math.Cos(phi), radius*sinPhi*math.Cos(theta))
		c.Camera.Position = c.Target.Add(offset)
		moved = true
	}

	if c.EnableDamping {
		k := 1 - c.DampingFactor
		c.thetaDelta *= k
		c.phiDelta *= k
		c.panOffset = c.panOffset.Scale(k)
		if math.Abs(c.thetaDelta) < settle {
			c.thetaDelta = 0
		}
		if math.Abs(c.phiDelta) < settle {
			c.phiDelta = 0
		}
		if c.panOffset.Length() < settle {
			c.panOffset = orrery.Vec3{}
		}
	} else {
		c.thetaDelta, c.phiDelta = 0, 0
		c.panOffset = orrery.Vec3{}
	}
	c.scale = 1

	c.Camera.LookAt(c.Target)
	return moved
}
