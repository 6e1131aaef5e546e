package camera

import (
	"math"
	"sort"

	"github.com/san-kum/orrery/internal/orrery"
)

// Sphere is anything that can be hit-tested as a bounding sphere.
type Sphere interface {
	WorldPosition() orrery.Vec3
	BoundingRadius() float64
}

type Ray struct {
	Origin    orrery.Vec3
	Direction orrery.Vec3 // unit length
}

// IntersectSphere returns the distance to the first surface hit along the
// ray. A ray starting inside the sphere reports the exit point.
func (r Ray) IntersectSphere(center orrery.Vec3, radius float64) (float64, bool) {
	oc := center.Sub(r.Origin)
	tca := oc.Dot(r.Direction)
	d2 := oc.Dot(oc) - tca*tca
	r2 := radius * radius
	if d2 > r2 {
		return 0, false
	}
	thc := math.Sqrt(r2 - d2)
	t0, t1 := tca-thc, tca+thc
	if t1 < 0 {
		return 0, false
	}
	if t0 < 0 {
		return t1, true
	}
	return t0, true
}

type Intersection struct {
	Distance float64
	Index    int // position in the slice given to Intersect
}

type Raycaster struct {
	Ray Ray
}

// SetFromCamera casts from the camera position through an NDC point.
func (rc *Raycaster) SetFromCamera(ndcX, ndcY float64, cam *Perspective) {
	rc.Ray = Ray{Origin: cam.Position, Direction: cam.Direction(ndcX, ndcY)}
}

// Intersect tests every target and returns hits sorted nearest first.
func Intersect[S Sphere](rc *Raycaster, targets []S) []Intersection {
	var hits []Intersection
	for i, s := range targets {
		t, ok := rc.Ray.IntersectSphere(s.WorldPosition(), s.BoundingRadius())
		if !ok {
			continue
		}
		hits = append(hits, Intersection{Distance: t, Index: i})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}
