package scene

import (
	"math"
	"math/rand"

	"github.com/san-kum/orrery/internal/orrery"
)

const (
	DefaultStarCount  = 15000
	DefaultStarSpread = 2000.0
	DefaultStarSize   = 0.7
	DefaultSunRadius  = 20.0
	DefaultSunColor   = orrery.Color(0xffff00)
)

type Light struct {
	Color     orrery.Color
	Intensity float64
	Range     float64 // zero means unbounded
	Position  orrery.Vec3
}

type Starfield struct {
	Points []orrery.Vec3
	Size   float64
}

// Environment groups every theme-dependent visual property so a theme
// switch replaces all of them in one assignment.
type Environment struct {
	Background       *orrery.Color // nil renders the default dark clear color
	AmbientIntensity float64
	StarColor        orrery.Color
	Chrome           string
}

var lightSky = orrery.Color(0xf0f8ff)

func DarkEnvironment() Environment {
	return Environment{AmbientIntensity: 0.5, StarColor: 0xffffff, Chrome: "dark"}
}

func LightEnvironment() Environment {
	bg := lightSky
	return Environment{Background: &bg, AmbientIntensity: 1.0, StarColor: 0x000000, Chrome: "light"}
}

func EnvironmentFor(light bool) Environment {
	if light {
		return LightEnvironment()
	}
	return DarkEnvironment()
}

type Scene struct {
	Root       *Node
	Sun        *Node
	Planets    []*Planet
	Meshes     []*Node // planet meshes only, the hit-test set
	Stars      Starfield
	PointLight Light
	Ambient    Light
	Env        Environment
}

type Options struct {
	StarCount  int
	StarSpread float64
	StarSize   float64
	Seed       int64
	SunRadius  float64
	SunColor   orrery.Color
}

func DefaultOptions() Options {
	return Options{
		StarCount:  DefaultStarCount,
		StarSpread: DefaultStarSpread,
		StarSize:   DefaultStarSize,
		Seed:       1,
		SunRadius:  DefaultSunRadius,
		SunColor:   DefaultSunColor,
	}
}

// Build assembles the full scene graph. Each planet mesh sits at
// (Distance, 0, 0) inside its own orbit pivot.
func Build(descs []PlanetDescriptor, opts Options) *Scene {
	s := &Scene{
		Root:       NewNode("scene"),
		PointLight: Light{Color: 0xffffff, Intensity: 2, Range: 800},
		Ambient:    Light{Color: 0x404040},
		Env:        DarkEnvironment(),
	}

	s.Sun = NewSphere("Sun", opts.SunRadius, opts.SunColor)
	s.Root.Add(s.Sun)

	for _, d := range descs {
		mesh := NewSphere(d.Name, d.Size, d.Color)
		mesh.Position = orrery.V(d.Distance, 0, 0)
		orbit := NewNode(d.Name + " orbit")
		orbit.Add(mesh)
		s.Root.Add(orbit)

		s.Planets = append(s.Planets, &Planet{PlanetDescriptor: d, Mesh: mesh, Orbit: orbit})
		s.Meshes = append(s.Meshes, mesh)
	}

	s.Stars = NewStarfield(opts.StarCount, opts.StarSpread, opts.StarSize, rand.New(rand.NewSource(opts.Seed)))
	return s
}

// NewStarfield scatters n points uniformly in a cube of side spread
// centered at the origin.
func NewStarfield(n int, spread, size float64, rng *rand.Rand) Starfield {
	pts := make([]orrery.Vec3, n)
	for i := range pts {
		pts[i] = orrery.V(
			(rng.Float64()-0.5)*spread,
			(rng.Float64()-0.5)*spread,
			(rng.Float64()-0.5)*spread,
		)
	}
	return Starfield{Points: pts, Size: size}
}

func (s *Scene) Planet(name string) *Planet {
	for _, p := range s.Planets {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// PlanetForMesh maps a hit-test mesh back to its planet.
func (s *Scene) PlanetForMesh(mesh *Node) *Planet {
	for _, p := range s.Planets {
		if p.Mesh == mesh {
			return p
		}
	}
	return nil
}

// Illumination approximates the lit brightness of a standard-material
// sphere: ambient term plus a point light with quadratic range falloff.
// Unlit nodes (the sun) always return 1.
func (s *Scene) Illumination(n *Node) float64 {
	if n == s.Sun {
		return 1
	}
	ambient := s.Ambient.Color.Luminance() * s.Env.AmbientIntensity
	d := n.WorldPosition().Sub(s.PointLight.Position).Length()
	point := s.PointLight.Intensity
	if s.PointLight.Range > 0 {
		f := math.Max(0, 1-d/s.PointLight.Range)
		point *= f * f
	}
	return math.Min(1, ambient+point*0.5)
}
