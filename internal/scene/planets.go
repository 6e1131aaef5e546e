package scene

import (
	"fmt"

	"github.com/san-kum/orrery/internal/orrery"
)

const (
	MinSpeed = 0.0
	MaxSpeed = 0.01
)

// PlanetDescriptor is the static record of one planet.
type PlanetDescriptor struct {
	Name     string
	Size     float64
	Distance float64
	Color    orrery.Color
	Speed    float64
}

var defaultPlanets = []PlanetDescriptor{
	{Name: "Mercury", Size: 3.8, Distance: 40, Color: 0xaaaaaa, Speed: 0.004},
	{Name: "Venus", Size: 9.5, Distance: 70, Color: 0xffd700, Speed: 0.003},
	{Name: "Earth", Size: 10, Distance: 100, Color: 0x0077ff, Speed: 0.002},
	{Name: "Mars", Size: 5.3, Distance: 140, Color: 0xff5733, Speed: 0.0015},
	{Name: "Jupiter", Size: 40, Distance: 220, Color: 0xd2b48c, Speed: 0.0008},
	{Name: "Saturn", Size: 35, Distance: 300, Color: 0xf0e68c, Speed: 0.0006},
	{Name: "Uranus", Size: 20, Distance: 380, Color: 0xadd8e6, Speed: 0.0004},
	{Name: "Neptune", Size: 19, Distance: 450, Color: 0x0000ff, Speed: 0.0002},
}

// DefaultPlanets returns a fresh copy of the eight built-in planets.
func DefaultPlanets() []PlanetDescriptor {
	out := make([]PlanetDescriptor, len(defaultPlanets))
	copy(out, defaultPlanets)
	return out
}

func (d PlanetDescriptor) Validate() error {
	switch {
	case d.Name == "":
		return fmt.Errorf("%w: empty name", orrery.ErrInvalidPlanet)
	case d.Size <= 0:
		return fmt.Errorf("%w: %s size %.3f must be positive", orrery.ErrInvalidPlanet, d.Name, d.Size)
	case d.Distance < 0:
		return fmt.Errorf("%w: %s distance %.3f is negative", orrery.ErrInvalidPlanet, d.Name, d.Distance)
	case d.Speed < MinSpeed || d.Speed > MaxSpeed:
		return fmt.Errorf("%w: %s speed %.4f outside [%.2f, %.2f]", orrery.ErrInvalidPlanet, d.Name, d.Speed, MinSpeed, MaxSpeed)
	}
	return nil
}

// Validate checks every descriptor and rejects duplicate names.
func Validate(descs []PlanetDescriptor) error {
	seen := make(map[string]bool, len(descs))
	for _, d := range descs {
		if err := d.Validate(); err != nil {
			return err
		}
		if seen[d.Name] {
			return fmt.Errorf("%w: duplicate name %s", orrery.ErrInvalidPlanet, d.Name)
		}
		seen[d.Name] = true
	}
	return nil
}

// Planet pairs a descriptor with its mesh and orbit pivot. Speed is the
// only field mutated after the scene is built.
type Planet struct {
	PlanetDescriptor
	Mesh  *Node
	Orbit *Node
}
