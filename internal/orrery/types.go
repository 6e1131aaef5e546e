package orrery

import (
	"fmt"
	"math"
)

type Vec3 struct {
	X, Y, Z float64
}

func V(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Length() float64      { return math.Sqrt(v.Dot(v)) }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

func (v Vec3) Normalize() Vec3 {
	if l := v.Length(); l != 0 {
		return v.Scale(1 / l)
	}
	return Vec3{}
}

// RotateY rotates v about the Y axis by angle radians.
func (v Vec3) RotateY(angle float64) Vec3 {
	if angle == 0 {
		return v
	}
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

func (v Vec3) String() string { return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z) }

// Color is a packed 0xRRGGBB value.
type Color uint32

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Scale multiplies each channel by f, clamped to [0, 1].
func (c Color) Scale(f float64) Color {
	f = math.Max(0, math.Min(1, f))
	r, g, b := c.RGB()
	return RGB(uint8(float64(r)*f), uint8(float64(g)*f), uint8(float64(b)*f))
}

// Luminance returns the mean channel intensity in [0, 1].
func (c Color) Luminance() float64 {
	r, g, b := c.RGB()
	return (float64(r) + float64(g) + float64(b)) / (3 * 255)
}

func (c Color) Hex() string { return fmt.Sprintf("#%06x", uint32(c)&0xffffff) }

func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}
