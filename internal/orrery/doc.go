// Package orrery provides the shared primitives of the solar system viewer.
//
// The package defines the small value types every other package builds on:
//
//   - [Vec3]: 3D vector used for positions, offsets and ray directions
//   - [Color]: packed 0xRRGGBB color as used by the planet table
//   - domain errors returned while assembling the viewer
//
// # Coordinate System
//
// Right-handed, Y up. Orbits lie in the XZ plane and a positive rotation
// about Y turns +X towards -Z.
package orrery
