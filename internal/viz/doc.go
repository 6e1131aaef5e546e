// Package viz hosts the solar system viewer in a terminal.
//
// The scene is projected through the shared camera into a Braille [Canvas]
// (2x4 sub-pixels per cell) with one color per cell. [Model] is a Bubble
// Tea program around app.App: the canvas sits next to a panel with one
// speed slider per planet.
//
// # Key Bindings
//
//	Space      - Pause/Resume orbits
//	T          - Toggle light/dark theme
//	Tab        - Select next speed slider
//	Left/Right - Nudge selected speed by one step ([ ] too, { } by ten)
//	Shift+Arrows - Orbit the camera (Up/Down orbit without Shift too)
//	+ / -      - Zoom
//	Q          - Quit
//
// The mouse orbits (left drag), pans (right drag) and zooms (wheel);
// hovering a planet shows its name and double-clicking focuses it.
package viz
