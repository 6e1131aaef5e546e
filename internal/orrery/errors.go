package orrery

import "errors"

// Domain errors for assembling and driving the viewer.
var (
	// ErrNoGraphics indicates the window or graphics context failed to initialize.
	ErrNoGraphics = errors.New("orrery: graphics context unavailable")

	// ErrMissingElement indicates a required host widget was not provided.
	ErrMissingElement = errors.New("orrery: required ui element missing")

	// ErrInvalidPlanet indicates a planet descriptor outside valid bounds.
	ErrInvalidPlanet = errors.New("orrery: invalid planet descriptor")

	// ErrInvalidConfig indicates a configuration value outside valid bounds.
	ErrInvalidConfig = errors.New("orrery: invalid configuration")

	// ErrBadSliderValue indicates slider input that is not a number.
	ErrBadSliderValue = errors.New("orrery: slider value is not a number")
)
