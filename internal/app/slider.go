package app

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/scene"
)

const (
	SpeedMin  = scene.MinSpeed
	SpeedMax  = scene.MaxSpeed
	SpeedStep = 0.0001
)

// Slider is a range widget. Its own min/max/step are the only validation
// applied to the values it forwards.
type Slider struct {
	Label string
	Min   float64
	Max   float64
	Step  float64

	value    float64
	decimals int
	onInput  func(float64)
}

// NewSpeedSlider builds the speed widget for one planet, starting at its
// current speed. onInput receives every accepted value.
func NewSpeedSlider(p *scene.Planet, onInput func(float64)) *Slider {
	s := &Slider{
		Label:    p.Name,
		Min:      SpeedMin,
		Max:      SpeedMax,
		Step:     SpeedStep,
		decimals: stepDecimals(SpeedStep),
		onInput:  onInput,
	}
	s.value = s.snap(p.Speed)
	return s
}

func stepDecimals(step float64) int {
	d := 0
	for d < 12 && math.Abs(step*math.Pow10(d)-math.Round(step*math.Pow10(d))) > 1e-9 {
		d++
	}
	return d
}

func (s *Slider) Value() float64 { return s.value }

// Fraction is the thumb position in [0, 1].
func (s *Slider) Fraction() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.value - s.Min) / (s.Max - s.Min)
}

// snap clamps to [Min, Max] and rounds to the nearest step.
func (s *Slider) snap(v float64) float64 {
	v = math.Max(s.Min, math.Min(s.Max, v))
	n := math.Round((v - s.Min) / s.Step)
	v = s.Min + n*s.Step
	p := math.Pow10(s.decimals)
	return math.Min(s.Max, math.Round(v*p)/p)
}

// Input parses raw widget text and forwards the snapped value.
func (s *Slider) Input(raw string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) {
		return fmt.Errorf("%w: %q", orrery.ErrBadSliderValue, raw)
	}
	s.Set(v)
	return nil
}

// Set moves the thumb to v and forwards the snapped value.
func (s *Slider) Set(v float64) {
	s.value = s.snap(v)
	if s.onInput != nil {
		s.onInput(s.value)
	}
}

// SetFraction moves the thumb to a position in [0, 1], as a drag does.
func (s *Slider) SetFraction(f float64) {
	s.Set(s.Min + f*(s.Max-s.Min))
}

// Nudge moves the thumb by whole steps, as arrow keys do.
func (s *Slider) Nudge(steps int) {
	s.Set(s.value + float64(steps)*s.Step)
}

func (s *Slider) String() string {
	return strconv.FormatFloat(s.value, 'f', s.decimals, 64)
}
