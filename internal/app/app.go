package app

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/scene"
)

const (
	pauseText  = "Pause"
	resumeText = "Resume"
)

type App struct {
	Scene    *scene.Scene
	Camera   *camera.Perspective
	Controls *camera.OrbitControls
	State    *State
	Sliders  []*Slider
	Viewport *Viewport
	Pointer  *Pointer
	Loop     *Loop

	pauseLabel Label
	log        zerolog.Logger
}

// New builds the scene and wires every binding. It refuses to start when
// the config is invalid or a host element is missing.
func New(cfg *config.Config, el Elements, log zerolog.Logger) (*App, error) {
	if err := checkElements(el); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sc := scene.Build(cfg.Descriptors(), cfg.SceneOptions())

	w, h := cfg.Window.Width, cfg.Window.Height
	cam := camera.NewPerspective(cfg.Camera.FOV, float64(w)/float64(h), cfg.Camera.Near, cfg.Camera.Far)
	cam.Position = cfg.CameraPosition()

	ctl := camera.NewOrbitControls(cam)
	ctl.EnableDamping = cfg.Controls.Damping
	ctl.DampingFactor = cfg.Controls.DampingFactor
	ctl.MinDistance = cfg.Controls.MinDistance
	ctl.MaxDistance = cfg.Controls.MaxDistance

	st := &State{Width: w, Height: h}

	a := &App{
		Scene:      sc,
		Camera:     cam,
		Controls:   ctl,
		State:      st,
		Viewport:   NewViewport(cam, el.Surface, st, log),
		Pointer:    NewPointer(sc, cam, ctl, st, el.Tooltip, cfg.ZoomOffset(), log),
		Loop:       NewLoop(sc, ctl, st, el.Renderer),
		pauseLabel: el.PauseLabel,
		log:        log,
	}

	for _, p := range sc.Planets {
		s := NewSpeedSlider(p, func(v float64) { p.Speed = v })
		a.Sliders = append(a.Sliders, s)
	}

	el.PauseLabel.SetText(pauseText)
	el.Tooltip.Hide()

	log.Info().
		Int("planets", len(sc.Planets)).
		Int("stars", len(sc.Stars.Points)).
		Msg("scene built")
	return a, nil
}

func checkElements(el Elements) error {
	switch {
	case el.Renderer == nil:
		return fmt.Errorf("%w: renderer", orrery.ErrMissingElement)
	case el.Surface == nil:
		return fmt.Errorf("%w: draw surface", orrery.ErrMissingElement)
	case el.PauseLabel == nil:
		return fmt.Errorf("%w: pause button", orrery.ErrMissingElement)
	case el.Tooltip == nil:
		return fmt.Errorf("%w: tooltip", orrery.ErrMissingElement)
	}
	return nil
}

// TogglePause freezes or resumes motion from the current angles.
func (a *App) TogglePause() {
	a.State.Paused = !a.State.Paused
	if a.State.Paused {
		a.pauseLabel.SetText(resumeText)
	} else {
		a.pauseLabel.SetText(pauseText)
	}
	a.log.Info().Bool("paused", a.State.Paused).Msg("pause toggled")
}

// ToggleTheme switches dark/light mode. Background, ambient intensity, star
// color and chrome change together in a single Environment assignment.
func (a *App) ToggleTheme() {
	a.State.LightMode = !a.State.LightMode
	a.Scene.Env = scene.EnvironmentFor(a.State.LightMode)
	a.log.Info().Str("theme", a.Scene.Env.Chrome).Msg("theme toggled")
}

// SliderInput feeds raw widget text to slider i, logging rejected input.
func (a *App) SliderInput(i int, raw string) error {
	if i < 0 || i >= len(a.Sliders) {
		return fmt.Errorf("%w: slider %d", orrery.ErrMissingElement, i)
	}
	if err := a.Sliders[i].Input(raw); err != nil {
		a.log.Warn().Err(err).Str("planet", a.Sliders[i].Label).Msg("slider input rejected")
		return err
	}
	return nil
}
