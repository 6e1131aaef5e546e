package app_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
	"github.com/san-kum/orrery/internal/app"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/scene"
)

var _ = Describe("New", func() {
	It("refuses to start without a tooltip", func() {
		_, err := app.New(config.DefaultConfig(), app.Elements{
			Renderer:   &fakeRenderer{},
			Surface:    &fakeSurface{},
			PauseLabel: &fakeLabel{},
		}, zerolog.Nop())
		Expect(errors.Is(err, orrery.ErrMissingElement)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("tooltip"))
	})

	It("refuses to start with an invalid config", func() {
		cfg := config.DefaultConfig()
		cfg.Planets[2].Size = 0
		_, err := app.New(cfg, app.Elements{
			Renderer:   &fakeRenderer{},
			Surface:    &fakeSurface{},
			PauseLabel: &fakeLabel{},
			Tooltip:    &fakeTooltip{},
		}, zerolog.Nop())
		Expect(errors.Is(err, orrery.ErrInvalidPlanet)).To(BeTrue())
	})

	It("starts running with a Pause label and hidden tooltip", func() {
		h := newHarness()
		Expect(h.label.text).To(Equal("Pause"))
		Expect(h.tooltip.visible).To(BeFalse())
		Expect(h.app.State.Paused).To(BeFalse())
		Expect(h.app.Sliders).To(HaveLen(8))
	})
})

var _ = Describe("Render loop", func() {
	var h *harness

	BeforeEach(func() {
		h = newHarness()
	})

	It("advances every pivot by its speed each frame", func() {
		for frame := 0; frame < 5; frame++ {
			before := orbitAngles(h.app)
			h.app.Loop.Tick()
			after := orbitAngles(h.app)
			for i, p := range h.app.Scene.Planets {
				Expect(after[i]).To(BeNumerically(">", before[i]))
				Expect(after[i]-before[i]).To(BeNumerically("~", p.Speed, 1e-12))
			}
		}
		Expect(h.renderer.frames).To(Equal(5))
		Expect(h.app.Loop.Frames()).To(BeEquivalentTo(5))
	})

	It("spins the sun and planet meshes at fixed rates", func() {
		app.Advance(h.app.Loop, 10)
		Expect(h.app.Scene.Sun.RotationY).To(BeNumerically("~", 10*app.SunSpin, 1e-12))
		for _, p := range h.app.Scene.Planets {
			Expect(p.Mesh.RotationY).To(BeNumerically("~", 10*app.PlanetSpin, 1e-12))
		}
	})

	It("holds every angle while paused but keeps drawing", func() {
		app.Advance(h.app.Loop, 3)
		h.app.TogglePause()
		frozen := orbitAngles(h.app)
		sun := h.app.Scene.Sun.RotationY

		app.Advance(h.app.Loop, 4)
		Expect(orbitAngles(h.app)).To(Equal(frozen))
		Expect(h.app.Scene.Sun.RotationY).To(Equal(sun))
		Expect(h.renderer.frames).To(Equal(7))
	})

	It("resumes from the frozen angle after a double toggle", func() {
		app.Advance(h.app.Loop, 3)
		h.app.TogglePause()
		app.Advance(h.app.Loop, 2)
		frozen := orbitAngles(h.app)
		h.app.TogglePause()
		h.app.Loop.Tick()

		for i, p := range h.app.Scene.Planets {
			Expect(p.Orbit.RotationY - frozen[i]).To(BeNumerically("~", p.Speed, 1e-12))
		}
	})
})

var _ = Describe("UI binder", func() {
	var h *harness

	BeforeEach(func() {
		h = newHarness()
	})

	It("flips the pause label", func() {
		h.app.TogglePause()
		Expect(h.app.State.Paused).To(BeTrue())
		Expect(h.label.text).To(Equal("Resume"))
		h.app.TogglePause()
		Expect(h.app.State.Paused).To(BeFalse())
		Expect(h.label.text).To(Equal("Pause"))
	})

	It("switches every theme property together", func() {
		h.app.Loop.Tick()
		h.app.ToggleTheme()
		h.app.Loop.Tick()
		h.app.ToggleTheme()
		h.app.Loop.Tick()

		Expect(h.renderer.envs).To(HaveLen(3))
		Expect(h.renderer.envs[0]).To(Equal(scene.DarkEnvironment()))
		Expect(h.renderer.envs[1]).To(Equal(scene.LightEnvironment()))
		Expect(h.renderer.envs[2]).To(Equal(scene.DarkEnvironment()))

		light := h.renderer.envs[1]
		Expect(light.Background).NotTo(BeNil())
		Expect(*light.Background).To(Equal(orrery.Color(0xf0f8ff)))
		Expect(light.AmbientIntensity).To(Equal(1.0))
		Expect(light.StarColor).To(Equal(orrery.Color(0x000000)))
	})

	It("applies slider input on the next frame for that planet only", func() {
		earth := h.app.Scene.Planet("Earth")
		others := orbitAngles(h.app)

		Expect(h.app.SliderInput(2, "0.005")).To(Succeed())
		Expect(earth.Speed).To(Equal(0.005))

		before := earth.Orbit.RotationY
		h.app.Loop.Tick()
		Expect(earth.Orbit.RotationY - before).To(BeNumerically("~", 0.005, 1e-12))

		for i, p := range h.app.Scene.Planets {
			if p == earth {
				continue
			}
			Expect(p.Orbit.RotationY - others[i]).To(BeNumerically("~", p.Speed, 1e-12))
			Expect(p.Speed).To(Equal(scene.DefaultPlanets()[i].Speed))
		}
	})

	It("rejects non-numeric slider input without touching state", func() {
		err := h.app.SliderInput(0, "fast")
		Expect(errors.Is(err, orrery.ErrBadSliderValue)).To(BeTrue())
		Expect(h.app.Scene.Planets[0].Speed).To(Equal(0.004))
	})

	It("reports an unknown slider", func() {
		Expect(errors.Is(h.app.SliderInput(99, "0.001"), orrery.ErrMissingElement)).To(BeTrue())
	})

	It("runs one frame per source tick until the source closes", func() {
		frames := make(chan time.Time, 3)
		for i := 0; i < 3; i++ {
			frames <- time.Now()
		}
		close(frames)
		Expect(app.Run(context.Background(), frames, h.app.Loop)).To(Succeed())
		Expect(h.app.Loop.Frames()).To(BeEquivalentTo(3))
	})

	It("stops running when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := app.Run(ctx, make(chan time.Time), h.app.Loop)
		Expect(err).To(MatchError(context.Canceled))
		Expect(h.app.Loop.Frames()).To(BeZero())
	})
})
