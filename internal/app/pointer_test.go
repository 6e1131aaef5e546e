package app_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/orrery/internal/app"
	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/orrery"
)

// screenOf projects a world point to viewport pixels.
func screenOf(cam *camera.Perspective, p orrery.Vec3, w, h int) (float64, float64) {
	x, y, _, ok := cam.Project(p)
	Expect(ok).To(BeTrue())
	return (x + 1) / 2 * float64(w), (1 - y) / 2 * float64(h)
}

var _ = Describe("Pointer", func() {
	var h *harness

	BeforeEach(func() {
		h = newHarness()
		h.app.Viewport.Resize(800, 600)
	})

	It("converts pixels to normalized device coordinates", func() {
		x, y := h.app.Pointer.NDC(0, 0)
		Expect(x).To(Equal(-1.0))
		Expect(y).To(Equal(1.0))
		x, y = h.app.Pointer.NDC(400, 300)
		Expect(x).To(Equal(0.0))
		Expect(y).To(Equal(0.0))
		x, y = h.app.Pointer.NDC(800, 600)
		Expect(x).To(Equal(1.0))
		Expect(y).To(Equal(-1.0))
	})

	It("shows the planet name next to the pointer on hover", func() {
		earth := h.app.Scene.Planet("Earth")
		x, y := screenOf(h.app.Camera, earth.Mesh.WorldPosition(), 800, 600)

		h.app.Pointer.Move(x, y)
		Expect(h.tooltip.visible).To(BeTrue())
		Expect(h.tooltip.text).To(Equal("Earth"))
		Expect(h.tooltip.x).To(Equal(x + app.TooltipOffset))
		Expect(h.tooltip.y).To(Equal(y + app.TooltipOffset))
		Expect(h.app.State.Hovered).To(BeIdenticalTo(earth.Mesh))
	})

	It("hides the tooltip over empty space", func() {
		earth := h.app.Scene.Planet("Earth")
		x, y := screenOf(h.app.Camera, earth.Mesh.WorldPosition(), 800, 600)
		h.app.Pointer.Move(x, y)

		h.app.Pointer.Move(2, 2)
		Expect(h.tooltip.visible).To(BeFalse())
		Expect(h.app.State.Hovered).To(BeNil())
	})

	It("ignores the sun", func() {
		x, y := screenOf(h.app.Camera, orrery.V(0, 0, 0), 800, 600)
		Expect(h.app.Pointer.Pick(x, y)).To(BeNil())
	})

	It("reports the nearest planet when several overlap", func() {
		// looking along the orbit line every planet is on the ray
		h.app.Camera.Position = orrery.V(-100, 0.5, 0)
		h.app.Camera.LookAt(orrery.V(500, 0.5, 0))
		mesh := h.app.Pointer.Pick(400, 300)
		Expect(mesh).NotTo(BeNil())
		Expect(mesh.Name).To(Equal("Mercury"))
	})

	It("jumps the camera to a fixed offset from a double-clicked planet", func() {
		earth := h.app.Scene.Planet("Earth")
		earth.Orbit.RotationY = 0.7
		world := earth.Mesh.WorldPosition()
		x, y := screenOf(h.app.Camera, world, 800, 600)

		Expect(h.app.Pointer.DoubleClick(x, y)).To(BeTrue())
		Expect(h.app.Controls.Target).To(Equal(world))
		Expect(h.app.Camera.Position).To(Equal(world.Add(orrery.V(0, 20, 50))))

		h.app.TogglePause()
		h.app.Loop.Tick()
		Expect(h.app.Camera.Position).To(Equal(world.Add(orrery.V(0, 20, 50))))
		Expect(h.app.Camera.Target()).To(Equal(world))
	})

	It("leaves the camera alone when the double click misses", func() {
		pos, target := h.app.Camera.Position, h.app.Controls.Target
		Expect(h.app.Pointer.DoubleClick(2, 2)).To(BeFalse())
		Expect(h.app.Camera.Position).To(Equal(pos))
		Expect(h.app.Controls.Target).To(Equal(target))
	})
})

var _ = Describe("Viewport", func() {
	It("matches camera aspect and surface size on each resize", func() {
		h := newHarness()
		h.app.Viewport.Resize(1024, 512)
		Expect(h.app.Camera.Aspect).To(Equal(2.0))
		Expect(h.app.Camera.ProjectionAspect()).To(Equal(2.0))
		Expect(h.surface.calls).To(Equal(1))
		Expect([]int{h.surface.w, h.surface.h}).To(Equal([]int{1024, 512}))

		h.app.Viewport.Resize(1024, 512)
		h.app.Viewport.Resize(1024, 512)
		Expect(h.surface.calls).To(Equal(3))
		Expect(h.app.Camera.Aspect).To(Equal(2.0))
		Expect([]int{h.app.State.Width, h.app.State.Height}).To(Equal([]int{1024, 512}))
	})

	It("ignores a minimised window", func() {
		h := newHarness()
		h.app.Viewport.Resize(0, 0)
		Expect(h.surface.calls).To(Equal(0))
		Expect(h.app.State.Width).To(Equal(config.DefaultWidth))
	})
})
