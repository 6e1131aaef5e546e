package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/orrery/internal/app"
	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/scene"
)

const (
	sphereRings  = 24
	sphereSlices = 32
)

// palette holds the HUD colors for one theme.
type palette struct {
	Bg      rl.Color
	Accent  rl.Color
	Select  rl.Color
	Text    rl.Color
	TextDim rl.Color
	Grid    rl.Color
}

var (
	darkPalette = palette{
		Bg:      rl.NewColor(10, 10, 10, 255),
		Accent:  rl.NewColor(0, 204, 255, 255),
		Select:  rl.NewColor(255, 255, 255, 255),
		Text:    rl.NewColor(180, 180, 180, 255),
		TextDim: rl.NewColor(100, 100, 120, 255),
		Grid:    rl.NewColor(40, 40, 40, 255),
	}
	lightPalette = palette{
		Bg:      rl.NewColor(240, 248, 255, 255),
		Accent:  rl.NewColor(0, 85, 170, 255),
		Select:  rl.NewColor(17, 17, 17, 255),
		Text:    rl.NewColor(40, 40, 40, 255),
		TextDim: rl.NewColor(119, 136, 153, 255),
		Grid:    rl.NewColor(200, 210, 220, 255),
	}
)

func paletteFor(light bool) palette {
	if light {
		return lightPalette
	}
	return darkPalette
}

func toColor(c orrery.Color) rl.Color {
	r, g, b := c.RGB()
	return rl.NewColor(r, g, b, 255)
}

func toVector(v orrery.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func toCamera(cam *camera.Perspective) rl.Camera3D {
	return rl.NewCamera3D(toVector(cam.Position), toVector(cam.Target()), toVector(cam.Up), float32(cam.FOV), rl.CameraPerspective)
}

// Surface is the off-screen render target sized to the window.
type Surface struct {
	Texture rl.RenderTexture2D
	loaded  bool
}

func (s *Surface) SetSize(w, h int) {
	s.Unload()
	s.Texture = rl.LoadRenderTexture(int32(w), int32(h))
	s.loaded = true
}

func (s *Surface) Unload() {
	if s.loaded {
		rl.UnloadRenderTexture(s.Texture)
		s.loaded = false
	}
}

// Renderer draws the scene into the surface texture.
type Renderer struct {
	Surface *Surface
	// State marks the hovered planet; nil disables the highlight.
	State *app.State
}

func (r *Renderer) Render(s *scene.Scene, cam *camera.Perspective) {
	if !r.Surface.loaded {
		return
	}
	rl.BeginTextureMode(r.Surface.Texture)
	bg := rl.Black
	if s.Env.Background != nil {
		bg = toColor(*s.Env.Background)
	}
	rl.ClearBackground(bg)

	rl.SetClipPlanes(cam.Near, cam.Far)
	rl.BeginMode3D(toCamera(cam))
	star := toColor(s.Env.StarColor)
	for _, p := range s.Stars.Points {
		rl.DrawPoint3D(toVector(p), star)
	}

	rl.DrawSphereEx(toVector(s.Sun.WorldPosition()), float32(s.Sun.Radius), sphereRings, sphereSlices, toColor(s.Sun.Color))
	for _, m := range s.Meshes {
		col := m.Color.Scale(s.Illumination(m))
		rl.DrawSphereEx(toVector(m.WorldPosition()), float32(m.Radius), sphereRings, sphereSlices, toColor(col))
		if r.State != nil && m == r.State.Hovered {
			rl.DrawSphereWires(toVector(m.WorldPosition()), float32(m.Radius)*1.05, 8, 12, rl.Fade(star, 0.4))
		}
	}
	rl.EndMode3D()
	rl.EndTextureMode()
}
