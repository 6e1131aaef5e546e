package gui

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/san-kum/orrery/internal/app"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/orrery"
)

const (
	wheelZoom = 0.95
	keyOrbit  = 0.03
)

// App is the raylib window hosting the viewer.
type App struct {
	Viewer *app.App

	Surface  *Surface
	Renderer *Renderer
	label    *label
	tip      *tooltip
	clicks   *app.DoubleClick

	orbiting   bool
	dragSlider int
	quit       bool
	log        zerolog.Logger
}

// initWindow opens a resizable window and disables the default exit key.
func initWindow(cfg *config.Config) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	if !rl.IsWindowReady() {
		return orrery.ErrNoGraphics
	}
	rl.SetTargetFPS(int32(cfg.FrameRate))
	rl.SetExitKey(0)
	return nil
}

// NewApp builds the viewer against the open window.
func NewApp(cfg *config.Config, log zerolog.Logger) (*App, error) {
	surface := &Surface{}
	a := &App{
		Surface:    surface,
		Renderer:   &Renderer{Surface: surface},
		label:      &label{},
		tip:        &tooltip{},
		clicks:     app.NewDoubleClick(),
		dragSlider: -1,
		log:        log,
	}
	v, err := app.New(cfg, app.Elements{
		Renderer:   a.Renderer,
		Surface:    surface,
		PauseLabel: a.label,
		Tooltip:    a.tip,
	}, log)
	if err != nil {
		return nil, err
	}
	a.Viewer = v
	a.Renderer.State = v.State
	v.Viewport.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	return a, nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, log zerolog.Logger) error {
	if err := initWindow(cfg); err != nil {
		return err
	}
	defer rl.CloseWindow()

	a, err := NewApp(cfg, log)
	if err != nil {
		return err
	}
	defer a.Surface.Unload()
	a.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Viewer.Loop.Tick()
		a.Draw()
	}
	a.log.Info().Uint64("frames", a.Viewer.Loop.Frames()).Msg("window closed")
}

func (a *App) Update() {
	v := a.Viewer
	if rl.IsWindowResized() {
		v.Viewport.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		v.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		v.ToggleTheme()
	}
	a.updateKeys()

	mouse := rl.GetMousePosition()
	x, y := float64(mouse.X), float64(mouse.Y)
	ui := a.layout(v.State.Width)
	overHUD := ui.contains(mouse)

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		switch {
		case rl.CheckCollisionPointRec(mouse, ui.pause):
			v.TogglePause()
		case rl.CheckCollisionPointRec(mouse, ui.theme):
			v.ToggleTheme()
		case ui.slider(mouse) >= 0:
			a.dragSlider = ui.slider(mouse)
		case !overHUD:
			a.orbiting = true
			if a.clicks.Click(time.Now(), x, y) {
				v.Pointer.DoubleClick(x, y)
			}
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		a.orbiting = false
		a.dragSlider = -1
	}

	delta := rl.GetMouseDelta()
	h := float64(max(v.State.Height, 1))
	switch {
	case a.dragSlider >= 0:
		v.Sliders[a.dragSlider].SetFraction(ui.fraction(a.dragSlider, mouse))
	case a.orbiting && rl.IsMouseButtonDown(rl.MouseButtonLeft):
		v.Controls.Rotate(-2*math.Pi*float64(delta.X)/h, -2*math.Pi*float64(delta.Y)/h)
	case rl.IsMouseButtonDown(rl.MouseButtonRight) && !overHUD:
		v.Controls.PanPixels(float64(delta.X), float64(delta.Y), v.State.Height)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !overHUD {
		v.Controls.Zoom(math.Pow(wheelZoom, float64(wheel)))
	}

	if overHUD {
		a.tip.Hide()
		v.State.Hovered = nil
	} else if delta.X != 0 || delta.Y != 0 || !a.tip.visible {
		v.Pointer.Move(x, y)
	}
}

func (a *App) updateKeys() {
	ctl := a.Viewer.Controls
	if rl.IsKeyDown(rl.KeyLeft) {
		ctl.Rotate(keyOrbit, 0)
	}
	if rl.IsKeyDown(rl.KeyRight) {
		ctl.Rotate(-keyOrbit, 0)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		ctl.Rotate(0, keyOrbit)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		ctl.Rotate(0, -keyOrbit)
	}
	if rl.IsKeyDown(rl.KeyEqual) || rl.IsKeyDown(rl.KeyKpAdd) {
		ctl.Zoom(wheelZoom)
	}
	if rl.IsKeyDown(rl.KeyMinus) || rl.IsKeyDown(rl.KeyKpSubtract) {
		ctl.Zoom(1 / wheelZoom)
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	p := paletteFor(a.Viewer.State.LightMode)
	rl.ClearBackground(p.Bg)

	tex := a.Surface.Texture.Texture
	src := rl.NewRectangle(0, 0, float32(tex.Width), -float32(tex.Height))
	rl.DrawTextureRec(tex, src, rl.NewVector2(0, 0), rl.White)

	a.DrawHUD(p)
	rl.EndDrawing()
}

func (a *App) DrawHUD(p palette) {
	v := a.Viewer
	ui := a.layout(v.State.Width)

	drawButton(ui.pause, a.label.text, p)
	theme := "DARK"
	if v.State.LightMode {
		theme = "LIGHT"
	}
	drawButton(ui.theme, "THEME: "+theme, p)

	rl.DrawRectangleRec(ui.panel, rl.Fade(p.Bg, 0.8))
	rl.DrawRectangleLinesEx(ui.panel, 1, p.TextDim)
	drawText("ORBITAL SPEED", int32(ui.panel.X)+10, int32(ui.panel.Y)+8, 14, p.Select)
	for i, s := range v.Sliders {
		track := ui.track(i)
		drawText(s.Label, int32(ui.panel.X)+10, int32(track.Y)-2, 14, p.Text)
		rl.DrawRectangleRec(track, p.Grid)
		fill := track
		fill.Width = float32(s.Fraction()) * track.Width
		rl.DrawRectangleRec(fill, p.Accent)
		drawText(s.String(), int32(track.X+track.Width)+8, int32(track.Y)-2, 14, p.TextDim)
	}

	if a.tip.visible {
		w := rl.MeasureText(a.tip.text, 14)
		x, y := int32(a.tip.x), int32(a.tip.y)
		rl.DrawRectangle(x-4, y-2, w+8, 18, p.Select)
		drawText(a.tip.text, x, y, 14, p.Bg)
	}

	footer := "[SPACE] PAUSE  [T] THEME  [DRAG] ORBIT  [WHEEL] ZOOM  [DBL-CLICK] FOCUS  [Q] QUIT"
	drawText(footer, 20, int32(v.State.Height)-24, 14, p.TextDim)
	drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), int32(v.State.Width)-70, int32(v.State.Height)-24, 14, p.TextDim)
}
