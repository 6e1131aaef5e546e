package gui

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	panelWidth = 300
	rowHeight  = 28
	trackWidth = 120
)

type label struct{ text string }

func (l *label) SetText(text string) { l.text = text }

type tooltip struct {
	visible bool
	x, y    float64
	text    string
}

func (t *tooltip) Show(x, y float64, text string) {
	t.visible, t.x, t.y, t.text = true, x, y, text
}

func (t *tooltip) Hide() { t.visible = false }

// hud is the screen layout of the overlay widgets for one frame.
type hud struct {
	pause, theme, panel rl.Rectangle
	rows                int
}

func (a *App) layout(width int) hud {
	n := len(a.Viewer.Sliders)
	return hud{
		pause: rl.NewRectangle(20, 20, 110, 32),
		theme: rl.NewRectangle(140, 20, 140, 32),
		panel: rl.NewRectangle(float32(width-panelWidth-20), 20, panelWidth, float32(36+n*rowHeight)),
		rows:  n,
	}
}

func (h hud) contains(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, h.pause) ||
		rl.CheckCollisionPointRec(p, h.theme) ||
		rl.CheckCollisionPointRec(p, h.panel)
}

func (h hud) track(i int) rl.Rectangle {
	return rl.NewRectangle(h.panel.X+90, h.panel.Y+36+float32(i*rowHeight), trackWidth, 12)
}

// slider returns the index of the track under p, or -1.
func (h hud) slider(p rl.Vector2) int {
	for i := 0; i < h.rows; i++ {
		t := h.track(i)
		t.Y -= 6
		t.Height += 12
		if rl.CheckCollisionPointRec(p, t) {
			return i
		}
	}
	return -1
}

func (h hud) fraction(i int, p rl.Vector2) float64 {
	t := h.track(i)
	return float64((p.X - t.X) / t.Width)
}

func drawButton(r rl.Rectangle, text string, p palette) {
	rl.DrawRectangleRec(r, p.Grid)
	rl.DrawRectangleLinesEx(r, 1, p.Accent)
	w := rl.MeasureText(text, 16)
	drawText(text, int32(r.X)+(int32(r.Width)-w)/2, int32(r.Y)+8, 16, p.Select)
}

func drawText(text string, x, y, size int32, color rl.Color) {
	rl.DrawText(text, x, y, size, color)
}
