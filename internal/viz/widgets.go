package viz

// label is the pause button caption.
type label struct{ text string }

func (l *label) SetText(text string) { l.text = text }

// tooltip is drawn over the canvas; coordinates are canvas sub-pixels.
type tooltip struct {
	visible bool
	x, y    float64
	text    string
}

func (t *tooltip) Show(x, y float64, text string) {
	t.visible, t.x, t.y, t.text = true, x, y, text
}

func (t *tooltip) Hide() { t.visible = false }

// cell returns the tooltip's canvas cell.
func (t *tooltip) cell() (col, row int) {
	return int(t.x) / 2, int(t.y) / 4
}
