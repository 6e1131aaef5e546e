package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/san-kum/orrery/internal/app"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/orrery"
)

const (
	headerRows = 1
	footerRows = 1
	panelWidth = 36
	nameWidth  = 8
	barWidth   = 12
	// columns before the bar inside a slider line: border, padding, marker, name, space
	barOffset = 1 + 1 + 2 + nameWidth + 1

	rotateStep = 0.05
	zoomStep   = 1.1
)

type TickMsg time.Time

type input struct {
	clicks   *app.DoubleClick
	dragging bool
	button   tea.MouseButton
	lx, ly   int
}

// Model is the bubbletea program hosting the viewer in a terminal.
type Model struct {
	App    *app.App
	canvas *Canvas
	label  *label
	tip    *tooltip
	in     *input

	selected      int
	width, height int
	frameRate     int
	log           zerolog.Logger
}

func NewModel(cfg *config.Config, log zerolog.Logger) (Model, error) {
	canvas := NewCanvas(0, 0)
	m := Model{
		canvas:    canvas,
		label:     &label{},
		tip:       &tooltip{},
		in:        &input{clicks: app.NewDoubleClick()},
		frameRate: cfg.FrameRate,
		log:       log,
	}
	a, err := app.New(cfg, app.Elements{
		Renderer:   &Renderer{Canvas: canvas},
		Surface:    Surface{Canvas: canvas},
		PauseLabel: m.label,
		Tooltip:    m.tip,
	}, log)
	if err != nil {
		return Model{}, err
	}
	m.App = a
	return m, nil
}

// Run starts the terminal host and blocks until the user quits.
func Run(cfg *config.Config, log zerolog.Logger) error {
	m, err := NewModel(cfg, log)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// canvasCells is the canvas size in terminal cells for the current window.
func (m Model) canvasCells() (cols, rows int) {
	return max(1, m.width-panelWidth), max(1, m.height-headerRows-footerRows)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.App.Loop.Tick()
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		cols, rows := m.canvasCells()
		m.App.Viewport.Resize(cols*2, rows*4)
		return m, nil
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	ctl := m.App.Controls
	key := msg.String()
	if len(m.App.Sliders) == 0 {
		switch key {
		case "tab", "shift+tab", "left", "right", "[", "]", "{", "}":
			return m, nil
		}
	}
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.App.TogglePause()
	case "t":
		m.App.ToggleTheme()
	case "tab":
		m.selected = (m.selected + 1) % len(m.App.Sliders)
	case "shift+tab":
		m.selected = (m.selected + len(m.App.Sliders) - 1) % len(m.App.Sliders)
	case "right", "]":
		m.App.Sliders[m.selected].Nudge(1)
	case "left", "[":
		m.App.Sliders[m.selected].Nudge(-1)
	case "}":
		m.App.Sliders[m.selected].Nudge(10)
	case "{":
		m.App.Sliders[m.selected].Nudge(-10)
	case "shift+left":
		ctl.Rotate(rotateStep*4, 0)
	case "shift+right":
		ctl.Rotate(-rotateStep*4, 0)
	case "up", "shift+up":
		ctl.Rotate(0, rotateStep*4)
	case "down", "shift+down":
		ctl.Rotate(0, -rotateStep*4)
	case "+", "=":
		ctl.Zoom(1 / zoomStep)
	case "-":
		ctl.Zoom(zoomStep)
	}
	return m, nil
}

// canvasPixel maps a terminal cell to the center of its canvas sub-pixel block.
func (m Model) canvasPixel(x, y int) (float64, float64, bool) {
	cols, rows := m.canvasCells()
	row := y - headerRows
	if x < 0 || x >= cols || row < 0 || row >= rows {
		return 0, 0, false
	}
	return float64(x*2 + 1), float64(row*4 + 2), true
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	ctl := m.App.Controls
	px, py, inCanvas := m.canvasPixel(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		if m.in.dragging {
			dx, dy := msg.X-m.in.lx, msg.Y-m.in.ly
			if m.in.button == tea.MouseButtonRight {
				ctl.PanPixels(float64(dx*2), float64(dy*4), m.App.State.Height)
			} else {
				ctl.Rotate(-float64(dx)*rotateStep, -float64(dy)*rotateStep*2)
			}
			m.in.lx, m.in.ly = msg.X, msg.Y
		}
		if inCanvas {
			m.App.Pointer.Move(px, py)
		} else {
			m.tip.Hide()
			m.App.State.Hovered = nil
		}
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			ctl.Zoom(1 / zoomStep)
		case tea.MouseButtonWheelDown:
			ctl.Zoom(zoomStep)
		case tea.MouseButtonLeft, tea.MouseButtonRight:
			if !inCanvas {
				if msg.Button == tea.MouseButtonLeft {
					m.clickChrome(msg.X, msg.Y)
				}
				return
			}
			m.in.dragging, m.in.button = true, msg.Button
			m.in.lx, m.in.ly = msg.X, msg.Y
			if msg.Button == tea.MouseButtonLeft && m.in.clicks.Click(time.Now(), px, py) {
				m.App.Pointer.DoubleClick(px, py)
			}
		}
	case tea.MouseActionRelease:
		m.in.dragging = false
	}
}

// clickChrome handles presses on the header buttons and slider bars.
func (m Model) clickChrome(x, y int) {
	if y == 0 {
		switch m.headerHit(x) {
		case "pause":
			m.App.TogglePause()
		case "theme":
			m.App.ToggleTheme()
		}
		return
	}
	cols, _ := m.canvasCells()
	// panel border and title occupy the first two body rows
	i := y - headerRows - 2
	if i < 0 || i >= len(m.App.Sliders) {
		return
	}
	start := cols + barOffset
	if x >= start && x < start+barWidth {
		m.App.Sliders[i].SetFraction((float64(x-start) + 0.5) / barWidth)
	}
}

func (m Model) headerParts() (title, button, toggle string) {
	title = "orrery"
	button = m.label.text
	toggle = "☾ dark"
	if m.App.State.LightMode {
		toggle = "☀ light"
	}
	return title, button, toggle
}

// headerHit names the header widget under column x.
func (m Model) headerHit(x int) string {
	title, button, toggle := m.headerParts()
	start := lipgloss.Width(title) + 2
	end := start + lipgloss.Width(button) + 2
	if x >= start && x < end {
		return "pause"
	}
	start = end + 2
	if x >= start && x < start+lipgloss.Width(toggle) {
		return "theme"
	}
	return ""
}

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	env := m.App.Scene.Env
	st := NewStyles(GetTheme(env.Chrome))

	title, button, toggle := m.headerParts()
	header := GradientText(title, 0xffff00, 0xff5733) + "  " +
		st.Button.Render(button) + "  " +
		st.Switch.Render(toggle)

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderCanvas(st), m.renderPanel(st))
	footer := st.KeyHint.Render("space pause · t theme · tab/←→ speed · shift+arrows/drag orbit · +/- zoom · dbl-click focus · q quit")

	return header + "\n" + body + "\n" + footer
}

type run struct {
	text  strings.Builder
	style lipgloss.Style
	key   int64
}

func (m Model) renderCanvas(st Styles) string {
	c := m.canvas
	env := m.App.Scene.Env
	base := lipgloss.NewStyle()
	if env.Background != nil {
		base = base.Background(lipgloss.Color(env.Background.Hex()))
	}

	tipCol, tipRow := m.tip.cell()
	tipText := []rune(" " + m.tip.text + " ")
	tipCol = min(tipCol, c.Width-len(tipText))

	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		var runs []*run
		for col := 0; col < c.Width; col++ {
			ch, key := c.Grid[row][col], int64(-1)
			style := base
			switch {
			case m.tip.visible && row == tipRow && col >= tipCol && col-tipCol < len(tipText):
				ch, key, style = tipText[col-tipCol], -2, st.Tooltip
			case ch != blank:
				color := c.Colors[row][col]
				key = int64(color)
				style = base.Foreground(lipgloss.Color(color.Hex()))
			}
			if len(runs) == 0 || runs[len(runs)-1].key != key {
				runs = append(runs, &run{style: style, key: key})
			}
			runs[len(runs)-1].text.WriteRune(ch)
		}
		for _, r := range runs {
			b.WriteString(r.style.Render(r.text.String()))
		}
		if row < c.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) renderPanel(st Styles) string {
	lines := []string{st.Title.Render("orbital speed")}
	for i, s := range m.App.Sliders {
		marker, name := "  ", st.Label.Render(fmt.Sprintf("%-*s", nameWidth, s.Label))
		if i == m.selected {
			marker, name = "> ", st.Selected.Render(fmt.Sprintf("%-*s", nameWidth, s.Label))
		}
		lines = append(lines, marker+name+" "+st.SliderBar(s.Fraction(), barWidth)+" "+st.Value.Render(s.String()))
	}
	if h := m.App.State.Hovered; h != nil {
		if p := m.App.Scene.PlanetForMesh(h); p != nil {
			lines = append(lines, "", st.Label.Render(fmt.Sprintf("%s  r=%.1f  d=%.0f", p.Name, p.Size, p.Distance)))
		}
	}
	return st.Panel.Width(panelWidth - 2).Render(strings.Join(lines, "\n"))
}

// Snapshot advances cfg headlessly for frames ticks into a canvas of the
// given cell size and returns it with the theme background.
func Snapshot(cfg *config.Config, cols, rows, frames int, light bool, log zerolog.Logger) (*Canvas, orrery.Color, error) {
	m, err := NewModel(cfg, log)
	if err != nil {
		return nil, 0, err
	}
	if light {
		m.App.ToggleTheme()
	}
	m.App.Viewport.Resize(cols*2, rows*4)
	app.Advance(m.App.Loop, max(1, frames))
	bg := orrery.Color(0)
	if b := m.App.Scene.Env.Background; b != nil {
		bg = *b
	}
	return m.canvas, bg, nil
}
