package ui

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/state"
)

// Config holds display tunables for the orrery view.
type Config struct {
	FPS                 int     // animation frames per second
	StarCount           int     // backdrop stars per mount
	Seed                uint64  // starfield seed
	PointerUnitsPerCell float64 // drag distance of one cell, in pointer units
	ShowStars           bool
}

// DefaultConfig returns the standard display settings.
func DefaultConfig() Config {
	return Config{
		FPS:                 20,
		StarCount:           200,
		Seed:                1,
		PointerUnitsPerCell: 8,
		ShowStars:           true,
	}
}

const (
	navWidth       = 16
	navHeaderRows  = 2
	infoWidth      = 36
	minCanvasWidth = 30
	minViewHeight  = 14
)

// frameMsg drives one animation frame. gen ties it to a single mount so
// frames from an earlier mount are dropped.
type frameMsg struct {
	gen int
	t   time.Time
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// systemLayout positions the orrery's regions in view coordinates.
type systemLayout struct {
	nav      rect
	canvas   rect
	controls rect
	info     rect

	zoomIn  rect
	zoomOut rect
	reset   rect
}

// SystemModel is the orrery: orbit field, planet list, zoom controls, info
// panel and detail overlay, all driven by one state.Controller.
type SystemModel struct {
	ctl *state.Controller
	cfg Config
	log *logging.Logger

	width  int
	height int
	orbits []OrbitModel

	// Mount lifetime
	mounted bool
	gen     int
	start   time.Time
	elapsed time.Duration
	motion  motion

	rng       *rand.Rand
	stars     []star
	showStars bool
}

// NewSystemModel creates an unmounted orrery view over ctl's catalog.
func NewSystemModel(ctl *state.Controller, cfg Config, log *logging.Logger) SystemModel {
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultConfig().FPS
	}
	if log == nil {
		log = logging.Discard()
	}
	cat := ctl.Catalog()
	orbits := make([]OrbitModel, cat.Len())
	for i := range orbits {
		orbits[i] = NewOrbitModel(cat.At(i))
	}

	m := SystemModel{
		ctl:       ctl,
		cfg:       cfg,
		log:       log,
		orbits:    orbits,
		motion:    newMotion(cfg.FPS),
		rng:       rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		showStars: cfg.ShowStars,
	}
	m.motion.snap(ctl.Scale(), ctl.Rotation())
	return m
}

// SetSize updates the viewport size.
func (m SystemModel) SetSize(width, height int) SystemModel {
	m.width = width
	m.height = height
	return m
}

// Mounted reports whether the view currently holds mouse reporting and
// receives input.
func (m SystemModel) Mounted() bool {
	return m.mounted
}

// Orbits returns the orbit views in catalog order.
func (m SystemModel) Orbits() []OrbitModel {
	return append([]OrbitModel(nil), m.orbits...)
}

// Mount turns on mouse reporting, restarts the animation clock and the frame
// loop, and scatters a fresh starfield. Mounting a mounted view does nothing.
func (m SystemModel) Mount(now time.Time) (SystemModel, tea.Cmd) {
	if m.mounted {
		return m, nil
	}
	m.mounted = true
	m.gen++
	m.start = now
	m.elapsed = 0
	m.motion.snap(m.ctl.Scale(), m.ctl.Rotation())
	m.stars = generateStars(m.rng, m.cfg.StarCount)

	m.log.Debug("mounted (frame loop %d)", m.gen)
	return m, tea.Batch(tea.EnableMouseAllMotion, m.frameCmd())
}

// Unmount releases mouse reporting, ends any drag, closes overlays and stops
// the frame loop. Unmounting an unmounted view does nothing.
func (m SystemModel) Unmount() (SystemModel, tea.Cmd) {
	if !m.mounted {
		return m, nil
	}
	m.mounted = false
	m.gen++
	m.ctl.EndDrag()
	m.closeDetails()

	m.log.Debug("unmounted")
	return m, tea.DisableMouse
}

func (m SystemModel) frameCmd() tea.Cmd {
	gen := m.gen
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, t: t}
	})
}

// Update handles input messages.
func (m SystemModel) Update(msg tea.Msg) (SystemModel, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if !m.mounted || msg.gen != m.gen {
			return m, nil
		}
		m.elapsed = msg.t.Sub(m.start)
		m.motion.step(m.ctl.Scale(), m.ctl.Rotation())
		return m, m.frameCmd()

	case PlanetActivatedMsg:
		m.ctl.Select(msg.ID)
		m.log.Debug("selected %s", msg.ID)
		return m, nil
	}

	if !m.mounted {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m SystemModel) handleKey(msg tea.KeyMsg) (SystemModel, tea.Cmd) {
	switch msg.String() {
	case "right":
		m.ctl.SelectNext()
	case "left":
		m.ctl.SelectPrev()
	case "+", "=":
		m.ctl.ZoomIn()
	case "-":
		m.ctl.ZoomOut()
	case "0":
		m.ctl.Reset()
	case "enter":
		return m.activate(m.ctl.Catalog().IndexOf(m.ctl.Selected()))
	case "esc":
		m.closeDetails()
	case "t":
		m.showStars = !m.showStars
	}
	return m, nil
}

func (m SystemModel) handleMouse(msg tea.MouseMsg) (SystemModel, tea.Cmd) {
	px := float64(msg.X) * m.cfg.PointerUnitsPerCell

	switch msg.Action {
	case tea.MouseActionRelease:
		// Release ends a drag wherever the pointer is.
		m.ctl.EndDrag()
	case tea.MouseActionMotion:
		m.ctl.DragTo(px)
	case tea.MouseActionPress:
		if m.tooSmall() {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.ctl.ZoomIn()
		case tea.MouseButtonWheelDown:
			m.ctl.ZoomOut()
		case tea.MouseButtonLeft:
			return m.handlePress(msg.X, msg.Y, px)
		}
	}
	return m, nil
}

func (m SystemModel) handlePress(x, y int, px float64) (SystemModel, tea.Cmd) {
	lay := m.layout()

	// An open overlay takes every press: its close control or anything
	// outside the box dismisses it.
	if i := m.openDetail(); i >= 0 {
		box, closeAt := m.detailRects(i, lay)
		if closeAt.contains(x, y) || !box.contains(x, y) {
			m.orbits[i] = m.orbits[i].CloseDetail()
		}
		return m, nil
	}

	switch {
	case lay.nav.contains(x, y):
		row := y - lay.nav.y - navHeaderRows
		if row >= 0 && row < len(m.orbits) {
			m.ctl.Select(m.orbits[row].ID())
		}
	case lay.zoomIn.contains(x, y):
		m.ctl.ZoomIn()
	case lay.zoomOut.contains(x, y):
		m.ctl.ZoomOut()
	case lay.reset.contains(x, y):
		m.ctl.Reset()
	case lay.canvas.contains(x, y):
		m.ctl.BeginDrag(px)
		if i := m.hitPlanet(x-lay.canvas.x, y-lay.canvas.y, lay); i >= 0 {
			return m.activate(i)
		}
	}
	return m, nil
}

// activate runs orbit i's activation, closing any other open overlay first.
func (m SystemModel) activate(i int) (SystemModel, tea.Cmd) {
	if i < 0 || i >= len(m.orbits) {
		return m, nil
	}
	for j := range m.orbits {
		if j != i {
			m.orbits[j] = m.orbits[j].CloseDetail()
		}
	}
	var cmd tea.Cmd
	m.orbits[i], cmd = m.orbits[i].Activate()
	m.log.Debug("activated %s", m.orbits[i].ID())
	return m, cmd
}

func (m *SystemModel) closeDetails() {
	for i := range m.orbits {
		m.orbits[i] = m.orbits[i].CloseDetail()
	}
}

// openDetail returns the index of the orbit whose overlay is open, or -1.
func (m SystemModel) openDetail() int {
	for i, o := range m.orbits {
		if o.planet.DetailOpen() {
			return i
		}
	}
	return -1
}

func (m SystemModel) tooSmall() bool {
	return m.width < navWidth+infoWidth+minCanvasWidth || m.height < minViewHeight
}

func (m SystemModel) layout() systemLayout {
	canvasW := m.width - navWidth - infoWidth
	canvasH := m.height - 1

	l := systemLayout{
		nav:      rect{x: 0, y: 0, w: navWidth, h: m.height},
		canvas:   rect{x: navWidth, y: 0, w: canvasW, h: canvasH},
		controls: rect{x: navWidth, y: canvasH, w: canvasW, h: 1},
		info:     rect{x: navWidth + canvasW, y: 0, w: infoWidth, h: m.height},
	}

	// Matches renderControls: one leading space, buttons separated by one space.
	x := navWidth + 1
	l.zoomIn = rect{x: x, y: canvasH, w: 5, h: 1}
	x += 6
	l.zoomOut = rect{x: x, y: canvasH, w: 5, h: 1}
	x += 6
	l.reset = rect{x: x, y: canvasH, w: 9, h: 1}
	return l
}

// geometry fits the widest orbit into the canvas at zoom 1, then applies the
// eased zoom and rotation.
func (m SystemModel) geometry(lay systemLayout) geometry {
	extent := 0.0
	for _, o := range m.orbits {
		p := o.planet.planet
		extent = math.Max(extent, p.Distance+p.Radius)
	}
	fit := math.Min(float64(lay.canvas.w)/2, float64(lay.canvas.h)) * 0.95

	return geometry{
		cx:      float64(lay.canvas.w-1) / 2,
		cy:      float64(lay.canvas.h-1) / 2,
		k:       fit / extent * m.motion.scale,
		rot:     m.motion.rot,
		elapsed: m.elapsed,
	}
}

// drawOrbitField renders stars, rings and planets; the selected planet is
// drawn last so it sits above the rest.
func (m SystemModel) drawOrbitField(lay systemLayout) *canvas {
	c := newCanvas(lay.canvas.w, lay.canvas.h)
	if m.showStars {
		drawStarfield(c, m.stars)
	}

	g := m.geometry(lay)
	selected := m.ctl.Selected()
	for _, o := range m.orbits {
		o.drawRing(c, g, o.ID() == selected)
	}

	sel := -1
	for i, o := range m.orbits {
		if o.ID() == selected {
			sel = i
			continue
		}
		o.drawPlanet(c, g, false)
	}
	if sel >= 0 {
		m.orbits[sel].drawPlanet(c, g, true)
		m.orbits[sel].drawLabel(c, g)
	}
	return c
}

// hitPlanet returns the topmost orbit under canvas cell (x, y), or -1.
func (m SystemModel) hitPlanet(x, y int, lay systemLayout) int {
	g := m.geometry(lay)
	selected := m.ctl.Selected()

	if i := m.ctl.Catalog().IndexOf(selected); i >= 0 && m.orbits[i].hit(g, x, y) {
		return i
	}
	for i := len(m.orbits) - 1; i >= 0; i-- {
		if m.orbits[i].ID() != selected && m.orbits[i].hit(g, x, y) {
			return i
		}
	}
	return -1
}

// detailRects returns the overlay box and its close control in view
// coordinates.
func (m SystemModel) detailRects(i int, lay systemLayout) (rect, rect) {
	box, closeAt := m.orbits[i].planet.renderDetail(lay.canvas.w, lay.canvas.h, m.elapsed)
	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	bx := lay.canvas.x + (lay.canvas.w-bw)/2
	by := lay.canvas.y + (lay.canvas.h-bh)/2
	return rect{x: bx, y: by, w: bw, h: bh},
		rect{x: bx + closeAt.x, y: by + closeAt.y, w: closeAt.w, h: closeAt.h}
}

// View renders the orrery.
func (m SystemModel) View() string {
	if m.tooSmall() {
		return "Terminal too small for orrery view"
	}

	lay := m.layout()
	center := append(m.renderCanvas(lay), m.renderControls(lay))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderNav(lay),
		strings.Join(center, "\n"),
		RenderInfoPanel(m.ctl.SelectedPlanet(), lay.info.w, lay.info.h),
	)
}

// renderCanvas returns the orbit field, or the open overlay over a blank
// backdrop.
func (m SystemModel) renderCanvas(lay systemLayout) []string {
	i := m.openDetail()
	if i < 0 {
		return m.drawOrbitField(lay).Lines()
	}

	box, _ := m.orbits[i].planet.renderDetail(lay.canvas.w, lay.canvas.h, m.elapsed)
	boxRect, _ := m.detailRects(i, lay)
	boxLines := strings.Split(box, "\n")

	blank := strings.Repeat(" ", lay.canvas.w)
	lines := make([]string, lay.canvas.h)
	for y := range lines {
		row := y - (boxRect.y - lay.canvas.y)
		if row < 0 || row >= len(boxLines) {
			lines[y] = blank
			continue
		}
		left := boxRect.x - lay.canvas.x
		line := strings.Repeat(" ", left) + boxLines[row]
		lines[y] = padRight(line, lay.canvas.w)
	}
	return lines
}

func (m SystemModel) renderControls(lay systemLayout) string {
	btn := lipgloss.NewStyle().Foreground(lipgloss.Color(colorText)).Background(lipgloss.Color(colorNavActive))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))

	line := " " + btn.Render("[ + ]") + " " + btn.Render("[ - ]") + " " + btn.Render("[ reset ]") +
		dim.Render(fmt.Sprintf("  zoom %.1fx  rot %.0f°", m.ctl.Scale(), normalizeDeg(m.ctl.Rotation())))
	if m.ctl.Dragging() {
		line += dim.Render("  ⟲")
	}

	line = lipgloss.NewStyle().MaxWidth(lay.controls.w).Render(line)
	return padRight(line, lay.controls.w)
}

func (m SystemModel) renderNav(lay systemLayout) string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim)).Bold(true)
	itemStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorLabel)).Width(navWidth - 2)
	activeStyle := itemStyle.Foreground(lipgloss.Color("255")).Background(lipgloss.Color(colorNavActive)).Bold(true)

	lines := []string{headerStyle.Render(" PLANETS"), ""}
	selected := m.ctl.Selected()
	for _, o := range m.orbits {
		p := o.planet.planet
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render("●")
		label := dot + " " + truncateWidth(p.Name, navWidth-5)
		if p.ID == selected {
			lines = append(lines, " "+activeStyle.Render(label))
		} else {
			lines = append(lines, " "+itemStyle.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(navWidth).
		Height(lay.nav.h).
		MaxHeight(lay.nav.h).
		Render(strings.Join(lines, "\n"))
}

// padRight pads a styled line with spaces to w cells.
func padRight(line string, w int) string {
	if pad := w - lipgloss.Width(line); pad > 0 {
		return line + strings.Repeat(" ", pad)
	}
	return line
}

// normalizeDeg maps an angle into [0, 360).
func normalizeDeg(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}
