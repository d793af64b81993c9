package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-orrery/internal/catalog"
)

// geometry maps catalog units onto the canvas for one frame.
type geometry struct {
	cx, cy  float64 // canvas center in cells
	k       float64 // cells per catalog unit, zoom included
	rot     float64 // drag rotation in degrees
	elapsed time.Duration
}

// project converts a catalog-unit offset (y up) into canvas cells.
func (g geometry) project(x, y float64) (float64, float64) {
	return g.cx + x*g.k, g.cy - y*g.k*cellAspect
}

// OrbitModel places a planet on its revolving ring, or at the center for the
// distance-zero body.
type OrbitModel struct {
	planet PlanetModel
}

// NewOrbitModel creates an orbit view for p.
func NewOrbitModel(p catalog.Planet) OrbitModel {
	return OrbitModel{planet: NewPlanetModel(p)}
}

// ID returns the planet id.
func (o OrbitModel) ID() string {
	return o.planet.planet.ID
}

// Planet returns the planet view on this orbit.
func (o OrbitModel) Planet() PlanetModel {
	return o.planet
}

// Ring reports the orbit ring's diameter in catalog units. The center body
// has no ring.
func (o OrbitModel) Ring() (float64, bool) {
	p := o.planet.planet
	if p.IsCenter() {
		return 0, false
	}
	return 2 * p.Distance, true
}

// RevolutionDeg is how far the ring has swept, clockwise, after elapsed.
func (o OrbitModel) RevolutionDeg(elapsed time.Duration) float64 {
	p := o.planet.planet
	if p.IsCenter() {
		return 0
	}
	return 360 * phase(elapsed, p.RevolutionDuration())
}

// Position returns the planet's offset from the center in catalog units, y up.
// The planet starts at the top of its ring and is carried around by the ring's
// revolution plus the drag rotation.
func (o OrbitModel) Position(elapsed time.Duration, rotationDeg float64) (float64, float64) {
	p := o.planet.planet
	if p.IsCenter() {
		return 0, 0
	}
	phi := (o.RevolutionDeg(elapsed) + rotationDeg) * math.Pi / 180
	return p.Distance * math.Sin(phi), p.Distance * math.Cos(phi)
}

// Activate forwards to the planet view.
func (o OrbitModel) Activate() (OrbitModel, tea.Cmd) {
	var cmd tea.Cmd
	o.planet, cmd = o.planet.Activate()
	return o, cmd
}

// CloseDetail closes the planet's overlay.
func (o OrbitModel) CloseDetail() OrbitModel {
	o.planet = o.planet.CloseDetail()
	return o
}

func (o OrbitModel) screenPos(g geometry) (float64, float64) {
	return g.project(o.Position(g.elapsed, g.rot))
}

func (o OrbitModel) radiusCells(g geometry) float64 {
	return o.planet.planet.Radius * g.k
}

// drawRing traces the orbit; the selected planet's ring takes its color.
func (o OrbitModel) drawRing(c *canvas, g geometry, selected bool) {
	diameter, ok := o.Ring()
	if !ok {
		return
	}
	fg := colorRing
	if selected {
		fg = shadeColor(o.planet.planet.Color, 0.4)
	}
	c.ellipse(g.cx, g.cy, diameter/2*g.k, '·', fg, layerRing)
}

func (o OrbitModel) drawPlanet(c *canvas, g geometry, selected bool) {
	sx, sy := o.screenPos(g)
	o.planet.draw(c, sx, sy, o.radiusCells(g), selected, g.elapsed)
}

// drawLabel writes the planet name to the right of the body.
func (o OrbitModel) drawLabel(c *canvas, g geometry) {
	sx, sy := o.screenPos(g)
	r := math.Max(o.radiusCells(g), 0.5)
	x := int(math.Round(sx+r)) + 2
	c.text(x, int(math.Round(sy)), "◄ "+o.planet.planet.Name, colorLabel)
}

// hit reports whether canvas cell (x, y) lands on the planet, with one cell
// of slack so small bodies stay clickable.
func (o OrbitModel) hit(g geometry, x, y int) bool {
	sx, sy := o.screenPos(g)
	dx := float64(x) - sx
	dy := (float64(y) - sy) / cellAspect
	return math.Hypot(dx, dy) <= math.Max(o.radiusCells(g), 0.5)+1
}
