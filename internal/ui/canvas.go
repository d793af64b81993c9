package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 0.5

// Draw layers. A cell only takes a write at the same or a higher layer.
const (
	layerEmpty = iota
	layerStar
	layerRing
	layerGlow
	layerPlanet
	layerLabel
)

type cell struct {
	ch    rune
	fg    string
	bold  bool
	layer int
}

// canvas is a character grid with per-cell color.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	cells := make([][]cell, h)
	for y := range cells {
		cells[y] = make([]cell, w)
		for x := range cells[y] {
			cells[y][x] = cell{ch: ' '}
		}
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}

// set writes a glyph if the cell's current layer is not above layer.
func (c *canvas) set(x, y int, ch rune, fg string, bold bool, layer int) {
	if !c.inBounds(x, y) || c.cells[y][x].layer > layer {
		return
	}
	c.cells[y][x] = cell{ch: ch, fg: fg, bold: bold, layer: layer}
}

// at returns the cell at (x, y), or an empty cell off-canvas.
func (c *canvas) at(x, y int) cell {
	if !c.inBounds(x, y) {
		return cell{ch: ' '}
	}
	return c.cells[y][x]
}

// text writes s starting at (x, y) over cells no higher than the ring layer.
func (c *canvas) text(x, y int, s, fg string) {
	for _, r := range s {
		if c.inBounds(x, y) && c.cells[y][x].layer <= layerRing {
			c.cells[y][x] = cell{ch: r, fg: fg, layer: layerLabel}
		}
		x++
	}
}

// ellipse traces a ring of horizontal radius r around (cx, cy).
func (c *canvas) ellipse(cx, cy, r float64, ch rune, fg string, layer int) {
	if r < 1 {
		return
	}

	// Enough samples to touch every cell on the circumference.
	steps := max(int(2*math.Pi*r)+1, 8)

	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x := int(math.Round(cx + r*math.Cos(theta)))
		y := int(math.Round(cy - r*math.Sin(theta)*cellAspect))
		c.set(x, y, ch, fg, false, layer)
	}
}

// disc fills the cells inside an ellipse of horizontal radius r. glyph picks
// the rune for each cell from its normalized horizontal offset in [-1, 1].
func (c *canvas) disc(cx, cy, r float64, glyph func(nx float64) rune, fg string, bold bool, layer int) {
	ry := r * cellAspect
	x0, x1 := int(math.Floor(cx-r)), int(math.Ceil(cx+r))
	y0, y1 := int(math.Floor(cy-ry)), int(math.Ceil(cy+ry))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			nx := (float64(x) - cx) / r
			ny := 0.0
			if ry > 0 {
				ny = (float64(y) - cy) / ry
			} else if float64(y) != math.Round(cy) {
				continue
			}
			if nx*nx+ny*ny <= 1 {
				c.set(x, y, glyph(nx), fg, bold, layer)
			}
		}
	}

	// The center cell always shows, however small the disc.
	cxi, cyi := int(math.Round(cx)), int(math.Round(cy))
	if c.at(cxi, cyi).layer < layer {
		c.set(cxi, cyi, glyph(0), fg, bold, layer)
	}
}

// halo fills the band between radius inner and outer around (cx, cy).
func (c *canvas) halo(cx, cy, inner, outer float64, ch rune, fg string, layer int) {
	ryOut := outer * cellAspect
	x0, x1 := int(math.Floor(cx-outer)), int(math.Ceil(cx+outer))
	y0, y1 := int(math.Floor(cy-ryOut)), int(math.Ceil(cy+ryOut))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) - cx
			dy := (float64(y) - cy) / cellAspect
			d := math.Hypot(dx, dy)
			if d > inner && d <= outer {
				c.set(x, y, ch, fg, false, layer)
			}
		}
	}
}

// Lines renders the grid row by row, styling runs of equal color together.
func (c *canvas) Lines() []string {
	lines := make([]string, c.h)
	for y, row := range c.cells {
		var b strings.Builder
		var run []rune
		var runFg string
		var runBold bool

		flush := func() {
			if len(run) == 0 {
				return
			}
			if runFg == "" {
				b.WriteString(string(run))
			} else {
				style := lipgloss.NewStyle().Foreground(lipgloss.Color(runFg)).Bold(runBold)
				b.WriteString(style.Render(string(run)))
			}
			run = run[:0]
		}

		for _, cl := range row {
			fg, bold := cl.fg, cl.bold
			if cl.ch == ' ' {
				fg, bold = "", false
			}
			if fg != runFg || bold != runBold {
				flush()
				runFg, runBold = fg, bold
			}
			run = append(run, cl.ch)
		}
		flush()
		lines[y] = b.String()
	}
	return lines
}

// String renders the whole grid.
func (c *canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

// plain returns the glyphs without styling, for tests and hit checks.
func (c *canvas) plain() []string {
	lines := make([]string, c.h)
	for y, row := range c.cells {
		runes := make([]rune, len(row))
		for x, cl := range row {
			runes[x] = cl.ch
		}
		lines[y] = string(runes)
	}
	return lines
}
