package ui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/catalog"
)

// PlanetActivatedMsg reports that a planet was clicked or activated from the
// keyboard. The orrery turns it into a selection change.
type PlanetActivatedMsg struct {
	ID string
}

// Phase glyphs for bodies too small to show a terminator band.
var phaseGlyphs = []rune{'◐', '◓', '◑', '◒'}

const (
	glowPulsePeriod = 2 * time.Second
	closeLabel      = "[x]"
)

// PlanetModel draws one body and owns its detail overlay.
type PlanetModel struct {
	planet     catalog.Planet
	detailOpen bool
}

// NewPlanetModel creates a planet view for p.
func NewPlanetModel(p catalog.Planet) PlanetModel {
	return PlanetModel{planet: p}
}

// Planet returns the record this view draws.
func (m PlanetModel) Planet() catalog.Planet {
	return m.planet
}

// DetailOpen reports whether the detail overlay is showing.
func (m PlanetModel) DetailOpen() bool {
	return m.detailOpen
}

// Activate emits PlanetActivatedMsg and then opens the detail overlay, except
// for the center body. Activating an open overlay leaves it as is.
func (m PlanetModel) Activate() (PlanetModel, tea.Cmd) {
	id := m.planet.ID
	cmd := func() tea.Msg {
		return PlanetActivatedMsg{ID: id}
	}
	if !m.planet.IsCenter() {
		m.detailOpen = true
	}
	return m, cmd
}

// CloseDetail hides the detail overlay.
func (m PlanetModel) CloseDetail() PlanetModel {
	m.detailOpen = false
	return m
}

// phase returns how far elapsed is through a repeating period, in [0, 1).
func phase(elapsed, period time.Duration) float64 {
	if period <= 0 || elapsed <= 0 {
		return 0
	}
	return float64(elapsed%period) / float64(period)
}

// spinPhase is the body's turn about its own axis.
func (m PlanetModel) spinPhase(elapsed time.Duration) float64 {
	return phase(elapsed, m.planet.SpinDuration())
}

// glowLevel is how far the highlight is blended toward white.
func glowLevel(elapsed time.Duration) float64 {
	pulse := 0.5 + 0.5*math.Sin(2*math.Pi*phase(elapsed, glowPulsePeriod))
	return 0.35 + 0.45*pulse
}

// draw renders the body at canvas position (sx, sy) with horizontal radius r
// cells. The selected body gets a pulsing halo.
func (m PlanetModel) draw(c *canvas, sx, sy, r float64, selected bool, elapsed time.Duration) {
	p := m.planet
	if selected {
		inner := math.Max(r, 0.5)
		c.halo(sx, sy, inner, inner+1.5, '░', glowColor(p.Color, glowLevel(elapsed)), layerGlow)
	}

	spin := m.spinPhase(elapsed)
	if r < 0.75 {
		glyph := phaseGlyphs[int(spin*float64(len(phaseGlyphs)))%len(phaseGlyphs)]
		c.set(int(math.Round(sx)), int(math.Round(sy)), glyph, p.Color, selected, layerPlanet)
		return
	}

	// A terminator band sweeps across the face once per spin.
	meridian := math.Cos(2 * math.Pi * spin)
	band := 0.6 / r
	c.disc(sx, sy, r, func(nx float64) rune {
		if math.Abs(nx-meridian) < band {
			return '▓'
		}
		return '█'
	}, p.Color, selected, layerPlanet)
}

// renderDetail builds the overlay box to fit within maxW x maxH and returns
// it with the close control's position relative to the box.
func (m PlanetModel) renderDetail(maxW, maxH int, elapsed time.Duration) (string, rect) {
	p := m.planet
	iw := maxW - 4
	if iw > 46 {
		iw = 46
	}
	if iw < len(closeLabel)+2 {
		iw = len(closeLabel) + 2
	}

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorTitle)).Bold(true)
	closeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorText)).Background(lipgloss.Color(colorNavActive))
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorText))
	headingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorHeading)).Bold(true)
	wrapText := textStyle.Width(iw)

	name := truncateWidth(p.Name, iw-len(closeLabel)-1)
	gap := iw - lipgloss.Width(name) - len(closeLabel)
	lines := []string{titleStyle.Render(name) + strings.Repeat(" ", gap) + closeStyle.Render(closeLabel), ""}

	// Enlarged copy of the body, still spinning.
	r := math.Min(float64(iw)/4, 8)
	rows := 2*int(math.Ceil(r*cellAspect)) + 1
	big := newCanvas(iw, rows)
	m.draw(big, float64(iw-1)/2, float64(rows-1)/2, r, false, elapsed)
	lines = append(lines, big.Lines()...)
	lines = append(lines, "")

	for _, field := range []string{p.Info.Size, p.Info.DistanceFromSun, p.Info.OrbitalPeriod} {
		if field == "" {
			continue
		}
		lines = append(lines, strings.Split(wrapText.Render(field), "\n")...)
	}
	if len(p.Info.Description) > 0 {
		lines = append(lines, "", headingStyle.Render(truncateWidth("Information about "+p.Name, iw)))
		for _, para := range p.Info.Description {
			lines = append(lines, strings.Split(wrapText.Render(para), "\n")...)
		}
	}

	if maxLines := maxH - 2; maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Color)).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))

	// Border and left padding put the title row's content at column 2.
	closeAt := rect{x: 2 + iw - len(closeLabel), y: 1, w: len(closeLabel), h: 1}
	return box, closeAt
}
