package ui

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestCanvasLayers(t *testing.T) {
	c := newCanvas(4, 2)

	c.set(1, 0, '█', "#FFFFFF", false, layerPlanet)
	c.set(1, 0, '·', "240", false, layerRing)
	if got := c.at(1, 0).ch; got != '█' {
		t.Errorf("lower layer overwrote planet: %q", got)
	}

	c.set(2, 0, '·', "240", false, layerRing)
	c.set(2, 0, '▓', "#FFFFFF", false, layerPlanet)
	if got := c.at(2, 0).ch; got != '▓' {
		t.Errorf("higher layer did not overwrite ring: %q", got)
	}

	// Off-canvas writes are ignored.
	c.set(-1, 0, 'x', "", false, layerLabel)
	c.set(4, 1, 'x', "", false, layerLabel)
	if got := c.at(9, 9).ch; got != ' ' {
		t.Errorf("off-canvas cell = %q", got)
	}
}

func TestCanvasTextSkipsPlanets(t *testing.T) {
	c := newCanvas(6, 1)
	c.set(2, 0, '█', "#FFFFFF", false, layerPlanet)
	c.text(0, 0, "abcdef", "249")

	if got := c.plain()[0]; got != "ab█def" {
		t.Errorf("text over planet = %q", got)
	}
}

func TestCanvasEllipseAspect(t *testing.T) {
	c := newCanvas(41, 21)
	c.ellipse(20, 10, 10, '·', "240", layerRing)

	if got := c.at(30, 10).ch; got != '·' {
		t.Errorf("ring should touch x = cx + r on the center row, got %q", got)
	}
	lines := c.plain()
	if !strings.ContainsRune(lines[5], '·') {
		t.Errorf("ring should reach y = cy - r/2: %q", lines[5])
	}
	for y := 0; y < 5; y++ {
		if strings.ContainsRune(lines[y], '·') {
			t.Errorf("ring should be squashed vertically, row %d: %q", y, lines[y])
		}
	}
}

func TestCanvasEllipseLargeRadiusHasNoGaps(t *testing.T) {
	const r = 150
	c := newCanvas(321, 161)
	c.ellipse(160, 80, r, '·', "240", layerRing)

	for x := 160 - r; x <= 160+r; x++ {
		hit := false
		for y := 0; y < c.h; y++ {
			if c.at(x, y).ch == '·' {
				hit = true
				break
			}
		}
		if !hit {
			t.Fatalf("ring has a gap at column %d", x)
		}
	}
}

func TestCanvasDiscCenterAlwaysShows(t *testing.T) {
	c := newCanvas(5, 5)
	c.disc(2, 2, 0.2, func(float64) rune { return '●' }, "#FFFFFF", false, layerPlanet)
	if got := c.at(2, 2).ch; got != '●' {
		t.Errorf("tiny disc center = %q", got)
	}
}

func TestCanvasLines(t *testing.T) {
	c := newCanvas(10, 3)
	c.disc(5, 1, 3, func(float64) rune { return '█' }, "#2E86DE", true, layerPlanet)

	lines := c.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range c.plain() {
		if w := len([]rune(line)); w != 10 {
			t.Errorf("line %d width %d", i, w)
		}
	}
	if !strings.Contains(lines[1], "███████") {
		t.Errorf("center row lost the disc: %q", lines[1])
	}
}

func TestGenerateStars(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	stars := generateStars(rng, 200)

	if len(stars) != 200 {
		t.Fatalf("expected 200 stars, got %d", len(stars))
	}
	for i, s := range stars {
		if s.fx < 0 || s.fx >= 1 || s.fy < 0 || s.fy >= 1 {
			t.Errorf("star %d position (%v, %v) out of range", i, s.fx, s.fy)
		}
		if s.size < 1 || s.size > 3 {
			t.Errorf("star %d size %v out of [1, 3]", i, s.size)
		}
		if s.opacity < 0.2 || s.opacity > 1 {
			t.Errorf("star %d opacity %v out of [0.2, 1]", i, s.opacity)
		}
	}

	// Same seed, same sky.
	again := generateStars(rand.New(rand.NewPCG(7, 11)), 200)
	if again[42] != stars[42] {
		t.Error("starfield should be reproducible from the seed")
	}
}

func TestDrawStarfieldStaysBehind(t *testing.T) {
	c := newCanvas(20, 10)
	c.set(0, 0, '·', "240", false, layerRing)
	drawStarfield(c, []star{{fx: 0, fy: 0, size: 3, opacity: 1}, {fx: 0.5, fy: 0.5, size: 1, opacity: 0.2}})

	if got := c.at(0, 0).ch; got != '·' {
		t.Errorf("star overwrote a ring: %q", got)
	}
	if got := c.at(10, 5).ch; got != '˙' {
		t.Errorf("expected small star glyph, got %q", got)
	}
}

func TestColors(t *testing.T) {
	if got := glowColor("#FF0000", 1); got != "#ffffff" {
		t.Errorf("full glow = %s, want white", got)
	}
	if got := glowColor("#FF0000", 0); got != "#ff0000" {
		t.Errorf("no glow = %s, want the planet color", got)
	}
	if got := starColor(0); got != "#000316" {
		t.Errorf("invisible star = %s, want the background", got)
	}
	if got := parseColor("not a color"); got != white {
		t.Errorf("bad color should fall back to white, got %v", got)
	}
	if gradientText("", "#000000", "#FFFFFF") != "" {
		t.Error("empty gradient should be empty")
	}
	if !strings.Contains(gradientText("ab", "#000000", "#FFFFFF"), "b") {
		t.Error("gradient should keep the text")
	}
}
