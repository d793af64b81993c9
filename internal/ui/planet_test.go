package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/litescript/ls-orrery/internal/catalog"
)

func TestPlanetActivate(t *testing.T) {
	earth := catalog.Default().MustFind("earth")
	m := NewPlanetModel(earth)

	m, cmd := m.Activate()
	if cmd == nil {
		t.Fatal("Activate should return a command")
	}
	msg, ok := cmd().(PlanetActivatedMsg)
	if !ok || msg.ID != "earth" {
		t.Errorf("expected PlanetActivatedMsg{earth}, got %#v", msg)
	}
	if !m.DetailOpen() {
		t.Error("Activate should open the overlay")
	}

	// Activating again keeps a single overlay.
	m, _ = m.Activate()
	if !m.DetailOpen() {
		t.Error("second Activate should leave the overlay open")
	}

	m = m.CloseDetail()
	if m.DetailOpen() {
		t.Error("CloseDetail should close the overlay")
	}
}

func TestPlanetActivateCenter(t *testing.T) {
	m := NewPlanetModel(catalog.Default().Center())

	m, cmd := m.Activate()
	if msg, ok := cmd().(PlanetActivatedMsg); !ok || msg.ID != "sun" {
		t.Errorf("expected PlanetActivatedMsg{sun}, got %#v", msg)
	}
	if m.DetailOpen() {
		t.Error("the center body should not open an overlay")
	}
}

func TestPhase(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		period  time.Duration
		want    float64
	}{
		{"start", 0, 10 * time.Second, 0},
		{"quarter", 2500 * time.Millisecond, 10 * time.Second, 0.25},
		{"wraps", 12500 * time.Millisecond, 10 * time.Second, 0.25},
		{"zero period", time.Second, 0, 0},
		{"negative elapsed", -time.Second, 10 * time.Second, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := phase(tt.elapsed, tt.period); got != tt.want {
				t.Errorf("phase = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGlowLevelRange(t *testing.T) {
	for ms := 0; ms < 4000; ms += 50 {
		g := glowLevel(time.Duration(ms) * time.Millisecond)
		if g < 0.35-1e-9 || g > 0.8+1e-9 {
			t.Fatalf("glowLevel at %dms = %v, outside [0.35, 0.8]", ms, g)
		}
	}
	// Two second pulse.
	if a, b := glowLevel(300*time.Millisecond), glowLevel(2300*time.Millisecond); abs(a-b) > 1e-9 {
		t.Errorf("glow should repeat every 2s: %v vs %v", a, b)
	}
}

func TestPlanetDrawSelectedHalo(t *testing.T) {
	m := NewPlanetModel(catalog.Default().MustFind("jupiter"))

	plain := newCanvas(30, 12)
	m.draw(plain, 15, 6, 4, false, 0)
	if strings.Contains(strings.Join(plain.plain(), ""), "░") {
		t.Error("unselected planet should have no halo")
	}

	lit := newCanvas(30, 12)
	m.draw(lit, 15, 6, 4, true, 0)
	if !strings.Contains(strings.Join(lit.plain(), ""), "░") {
		t.Error("selected planet should have a halo")
	}
	if lit.at(15, 6).layer != layerPlanet {
		t.Error("disc should cover the center cell")
	}
}

func TestPlanetDrawSmallUsesPhaseGlyph(t *testing.T) {
	earth := catalog.Default().MustFind("earth")
	m := NewPlanetModel(earth)

	seen := map[rune]bool{}
	quarter := earth.SpinDuration() / 4
	for i := range 4 {
		c := newCanvas(5, 3)
		m.draw(c, 2, 1, 0.5, false, time.Duration(i)*quarter+time.Millisecond)
		seen[c.at(2, 1).ch] = true
	}
	for _, g := range phaseGlyphs {
		if !seen[g] {
			t.Errorf("glyph %q never shown over one spin", g)
		}
	}
}

func TestPlanetRenderDetail(t *testing.T) {
	mars := catalog.Default().MustFind("mars")
	m := NewPlanetModel(mars)

	box, closeAt := m.renderDetail(60, 40, 0)
	lines := strings.Split(box, "\n")

	if !strings.Contains(lines[1], "Mars") {
		t.Errorf("title row should name the planet: %q", lines[1])
	}
	if closeAt.y != 1 {
		t.Errorf("close control should sit on the title row, got y=%d", closeAt.y)
	}
	title := []rune(ansi.Strip(lines[1]))
	if got := string(title[closeAt.x : closeAt.x+closeAt.w]); got != closeLabel {
		t.Errorf("close control at x=%d reads %q", closeAt.x, got)
	}

	for _, want := range []string{mars.Info.Size, mars.Info.DistanceFromSun, mars.Info.OrbitalPeriod, "Information about Mars"} {
		if !strings.Contains(ansi.Strip(box), want) {
			t.Errorf("overlay missing %q", want)
		}
	}
}

func TestPlanetRenderDetailCapsHeight(t *testing.T) {
	m := NewPlanetModel(catalog.Default().MustFind("saturn"))
	box, _ := m.renderDetail(40, 12, 0)
	if n := len(strings.Split(box, "\n")); n > 12 {
		t.Errorf("overlay is %d rows, want at most 12", n)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
