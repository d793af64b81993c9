package ui

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-orrery/internal/catalog"
)

func TestOrbitRing(t *testing.T) {
	cat := catalog.Default()

	if _, ok := NewOrbitModel(cat.Center()).Ring(); ok {
		t.Error("the center body should have no ring")
	}

	tests := []struct {
		id   string
		want float64
	}{
		{"mercury", 120},
		{"earth", 230},
		{"neptune", 660},
	}
	for _, tt := range tests {
		d, ok := NewOrbitModel(cat.MustFind(tt.id)).Ring()
		if !ok || d != tt.want {
			t.Errorf("%s ring = %v, %v; want %v, true", tt.id, d, ok, tt.want)
		}
	}
}

func TestOrbitPosition(t *testing.T) {
	cat := catalog.Default()
	earth := NewOrbitModel(cat.MustFind("earth"))
	year := cat.MustFind("earth").RevolutionDuration()

	const eps = 1e-9
	tests := []struct {
		name    string
		elapsed time.Duration
		rot     float64
		x, y    float64
	}{
		{"top at start", 0, 0, 0, 115},
		{"quarter turn", year / 4, 0, 115, 0},
		{"half turn", year / 2, 0, 0, -115},
		{"drag rotation", 0, 90, 115, 0},
		{"full turn", year, 0, 0, 115},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := earth.Position(tt.elapsed, tt.rot)
			if math.Abs(x-tt.x) > eps || math.Abs(y-tt.y) > eps {
				t.Errorf("Position = (%v, %v), want (%v, %v)", x, y, tt.x, tt.y)
			}
		})
	}

	sun := NewOrbitModel(cat.Center())
	if x, y := sun.Position(time.Hour, 45); x != 0 || y != 0 {
		t.Errorf("center body moved to (%v, %v)", x, y)
	}
}

func TestOrbitRevolutionIndependentOfSpin(t *testing.T) {
	cat := catalog.Default()
	venus := NewOrbitModel(cat.MustFind("venus"))

	// Venus revolves in 11.25s but spins in 243s.
	if got := venus.RevolutionDeg(cat.MustFind("venus").RevolutionDuration() / 2); math.Abs(got-180) > 1e-9 {
		t.Errorf("half revolution = %v°, want 180°", got)
	}
	if spin := venus.Planet().spinPhase(11250 * time.Millisecond); math.Abs(spin-11.25/243) > 1e-9 {
		t.Errorf("spin phase after one revolution = %v", spin)
	}
}

func TestOrbitHit(t *testing.T) {
	o := NewOrbitModel(catalog.Default().MustFind("earth"))
	g := geometry{cx: 30, cy: 15, k: 0.1}

	// Earth sits at (30, 15 - 115*0.1*0.5).
	sx, sy := o.screenPos(g)
	if !o.hit(g, int(math.Round(sx)), int(math.Round(sy))) {
		t.Error("expected a hit on the planet's own cell")
	}
	if o.hit(g, 30, 15) {
		t.Error("the canvas center is not on earth")
	}
}

func TestOrbitDrawLabel(t *testing.T) {
	o := NewOrbitModel(catalog.Default().MustFind("mars"))
	g := geometry{cx: 20, cy: 10, k: 0.1}
	c := newCanvas(60, 20)

	o.drawPlanet(c, g, true)
	o.drawLabel(c, g)

	found := false
	for _, line := range c.plain() {
		if strings.Contains(line, "◄ Mars") {
			found = true
		}
	}
	if !found {
		t.Error("selected planet should be labeled")
	}
}
