package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/litescript/ls-orrery/internal/catalog"
)

func TestRenderInfoPanel(t *testing.T) {
	p := catalog.Planet{
		ID:   "vulcan",
		Name: "Vulcan",
		Info: catalog.Info{
			Size:            "Diameter: 1 km",
			DistanceFromSun: "Distance: 2 km",
			OrbitalPeriod:   "Period: 3 days",
			Description:     []string{"First paragraph.", "Second paragraph.", "Third paragraph."},
		},
	}

	out := ansi.Strip(RenderInfoPanel(p, 36, 0))

	order := []string{
		"Vulcan",
		"Diameter: 1 km",
		"Distance: 2 km",
		"Period: 3 days",
		"Information about Vulcan",
		"First paragraph.",
		"Second paragraph.",
		"Third paragraph.",
	}
	last := -1
	for _, want := range order {
		i := strings.Index(out, want)
		if i < 0 {
			t.Fatalf("panel missing %q:\n%s", want, out)
		}
		if i < last {
			t.Errorf("%q out of order", want)
		}
		last = i
	}

	if w := lipgloss.Width(out); w != 36 {
		t.Errorf("panel width %d, want 36", w)
	}
}

func TestRenderInfoPanelWrapsAndCaps(t *testing.T) {
	saturn := catalog.Default().MustFind("saturn")

	out := RenderInfoPanel(saturn, 30, 0)
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 30 {
			t.Errorf("line wider than panel (%d): %q", w, line)
		}
	}

	capped := RenderInfoPanel(saturn, 30, 8)
	if h := lipgloss.Height(capped); h != 8 {
		t.Errorf("panel height %d, want 8", h)
	}
	rows := strings.Split(ansi.Strip(capped), "\n")
	if last := rows[len(rows)-1]; !strings.HasPrefix(last, "╰") || !strings.HasSuffix(last, "╯") {
		t.Errorf("capped panel lost its bottom border: %q", last)
	}
}

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		in   string
		w    int
		want string
	}{
		{"Mercury", 10, "Mercury"},
		{"Mercury", 4, "Mer…"},
		{"Mercury", 0, ""},
	}
	for _, tt := range tests {
		if got := truncateWidth(tt.in, tt.w); got != tt.want {
			t.Errorf("truncateWidth(%q, %d) = %q, want %q", tt.in, tt.w, got, tt.want)
		}
	}
}
