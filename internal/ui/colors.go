package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette
const (
	colorBackground = "#000316"
	colorTitle      = "#FFC107"
	colorHeading    = "#4FC3F7"
	colorText       = "252"
	colorDim        = "60"
	colorMuted      = "244"
	colorRing       = "240"
	colorLabel      = "249"
	colorAccent     = "#9D4EDD"
	colorNavActive  = "#3A3A5A"
	colorPanelEdge  = "238"
)

var white = colorful.Color{R: 1, G: 1, B: 1}

// parseColor reads a catalog hex color. Catalog validation guarantees the
// format, so failures fall back to white.
func parseColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return white
	}
	return c
}

// glowColor blends the planet color toward white by t in [0, 1].
func glowColor(hex string, t float64) string {
	return parseColor(hex).BlendLab(white, clamp01(t)).Clamped().Hex()
}

// shadeColor darkens a color by t in [0, 1].
func shadeColor(hex string, t float64) string {
	black := colorful.Color{}
	return parseColor(hex).BlendLab(black, clamp01(t)).Clamped().Hex()
}

// starColor is white laid over the background at the given opacity.
func starColor(opacity float64) string {
	return parseColor(colorBackground).BlendRgb(white, clamp01(opacity)).Clamped().Hex()
}

// gradientText renders text with a horizontal gradient between two colors.
func gradientText(text, from, to string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	start, end := parseColor(from), parseColor(to)

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(start.BlendLuv(end, t).Clamped().Hex())).Bold(true)
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
