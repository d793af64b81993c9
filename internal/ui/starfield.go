package ui

import (
	"math"
	"math/rand/v2"
)

// star is one backdrop dot. Position is a fraction of the canvas, size runs
// from 1 to 3 and opacity from 0.2 to 1.
type star struct {
	fx, fy  float64
	size    float64
	opacity float64
}

// generateStars scatters n stars using rng.
func generateStars(rng *rand.Rand, n int) []star {
	stars := make([]star, n)
	for i := range stars {
		stars[i] = star{
			fx:      rng.Float64(),
			fy:      rng.Float64(),
			size:    rng.Float64()*2 + 1,
			opacity: rng.Float64()*0.8 + 0.2,
		}
	}
	return stars
}

// starGlyph picks a dot that reads larger for larger stars.
func starGlyph(size float64) rune {
	switch {
	case size < 1.7:
		return '˙'
	case size < 2.4:
		return '·'
	default:
		return '∗'
	}
}

// drawStarfield places the stars on the bottom layer of c.
func drawStarfield(c *canvas, stars []star) {
	for _, s := range stars {
		x := int(math.Floor(s.fx * float64(c.w)))
		y := int(math.Floor(s.fy * float64(c.h)))
		c.set(x, y, starGlyph(s.size), starColor(s.opacity), false, layerStar)
	}
}
