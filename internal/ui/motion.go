package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// motion eases the displayed zoom and rotation toward the controller's values
// so discrete inputs animate smoothly.
type motion struct {
	spring harmonica.Spring

	scale, scaleVel float64
	rot, rotVel     float64
}

func newMotion(fps int) motion {
	return motion{
		// Critically damped: no overshoot past the zoom bounds.
		spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
		scale:  1,
	}
}

// step advances one frame toward the target values.
func (m *motion) step(scale, rot float64) {
	m.scale, m.scaleVel = m.spring.Update(m.scale, m.scaleVel, scale)
	m.rot, m.rotVel = m.spring.Update(m.rot, m.rotVel, rot)
	if m.settled(scale, rot) {
		m.snap(scale, rot)
	}
}

// snap jumps straight to the target values.
func (m *motion) snap(scale, rot float64) {
	m.scale, m.scaleVel = scale, 0
	m.rot, m.rotVel = rot, 0
}

func (m motion) settled(scale, rot float64) bool {
	const eps = 1e-3
	return math.Abs(m.scale-scale) < eps && math.Abs(m.scaleVel) < eps &&
		math.Abs(m.rot-rot) < eps && math.Abs(m.rotVel) < eps
}
