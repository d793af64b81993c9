// Package state holds the orrery's interaction state and its transitions.
package state

import (
	"math"

	"github.com/litescript/ls-orrery/internal/catalog"
)

// Config holds the orrery's interaction tunables.
type Config struct {
	MinScale     float64
	MaxScale     float64
	DefaultScale float64
	ZoomStep     float64
	DragFactor   float64 // degrees of rotation per pointer unit of horizontal drag
}

// DefaultConfig returns the standard zoom bounds and drag sensitivity.
func DefaultConfig() Config {
	return Config{
		MinScale:     0.5,
		MaxScale:     2.0,
		DefaultScale: 1.0,
		ZoomStep:     0.1,
		DragFactor:   0.5,
	}
}

// Snapshot is a point-in-time copy of the controller state.
type Snapshot struct {
	Selected string
	Scale    float64
	Rotation float64 // degrees, unbounded
	Dragging bool
	DragX    float64
}

// Controller owns selection, zoom, rotation and drag state for one orrery.
// All transitions run synchronously on the UI goroutine.
type Controller struct {
	catalog *catalog.Catalog
	cfg     Config

	selected string
	scale    float64
	rotation float64
	dragging bool
	dragX    float64
}

// NewController creates a controller with the first catalog entry selected.
func NewController(c *catalog.Catalog, cfg Config) *Controller {
	return &Controller{
		catalog:  c,
		cfg:      cfg,
		selected: c.First().ID,
		scale:    cfg.DefaultScale,
	}
}

// Catalog returns the catalog the controller navigates.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Config returns the controller's tunables.
func (c *Controller) Config() Config {
	return c.cfg
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Selected: c.selected,
		Scale:    c.scale,
		Rotation: c.rotation,
		Dragging: c.dragging,
		DragX:    c.dragX,
	}
}

// Selected returns the selected planet id.
func (c *Controller) Selected() string {
	return c.selected
}

// SelectedPlanet returns the selected planet record.
func (c *Controller) SelectedPlanet() catalog.Planet {
	return c.catalog.MustFind(c.selected)
}

// Scale returns the zoom scale.
func (c *Controller) Scale() float64 {
	return c.scale
}

// Rotation returns the drag rotation in degrees.
func (c *Controller) Rotation() float64 {
	return c.rotation
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Select makes id the selection. id must come from the catalog.
func (c *Controller) Select(id string) {
	c.catalog.MustFind(id)
	c.selected = id
}

// SelectNext advances the selection, wrapping from the last planet to the first.
func (c *Controller) SelectNext() {
	c.selected = c.catalog.Next(c.selected)
}

// SelectPrev retreats the selection, wrapping from the first planet to the last.
func (c *Controller) SelectPrev() {
	c.selected = c.catalog.Prev(c.selected)
}

// ZoomIn increases the scale by one step up to MaxScale.
func (c *Controller) ZoomIn() {
	c.scale = c.clampScale(c.scale + c.cfg.ZoomStep)
}

// ZoomOut decreases the scale by one step down to MinScale.
func (c *Controller) ZoomOut() {
	c.scale = c.clampScale(c.scale - c.cfg.ZoomStep)
}

// clampScale bounds s and drops float drift so repeated steps land on
// round values (1.0 + 5 steps is exactly 1.5).
func (c *Controller) clampScale(s float64) float64 {
	s = math.Round(s*1000) / 1000
	return math.Max(c.cfg.MinScale, math.Min(c.cfg.MaxScale, s))
}

// Reset restores the default scale and zero rotation.
func (c *Controller) Reset() {
	c.scale = c.cfg.DefaultScale
	c.rotation = 0
}

// BeginDrag starts a drag anchored at pointer x.
func (c *Controller) BeginDrag(x float64) {
	c.dragging = true
	c.dragX = x
}

// DragTo rotates by the horizontal distance from the anchor and moves the
// anchor to x. It does nothing unless a drag is active.
func (c *Controller) DragTo(x float64) {
	if !c.dragging {
		return
	}
	c.rotation += (x - c.dragX) * c.cfg.DragFactor
	c.dragX = x
}

// EndDrag stops the current drag, if any.
func (c *Controller) EndDrag() {
	c.dragging = false
}
