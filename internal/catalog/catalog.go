// Package catalog holds the ordered, immutable table of bodies the orrery draws.
package catalog

import (
	_ "embed"
	"math"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-orrery/internal/errors"
)

// ErrInvalidCatalog marks every validation failure returned by New.
var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed planets.toml
var defaultTable []byte

// Info is the descriptive text shown for a body.
type Info struct {
	Size            string   `toml:"size"`
	DistanceFromSun string   `toml:"distance_from_sun"`
	OrbitalPeriod   string   `toml:"orbital_period"`
	Description     []string `toml:"description"`
}

// Planet is one catalog record. Distance zero marks the center body.
type Planet struct {
	ID             string  `toml:"id"`
	Name           string  `toml:"name"`
	Radius         float64 `toml:"radius"`
	Distance       float64 `toml:"distance"`
	Color          string  `toml:"color"`
	OrbitPeriod    float64 `toml:"orbit_period"`
	RotationPeriod float64 `toml:"rotation_period"`
	Info           Info    `toml:"info"`
}

// Animation speed factors: one orbit period unit is 50ms of revolution, one
// rotation period unit is 10s of spin.
const (
	revolutionSecondsPerUnit = 0.05
	spinSecondsPerUnit       = 10.0
)

// RevolutionDuration is how long one full sweep around the orbit ring takes.
func (p Planet) RevolutionDuration() time.Duration {
	return time.Duration(math.Round(p.OrbitPeriod * revolutionSecondsPerUnit * float64(time.Second)))
}

// SpinDuration is how long one full turn of the body about its axis takes.
func (p Planet) SpinDuration() time.Duration {
	return time.Duration(math.Round(p.RotationPeriod * spinSecondsPerUnit * float64(time.Second)))
}

// clone returns p with its own copy of the description paragraphs.
func (p Planet) clone() Planet {
	p.Info.Description = append([]string(nil), p.Info.Description...)
	return p
}

// IsCenter reports whether the body sits at the system center with no orbit.
func (p Planet) IsCenter() bool {
	return p.Distance == 0
}

// Catalog is an ordered set of planets with unique ids.
type Catalog struct {
	planets []Planet
	index   map[string]int
	center  int
}

// tableFile is the on-disk TOML layout.
type tableFile struct {
	Planets []Planet `toml:"planet"`
}

// New validates planets and returns a catalog over a private copy of them.
func New(planets []Planet) (*Catalog, error) {
	if len(planets) == 0 {
		return nil, errors.Mark(
			errors.WithHint(errors.New("catalog is empty"), "add at least the center body"),
			ErrInvalidCatalog)
	}

	c := &Catalog{
		planets: make([]Planet, len(planets)),
		index:   make(map[string]int, len(planets)),
		center:  -1,
	}

	for i, p := range planets {
		if err := validate(p); err != nil {
			return nil, errors.Mark(err, ErrInvalidCatalog)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, errors.Mark(
				errors.WithHintf(errors.Newf("duplicate planet id %q", p.ID), "entry %d reuses an earlier id", i),
				ErrInvalidCatalog)
		}
		if p.IsCenter() {
			if c.center >= 0 {
				return nil, errors.Mark(
					errors.WithHintf(errors.Newf("planet %q: second body at distance 0", p.ID),
						"%q is already the center body", c.planets[c.center].ID),
					ErrInvalidCatalog)
			}
			c.center = i
		}

		c.planets[i] = p.clone()
		c.index[p.ID] = i
	}

	if c.center < 0 {
		return nil, errors.Mark(
			errors.WithHint(errors.New("catalog has no center body"), "give exactly one planet distance = 0"),
			ErrInvalidCatalog)
	}

	return c, nil
}

func validate(p Planet) error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"radius", p.Radius},
		{"distance", p.Distance},
		{"orbit period", p.OrbitPeriod},
		{"rotation period", p.RotationPeriod},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return errors.WithHint(
				errors.Newf("planet %q: %s must be a finite number, got %g", p.ID, f.name, f.value),
				"nan and inf are not valid catalog values")
		}
	}

	switch {
	case p.ID == "":
		return errors.WithHintf(errors.New("planet with empty id"), "name = %q", p.Name)
	case p.Radius <= 0:
		return errors.Newf("planet %q: radius must be positive, got %g", p.ID, p.Radius)
	case p.Distance < 0:
		return errors.Newf("planet %q: distance must not be negative, got %g", p.ID, p.Distance)
	case p.OrbitPeriod <= 0:
		return errors.Newf("planet %q: orbit period must be positive, got %g", p.ID, p.OrbitPeriod)
	case p.RotationPeriod <= 0:
		return errors.Newf("planet %q: rotation period must be positive, got %g", p.ID, p.RotationPeriod)
	}
	if _, err := colorful.Hex(p.Color); err != nil {
		return errors.WithHint(
			errors.Wrapf(err, "planet %q: color %q", p.ID, p.Color),
			"colors are CSS hex strings like #2E86DE")
	}
	return nil
}

// Parse decodes a TOML catalog. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	var file tableFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Mark(
			errors.Newf("unknown catalog key %q", undecoded[0].String()),
			ErrInvalidCatalog)
	}
	return New(file.Planets)
}

// Load reads and parses a TOML catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog %s", path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load catalog %s", path)
	}
	return c, nil
}

// Default returns the built-in catalog, sun first.
func Default() *Catalog {
	c, err := Parse(defaultTable)
	if err != nil {
		panic(errors.Wrap(err, "embedded catalog"))
	}
	return c
}

// Len returns the number of bodies.
func (c *Catalog) Len() int {
	return len(c.planets)
}

// At returns the planet at catalog position i.
func (c *Catalog) At(i int) Planet {
	return c.planets[i].clone()
}

// First returns the first catalog entry, the initial selection.
func (c *Catalog) First() Planet {
	return c.planets[0].clone()
}

// Center returns the body at distance zero.
func (c *Catalog) Center() Planet {
	return c.planets[c.center].clone()
}

// Planets returns a copy of the records in catalog order.
func (c *Catalog) Planets() []Planet {
	out := make([]Planet, len(c.planets))
	for i, p := range c.planets {
		out[i] = p.clone()
	}
	return out
}

// IDs returns the ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.planets))
	for i, p := range c.planets {
		ids[i] = p.ID
	}
	return ids
}

// IndexOf returns the catalog position of id, or -1.
func (c *Catalog) IndexOf(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// Find looks up a planet by id.
func (c *Catalog) Find(id string) (Planet, bool) {
	i, ok := c.index[id]
	if !ok {
		return Planet{}, false
	}
	return c.planets[i].clone(), true
}

// MustFind looks up a planet by id and panics if it is not in the catalog.
// Callers only pass ids that came from the catalog itself.
func (c *Catalog) MustFind(id string) Planet {
	p, ok := c.Find(id)
	if !ok {
		panic(errors.AssertionFailedf("planet id %q is not in the catalog", id))
	}
	return p
}

// Next returns the id after id, wrapping from the last entry to the first.
func (c *Catalog) Next(id string) string {
	i := c.mustIndex(id)
	return c.planets[(i+1)%len(c.planets)].ID
}

// Prev returns the id before id, wrapping from the first entry to the last.
func (c *Catalog) Prev(id string) string {
	i := c.mustIndex(id)
	n := len(c.planets)
	return c.planets[(i-1+n)%n].ID
}

func (c *Catalog) mustIndex(id string) int {
	i, ok := c.index[id]
	if !ok {
		panic(errors.AssertionFailedf("planet id %q is not in the catalog", id))
	}
	return i
}
