package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// CatalogExport is the JSON-serializable representation of a catalog.
type CatalogExport struct {
	Center  string         `json:"center"`
	Planets []PlanetExport `json:"planets"`
}

// PlanetExport is a JSON-friendly planet record.
type PlanetExport struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Radius             float64  `json:"radius"`
	Distance           float64  `json:"distance"`
	Color              string   `json:"color"`
	OrbitPeriod        float64  `json:"orbit_period"`
	RotationPeriod     float64  `json:"rotation_period"`
	RevolutionSeconds  float64  `json:"revolution_seconds,omitempty"`
	SpinSeconds        float64  `json:"spin_seconds"`
	Size               string   `json:"size"`
	DistanceFromSun    string   `json:"distance_from_sun"`
	OrbitalPeriodLabel string   `json:"orbital_period_label"`
	Description        []string `json:"description"`
}

// Export converts a catalog to its exportable form.
func Export(c *Catalog) *CatalogExport {
	export := &CatalogExport{Center: c.Center().ID}
	for _, p := range c.planets {
		pe := PlanetExport{
			ID:                 p.ID,
			Name:               p.Name,
			Radius:             p.Radius,
			Distance:           p.Distance,
			Color:              p.Color,
			OrbitPeriod:        p.OrbitPeriod,
			RotationPeriod:     p.RotationPeriod,
			SpinSeconds:        p.SpinDuration().Seconds(),
			Size:               p.Info.Size,
			DistanceFromSun:    p.Info.DistanceFromSun,
			OrbitalPeriodLabel: p.Info.OrbitalPeriod,
			Description:        append([]string(nil), p.Info.Description...),
		}
		if !p.IsCenter() {
			pe.RevolutionSeconds = p.RevolutionDuration().Seconds()
		}
		export.Planets = append(export.Planets, pe)
	}
	return export
}

// WriteJSON writes the export as indented JSON.
func (e *CatalogExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteSummary prints the catalog as an aligned text table.
func WriteSummary(w io.Writer, c *Catalog) {
	fmt.Fprintf(w, "Catalog: %d bodies, center %s\n", c.Len(), c.Center().Name)
	fmt.Fprintln(w, strings.Repeat("─", 78))

	fmt.Fprintf(w, "%-10s %-12s %6s %8s %-8s %10s %10s\n",
		"ID", "Name", "Radius", "Distance", "Color", "Orbit", "Spin")
	fmt.Fprintln(w, strings.Repeat("─", 78))

	for _, p := range c.planets {
		orbit := "-"
		if !p.IsCenter() {
			orbit = p.RevolutionDuration().String()
		}
		fmt.Fprintf(w, "%-10s %-12s %6.0f %8.0f %-8s %10s %10s\n",
			runewidth.Truncate(p.ID, 10, "…"),
			runewidth.Truncate(p.Name, 12, "…"),
			p.Radius,
			p.Distance,
			p.Color,
			orbit,
			p.SpinDuration().String(),
		)
	}
}
