package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/catalog"
)

// CatalogSelectMsg asks the root model to select a planet and show it in the
// orrery.
type CatalogSelectMsg struct {
	ID string
}

// CatalogModel lists every catalog record as a table.
type CatalogModel struct {
	catalog  *catalog.Catalog
	width    int
	height   int
	cursor   int
	selected string
}

// NewCatalogModel creates a catalog table view.
func NewCatalogModel(c *catalog.Catalog) CatalogModel {
	return CatalogModel{catalog: c, selected: c.First().ID}
}

// SetSize updates the viewport size.
func (m CatalogModel) SetSize(width, height int) CatalogModel {
	m.width = width
	m.height = height
	return m
}

// SetSelected marks id as the orrery's selection and moves the cursor to it.
func (m CatalogModel) SetSelected(id string) CatalogModel {
	if i := m.catalog.IndexOf(id); i >= 0 {
		m.selected = id
		m.cursor = i
	}
	return m
}

// Cursor returns the highlighted row.
func (m CatalogModel) Cursor() int {
	return m.cursor
}

// Update handles input messages.
func (m CatalogModel) Update(msg tea.Msg) (CatalogModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.catalog.Len()-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = m.catalog.Len() - 1
	case "enter":
		id := m.catalog.At(m.cursor).ID
		return m, func() tea.Msg {
			return CatalogSelectMsg{ID: id}
		}
	}
	return m, nil
}

// View renders the table.
func (m CatalogModel) View() string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorHeading)).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorText))
	cursorStyle := rowStyle.Background(lipgloss.Color(colorNavActive)).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("   %-2s %-10s %-12s %6s %8s %10s %10s",
		"", "ID", "Name", "Radius", "Distance", "Orbit", "Spin")))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 66)))
	b.WriteString("\n")

	for i, p := range m.catalog.Planets() {
		marker := " "
		if p.ID == m.selected {
			marker = "▶"
		}
		orbit := "-"
		if !p.IsCenter() {
			orbit = p.RevolutionDuration().String()
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render("██")
		row := fmt.Sprintf(" %-10s %-12s %6.0f %8.0f %10s %10s",
			truncateWidth(p.ID, 10), truncateWidth(p.Name, 12), p.Radius, p.Distance, orbit, p.SpinDuration().String())

		style := rowStyle
		if i == m.cursor {
			style = cursorStyle
		}
		b.WriteString(" " + marker + " " + swatch + style.Render(row))
		b.WriteString("\n")
	}

	// Detail line for the row under the cursor.
	p := m.catalog.At(m.cursor)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Join(nonEmpty(p.Info.Size, p.Info.DistanceFromSun, p.Info.OrbitalPeriod), " · ")))

	return b.String()
}

func nonEmpty(items ...string) []string {
	var out []string
	for _, s := range items {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
