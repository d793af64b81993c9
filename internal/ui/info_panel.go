package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/litescript/ls-orrery/internal/catalog"
)

// RenderInfoPanel renders the selected planet's name, facts and description
// paragraphs in a bordered box width cells wide and at most height rows tall.
func RenderInfoPanel(p catalog.Planet, width, height int) string {
	inner := width - 4
	if inner < 1 {
		inner = 1
	}

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorTitle)).Bold(true)
	ruleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelEdge))
	itemStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorText))
	headingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorHeading)).Bold(true)

	parts := []string{
		titleStyle.Render(truncateWidth(p.Name, inner)),
		ruleStyle.Render(strings.Repeat("─", inner)),
	}
	for _, item := range []string{p.Info.Size, p.Info.DistanceFromSun, p.Info.OrbitalPeriod} {
		if item != "" {
			parts = append(parts, itemStyle.Render(item))
		}
	}

	parts = append(parts, "", headingStyle.Render("Information about "+p.Name))
	for i, para := range p.Info.Description {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, itemStyle.Render(para))
	}

	// Wrap first so the row cap keeps the bottom border.
	lines := strings.Split(lipgloss.NewStyle().Width(inner).Render(strings.Join(parts, "\n")), "\n")
	if maxLines := height - 2; height > 0 && len(lines) > maxLines {
		lines = lines[:max(maxLines, 0)]
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorPanelEdge)).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

// truncateWidth cuts s to at most w terminal cells.
func truncateWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "…")
}
