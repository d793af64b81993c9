// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/state"
	"github.com/litescript/ls-orrery/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewOrrery ViewMode = iota
	ViewCatalog
)

const viewCount = 2

// Header is a title line and a tab line; the footer is one help line.
const (
	headerLines = 2
	footerLines = 1
)

// mountMsg mounts the orrery once the program is running.
type mountMsg struct{}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	ctl *state.Controller
	log *logging.Logger
	now func() time.Time

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool

	// Sub-models
	orrery      SystemModel
	catalogView CatalogModel
}

// New creates a new root UI model.
func New(ctl *state.Controller, cfg Config, log *logging.Logger) Model {
	if log == nil {
		log = logging.Discard()
	}
	return Model{
		ctl:         ctl,
		log:         log,
		now:         time.Now,
		viewMode:    ViewOrrery,
		orrery:      NewSystemModel(ctl, cfg, log.Named("orrery")),
		catalogView: NewCatalogModel(ctl.Catalog()),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("ls-orrery"),
		func() tea.Msg { return mountMsg{} },
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			// Give the terminal its mouse back before exiting.
			var release tea.Cmd
			m.orrery, release = m.orrery.Unmount()
			return m, tea.Sequence(release, tea.Quit)

		case "1":
			cmds = append(cmds, m.switchTo(ViewOrrery))
		case "2":
			cmds = append(cmds, m.switchTo(ViewCatalog))
		case "tab":
			cmds = append(cmds, m.switchTo((m.viewMode+1)%viewCount))

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.MouseMsg:
		// Mouse coordinates are screen-relative; views work below the header.
		msg.Y -= headerLines
		cmds = append(cmds, m.updateActiveView(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentHeight := msg.Height - headerLines - footerLines
		m.orrery = m.orrery.SetSize(msg.Width, contentHeight)
		m.catalogView = m.catalogView.SetSize(msg.Width, contentHeight)

	case mountMsg:
		if m.viewMode == ViewOrrery {
			var cmd tea.Cmd
			m.orrery, cmd = m.orrery.Mount(m.now())
			cmds = append(cmds, cmd)
		}

	case frameMsg, PlanetActivatedMsg:
		// The orrery drops frames from past mounts itself.
		var cmd tea.Cmd
		m.orrery, cmd = m.orrery.Update(msg)
		cmds = append(cmds, cmd)

	case CatalogSelectMsg:
		m.ctl.Select(msg.ID)
		m.log.Debug("catalog selected %s", msg.ID)
		cmds = append(cmds, m.switchTo(ViewOrrery))

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

// switchTo changes the active view, unmounting the orrery when it is hidden
// and mounting it again when it returns.
func (m *Model) switchTo(mode ViewMode) tea.Cmd {
	if mode == m.viewMode {
		return nil
	}

	var cmd tea.Cmd
	if m.viewMode == ViewOrrery {
		m.orrery, cmd = m.orrery.Unmount()
	}
	m.viewMode = mode

	switch mode {
	case ViewOrrery:
		m.orrery, cmd = m.orrery.Mount(m.now())
	case ViewCatalog:
		m.catalogView = m.catalogView.SetSelected(m.ctl.Selected())
	}
	return cmd
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewOrrery:
		m.orrery, cmd = m.orrery.Update(msg)
	case ViewCatalog:
		m.catalogView, cmd = m.catalogView.Update(msg)
	}
	return cmd
}

// ViewMode returns the active view.
func (m Model) ViewMode() ViewMode {
	return m.viewMode
}

// Orrery returns the orrery sub-model.
func (m Model) Orrery() SystemModel {
	return m.orrery
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewOrrery:
		content = m.orrery.View()
	case ViewCatalog:
		content = m.catalogView.View()
	}

	return m.renderFrame(content)
}

func (m Model) renderFrame(content string) string {
	contentHeight := m.height - headerLines - footerLines
	if contentHeight > 0 {
		content = lipgloss.NewStyle().Height(contentHeight).MaxHeight(contentHeight).Render(content)
	}
	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim))
	title := "  " + gradientText("☉ ls-orrery", "#FDB813", "#3F54BA") +
		muted.Render(fmt.Sprintf("  solar system · v%s", version.Version))
	return title + "\n" + m.renderTabs()
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Orrery", "[2] Catalog"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent)).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim))

	var help string
	switch m.viewMode {
	case ViewOrrery:
		help = "←/→: planet | +/-: zoom | 0: reset | drag: rotate | enter: details | esc: close | t: stars"
	case ViewCatalog:
		help = "↑↓: navigate | enter: show in orrery"
	}
	return "  " + dimStyle.Render(help+" | tab: switch view | q: quit")
}
