package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-orrery/internal/catalog"
)

func TestCatalogModelCursor(t *testing.T) {
	m := NewCatalogModel(catalog.Default())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor() != 0 {
		t.Errorf("cursor should stop at the top, got %d", m.Cursor())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(keyRunes('j'))
	if m.Cursor() != 2 {
		t.Errorf("expected cursor 2, got %d", m.Cursor())
	}

	m, _ = m.Update(keyRunes('G'))
	if m.Cursor() != 8 {
		t.Errorf("expected cursor on the last row, got %d", m.Cursor())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor() != 8 {
		t.Errorf("cursor should stop at the bottom, got %d", m.Cursor())
	}

	m, _ = m.Update(keyRunes('g'))
	if m.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", m.Cursor())
	}
}

func TestCatalogModelEnter(t *testing.T) {
	m := NewCatalogModel(catalog.Default())
	m = m.SetSelected("mars")
	if m.Cursor() != 4 {
		t.Fatalf("SetSelected should move the cursor, got %d", m.Cursor())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should emit a selection")
	}
	if msg, ok := cmd().(CatalogSelectMsg); !ok || msg.ID != "mars" {
		t.Errorf("expected CatalogSelectMsg{mars}, got %#v", msg)
	}

	// Unknown ids leave the view alone.
	m = m.SetSelected("pluto")
	if m.Cursor() != 4 {
		t.Errorf("unknown id moved the cursor to %d", m.Cursor())
	}
}

func TestCatalogModelView(t *testing.T) {
	m := NewCatalogModel(catalog.Default()).SetSize(100, 20)
	view := m.View()

	for _, want := range []string{"Name", "Orbit", "Mercury", "Neptune", "18.25s", "Diameter"} {
		if !strings.Contains(view, want) {
			t.Errorf("catalog view missing %q", want)
		}
	}
	if strings.Count(view, "▶") != 1 {
		t.Error("exactly one row should carry the selection marker")
	}
}
