package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func options() map[string]string {
	return map[string]string{
		"A": "Osmosis",
		"B": "Mitosis",
		"C": "Diffusion",
		"D": "Respiration",
	}
}

func TestMultiChoiceSelection(t *testing.T) {
	m := NewMultiChoice(options())

	if len(m.Letters) != 4 || m.Letters[0] != "A" || m.Letters[3] != "D" {
		t.Fatalf("Letters = %v, want sorted A-D", m.Letters)
	}
	if m.Chosen != "" {
		t.Fatal("new selector should have no choice")
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.Chosen != "B" {
		t.Errorf("Chosen = %q, want B", m.Chosen)
	}

	// Direct letter key, lowercase.
	m, _ = m.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	if m.Chosen != "D" {
		t.Errorf("Chosen = %q, want D", m.Chosen)
	}
}

func TestMultiChoiceRevealLocksInput(t *testing.T) {
	m := NewMultiChoice(options())
	m, _ = m.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	m.Reveal("B")

	m, _ = m.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	if m.Chosen != "A" {
		t.Errorf("Chosen = %q, selection must not change after reveal", m.Chosen)
	}
	if m.IsCorrect() {
		t.Error("A vs correct B should not report correct")
	}

	view := m.View()
	if !strings.Contains(view, "Mitosis") {
		t.Error("revealed view should still list option text")
	}
}

func TestMultiChoiceRevealWithoutVerdict(t *testing.T) {
	m := NewMultiChoice(options())
	m, _ = m.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	m.Reveal("")

	if m.IsCorrect() {
		t.Error("no verdict should never count as correct")
	}
}
