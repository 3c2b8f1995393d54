package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/trisha-agni/flashcard-cong-app/internal/screen"
)

type stubScreen struct {
	title    string
	inited   bool
	lastMsg  tea.Msg
	viewText string
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.viewText }
func (s *stubScreen) Title() string                 { return s.title }

func TestPushPop(t *testing.T) {
	home := &stubScreen{title: "Decks"}
	r := New(home)

	if r.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", r.Depth())
	}
	if r.Active() != home {
		t.Fatal("Active() should be the initial screen")
	}

	detail := &stubScreen{title: "Biology"}
	r.Push(detail)
	if !detail.inited {
		t.Error("Push should call Init on the new screen")
	}
	if r.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", r.Depth())
	}
	if r.Active() != detail {
		t.Fatal("Active() should be the pushed screen")
	}

	r.Pop()
	if r.Active() != home {
		t.Fatal("Pop should restore the previous screen")
	}
}

func TestPopNeverEmptiesStack(t *testing.T) {
	r := New(&stubScreen{title: "Decks"})
	r.Pop()
	r.Pop()
	if r.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1 after popping the last screen", r.Depth())
	}
	if r.Active() == nil {
		t.Fatal("Active() should never be nil after Pop")
	}
}

func TestUpdateHandlesNavigationMessages(t *testing.T) {
	home := &stubScreen{title: "Decks"}
	r := New(home)

	pushed := &stubScreen{title: "History"}
	r.Update(PushScreenMsg{Screen: pushed})
	if r.Active() != pushed {
		t.Fatal("PushScreenMsg should push the screen")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != home {
		t.Fatal("PopScreenMsg should pop back to home")
	}
}

func TestUpdateForwardsToActiveScreen(t *testing.T) {
	home := &stubScreen{title: "Decks"}
	top := &stubScreen{title: "History"}
	r := New(home)
	r.Push(top)

	msg := tea.WindowSizeMsg{Width: 100, Height: 40}
	r.Update(msg)

	if top.lastMsg != tea.Msg(msg) {
		t.Error("Update should forward messages to the active screen")
	}
	if home.lastMsg != nil {
		t.Error("Update should not forward messages to inactive screens")
	}
}

func TestViewRendersActiveScreen(t *testing.T) {
	r := New(&stubScreen{viewText: "deck list"})
	if got := r.View(80, 24); got != "deck list" {
		t.Errorf("View() = %q, want %q", got, "deck list")
	}
}
