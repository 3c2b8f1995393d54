package decks

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trisha-agni/flashcard-cong-app/internal/deck"
	"github.com/trisha-agni/flashcard-cong-app/internal/gateway"
	"github.com/trisha-agni/flashcard-cong-app/internal/results"
	"github.com/trisha-agni/flashcard-cong-app/internal/router"
	"github.com/trisha-agni/flashcard-cong-app/internal/screen"
	"github.com/trisha-agni/flashcard-cong-app/internal/screens/deckview"
	"github.com/trisha-agni/flashcard-cong-app/internal/ui/components"
	"github.com/trisha-agni/flashcard-cong-app/internal/ui/layout"
	"github.com/trisha-agni/flashcard-cong-app/internal/ui/theme"
)

type mode int

const (
	modeBrowsing mode = iota
	modeCreating
	modeConfirmDelete
)

// DecksScreen lists decks and supports creating and deleting them.
type DecksScreen struct {
	store *deck.Store
	log   *results.Log
	gw    *gateway.Gateway

	mode     mode
	selected int
	input    components.TextInput
	errMsg   string
}

var _ screen.Screen = (*DecksScreen)(nil)
var _ screen.KeyHintProvider = (*DecksScreen)(nil)

// New creates a new DecksScreen.
func New(store *deck.Store, log *results.Log, gw *gateway.Gateway) *DecksScreen {
	return &DecksScreen{
		store: store,
		log:   log,
		gw:    gw,
	}
}

func (s *DecksScreen) Init() tea.Cmd {
	return nil
}

func (s *DecksScreen) Title() string {
	return "Decks"
}

func (s *DecksScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeCreating:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Create"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeConfirmDelete:
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Open"},
			{Key: "N", Description: "New deck"},
			{Key: "D", Description: "Delete"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *DecksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.mode == modeCreating {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch s.mode {
	case modeCreating:
		return s.updateCreating(kmsg)
	case modeConfirmDelete:
		return s.updateConfirmDelete(kmsg)
	}
	return s.updateBrowsing(kmsg)
}

func (s *DecksScreen) updateBrowsing(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	names := s.store.Names()

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(names)-1 {
			s.selected++
		}
	case "n":
		s.mode = modeCreating
		s.errMsg = ""
		s.input = components.NewTextInput("Deck name...", 60)
		return s, s.input.Init()
	case "d":
		if len(names) > 0 {
			s.mode = modeConfirmDelete
			s.errMsg = ""
		}
	case "enter":
		if s.selected < len(names) {
			name := names[s.selected]
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: deckview.New(s.store, s.log, s.gw, name)}
			}
		}
	}
	return s, nil
}

func (s *DecksScreen) updateCreating(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeBrowsing
		return s, nil
	case "enter":
		name := s.input.Value()
		if name == "" {
			return s, nil
		}
		s.store.Create(name)
		if err := s.store.Save(); err != nil {
			s.errMsg = err.Error()
		}
		s.mode = modeBrowsing
		for i, n := range s.store.Names() {
			if n == name {
				s.selected = i
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *DecksScreen) updateConfirmDelete(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		names := s.store.Names()
		if s.selected < len(names) {
			s.store.Delete(names[s.selected])
			if err := s.store.Save(); err != nil {
				s.errMsg = err.Error()
			}
		}
		if s.selected > 0 {
			s.selected--
		}
		s.mode = modeBrowsing
	case "n", "N", "esc":
		s.mode = modeBrowsing
	}
	return s, nil
}

func (s *DecksScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	names := s.store.Names()

	if s.mode == modeCreating {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render("Name the new deck:")))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
		return b.String()
	}

	if len(names) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No decks yet. Press N to create one.")))
		return b.String()
	}

	for i, name := range names {
		d := s.store.Get(name)
		termCount := 0
		if d != nil {
			termCount = len(d.Terms)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  (%d terms)", prefix, name, termCount)

		style := theme.Unselected
		if i == s.selected {
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.mode == modeConfirmDelete && s.selected < len(names) {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(fmt.Sprintf("Delete %q and all its terms? (y/n)", names[s.selected]))))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render("Save failed: "+s.errMsg)))
	}

	return b.String()
}
