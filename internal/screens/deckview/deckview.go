package deckview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trisha-agni/flashcard-cong-app/internal/authoring"
	"github.com/trisha-agni/flashcard-cong-app/internal/deck"
	"github.com/trisha-agni/flashcard-cong-app/internal/gateway"
	"github.com/trisha-agni/flashcard-cong-app/internal/results"
	"github.com/trisha-agni/flashcard-cong-app/internal/router"
	"github.com/trisha-agni/flashcard-cong-app/internal/screen"
	"github.com/trisha-agni/flashcard-cong-app/internal/screens/exam"
	"github.com/trisha-agni/flashcard-cong-app/internal/ui/components"
	"github.com/trisha-agni/flashcard-cong-app/internal/ui/layout"
	"github.com/trisha-agni/flashcard-cong-app/internal/ui/theme"
)

type mode int

const (
	modeBrowsing mode = iota
	modeAddingTerm
	modeConfirmRemove
	modeExplaining
	modePickKind
	modePickLength
)

// explainDoneMsg is sent when a term explanation request completes.
type explainDoneMsg struct {
	Term string
	Text string
	Err  error
}

// DeckViewScreen shows one deck's terms and is the launch point for
// explanations and tests.
type DeckViewScreen struct {
	store    *deck.Store
	log      *results.Log
	gw       *gateway.Gateway
	deckName string

	mode        mode
	selected    int
	input       components.TextInput
	explainTerm string
	explainText string
	explaining  bool
	pickIndex   int
	pickedKind  authoring.Kind
	errMsg      string
}

var _ screen.Screen = (*DeckViewScreen)(nil)
var _ screen.KeyHintProvider = (*DeckViewScreen)(nil)

// New creates a screen for the named deck.
func New(store *deck.Store, log *results.Log, gw *gateway.Gateway, deckName string) *DeckViewScreen {
	return &DeckViewScreen{
		store:    store,
		log:      log,
		gw:       gw,
		deckName: deckName,
	}
}

func (s *DeckViewScreen) Init() tea.Cmd {
	return nil
}

func (s *DeckViewScreen) Title() string {
	return s.deckName
}

func (s *DeckViewScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeAddingTerm:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Add"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeConfirmRemove:
		return []layout.KeyHint{
			{Key: "Y", Description: "Remove"},
			{Key: "N", Description: "Keep"},
		}
	case modeExplaining:
		return []layout.KeyHint{
			{Key: "any key", Description: "Close"},
		}
	case modePickKind, modePickLength:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Cancel"},
		}
	default:
		return []layout.KeyHint{
			{Key: "A", Description: "Add term"},
			{Key: "R", Description: "Remove"},
			{Key: "E", Description: "Explain"},
			{Key: "T", Description: "Take test"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *DeckViewScreen) terms() []string {
	d := s.store.Get(s.deckName)
	if d == nil {
		return nil
	}
	return d.Terms
}

func (s *DeckViewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explainDoneMsg:
		s.explaining = false
		if msg.Err != nil {
			s.mode = modeBrowsing
			s.errMsg = fmt.Sprintf("explain %q: %s", msg.Term, msg.Err)
			return s, nil
		}
		s.explainTerm = msg.Term
		s.explainText = msg.Text
		s.mode = modeExplaining
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.mode == modeAddingTerm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *DeckViewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.mode {
	case modeAddingTerm:
		return s.updateAddingTerm(msg)
	case modeConfirmRemove:
		return s.updateConfirmRemove(msg)
	case modeExplaining:
		s.mode = modeBrowsing
		return s, nil
	case modePickKind:
		return s.updatePickKind(msg)
	case modePickLength:
		return s.updatePickLength(msg)
	}
	return s.updateBrowsing(msg)
}

func (s *DeckViewScreen) updateBrowsing(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	terms := s.terms()

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(terms)-1 {
			s.selected++
		}
	case "a":
		s.mode = modeAddingTerm
		s.errMsg = ""
		s.input = components.NewTextInput("New term...", 80)
		return s, s.input.Init()
	case "r":
		if len(terms) > 0 {
			s.mode = modeConfirmRemove
			s.errMsg = ""
		}
	case "e", "enter":
		if len(terms) == 0 || s.selected >= len(terms) {
			return s, nil
		}
		if s.gw == nil {
			s.errMsg = "AI is unavailable: no API key configured"
			return s, nil
		}
		if s.explaining {
			return s, nil
		}
		s.explaining = true
		s.errMsg = ""
		return s, s.explainCmd(terms[s.selected])
	case "t":
		if len(terms) == 0 {
			s.errMsg = "Add terms before taking a test"
			return s, nil
		}
		if s.gw == nil {
			s.errMsg = "AI is unavailable: no API key configured"
			return s, nil
		}
		s.mode = modePickKind
		s.pickIndex = 0
		s.errMsg = ""
	}
	return s, nil
}

func (s *DeckViewScreen) updateAddingTerm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeBrowsing
		return s, nil
	case "enter":
		term := s.input.Value()
		if term == "" {
			return s, nil
		}
		s.store.AddTerm(s.deckName, term)
		if err := s.store.Save(); err != nil {
			s.errMsg = err.Error()
		}
		s.input.Reset()
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *DeckViewScreen) updateConfirmRemove(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		terms := s.terms()
		if s.selected < len(terms) {
			s.store.RemoveTerm(s.deckName, terms[s.selected])
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

var kinds = []authoring.Kind{authoring.KindMCQ, authoring.KindFRQ}
var lengths = []authoring.Length{authoring.LengthShort, authoring.LengthLong}

func (s *DeckViewScreen) updatePickKind(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeBrowsing
	case "up", "k":
		if s.pickIndex > 0 {
			s.pickIndex--
		}
	case "down", "j":
		if s.pickIndex < len(kinds)-1 {
			s.pickIndex++
		}
	case "enter":
		s.pickedKind = kinds[s.pickIndex]
		s.mode = modePickLength
		s.pickIndex = 0
	}
	return s, nil
}

func (s *DeckViewScreen) updatePickLength(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeBrowsing
	case "up", "k":
		if s.pickIndex > 0 {
			s.pickIndex--
		}
	case "down", "j":
		if s.pickIndex < len(lengths)-1 {
			s.pickIndex++
		}
	case "enter":
		length := lengths[s.pickIndex]
		d := s.store.Get(s.deckName)
		s.mode = modeBrowsing
		if d == nil {
			return s, nil
		}
		examScreen := exam.New(s.gw, s.log, d, s.pickedKind, length)
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: examScreen}
		}
	}
	return s, nil
}

// explainCmd requests a one-paragraph explanation asynchronously.
func (s *DeckViewScreen) explainCmd(term string) tea.Cmd {
	gw := s.gw
	return func() tea.Msg {
		text, err := gw.ExplainTerm(context.Background(), term)
		return explainDoneMsg{Term: term, Text: text, Err: err}
	}
}

func (s *DeckViewScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	switch s.mode {
	case modeExplaining:
		return s.renderExplanation(width)
	case modePickKind:
		return renderPicker(width, "Question format:", []string{"Multiple choice (MCQ)", "Free response (FRQ)"}, s.pickIndex)
	case modePickLength:
		return renderPicker(width, "Test length:", []string{"15 minutes", "1 hour"}, s.pickIndex)
	}

	terms := s.terms()
	if len(terms) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No terms yet. Press A to add one.")))
	}

	for i, term := range terms {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		style := theme.Unselected
		if i == s.selected {
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(prefix+term)))
		b.WriteString("\n")
	}

	if s.mode == modeAddingTerm {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	}

	if s.mode == modeConfirmRemove && s.selected < len(terms) {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(fmt.Sprintf("Remove %q? (y/n)", terms[s.selected]))))
	}

	if s.explaining {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Asking the tutor...")))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(s.errMsg)))
	}

	return b.String()
}

func (s *DeckViewScreen) renderExplanation(width int) string {
	boxWidth := width - 12
	if boxWidth > 76 {
		boxWidth = 76
	}
	if boxWidth < 20 {
		boxWidth = 20
	}

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(s.explainTerm)
	body := theme.Body.Width(boxWidth).Render(s.explainText)
	card := theme.Card.Render(title + "\n\n" + body)

	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func renderPicker(width int, prompt string, options []string, selected int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Body.Bold(true).Render(prompt)))
	b.WriteString("\n\n")
	for i, opt := range options {
		prefix := "  "
		style := theme.Unselected
		if i == selected {
			prefix = "> "
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(prefix+opt)))
		b.WriteString("\n")
	}
	return b.String()
}
