package home

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
	"github.com/trisha-agni/flashcard-cong-app/internal/screens/decks"
	"github.com/trisha-agni/flashcard-cong-app/internal/screens/history"
	"github.com/trisha-agni/flashcard-cong-app/internal/ui/components"
	"github.com/trisha-agni/flashcard-cong-app/internal/ui/theme"
)

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	menu    components.Menu
	decks   *deck.Store
	log     *results.Log
	gw      *gateway.Gateway
	modelID string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. gw may be nil when no provider is
// configured; AI features show as unavailable.
func New(deckStore *deck.Store, log *results.Log, gw *gateway.Gateway) *HomeScreen {
	h := &HomeScreen{
		decks: deckStore,
		log:   log,
		gw:    gw,
	}
	if gw != nil {
		h.modelID = gw.ModelID()
	}

	items := []components.MenuItem{
		{Label: "DECKS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: decks.New(deckStore, log, gw)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(log)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Width(width).Render("C O N G"),
		theme.Subtitle.Width(width).Render("AI-powered flashcard study"),
		"")

	status := fmt.Sprintf("%d deck(s)", len(h.decks.Names()))
	if h.modelID != "" {
		status += "  ·  model: " + h.modelID
	} else {
		status += "  ·  AI unavailable (no API key)"
	}
	sections = append(sections,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(status)),
		"")

	sections = append(sections,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return "\n\n" + strings.Join(sections, "\n")
}

func (h *HomeScreen) Title() string {
	return "Home"
}
