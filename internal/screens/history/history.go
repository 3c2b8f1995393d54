package history

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trisha-agni/flashcard-cong-app/internal/authoring"
	"github.com/trisha-agni/flashcard-cong-app/internal/results"
	"github.com/trisha-agni/flashcard-cong-app/internal/router"
	"github.com/trisha-agni/flashcard-cong-app/internal/screen"
	"github.com/trisha-agni/flashcard-cong-app/internal/ui/components"
	"github.com/trisha-agni/flashcard-cong-app/internal/ui/layout"
	"github.com/trisha-agni/flashcard-cong-app/internal/ui/theme"
)

type historyLoadedMsg struct {
	Records []results.Record
	Err     error
}

type level int

const (
	levelDecks level = iota
	levelAttempts
	levelTrend
)

// HistoryScreen shows stored test results grouped by deck, with a
// score trend per deck and option-selection trends per question.
type HistoryScreen struct {
	log *results.Log

	level    level
	loaded   bool
	errMsg   string
	records  []results.Record
	decks    []string
	byDeck   map[string][]results.Record
	selected int

	deckName string
	attempts []results.Record
	attempt  int
	trendQ   int
	trendMax int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(log *results.Log) *HistoryScreen {
	return &HistoryScreen{log: log}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.log.All()
		return historyLoadedMsg{Records: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	switch s.level {
	case levelAttempts:
		return "History: " + s.deckName
	case levelTrend:
		return "Answer Trend: " + s.deckName
	}
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	switch s.level {
	case levelAttempts:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Attempt"},
			{Key: "T", Description: "Answer trend"},
			{Key: "Esc", Description: "Back"},
		}
	case levelTrend:
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "T", Description: "Attempts"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
			s.groupByDeck()
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *HistoryScreen) groupByDeck() {
	s.byDeck = make(map[string][]results.Record)
	for _, r := range s.records {
		s.byDeck[r.DeckName] = append(s.byDeck[r.DeckName], r)
	}
	s.decks = s.decks[:0]
	for name := range s.byDeck {
		s.decks = append(s.decks, name)
	}
	sort.Strings(s.decks)
	for _, recs := range s.byDeck {
		sort.Slice(recs, func(i, j int) bool {
			return recs[i].Timestamp.Before(recs[j].Timestamp)
		})
	}
}

func (s *HistoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.level {
	case levelDecks:
		switch key {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.decks)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.decks) {
				s.openDeck(s.decks[s.selected])
			}
		}
		return s, nil

	case levelAttempts:
		switch key {
		case "esc":
			s.level = levelDecks
			return s, nil
		case "up", "k":
			if s.attempt > 0 {
				s.attempt--
			}
		case "down", "j":
			if s.attempt < len(s.attempts)-1 {
				s.attempt++
			}
		case "t":
			if s.trendMax > 0 {
				s.level = levelTrend
				s.trendQ = 1
			}
		}
		return s, nil

	case levelTrend:
		switch key {
		case "esc", "t":
			s.level = levelAttempts
		case "left", "h":
			if s.trendQ > 1 {
				s.trendQ--
			}
		case "right", "l":
			if s.trendQ < s.trendMax {
				s.trendQ++
			}
		}
		return s, nil
	}

	return s, nil
}

func (s *HistoryScreen) openDeck(name string) {
	s.deckName = name
	s.attempts = s.byDeck[name]
	s.attempt = len(s.attempts) - 1

	// Largest MCQ question index stored for this deck bounds the
	// trend navigation.
	s.trendMax = 0
	for _, r := range s.attempts {
		if r.TestType != authoring.KindMCQ {
			continue
		}
		for _, q := range r.Questions.MCQs {
			if q.Index > s.trendMax {
				s.trendMax = q.Index
			}
		}
	}

	s.level = levelAttempts
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\nError: " + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No test results yet. Take a test first!")
	}

	switch s.level {
	case levelAttempts:
		return s.renderAttempts(width)
	case levelTrend:
		return s.renderTrend(width)
	}
	return s.renderDecks(width)
}

func (s *HistoryScreen) renderDecks(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	for i, name := range s.decks {
		recs := s.byDeck[name]
		avg := 0.0
		for _, r := range recs {
			avg += r.Percent
		}
		avg /= float64(len(recs))

		prefix := "  "
		style := theme.Unselected
		if i == s.selected {
			prefix = "> "
			style = theme.Selected
		}
		line := fmt.Sprintf("%s%-24s  %d attempt(s)  avg %.0f%%", prefix, name, len(recs), avg)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *HistoryScreen) renderAttempts(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	barWidth := width / 2
	if barWidth > 50 {
		barWidth = 50
	}

	for i, r := range s.attempts {
		label := fmt.Sprintf("%s  %-3s %-6s", r.Timestamp.Local().Format("Jan 02 15:04"), r.TestType, r.Length)
		bar := components.NewProgressBar(label, r.Percent/100, true, barWidth)

		line := "  " + bar.View()
		if i == s.attempt {
			line = "> " + bar.View()
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	if s.attempt >= 0 && s.attempt < len(s.attempts) {
		r := s.attempts[s.attempt]
		b.WriteString("\n")
		detail := "Score not recorded"
		if r.Score != nil && r.MaxScore != nil {
			detail = fmt.Sprintf("Score %d/%d", *r.Score, *r.MaxScore)
		}
		detail += fmt.Sprintf("  ·  %d question(s)  ·  %.1f%%",
			len(r.Questions.MCQs)+len(r.Questions.FRQs), r.Percent)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(detail)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *HistoryScreen) renderTrend(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	selections, counts, err := s.log.OptionTrend(s.deckName, s.trendQ)
	if err != nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\nError: " + err.Error())
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Bold(true).Render(fmt.Sprintf("Question %d of %d", s.trendQ, s.trendMax))))
	b.WriteString("\n\n")

	if len(selections) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No recorded answers for this question.")))
		return b.String()
	}

	letters := make([]string, 0, len(counts))
	for l := range counts {
		letters = append(letters, l)
	}
	sort.Strings(letters)

	total := len(selections)
	for _, l := range letters {
		bar := components.NewProgressBar(
			fmt.Sprintf("%s (%d)", l, counts[l]),
			float64(counts[l])/float64(total), false, 36)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("Most recent picks:")))
	b.WriteString("\n")

	start := len(selections) - 5
	if start < 0 {
		start = 0
	}
	for _, sel := range selections[start:] {
		line := fmt.Sprintf("%s  chose %s", sel.Timestamp.Local().Format("Jan 02 15:04"), sel.Choice)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Subtitle.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
