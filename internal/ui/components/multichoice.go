package components

import (
	"fmt"
	"sort"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trisha-agni/flashcard-cong-app/internal/ui/theme"
)

// MultiChoice is a lettered option selector. The correct answer is not
// known while the test is in progress, so grading is revealed later via
// Reveal rather than checked on selection.
type MultiChoice struct {
	Letters  []string
	Texts    map[string]string
	Cursor   int
	Chosen   string // selected letter, empty until the student picks one
	Revealed bool
	Correct  string // expected letter, empty when grading gave no verdict
}

// NewMultiChoice creates a selector from lettered option texts.
func NewMultiChoice(options map[string]string) MultiChoice {
	letters := make([]string, 0, len(options))
	for l := range options {
		letters = append(letters, l)
	}
	sort.Strings(letters)
	return MultiChoice{
		Letters: letters,
		Texts:   options,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Letters)-1 {
			m.Cursor++
		}
	case "enter":
		if m.Cursor >= 0 && m.Cursor < len(m.Letters) {
			m.Chosen = m.Letters[m.Cursor]
		}
	default:
		// Direct letter keys.
		for i, l := range m.Letters {
			if key == l || (len(key) == 1 && key[0] == l[0]+'a'-'A') {
				m.Cursor = i
				m.Chosen = l
			}
		}
	}

	return m, nil
}

// Reveal switches the component to result display with the expected letter.
func (m *MultiChoice) Reveal(correct string) {
	m.Revealed = true
	m.Correct = correct
}

// View renders the options.
func (m MultiChoice) View() string {
	var s string
	for i, l := range m.Letters {
		prefix := "  "
		if i == m.Cursor && !m.Revealed {
			prefix = "▸ "
		}
		marker := " "
		if m.Chosen == l {
			marker = "●"
		}
		line := fmt.Sprintf("%s%s %s.  %s", prefix, marker, l, m.Texts[l])

		switch {
		case m.Revealed && m.Correct == l:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line)
		case m.Revealed && m.Chosen == l && m.Correct != "" && m.Correct != l:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line)
		case m.Revealed && m.Chosen == l && m.Correct == "":
			s += lipgloss.NewStyle().Foreground(theme.Accent).Render(line)
		case m.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
		case i == m.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line)
		}
		s += "\n"
	}
	return s
}

// IsCorrect reports whether the chosen letter matched the expected one.
// Only meaningful after Reveal with a non-empty verdict.
func (m MultiChoice) IsCorrect() bool {
	return m.Revealed && m.Correct != "" && m.Chosen == m.Correct
}
