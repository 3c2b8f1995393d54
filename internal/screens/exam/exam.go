package exam

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/trisha-agni/flashcard-cong-app/internal/authoring"
	"github.com/trisha-agni/flashcard-cong-app/internal/deck"
	"github.com/trisha-agni/flashcard-cong-app/internal/gateway"
	"github.com/trisha-agni/flashcard-cong-app/internal/results"
	"github.com/trisha-agni/flashcard-cong-app/internal/router"
	"github.com/trisha-agni/flashcard-cong-app/internal/screen"
	sess "github.com/trisha-agni/flashcard-cong-app/internal/session"
	"github.com/trisha-agni/flashcard-cong-app/internal/ui/components"
	"github.com/trisha-agni/flashcard-cong-app/internal/ui/layout"
)

// ExamScreen runs one test attempt: authoring wait, timed answering,
// then the graded review.
type ExamScreen struct {
	gw      *gateway.Gateway
	log     *results.Log
	deck    *deck.Deck
	session *sess.Session

	current       int
	mcqViews      []components.MultiChoice
	frqInput      components.TextInput
	confirmSubmit bool
	submitting    bool
	spinnerFrame  int
	saveErr       string
	errMsg        string
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.HeaderStatusProvider = (*ExamScreen)(nil)

// New creates a test screen for the given deck and configuration.
func New(gw *gateway.Gateway, log *results.Log, d *deck.Deck, kind authoring.Kind, length authoring.Length) *ExamScreen {
	return &ExamScreen{
		gw:      gw,
		log:     log,
		deck:    d,
		session: sess.New(d.Name, kind, length),
	}
}

func (s *ExamScreen) Init() tea.Cmd {
	return tea.Batch(s.authorCmd(), spinnerTick())
}

func (s *ExamScreen) Title() string {
	switch {
	case s.session.Phase() == sess.PhaseAuthoring:
		return "Preparing Test"
	case s.session.Phase() == sess.PhaseSubmitted && !s.submitting:
		return "Results"
	}
	return "Test: " + s.deck.Name
}

// HeaderStatus shows the remaining time while the test is running.
func (s *ExamScreen) HeaderStatus() string {
	if s.session.Phase() != sess.PhaseActive {
		return ""
	}
	return "⏱ " + s.session.Clock().String()
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	if s.submitting {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	switch s.session.Phase() {
	case sess.PhaseAuthoring:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case sess.PhaseSubmitted:
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "Esc", Description: "Done"},
		}
	}
	if s.confirmSubmit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Keep working"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Question"},
	}
	if s.session.Kind == authoring.KindMCQ {
		hints = append(hints, layout.KeyHint{Key: "A-D/Enter", Description: "Answer"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Submit"})
}

func (s *ExamScreen) questionCount() int {
	t := s.session.Test()
	if t == nil {
		return 0
	}
	return t.Count()
}

// currentIndex returns the stored question index for the cursor
// position, 1-based in parse order.
func (s *ExamScreen) currentIndex() int {
	t := s.session.Test()
	if t == nil {
		return 0
	}
	if s.session.Kind == authoring.KindFRQ {
		return t.FRQs[s.current].Index
	}
	return t.MCQs[s.current].Index
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authoredMsg:
		return s.handleAuthored(msg)
	case spinnerTickMsg:
		if s.session.Phase() == sess.PhaseAuthoring && s.errMsg == "" {
			s.spinnerFrame++
			return s, spinnerTick()
		}
		return s, nil
	case timerTickMsg:
		return s.handleTimerTick()
	case submittedMsg:
		return s.handleSubmitted(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.session.Phase() == sess.PhaseActive && s.session.Kind == authoring.KindFRQ && !s.confirmSubmit {
		var cmd tea.Cmd
		s.frqInput, cmd = s.frqInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ExamScreen) handleAuthored(msg authoredMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if !s.session.Attach(msg.Test) {
		// Empty reply or a stale authoring result; nothing to run.
		if s.session.Phase() == sess.PhaseAuthoring {
			s.errMsg = "The model returned no questions. Try again."
		}
		return s, nil
	}

	t := s.session.Test()
	cmds := []tea.Cmd{tickCmd()}
	if s.session.Kind == authoring.KindMCQ {
		s.mcqViews = make([]components.MultiChoice, len(t.MCQs))
		for i, q := range t.MCQs {
			s.mcqViews[i] = components.NewMultiChoice(q.Options)
		}
	} else {
		s.frqInput = components.NewTextInput("Type your answer...", 0)
		cmds = append(cmds, s.frqInput.Init())
	}

	return s, tea.Batch(cmds...)
}

func (s *ExamScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.session.Phase() != sess.PhaseActive || s.submitting {
		return s, nil
	}
	if s.session.Tick() {
		s.stashFRQAnswer()
		return s, s.submitCmd(sess.CauseTimeout)
	}
	return s, tickCmd()
}

func (s *ExamScreen) handleSubmitted(msg submittedMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false
	if msg.Err != nil {
		s.saveErr = msg.Err.Error()
	}

	// Reveal verdicts on the answered options.
	if out := s.session.MCQOutcome(); out != nil {
		t := s.session.Test()
		for i, q := range t.MCQs {
			s.mcqViews[i].Chosen = s.session.Answer(q.Index)
			s.mcqViews[i].Reveal(q.Expected)
		}
	}

	s.current = 0
	return s, nil
}

func (s *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.submitting {
		return s, nil
	}

	switch s.session.Phase() {
	case sess.PhaseAuthoring:
		if key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case sess.PhaseSubmitted:
		switch key {
		case "esc", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "left", "h":
			if s.current > 0 {
				s.current--
			}
		case "right", "l":
			if s.current < s.questionCount()-1 {
				s.current++
			}
		}
		return s, nil
	}

	// Active phase.
	if s.confirmSubmit {
		switch key {
		case "y", "Y":
			s.confirmSubmit = false
			s.stashFRQAnswer()
			return s, s.submitCmd(sess.CauseUser)
		case "n", "N", "esc":
			s.confirmSubmit = false
		}
		return s, nil
	}

	switch key {
	case "ctrl+s":
		s.confirmSubmit = true
		return s, nil
	case "left":
		s.moveTo(s.current - 1)
		return s, nil
	case "right", "tab":
		s.moveTo(s.current + 1)
		return s, nil
	}

	if s.session.Kind == authoring.KindMCQ {
		if key == "h" {
			s.moveTo(s.current - 1)
			return s, nil
		}
		if key == "l" {
			s.moveTo(s.current + 1)
			return s, nil
		}
		s.mcqViews[s.current], _ = s.mcqViews[s.current].Update(msg)
		if chosen := s.mcqViews[s.current].Chosen; chosen != "" {
			s.session.RecordAnswer(s.currentIndex(), chosen)
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.frqInput, cmd = s.frqInput.Update(msg)
	s.session.RecordAnswer(s.currentIndex(), s.frqInput.Value())
	return s, cmd
}

// moveTo changes the question cursor, carrying the FRQ draft into the
// session first.
func (s *ExamScreen) moveTo(i int) {
	if i < 0 || i >= s.questionCount() || i == s.current {
		return
	}
	s.stashFRQAnswer()
	s.current = i
	if s.session.Kind == authoring.KindFRQ && s.session.Phase() == sess.PhaseActive {
		s.frqInput = components.NewTextInput("Type your answer...", 0)
		s.frqInput.SetValue(s.session.Answer(s.currentIndex()))
	}
}

func (s *ExamScreen) stashFRQAnswer() {
	if s.session.Kind != authoring.KindFRQ || s.session.Phase() != sess.PhaseActive {
		return
	}
	s.session.RecordAnswer(s.currentIndex(), s.frqInput.Value())
}

// authorCmd asks the model to write the test.
func (s *ExamScreen) authorCmd() tea.Cmd {
	gw, d := s.gw, s.deck
	kind, length := s.session.Kind, s.session.Length
	return func() tea.Msg {
		test, err := authoring.Author(context.Background(), gw, d, kind, length)
		return authoredMsg{Test: test, Err: err}
	}
}

// submitCmd finalizes the session on the UI goroutine, then grades
// and appends the result record in the returned command. Phase and
// clock are settled before the command runs, so nothing the view
// reads is touched off the UI goroutine.
func (s *ExamScreen) submitCmd(cause sess.Cause) tea.Cmd {
	if !s.session.Finalize(cause) {
		return nil
	}
	s.submitting = true
	session, gw, log := s.session, s.gw, s.log
	return func() tea.Msg {
		rec, message, err := session.Grade(context.Background(), gw, log)
		return submittedMsg{Record: rec, Message: message, Err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func spinnerTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
