package session

import (
	"context"

	"github.com/trisha-agni/flashcard-cong-app/internal/authoring"
	"github.com/trisha-agni/flashcard-cong-app/internal/grading"
	"github.com/trisha-agni/flashcard-cong-app/internal/results"
)

// Phase is the session lifecycle state. Submitted is terminal.
type Phase int

const (
	PhaseAuthoring Phase = iota
	PhaseActive
	PhaseSubmitted
)

// Cause distinguishes how a session was submitted. Both paths run the
// same submission logic; only the user-visible message differs.
type Cause int

const (
	CauseUser Cause = iota
	CauseTimeout
)

// Message returns the user-visible confirmation for the cause.
func (c Cause) Message() string {
	if c == CauseTimeout {
		return "Time's up! Test submitted!"
	}
	return "Test submitted successfully!"
}

// ResultSink persists a submitted session's record.
type ResultSink interface {
	Append(rec results.Record) (results.Record, error)
}

// Session is one test attempt from authoring through submission.
type Session struct {
	DeckName string
	Kind     authoring.Kind
	Length   authoring.Length

	phase   Phase
	test    *authoring.Test
	answers map[int]string
	clock   *Countdown

	mcqOutcome *grading.MCQOutcome
	frqOutcome *grading.FRQOutcome
	graded     bool
	result     *results.Record
	message    string
}

// New starts a session in the authoring phase.
func New(deckName string, kind authoring.Kind, length authoring.Length) *Session {
	return &Session{
		DeckName: deckName,
		Kind:     kind,
		Length:   length,
		phase:    PhaseAuthoring,
		answers:  map[int]string{},
	}
}

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Test returns the authored question set, nil until Attach.
func (s *Session) Test() *authoring.Test { return s.test }

// Clock returns the countdown, nil until the session is active.
func (s *Session) Clock() *Countdown { return s.clock }

// Attach installs the authored questions and activates the session.
// Every question index gets an answer slot initialized to the empty
// string. Returns false if the session already left the authoring
// phase: a late authoring reply must not clobber a live session.
func (s *Session) Attach(test *authoring.Test) bool {
	if s.phase != PhaseAuthoring || test == nil || test.Empty() {
		return false
	}
	s.test = test
	for _, q := range test.MCQs {
		s.answers[q.Index] = ""
	}
	for _, q := range test.FRQs {
		s.answers[q.Index] = ""
	}
	s.clock = NewCountdown(s.Length.Seconds())
	s.phase = PhaseActive
	return true
}

// RecordAnswer sets the answer slot for a question index. Ignored
// outside the active phase and for indexes the test never authored.
func (s *Session) RecordAnswer(index int, value string) {
	if s.phase != PhaseActive {
		return
	}
	if _, ok := s.answers[index]; !ok {
		return
	}
	s.answers[index] = value
}

// Answer returns the current value of one answer slot.
func (s *Session) Answer(index int) string {
	return s.answers[index]
}

// Tick advances the countdown one second and reports whether the
// session should now auto-submit. Safe to call in any phase.
func (s *Session) Tick() (expired bool) {
	if s.phase != PhaseActive {
		return false
	}
	return s.clock.Tick()
}

// Finalize moves an active session to the terminal phase: no more
// answers, no more ticks. Returns true on the call that performed the
// transition, false in any other phase. Finalize must run on the UI
// goroutine so that phase and clock reads never race with grading,
// which may run elsewhere via Grade.
func (s *Session) Finalize(cause Cause) bool {
	if s.phase != PhaseActive {
		return false
	}
	s.phase = PhaseSubmitted
	s.message = cause.Message()
	if s.clock != nil {
		s.clock.Stop()
	}
	return true
}

// Grade grades a finalized session and persists the result record.
// The first call wins; later calls return the already-stored record
// without re-grading. Every answer slot's current value is collected
// whether or not the user touched it.
func (s *Session) Grade(ctx context.Context, c grading.Completer, sink ResultSink) (results.Record, string, error) {
	if s.phase != PhaseSubmitted || s.graded {
		if s.result != nil {
			return *s.result, s.message, nil
		}
		return results.Record{}, s.message, nil
	}
	s.graded = true

	var score, maxScore *int
	snapshot := results.Snapshot{}

	switch s.Kind {
	case authoring.KindFRQ:
		out := grading.GradeFRQ(ctx, c, s.test.FRQs, s.answers)
		s.frqOutcome = &out
		score, maxScore = &out.Score, &out.MaxScore
		snapshot.FRQs = s.test.FRQs
	default:
		out := grading.GradeMCQ(ctx, c, s.test.MCQs, s.answers)
		s.mcqOutcome = &out
		score, maxScore = &out.Score, &out.MaxScore
		for i := range s.test.MCQs {
			if g, ok := out.Grades[s.test.MCQs[i].Index]; ok {
				s.test.MCQs[i].Expected = g.Correct
			}
		}
		snapshot.MCQs = s.test.MCQs
	}

	rec := results.NewRecord(s.Kind, s.DeckName, s.Length, s.answers, snapshot, score, maxScore)
	stored, err := sink.Append(rec)
	if err != nil {
		// The session stays terminal; the caller surfaces the save
		// failure to the user.
		return rec, s.message, err
	}
	s.result = &stored
	return stored, s.message, nil
}

// Submit finalizes and grades in one call, for paths that are not
// split across goroutines.
func (s *Session) Submit(ctx context.Context, c grading.Completer, sink ResultSink, cause Cause) (results.Record, string, error) {
	s.Finalize(cause)
	return s.Grade(ctx, c, sink)
}

// MCQOutcome returns the grading outcome for an MCQ session, nil
// before submission.
func (s *Session) MCQOutcome() *grading.MCQOutcome { return s.mcqOutcome }

// FRQOutcome returns the grading outcome for an FRQ session, nil
// before submission.
func (s *Session) FRQOutcome() *grading.FRQOutcome { return s.frqOutcome }

// Message returns the submission confirmation, empty before submit.
func (s *Session) Message() string { return s.message }
