package exam

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/trisha-agni/flashcard-cong-app/internal/authoring"
	sess "github.com/trisha-agni/flashcard-cong-app/internal/session"
	"github.com/trisha-agni/flashcard-cong-app/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *ExamScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\nError: " + s.errMsg + "\n\nPress any key to go back.")
	}

	switch s.session.Phase() {
	case sess.PhaseAuthoring:
		return s.renderAuthoring(width)
	case sess.PhaseSubmitted:
		// Outcomes are not readable until the grading reply lands.
		if s.submitting {
			return s.renderQuestion(width, height)
		}
		return s.renderResults(width, height)
	}
	return s.renderQuestion(width, height)
}

func (s *ExamScreen) renderAuthoring(width int) string {
	frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
	msg := fmt.Sprintf("%s  Writing %s questions for %q...",
		frame, s.session.Kind, s.deck.Name)
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render("\n\n\n" + msg)
}

func (s *ExamScreen) renderQuestion(width, height int) string {
	var b strings.Builder

	progress := fmt.Sprintf("Question %d of %d", s.current+1, s.questionCount())
	answered := 0
	t := s.session.Test()
	for _, q := range t.MCQs {
		if s.session.Answer(q.Index) != "" {
			answered++
		}
	}
	for _, q := range t.FRQs {
		if s.session.Answer(q.Index) != "" {
			answered++
		}
	}

	info := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  "+progress) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("   %d answered", answered))
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if s.session.Kind == authoring.KindMCQ {
		q := t.MCQs[s.current]
		b.WriteString(theme.Body.Bold(true).Width(width - 4).Render("  " + q.Stem))
		b.WriteString("\n\n")
		b.WriteString(s.mcqViews[s.current].View())
	} else {
		q := t.FRQs[s.current]
		b.WriteString(theme.Body.Bold(true).Width(width - 4).Render("  " + q.Prompt))
		b.WriteString("\n\n")
		b.WriteString("  Answer: " + s.frqInput.View())
	}

	if s.confirmSubmit {
		unanswered := s.questionCount() - answered
		warn := "Submit the test? (y/n)"
		if unanswered > 0 {
			warn = fmt.Sprintf("Submit with %d unanswered question(s)? (y/n)", unanswered)
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Incorrect.Render(warn)))
	}

	if s.submitting {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Grading your answers...")))
	}

	return b.String()
}

func (s *ExamScreen) renderResults(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(s.session.Message())))
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render(s.scoreLine())))
	b.WriteString("\n")

	if s.saveErr != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render("Result could not be saved: "+s.saveErr)))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if s.questionCount() == 0 {
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Question %d of %d", s.current+1, s.questionCount())))
	b.WriteString("\n\n")

	if s.session.Kind == authoring.KindMCQ {
		s.renderMCQResult(&b, width)
	} else {
		s.renderFRQResult(&b, width)
	}

	return b.String()
}

func (s *ExamScreen) scoreLine() string {
	kind := "Multiple choice"
	if s.session.Kind == authoring.KindFRQ {
		kind = "Free response"
	}
	if out := s.session.MCQOutcome(); out != nil {
		return fmt.Sprintf("%s · Score: %d/%d", kind, out.Score, out.MaxScore)
	}
	if out := s.session.FRQOutcome(); out != nil {
		return fmt.Sprintf("%s · Score: %d/%d", kind, out.Score, out.MaxScore)
	}
	return kind
}

func (s *ExamScreen) renderMCQResult(b *strings.Builder, width int) {
	t := s.session.Test()
	q := t.MCQs[s.current]
	out := s.session.MCQOutcome()

	b.WriteString(theme.Body.Bold(true).Width(width - 4).Render("  " + q.Stem))
	b.WriteString("\n\n")
	b.WriteString(s.mcqViews[s.current].View())
	b.WriteString("\n")

	grade, graded := out.Grades[q.Index]
	switch {
	case !graded:
		b.WriteString(theme.Hint.Render("  No grading info for this question."))
	case s.session.Answer(q.Index) == grade.Correct:
		b.WriteString(theme.Correct.Render("  ✔ Correct"))
	default:
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("  ✖ Correct answer: %s", grade.Correct)))
	}
	b.WriteString("\n")

	if graded && grade.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width - 6).Render("  " + grade.Explanation))
	}
}

func (s *ExamScreen) renderFRQResult(b *strings.Builder, width int) {
	t := s.session.Test()
	q := t.FRQs[s.current]
	out := s.session.FRQOutcome()

	b.WriteString(theme.Body.Bold(true).Width(width - 4).Render("  " + q.Prompt))
	b.WriteString("\n\n")

	answer := s.session.Answer(q.Index)
	if answer == "" {
		answer = "(no answer)"
	}
	b.WriteString(theme.Body.Width(width - 6).Render("  Your answer: " + answer))
	b.WriteString("\n\n")

	grade := out.Grade(q.Index)
	if grade == nil {
		b.WriteString(theme.Hint.Render("  No grading info for this question."))
		return
	}

	style := theme.Correct
	if grade.Score < 3 {
		style = theme.Incorrect
	}
	b.WriteString(style.Render(fmt.Sprintf("  Score: %d/5", grade.Score)))
	if grade.Feedback != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(width - 6).Render("  " + grade.Feedback))
	}
}
