package grading

import (
	"context"
	"strings"

	"github.com/trisha-agni/flashcard-cong-app/internal/authoring"
	"github.com/trisha-agni/flashcard-cong-app/internal/llm"
)

const mcqGradingHeader = "You are an expert AP-style multiple-choice grader. " +
	"For each question below (stem and options), determine the single best correct choice letter (A-D) " +
	"and provide a 1-2 sentence explanation. " +
	"Return JSON array of objects with fields: " +
	`{"q": <index>, "correct": "<A-D>", "explanation": "..."}.` + "\n\n"

// MCQGrade is the grader's verdict for one question.
type MCQGrade struct {
	Correct     string
	Explanation string
}

// MCQOutcome is the graded result for an MCQ session.
type MCQOutcome struct {
	// Grades maps question index to verdict. A question with no entry
	// here got no grading info from the model.
	Grades map[int]MCQGrade

	// Score counts questions whose recorded answer matched the graded
	// correct letter. Only graded questions can contribute.
	Score int

	// MaxScore is the total authored question count. Ungraded
	// questions count against the ratio even though they are shown as
	// "no grading info" rather than wrong.
	MaxScore int
}

type mcqEntry struct {
	Q           int    `json:"q"`
	Correct     string `json:"correct"`
	Explanation string `json:"explanation"`
}

// GradeMCQ grades a submitted MCQ session in a single model call. Any
// failure (gateway, decode) degrades to zero graded entries; the
// outcome is always usable.
func GradeMCQ(ctx context.Context, c Completer, questions []authoring.MCQQuestion, answers map[int]string) MCQOutcome {
	outcome := MCQOutcome{
		Grades:   map[int]MCQGrade{},
		MaxScore: len(questions),
	}
	if len(questions) == 0 {
		return outcome
	}

	ctx = llm.WithPurpose(ctx, "mcq-grading")

	var b strings.Builder
	b.WriteString(mcqGradingHeader)
	for _, q := range questions {
		b.WriteString(q.RawText)
		b.WriteString("\n\n")
	}

	raw, err := c.CompleteJSON(ctx, b.String(), mcqGradingSchema)
	if err != nil {
		return outcome
	}

	known := make(map[int]bool, len(questions))
	for _, q := range questions {
		known[q.Index] = true
	}

	for _, e := range decode[mcqEntry](raw) {
		if !known[e.Q] {
			continue
		}
		outcome.Grades[e.Q] = MCQGrade{
			Correct:     strings.ToUpper(strings.TrimSpace(e.Correct)),
			Explanation: strings.TrimSpace(e.Explanation),
		}
	}

	for _, q := range questions {
		g, ok := outcome.Grades[q.Index]
		if ok && answers[q.Index] == g.Correct {
			outcome.Score++
		}
	}
	return outcome
}
