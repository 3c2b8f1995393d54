package grading

import (
	"context"
	"fmt"
	"strings"

	"github.com/trisha-agni/flashcard-cong-app/internal/authoring"
	"github.com/trisha-agni/flashcard-cong-app/internal/llm"
)

const frqGradingHeader = "You are an AP-style FRQ grader. " +
	"Grade each response out of 5 points and provide 1-2 sentence feedback. " +
	`Return JSON array [{"q": <index>, "score": <points>, "feedback": "..."}]` + "\n\n"

const frqPointsPerQuestion = 5

// FRQGrade is the grader's verdict for one free-response answer.
type FRQGrade struct {
	Index    int
	Score    int
	Feedback string
}

// FRQOutcome is the graded result for an FRQ session.
type FRQOutcome struct {
	// Entries holds every graded verdict in reply order.
	Entries []FRQGrade

	// Score sums points over graded entries.
	Score int

	// MaxScore is 5 per graded entry when the model replied, else 5
	// per answer slot so a failed grading still shows the ceiling the
	// student was playing for.
	MaxScore int
}

// Grade returns the verdict for a question index, or nil.
func (o *FRQOutcome) Grade(index int) *FRQGrade {
	for i := range o.Entries {
		if o.Entries[i].Index == index {
			return &o.Entries[i]
		}
	}
	return nil
}

type frqEntry struct {
	Q        int    `json:"q"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// GradeFRQ grades a submitted FRQ session in a single model call.
// Failure degrades the same way GradeMCQ does.
func GradeFRQ(ctx context.Context, c Completer, questions []authoring.FRQQuestion, answers map[int]string) FRQOutcome {
	outcome := FRQOutcome{
		MaxScore: frqPointsPerQuestion * len(questions),
	}
	if len(questions) == 0 {
		outcome.MaxScore = 0
		return outcome
	}

	ctx = llm.WithPurpose(ctx, "frq-grading")

	var b strings.Builder
	b.WriteString(frqGradingHeader)
	for _, q := range questions {
		fmt.Fprintf(&b, "Question %d: %s\nStudent answer: %s\n\n", q.Index, q.Prompt, answers[q.Index])
	}

	raw, err := c.CompleteJSON(ctx, b.String(), frqGradingSchema)
	if err != nil {
		return outcome
	}

	entries := decode[frqEntry](raw)
	if len(entries) == 0 {
		return outcome
	}

	outcome.MaxScore = frqPointsPerQuestion * len(entries)
	for _, e := range entries {
		outcome.Entries = append(outcome.Entries, FRQGrade{
			Index:    e.Q,
			Score:    e.Score,
			Feedback: strings.TrimSpace(e.Feedback),
		})
		outcome.Score += e.Score
	}
	return outcome
}
