package results

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/trisha-agni/flashcard-cong-app/internal/authoring"
)

// Snapshot preserves the authored questions as they were graded, so
// history views don't depend on regenerating anything.
type Snapshot struct {
	MCQs []authoring.MCQQuestion `json:"mcqs,omitempty"`
	FRQs []authoring.FRQQuestion `json:"frqs,omitempty"`
}

// Record is one stored test attempt. Append-only: never mutated after
// creation.
type Record struct {
	ID        string           `json:"id"`
	Timestamp time.Time        `json:"timestamp"`
	TestType  authoring.Kind   `json:"test_type"`
	DeckName  string           `json:"card_name"`
	Length    authoring.Length `json:"length"`
	Answers   map[int]string   `json:"responses"`
	Questions Snapshot         `json:"questions"`
	Score     *int             `json:"score"`
	MaxScore  *int             `json:"max_score"`
	Percent   float64          `json:"percent"`
}

// NewRecord builds a record for a submitted session and computes its
// percent. Timestamps are UTC instants.
func NewRecord(testType authoring.Kind, deckName string, length authoring.Length,
	answers map[int]string, questions Snapshot, score, maxScore *int) Record {
	if answers == nil {
		answers = map[int]string{}
	}
	return Record{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		TestType:  testType,
		DeckName:  deckName,
		Length:    length,
		Answers:   answers,
		Questions: questions,
		Score:     score,
		MaxScore:  maxScore,
		Percent:   computePercent(answers, questions, score, maxScore),
	}
}

// computePercent applies the first rule that fits:
// (a) explicit score over a nonzero max;
// (b) accuracy against expected answers in the MCQ snapshot;
// (c) share of answer slots that are non-empty;
// (d) zero when there are no answers at all.
func computePercent(answers map[int]string, questions Snapshot, score, maxScore *int) float64 {
	if score != nil && maxScore != nil && *maxScore != 0 {
		return round2(100 * float64(*score) / float64(*maxScore))
	}

	total, matched := 0, 0
	for _, q := range questions.MCQs {
		if q.Expected == "" {
			continue
		}
		total++
		if answers[q.Index] == q.Expected {
			matched++
		}
	}
	if total > 0 {
		return round2(100 * float64(matched) / float64(total))
	}

	if len(answers) > 0 {
		answered := 0
		for _, v := range answers {
			if v != "" {
				answered++
			}
		}
		return round2(100 * float64(answered) / float64(len(answers)))
	}

	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
