package results

import (
	"time"

	"github.com/trisha-agni/flashcard-cong-app/internal/authoring"
)

// Selection is one historical choice for a question position.
type Selection struct {
	Timestamp time.Time
	Choice    string
}

// OptionTrend reports how often each option was chosen for question
// questionIndex (1-based) across a deck's MCQ attempts, in time order.
// Correlation is by the stored question index on each record, so
// attempts whose question sets differ in length or order still line up
// correctly.
func (l *Log) OptionTrend(deckName string, questionIndex int) ([]Selection, map[string]int, error) {
	records, err := l.ByDeck(deckName)
	if err != nil {
		return nil, nil, err
	}

	var selections []Selection
	counts := map[string]int{}
	for _, r := range records {
		if r.TestType != authoring.KindMCQ {
			continue
		}
		choice, ok := r.Answers[questionIndex]
		if !ok || choice == "" {
			continue
		}
		selections = append(selections, Selection{Timestamp: r.Timestamp, Choice: choice})
		counts[choice]++
	}
	return selections, counts, nil
}
