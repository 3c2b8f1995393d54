package exam

import (
	"time"

	"github.com/trisha-agni/flashcard-cong-app/internal/authoring"
	"github.com/trisha-agni/flashcard-cong-app/internal/results"
)

// authoredMsg is sent when the model finishes writing the test.
type authoredMsg struct {
	Test *authoring.Test
	Err  error
}

// timerTickMsg is sent every second to advance the countdown.
type timerTickMsg time.Time

// spinnerTickMsg animates the authoring wait indicator.
type spinnerTickMsg time.Time

// submittedMsg is sent when grading and persistence complete.
type submittedMsg struct {
	Record  results.Record
	Message string
	Err     error
}
