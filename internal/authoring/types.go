package authoring

// Kind selects the question style for an authored test.
type Kind string

const (
	KindMCQ Kind = "MCQ"
	KindFRQ Kind = "FRQ"
)

// Length selects the test duration.
type Length string

const (
	LengthShort Length = "15 min"
	LengthLong  Length = "1 hour"
)

// Seconds returns the countdown duration for the length.
func (l Length) Seconds() int {
	if l == LengthLong {
		return 3600
	}
	return 900
}

// hint returns the phrasing embedded in the generation prompt.
func (l Length) hint() string {
	if l == LengthLong {
		return "a 1 hour test"
	}
	return "a 15 minute test"
}

// MCQQuestion is one parsed multiple-choice question.
type MCQQuestion struct {
	// Index is the 1-based position in parse order, independent of any
	// numbering the model wrote.
	Index int `json:"index"`

	// Stem is the first line of the block, number prefix included.
	Stem string `json:"stem"`

	// Options maps letter (A-D) to option text. May be empty when the
	// model produced a malformed block; such questions are kept so the
	// indices stay dense.
	Options map[string]string `json:"options"`

	// RawText is the full block joined by newlines, used verbatim in
	// grading prompts.
	RawText string `json:"raw_text"`

	// Expected is the correct letter as determined by the grader.
	// Empty until grading, and stays empty when the grader returned no
	// entry for this question.
	Expected string `json:"expected,omitempty"`
}

// FRQQuestion is one open-response prompt.
type FRQQuestion struct {
	Index  int    `json:"index"`
	Prompt string `json:"prompt"`
}

// Test is the authored question set for one session.
type Test struct {
	Deck   string
	Kind   Kind
	Length Length

	// Exactly one of MCQs/FRQs is populated, matching Kind.
	MCQs []MCQQuestion
	FRQs []FRQQuestion

	// RawLines preserves the model's non-empty output lines.
	RawLines []string
}

// Empty reports whether authoring produced no questions at all.
func (t *Test) Empty() bool {
	return len(t.MCQs) == 0 && len(t.FRQs) == 0
}

// Count returns the number of questions of the test's kind.
func (t *Test) Count() int {
	if t.Kind == KindFRQ {
		return len(t.FRQs)
	}
	return len(t.MCQs)
}
