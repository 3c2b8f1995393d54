package grading

import "github.com/trisha-agni/flashcard-cong-app/internal/llm"

// mcqGradingSchema constrains the MCQ grading reply to an array of
// graded entries, one per question.
var mcqGradingSchema = &llm.Schema{
	Name:        "mcq-grading",
	Description: "Graded multiple-choice answers",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"q":           map[string]any{"type": "integer", "minimum": 1},
				"correct":     map[string]any{"type": "string", "enum": []any{"A", "B", "C", "D"}},
				"explanation": map[string]any{"type": "string"},
			},
			"required":             []any{"q", "correct"},
			"additionalProperties": false,
		},
	},
}

// frqGradingSchema constrains the FRQ grading reply to an array of
// scored entries with feedback.
var frqGradingSchema = &llm.Schema{
	Name:        "frq-grading",
	Description: "Graded free-response answers",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"q":        map[string]any{"type": "integer", "minimum": 1},
				"score":    map[string]any{"type": "integer", "minimum": 0, "maximum": 5},
				"feedback": map[string]any{"type": "string"},
			},
			"required":             []any{"q", "score"},
			"additionalProperties": false,
		},
	},
}
