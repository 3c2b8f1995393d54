package grading

import "strings"

// ExtractJSON pulls the first top-level JSON array substring out of
// free-form model text (first '[' to last ']'), falling back to the
// first '{' / last '}' pair. Returns "" when neither pair exists.
// Models wrap grading JSON in prose often enough that this shim earns
// its keep even with schema-constrained output as the primary path.
func ExtractJSON(text string) string {
	if start, end := strings.Index(text, "["), strings.LastIndex(text, "]"); start != -1 && end > start {
		return text[start : end+1]
	}
	if start, end := strings.Index(text, "{"), strings.LastIndex(text, "}"); start != -1 && end > start {
		return text[start : end+1]
	}
	return ""
}
