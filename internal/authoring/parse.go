package authoring

import (
	"regexp"
	"strings"
)

var (
	questionStartRe = regexp.MustCompile(`^\d+\.`)
	optionRe        = regexp.MustCompile(`^\s*([A-D])\.\s*(.*)`)
)

// splitLines breaks raw model output into trimmed non-empty lines.
func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

// parseMCQs groups lines into question blocks and parses each block.
// A block starts at a "N." line; lines before the first block (model
// preamble) are discarded. Indices are assigned densely in parse order,
// so a model that numbers 1,2,4 still yields 1,2,3.
func parseMCQs(lines []string) []MCQQuestion {
	var blocks [][]string
	var current []string
	for _, line := range lines {
		if questionStartRe.MatchString(line) {
			if len(current) > 0 {
				blocks = append(blocks, current)
			}
			current = []string{line}
		} else if len(current) > 0 {
			current = append(current, line)
		}
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	questions := make([]MCQQuestion, 0, len(blocks))
	for i, block := range blocks {
		q := MCQQuestion{
			Index:   i + 1,
			Stem:    block[0],
			Options: map[string]string{},
			RawText: strings.Join(block, "\n"),
		}
		for _, line := range block[1:] {
			if m := optionRe.FindStringSubmatch(line); m != nil {
				q.Options[m[1]] = strings.TrimSpace(m[2])
			}
		}
		questions = append(questions, q)
	}
	return questions
}

// parseFRQs treats every line as one open-response prompt.
func parseFRQs(lines []string) []FRQQuestion {
	questions := make([]FRQQuestion, 0, len(lines))
	for i, line := range lines {
		questions = append(questions, FRQQuestion{Index: i + 1, Prompt: line})
	}
	return questions
}
