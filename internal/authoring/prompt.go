package authoring

import (
	"fmt"
	"strings"
)

// buildPrompt assembles the generation prompt. The format mandate is
// load-bearing: the parser depends on the numbering and lettering rules
// stated here.
func buildPrompt(terms []string, kind Kind, length Length) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %s style AP-level test questions for %s using ONLY these terms: %s. ",
		kind, length.hint(), strings.Join(terms, ", "))
	b.WriteString("For MCQ: Each question starts with a number and a period (ex: 1.) followed by the question text. ")
	b.WriteString("Each option starts with a capital letter (A-D) followed by a period and a space followed by the option text. ")
	b.WriteString("For FRQ: provide an open-ended question. Return one question per line. ")
	fmt.Fprintf(&b, "Do not mix formats, only %s questions.", kind)

	return b.String()
}
