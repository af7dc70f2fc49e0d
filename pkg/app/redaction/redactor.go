package redaction

import (
	"sort"

	"github.com/NeuralTrust/InclusionGuard/pkg/domain/redaction"
)

// Redact substitutes every entity span with its placeholder. Spans are
// rewritten from the rightmost one leftwards so offsets of the entities not
// yet processed stay valid.
func Redact(text string, m redaction.EntityMap) string {
	if m.Empty() {
		return text
	}

	runes := []rune(text)
	ordered := make(redaction.EntityMap, 0, len(m))
	for _, e := range m {
		if e.Valid(len(runes)) && e.Placeholder != "" {
			ordered = append(ordered, e)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Offset > ordered[j].Offset
	})

	for _, e := range ordered {
		placeholder := []rune(e.Placeholder)
		next := make([]rune, 0, len(runes)-e.Length+len(placeholder))
		next = append(next, runes[:e.Offset]...)
		next = append(next, placeholder...)
		next = append(next, runes[e.End():]...)
		runes = next
	}
	return string(runes)
}
