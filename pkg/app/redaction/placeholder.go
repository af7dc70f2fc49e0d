package redaction

import (
	"sort"

	"github.com/NeuralTrust/InclusionGuard/pkg/domain/redaction"
)

// AssignPlaceholders orders entities by position and numbers them per prefix
// in document order. Spans outside the text, unknown prefixes and spans
// overlapping an earlier kept entity are dropped.
func AssignPlaceholders(entities []redaction.Entity, textLen int) redaction.EntityMap {
	valid := make([]redaction.Entity, 0, len(entities))
	for _, e := range entities {
		if e.Valid(textLen) {
			valid = append(valid, e)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		if valid[i].Offset != valid[j].Offset {
			return valid[i].Offset < valid[j].Offset
		}
		return valid[i].Length > valid[j].Length
	})

	counters := make(map[redaction.Prefix]int)
	out := make(redaction.EntityMap, 0, len(valid))
	for _, e := range valid {
		if n := len(out); n > 0 && out[n-1].Overlaps(e) {
			continue
		}
		counters[e.Prefix]++
		e.Placeholder = redaction.FormatPlaceholder(e.Prefix, counters[e.Prefix])
		out = append(out, e)
	}
	return out
}
